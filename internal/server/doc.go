// Package server exposes the domino computations as an HTTP JSON API.
//
// # Routes
//
//	GET  /health                    liveness probe
//	GET  /version                   build information
//	GET  /metrics                   Prometheus metrics (when a registry is set)
//	POST /v1/partitions/validate    {"partition": "4,2"}
//	POST /v1/partitions/transpose   {"partition": "4,2"}
//	POST /v1/fill                   {"partition": "4,2", "format": "text"}
//	POST /v1/combine                {"left": "2", "right": "1,1"}
//	POST /v1/combine-lr             {"left": "2:3,1\n2,2", "right": "1"}
//	POST /v1/lr                     {"first": "2,1", "second": "2,1"}
//	POST /v1/render                 {"tableau": {...}, "format": "svg"}
//	POST /v1/tree                   {"first": "1", "second": "2,1", "format": "dot"}
//
// Every computation goes through a shared [pipeline.Runner], so responses
// are cached across requests the same way the CLI caches across runs.
//
// # Errors
//
// Failures are returned as
//
//	{"error": {"code": "INVALID_PARTITION", "message": "..."}}
//
// with status 400 for invalid input, 422 for shapes that are not domino
// tableaux, 413 for inputs over the configured limits, and 500 otherwise.
//
// # Request IDs
//
// Each request gets a UUID, echoed in the X-Request-ID header and attached
// to every log line for the request. A client-supplied X-Request-ID is kept.
package server
