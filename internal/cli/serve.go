package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/domino/internal/server"
	"github.com/matzehuels/domino/pkg/buildinfo"
	"github.com/matzehuels/domino/pkg/cache"
	"github.com/matzehuels/domino/pkg/observability"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve fill, combine, lr, render and tree over HTTP.

Results are cached in memory (server.cache_entries, server.cache_ttl) and
Prometheus metrics are exposed at /metrics.

Example:
  domino serve --addr :9000
  curl -s localhost:9000/v1/lr -d '{"first":"2,1","second":"2,1"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			hooks := observability.NewPrometheusHooks(reg)
			observability.SetComputeHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)
			defer observability.Reset()

			runner := c.newRunner(c.memoryCache())
			runner.Keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
			defer runner.Close()

			srv := server.New(runner, server.Options{
				Defaults: c.options(),
				Registry: reg,
				Logger:   c.Logger,
			})

			w := cmd.ErrOrStderr()
			printSuccess(w, "%s %s", appName, buildinfo.Version)
			printKeyValue(w, "address", addr)
			printKeyValue(w, "max boxes", itoaOr(c.cfg.Limits.MaxBoxes, "default"))
			printKeyValue(w, "max cells", itoaOr(c.cfg.Limits.MaxCells, "default"))
			printKeyValue(w, "cache", itoaOr(c.cfg.Server.CacheEntries, "unbounded")+" entries, ttl "+c.cfg.Server.CacheTTL.String())
			return srv.ListenAndServe(contextOf(cmd), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
