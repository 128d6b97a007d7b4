// Package config loads user settings for the domino CLI and server.
//
// Settings live in a TOML file, by default
// $XDG_CONFIG_HOME/domino/config.toml (or ~/.config/domino/config.toml).
// Files ending in .yaml or .yml are read as YAML with the same keys. A
// missing default file is not an error: [Default] values apply.
//
//	[limits]
//	max_boxes = 12
//	max_fillings = 0
//	max_cells = 1000
//
//	[render]
//	style = "parity"
//	cell_size = 40
//	labels = true
//
//	[server]
//	addr = ":8080"
//	cache_ttl = "10m"
//	cache_entries = 1024
//
// Command-line flags override file values.
package config
