package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/render/styles"
)

const appName = "domino"

// Defaults.
const (
	DefaultMaxBoxes     = 12
	DefaultMaxCells     = 1000
	DefaultCellSize     = 40
	DefaultAddr         = ":8080"
	DefaultCacheTTL     = 10 * time.Minute
	DefaultCacheEntries = 1024

	// MaxBoxesCeiling bounds max_boxes; the search tree grows exponentially
	// in the number of inserted boxes.
	MaxBoxesCeiling = 30

	// MaxCellsCeiling bounds max_cells; tiling time grows quadratically in
	// the length of the longest row.
	MaxCellsCeiling = 20000
)

// Config is the full settings file.
type Config struct {
	Limits Limits `toml:"limits" yaml:"limits"`
	Render Render `toml:"render" yaml:"render"`
	Server Server `toml:"server" yaml:"server"`
}

// Limits bounds the work a single request may cause.
type Limits struct {
	// MaxBoxes is the largest size of the second partition accepted by the
	// Littlewood-Richardson enumeration.
	MaxBoxes int `toml:"max_boxes" yaml:"max_boxes"`
	// MaxFillings truncates enumeration results. Zero keeps all.
	MaxFillings int `toml:"max_fillings" yaml:"max_fillings"`
	// MaxCells is the largest shape accepted by fill, combine, transpose
	// and render.
	MaxCells int `toml:"max_cells" yaml:"max_cells"`
}

// Render holds the defaults for SVG output.
type Render struct {
	Style    string `toml:"style" yaml:"style"`
	CellSize int    `toml:"cell_size" yaml:"cell_size"`
	Labels   bool   `toml:"labels" yaml:"labels"`
}

// Server configures `domino serve`.
type Server struct {
	Addr         string   `toml:"addr" yaml:"addr"`
	CacheTTL     Duration `toml:"cache_ttl" yaml:"cache_ttl"`
	CacheEntries int      `toml:"cache_entries" yaml:"cache_entries"`
}

// Duration is a time.Duration read from text such as "10m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Limits: Limits{MaxBoxes: DefaultMaxBoxes, MaxCells: DefaultMaxCells},
		Render: Render{Style: styles.NameSimple, CellSize: DefaultCellSize, Labels: true},
		Server: Server{
			Addr:         DefaultAddr,
			CacheTTL:     Duration{DefaultCacheTTL},
			CacheEntries: DefaultCacheEntries,
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path means the
// default location, which may be absent. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := decode(path, data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.Decode(string(data), cfg)
		return err
	}
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	if c.Limits.MaxBoxes < 0 || c.Limits.MaxBoxes > MaxBoxesCeiling {
		return errors.New(errors.ErrCodeInvalidConfig, "limits.max_boxes must be between 0 and %d, got %d", MaxBoxesCeiling, c.Limits.MaxBoxes)
	}
	if c.Limits.MaxCells < 0 || c.Limits.MaxCells > MaxCellsCeiling {
		return errors.New(errors.ErrCodeInvalidConfig, "limits.max_cells must be between 0 and %d, got %d", MaxCellsCeiling, c.Limits.MaxCells)
	}
	if c.Limits.MaxFillings < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "limits.max_fillings must not be negative, got %d", c.Limits.MaxFillings)
	}
	if !slices.Contains(styles.Names, c.Render.Style) {
		return errors.New(errors.ErrCodeInvalidConfig, "render.style must be one of %s, got %q", strings.Join(styles.Names, ", "), c.Render.Style)
	}
	if c.Render.CellSize < 4 || c.Render.CellSize > 400 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.cell_size must be between 4 and 400, got %d", c.Render.CellSize)
	}
	if c.Server.CacheTTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.cache_ttl must not be negative")
	}
	if c.Server.CacheEntries < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.cache_entries must not be negative")
	}
	return nil
}
