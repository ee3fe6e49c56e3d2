// Package config loads settings for the traverse command from defaults, an
// optional YAML file, LVSURVEY_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid marks a configuration that was read but holds out-of-range values.
var ErrInvalid = errors.New("config validation failed")

// Config holds all command configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Adjust  AdjustConfig  `mapstructure:"adjust"`
	Project ProjectConfig `mapstructure:"project"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
}

type AdjustConfig struct {
	DegenerateTolerance float64 `mapstructure:"degenerate_tolerance"`
}

type ProjectConfig struct {
	Dir string `mapstructure:"dir"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":            "log.level",
	"log-format":           "log.format",
	"format":               "output.format",
	"precision":            "output.precision",
	"degenerate-tolerance": "adjust.degenerate_tolerance",
	"dir":                  "project.dir",
}

// RegisterFlags adds the configuration flags to fs. Defaults shown in help
// match the built-in defaults; a flag only overrides other sources when set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.String("log-format", "text", "log format: text or json")
	fs.String("format", "text", "output format: text or json")
	fs.Int("precision", 3, "decimals printed for coordinates")
	fs.Float64("degenerate-tolerance", 0, "perimeter at or below which a closed traverse is not adjusted")
	fs.String("dir", "", "directory relative project names are resolved against")
}

// Load resolves the configuration. fs may be nil; otherwise it must have
// been populated by RegisterFlags and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.precision", 3)
	v.SetDefault("adjust.degenerate_tolerance", 0.0)
	v.SetDefault("project.dir", "")

	// Config file: explicit path must exist, the search path may be empty.
	var explicit string
	if fs != nil {
		explicit, _ = fs.GetString("config")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", explicit, err)
		}
	} else {
		v.SetConfigName("lvsurvey")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lvsurvey")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: LVSURVEY_OUTPUT_FORMAT → output.format
	v.SetEnvPrefix("LVSURVEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every setting is within range. The error wraps
// ErrInvalid and lists every offending key.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("output.format must be text or json, got %q", c.Output.Format))
	}
	if c.Output.Precision < 0 || c.Output.Precision > 12 {
		errs = append(errs, fmt.Sprintf("output.precision must be 0-12, got %d", c.Output.Precision))
	}
	tol := c.Adjust.DegenerateTolerance
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		errs = append(errs, fmt.Sprintf("adjust.degenerate_tolerance must be finite and non-negative, got %v", tol))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}
