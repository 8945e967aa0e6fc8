// Package config loads CLI settings from flags, MODELMAP_* environment
// variables, an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MODELMAP_SPEC.
const EnvPrefix = "MODELMAP"

// Setting keys. Flags use the same names with dashes.
const (
	KeySpec      = "spec"
	KeyMapping   = "mapping"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyConfig    = "config"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	// Spec is the path of the YAML mapping file.
	Spec string `mapstructure:"spec"`
	// Mapping names the mapping to use from Spec.
	Mapping   string `mapstructure:"mapping"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load resolves the configuration. Precedence, highest first: flags that were
// set, environment, config file, defaults. A .env file in the working
// directory is loaded into the environment if present.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault(KeySpec, "")
	v.SetDefault(KeyMapping, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, FormatText)
	v.SetDefault(KeyConfig, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	for _, key := range []string{KeySpec, KeyMapping, KeyLogLevel, KeyLogFormat, KeyConfig} {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	}

	return nil
}

// Validate checks the log settings.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	switch strings.ToLower(c.LogFormat) {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: log format %q (want %s or %s)", ErrInvalidConfig, c.LogFormat, FormatText, FormatJSON)
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return level, nil
}

// NewLogger builds a logger writing to w in the configured format and level.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
