// Package config loads twd-mcp settings from defaults, an optional config
// file, a .env file and TWD_MCP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/BRIKEV/twd-mcp/internal/logging"
)

// EnvPrefix is prepended to every environment variable, e.g. TWD_MCP_LOG_LEVEL.
const EnvPrefix = "TWD_MCP"

// DefaultConfigName is looked up in the working directory when no file is given.
const DefaultConfigName = "twd-mcp"

// Transports accepted by serve.transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

// Config is the fully resolved configuration.
type Config struct {
	Log    logging.Config `mapstructure:"log"`
	Serve  ServeConfig    `mapstructure:"serve"`
	Output OutputConfig   `mapstructure:"output"`
}

// ServeConfig selects the MCP transport.
type ServeConfig struct {
	Transport string `mapstructure:"transport"`
	Addr      string `mapstructure:"addr"` // streamable-http only
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("serve.transport", TransportStdio)
	v.SetDefault("serve.addr", ":8080")

	v.SetDefault("output.format", "yaml")
}

// Load resolves configuration into v and returns the result. An explicit
// file must exist; the default twd-mcp.yaml is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads variables from path into the process environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Serve.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.Serve.Addr == "" {
			return fmt.Errorf("serve.addr is required for the %s transport", TransportHTTP)
		}
	default:
		return fmt.Errorf("serve.transport must be %s or %s, got %q", TransportStdio, TransportHTTP, c.Serve.Transport)
	}
	switch strings.ToLower(c.Output.Format) {
	case "yaml", "json":
	default:
		return fmt.Errorf("output.format must be yaml or json, got %q", c.Output.Format)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
