// Package config loads settings for the command-line binaries from the
// environment, an optional .env file, an optional config file and flags.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/client"
)

// EnvPrefix is prepended to every environment variable, e.g. PEARL_API_KEY.
const EnvPrefix = "PEARL"

// Keys recognised in config files. Environment variables use the upper-case
// form with EnvPrefix; flags use dashes instead of underscores.
const (
	KeyAPIKey     = "api_key"
	KeyAPIVersion = "api_version"
	KeyBaseURL    = "base_url"
	KeyTimeout    = "timeout"
	KeyLogLevel   = "log_level"
)

// Config holds the settings shared by the binaries.
type Config struct {
	APIKey     string
	APIVersion nlpearl.Version
	BaseURL    string
	Timeout    time.Duration
	LogLevel   string // debug, info, warn, error
}

// Load reads configuration. Sources, lowest precedence first: defaults,
// configFile (skipped when empty), PEARL_* environment variables (a .env
// file in the working directory is loaded if present), then flags that were
// explicitly set on flags (may be nil).
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(KeyAPIVersion, string(nlpearl.DefaultVersion))
	v.SetDefault(KeyBaseURL, nlpearl.DefaultRoot)
	v.SetDefault(KeyTimeout, client.DefaultTimeout)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for _, key := range []string{KeyAPIKey, KeyAPIVersion, KeyBaseURL, KeyTimeout, KeyLogLevel} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	cfg := &Config{
		APIKey:     v.GetString(KeyAPIKey),
		APIVersion: nlpearl.Version(v.GetString(KeyAPIVersion)),
		BaseURL:    v.GetString(KeyBaseURL),
		Timeout:    v.GetDuration(KeyTimeout),
		LogLevel:   strings.ToLower(v.GetString(KeyLogLevel)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present and well formed.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("PEARL_API_KEY is required")
	}
	if c.APIVersion == "" {
		return fmt.Errorf("PEARL_API_VERSION must not be empty")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("PEARL_BASE_URL must be an http or https URL, got %q", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("PEARL_TIMEOUT must be positive, got %s", c.Timeout)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Logger builds a production zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}

// ClientOptions returns options that pin a client to this configuration.
func (c *Config) ClientOptions(logger *zap.Logger) []client.Option {
	return []client.Option{
		client.WithAPIKey(c.APIKey),
		client.WithVersion(c.APIVersion),
		client.WithBaseURL(c.BaseURL),
		client.WithLogger(logger),
		client.WithTimeout(c.Timeout),
	}
}

// NewClient creates a client pinned to this configuration.
func (c *Config) NewClient(logger *zap.Logger) *client.Client {
	return client.New(client.Config{}, c.ClientOptions(logger)...)
}
