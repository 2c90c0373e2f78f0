// Package config provides configuration defaults and loading.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "dialcc"

	// EnvPrefix is the prefix for environment overrides (DIALCC_JSON, ...).
	EnvPrefix = "DIALCC"

	// DefaultConcurrency is the default batch lookup concurrency.
	DefaultConcurrency = 4

	// MaxConcurrency is the maximum allowed batch concurrency.
	MaxConcurrency = 64

	// DefaultLogLevel leaves the level to logging.New, which falls back to
	// LOG_LEVEL and then info.
	DefaultLogLevel = ""
)

// Config keys, shared by flags and env.
const (
	KeyJSON        = "json"
	KeyRaw         = "raw"
	KeyConcurrency = "concurrency"
	KeyLogLevel    = "log-level"
)

// Config holds runtime configuration.
type Config struct {
	JSONOutput  bool
	Raw         bool
	Concurrency int
	LogLevel    string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency,
		LogLevel:    DefaultLogLevel,
	}
}

// Load builds a Config from flags, then DIALCC_* env, then defaults.
// Flags that were set explicitly take precedence over env.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault(KeyJSON, def.JSONOutput)
	v.SetDefault(KeyRaw, def.Raw)
	v.SetDefault(KeyConcurrency, def.Concurrency)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	if flags != nil {
		for _, key := range []string{KeyJSON, KeyRaw, KeyConcurrency, KeyLogLevel} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	cfg := &Config{
		JSONOutput:  v.GetBool(KeyJSON),
		Raw:         v.GetBool(KeyRaw),
		Concurrency: v.GetInt(KeyConcurrency),
		LogLevel:    v.GetString(KeyLogLevel),
	}
	cfg.Concurrency = ClampConcurrency(cfg.Concurrency)
	return cfg, nil
}

// ClampConcurrency bounds n to [1, MaxConcurrency].
func ClampConcurrency(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxConcurrency {
		return MaxConcurrency
	}
	return n
}
