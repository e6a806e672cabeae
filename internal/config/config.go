package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// NATS configuration
	NatsURL            string
	NatsRequestSubject string
	NatsTimeout        time.Duration

	// Redis result cache
	CacheEnabled bool
	RedisURL     string
	CacheTTL     time.Duration

	// Service configuration
	ServiceName    string
	RequestTimeout time.Duration
	MetricsAddr    string
	LogLevel       string
	LogFormat      string
}

var defaults = map[string]any{
	"nats_url":             "nats://localhost:4222",
	"nats_request_subject": "chain.analyze",
	"nats_timeout":         30 * time.Second,
	"cache_enabled":        true,
	"redis_url":            "redis://localhost:6379/0",
	"cache_ttl":            30 * time.Minute,
	"service_name":         "supportchain",
	"request_timeout":      5 * time.Second,
	"metrics_addr":         ":9090",
	"log_level":            "info",
	"log_format":           "json",
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

// FromViper builds a validated Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		NatsURL:            v.GetString("nats_url"),
		NatsRequestSubject: v.GetString("nats_request_subject"),
		NatsTimeout:        v.GetDuration("nats_timeout"),

		CacheEnabled: v.GetBool("cache_enabled"),
		RedisURL:     v.GetString("redis_url"),
		CacheTTL:     v.GetDuration("cache_ttl"),

		ServiceName:    v.GetString("service_name"),
		RequestTimeout: v.GetDuration("request_timeout"),
		MetricsAddr:    v.GetString("metrics_addr"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.NatsRequestSubject == "" {
		errs = append(errs, errors.New("NATS_REQUEST_SUBJECT is required"))
	}
	if c.NatsTimeout <= 0 {
		errs = append(errs, errors.New("NATS_TIMEOUT must be positive"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must be positive"))
	}
	if c.CacheEnabled && c.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive when the cache is enabled"))
	}
	return errors.Join(errs...)
}
