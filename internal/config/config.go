package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/amishk599/jobhunter/internal/model"
)

const (
	// EnvConfigPath names the environment variable consulted when no
	// --config flag is given.
	EnvConfigPath = "JOBHUNTER_CONFIG"

	// DefaultPath is used when neither the flag nor the env var is set.
	DefaultPath = "config.yaml"

	defaultAddr          = ":8000"
	defaultReadTimeout   = 10 * time.Second
	defaultWriteTimeout  = 30 * time.Second
	defaultSearchTimeout = 15 * time.Second
	defaultLimit         = 10
	maxDefaultLimit      = 50
	defaultCountry       = "us"
	defaultUserAgent     = "jobhunter/1.0"
)

// Config is the root configuration for the jobhunter service.
type Config struct {
	Server      ServerConfig
	Search      SearchConfig
	Credentials model.Credentials // server-side fallbacks, request values win
	RateLimit   RateLimitConfig
	Log         LogConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SearchConfig controls the fan-out defaults.
type SearchConfig struct {
	Timeout        time.Duration // per provider call
	DefaultSources []model.Source
	DefaultLimit   int
	UserAgent      string
}

// RateLimitConfig caps requests per second to each provider. Zero or missing
// means unlimited.
type RateLimitConfig struct {
	PerSource map[model.Source]float64
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Server      rawServerConfig    `yaml:"server"`
	Search      rawSearchConfig    `yaml:"search"`
	Credentials rawCredentials     `yaml:"credentials"`
	RateLimit   rawRateLimitConfig `yaml:"rate_limit"`
	Log         LogConfig          `yaml:"log"`
}

type rawServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
}

type rawSearchConfig struct {
	Timeout        string   `yaml:"timeout"`
	DefaultSources []string `yaml:"default_sources"`
	DefaultLimit   int      `yaml:"default_limit"`
	UserAgent      string   `yaml:"user_agent"`
}

type rawCredentials struct {
	AdzunaAppID   string `yaml:"adzuna_app_id"`
	AdzunaAppKey  string `yaml:"adzuna_app_key"`
	AdzunaCountry string `yaml:"adzuna_country"`
	ReedAPIKey    string `yaml:"reed_api_key"`
}

type rawRateLimitConfig struct {
	PerSource map[string]float64 `yaml:"per_source"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         defaultAddr,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
		},
		Search: SearchConfig{
			Timeout:        defaultSearchTimeout,
			DefaultSources: append([]model.Source(nil), model.DefaultSources...),
			DefaultLimit:   defaultLimit,
			UserAgent:      defaultUserAgent,
		},
		Credentials: model.Credentials{AdzunaCountry: defaultCountry},
		RateLimit:   RateLimitConfig{PerSource: map[model.Source]float64{}},
		Log:         LogConfig{Format: "text"},
	}
}

// Resolve picks the config path: flag, then $JOBHUNTER_CONFIG, then
// DefaultPath. explicit is false only for the fallback.
func Resolve(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, true
	}
	return DefaultPath, false
}

// LoadOrDefault loads .env if present, resolves the config path and loads
// it. A missing file at the fallback path yields Default(); a missing file
// the caller asked for is an error.
func LoadOrDefault(flagPath string) (*Config, error) {
	_ = godotenv.Load()

	path, explicit := Resolve(flagPath)
	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse expands environment variables in data, then decodes and validates
// it on top of Default().
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	var err error

	if raw.Server.Addr != "" {
		cfg.Server.Addr = raw.Server.Addr
	}
	if cfg.Server.ReadTimeout, err = parseDuration("server.read_timeout", raw.Server.ReadTimeout, cfg.Server.ReadTimeout); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = parseDuration("server.write_timeout", raw.Server.WriteTimeout, cfg.Server.WriteTimeout); err != nil {
		return nil, err
	}
	if cfg.Search.Timeout, err = parseDuration("search.timeout", raw.Search.Timeout, cfg.Search.Timeout); err != nil {
		return nil, err
	}

	if raw.Search.DefaultSources != nil {
		cfg.Search.DefaultSources = make([]model.Source, 0, len(raw.Search.DefaultSources))
		for _, name := range raw.Search.DefaultSources {
			cfg.Search.DefaultSources = append(cfg.Search.DefaultSources, model.Source(name))
		}
	}
	if raw.Search.DefaultLimit != 0 {
		cfg.Search.DefaultLimit = raw.Search.DefaultLimit
	}
	if raw.Search.UserAgent != "" {
		cfg.Search.UserAgent = raw.Search.UserAgent
	}

	cfg.Credentials = model.Credentials{
		AdzunaAppID:   raw.Credentials.AdzunaAppID,
		AdzunaAppKey:  raw.Credentials.AdzunaAppKey,
		AdzunaCountry: raw.Credentials.AdzunaCountry,
		ReedAPIKey:    raw.Credentials.ReedAPIKey,
	}
	if cfg.Credentials.AdzunaCountry == "" {
		cfg.Credentials.AdzunaCountry = defaultCountry
	}

	for name, rps := range raw.RateLimit.PerSource {
		cfg.RateLimit.PerSource[model.Source(name)] = rps
	}

	if raw.Log.Format != "" {
		cfg.Log.Format = raw.Log.Format
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseDuration(field, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", field, raw, err)
	}
	return d, nil
}

func validate(cfg *Config) error {
	if cfg.Server.ReadTimeout <= 0 || cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("search.timeout must be positive, got %v", cfg.Search.Timeout)
	}
	if cfg.Search.DefaultLimit < 1 || cfg.Search.DefaultLimit > maxDefaultLimit {
		return fmt.Errorf("search.default_limit must be between 1 and %d, got %d", maxDefaultLimit, cfg.Search.DefaultLimit)
	}
	for _, src := range cfg.Search.DefaultSources {
		if !src.Valid() {
			return fmt.Errorf("search.default_sources: unknown source %q", src)
		}
	}
	for src, rps := range cfg.RateLimit.PerSource {
		if !src.Valid() {
			return fmt.Errorf("rate_limit.per_source: unknown source %q", src)
		}
		if rps < 0 {
			return fmt.Errorf("rate_limit.per_source[%s] must not be negative, got %v", src, rps)
		}
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", cfg.Log.Format)
	}
	return nil
}
