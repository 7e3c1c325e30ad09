package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile      = ".env"
	defaultAddress      = ":8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultShutdown     = 10 * time.Second
	defaultLogLevel     = "info"
)

// Config captures runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Presets   PresetsConfig
	Templates TemplatesConfig
	Log       LogConfig
}

// ServerConfig configures the preview HTTP server.
type ServerConfig struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// PresetsConfig controls where settings payloads come from.
type PresetsConfig struct {
	Dir                  string
	SanitizeDescriptions bool
}

// TemplatesConfig controls the host page templates.
type TemplatesConfig struct {
	Dir     string
	DevMode bool
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path disables the file.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over the system environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file, the process
// environment and explicit overrides, in increasing order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnv, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if value, ok := options.envMap[key]; ok {
			return value, true
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnv[key]; ok {
			return value, true
		}
		return "", false
	}

	var unparsable []string
	duration := func(key, field string, fallback time.Duration) time.Duration {
		d, ok := durationWithDefault(lookup, key, fallback)
		if !ok {
			unparsable = append(unparsable, field)
		}
		return d
	}
	boolean := func(key, field string) bool {
		b, ok := boolWithDefault(lookup, key, false)
		if !ok {
			unparsable = append(unparsable, field)
		}
		return b
	}

	cfg := Config{
		Server: ServerConfig{
			Address:         stringWithDefault(lookup, "HERO_HTTP_ADDR", defaultAddress),
			ReadTimeout:     duration("HERO_READ_TIMEOUT", "Server.ReadTimeout", defaultReadTimeout),
			WriteTimeout:    duration("HERO_WRITE_TIMEOUT", "Server.WriteTimeout", defaultWriteTimeout),
			IdleTimeout:     duration("HERO_IDLE_TIMEOUT", "Server.IdleTimeout", defaultIdleTimeout),
			ShutdownTimeout: duration("HERO_SHUTDOWN_TIMEOUT", "Server.ShutdownTimeout", defaultShutdown),
		},
		Presets: PresetsConfig{
			Dir:                  strings.TrimSpace(stringWithDefault(lookup, "HERO_PRESETS_DIR", "")),
			SanitizeDescriptions: boolean("HERO_SANITIZE_DESCRIPTIONS", "Presets.SanitizeDescriptions"),
		},
		Templates: TemplatesConfig{
			Dir:     strings.TrimSpace(stringWithDefault(lookup, "HERO_TEMPLATES_DIR", "")),
			DevMode: boolean("HERO_DEV", "Templates.DevMode"),
		},
		Log: LogConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "HERO_LOG_LEVEL", defaultLogLevel)),
		},
	}

	if err := validateConfig(cfg, unparsable); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validateConfig reports unparsable values first, then fields that parsed but are out of range.
func validateConfig(cfg Config, unparsable []string) error {
	invalid := append([]string(nil), unparsable...)

	if strings.TrimSpace(cfg.Server.Address) == "" {
		invalid = append(invalid, "Server.Address")
	}
	if cfg.Server.ReadTimeout <= 0 {
		invalid = append(invalid, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if cfg.Server.IdleTimeout <= 0 {
		invalid = append(invalid, "Server.IdleTimeout")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		invalid = append(invalid, "Server.ShutdownTimeout")
	}
	if cfg.Templates.DevMode && cfg.Templates.Dir == "" {
		invalid = append(invalid, "Templates.Dir")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "Log.Level")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) (time.Duration, bool) {
	value, ok := lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, true
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback, false
	}
	return d, true
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) (bool, bool) {
	value, ok := lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, true
	}
	v := strings.ToLower(strings.TrimSpace(value))
	if parsed, err := strconv.ParseBool(v); err == nil {
		return parsed, true
	}
	switch v {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	return fallback, false
}
