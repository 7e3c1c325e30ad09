package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Errorf("expected default address :8080, got %s", cfg.Server.Address)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Presets.Dir != "" {
		t.Errorf("expected embedded presets only, got dir %q", cfg.Presets.Dir)
	}
	if cfg.Presets.SanitizeDescriptions {
		t.Error("sanitising must be opt-in")
	}
	if cfg.Templates.DevMode {
		t.Error("dev mode must default to off")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info log level, got %s", cfg.Log.Level)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"HERO_HTTP_ADDR":             "127.0.0.1:9090",
		"HERO_READ_TIMEOUT":          "20s",
		"HERO_WRITE_TIMEOUT":         "25s",
		"HERO_IDLE_TIMEOUT":          "2m",
		"HERO_PRESETS_DIR":           " ./presets ",
		"HERO_SANITIZE_DESCRIPTIONS": "yes",
		"HERO_TEMPLATES_DIR":         "internal/page/templates",
		"HERO_DEV":                   "1",
		"HERO_LOG_LEVEL":             "DEBUG",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Address != "127.0.0.1:9090" {
		t.Errorf("unexpected address: %s", cfg.Server.Address)
	}
	if cfg.Server.IdleTimeout != 2*time.Minute {
		t.Errorf("unexpected idle timeout: %s", cfg.Server.IdleTimeout)
	}
	if cfg.Presets.Dir != "./presets" {
		t.Errorf("expected trimmed presets dir, got %q", cfg.Presets.Dir)
	}
	if !cfg.Presets.SanitizeDescriptions {
		t.Error("expected sanitising enabled")
	}
	if !cfg.Templates.DevMode || cfg.Templates.Dir != "internal/page/templates" {
		t.Errorf("unexpected templates config: %+v", cfg.Templates)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected lower-cased level, got %s", cfg.Log.Level)
	}
}

func TestLoadReportsUnparsableValues(t *testing.T) {
	env := map[string]string{
		"HERO_READ_TIMEOUT":  "soon",
		"HERO_IDLE_TIMEOUT":  "90",
		"HERO_DEV":           "maybe",
		"HERO_WRITE_TIMEOUT": " 20s ",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error for unparsable values")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := vErr.Fields()
	want := []string{"Server.ReadTimeout", "Server.IdleTimeout", "Templates.DevMode"}
	if len(fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("expected field %s at %d, got %s", want[i], i, fields[i])
		}
	}
}

func TestLoadBlankValuesUseDefaults(t *testing.T) {
	env := map[string]string{
		"HERO_READ_TIMEOUT": "  ",
		"HERO_DEV":          "",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Errorf("expected default read timeout, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Templates.DevMode {
		t.Error("expected dev mode off")
	}
}

func TestLoadValidation(t *testing.T) {
	env := map[string]string{
		"HERO_WRITE_TIMEOUT": "-1s",
		"HERO_DEV":           "true",
		"HERO_LOG_LEVEL":     "loud",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := vErr.Fields()
	want := []string{"Server.WriteTimeout", "Templates.Dir", "Log.Level"}
	if len(fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("expected field %s at %d, got %s", want[i], i, fields[i])
		}
	}
}

func TestLoadDotEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "HERO_HTTP_ADDR=:7070\nexport HERO_LOG_LEVEL=warn\nHERO_PRESETS_DIR=\"from-dotenv\"\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(
		WithEnvFile(envPath),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{"HERO_HTTP_ADDR": ":6060"}),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Address != ":6060" {
		t.Errorf("explicit map must win over .env, got %s", cfg.Server.Address)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected level from .env, got %s", cfg.Log.Level)
	}
	if cfg.Presets.Dir != "from-dotenv" {
		t.Errorf("expected unquoted dir from .env, got %q", cfg.Presets.Dir)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("missing .env must be ignored, got %v", err)
	}
}
