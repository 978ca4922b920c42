package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Locale  string        `env:"TEST_LOCALE" envDefault:"en-US"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"3s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("locale = %q, want %q", cfg.Locale, "en-US")
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("timeout = %v, want 3s", cfg.Timeout)
	}
}

func TestParseEnvAppliesPrefix(t *testing.T) {
	t.Setenv("STEAMWATCH_TEST_LOCALE", "pt-BR")
	t.Setenv("TEST_LOCALE", "de-DE")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("locale = %q, want prefixed value %q", cfg.Locale, "pt-BR")
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("STEAMWATCH_TEST_TIMEOUT", "not-a-duration")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
