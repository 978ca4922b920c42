package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Locale string `env:"CMD_TEST_LOCALE" envDefault:"en-US"`
	DBPath string `env:"CMD_TEST_DB_PATH"`
}

func registerTestFlags(fs *flag.FlagSet, cfg *testConfig) {
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "db path")
}

func TestParseConfigFromArgsFlagsOverrideEnv(t *testing.T) {
	t.Setenv("STEAMWATCH_CMD_TEST_LOCALE", "pt-BR")
	t.Setenv("STEAMWATCH_CMD_TEST_DB_PATH", "/tmp/env.db")

	var cfg testConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-db", "/tmp/flag.db"}, registerTestFlags); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "/tmp/flag.db" {
		t.Fatalf("db path = %q, want flag value", cfg.DBPath)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("locale = %q, want env value", cfg.Locale)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceNotifications, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("STEAMWATCH_OTEL_ENDPOINT", "")
	want := errors.New("render failed")

	err := RunWithTelemetry(context.Background(), ServiceNotifications, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
