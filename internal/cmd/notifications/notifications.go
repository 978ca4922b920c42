// Package notifications parses preview command flags and renders one event
// file into its chat payload.
package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/steamwatch/internal/platform/cmd"
	"github.com/louisbranch/steamwatch/internal/platform/timeouts"
	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/enrich"
	"github.com/louisbranch/steamwatch/internal/services/notifications/render"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamapi"
	"github.com/louisbranch/steamwatch/internal/services/notifications/storage"
	"github.com/louisbranch/steamwatch/internal/services/notifications/storage/sqlite"
)

// Config holds notifications command configuration.
type Config struct {
	SteamAPIKey   string        `env:"STEAM_API_KEY"`
	StoreBaseURL  string        `env:"STORE_BASE_URL" envDefault:"https://store.steampowered.com"`
	WebAPIBaseURL string        `env:"WEB_API_BASE_URL" envDefault:"https://api.steampowered.com"`
	DBPath        string        `env:"DB_PATH"`
	Locale        string        `env:"LOCALE" envDefault:"en-US"`
	EnrichTimeout time.Duration `env:"ENRICH_TIMEOUT"`

	EventPath string
	GuildID   string
	GuildName string
	Region    string
	Currency  string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.EventPath, "event", "-", "Event JSON file to render, or - for stdin")
		fs.StringVar(&cfg.GuildID, "guild", "", "Guild whose currency prices store snapshots")
		fs.StringVar(&cfg.GuildName, "guild-name", "", "Guild name stored when -region registers the guild")
		fs.StringVar(&cfg.Region, "region", "", "Register -guild with the currency of this voice region if it is new")
		fs.StringVar(&cfg.Currency, "currency", "", "Store this currency code for -guild before rendering")
		fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite guild store path")
		fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for field labels")
	})
	if err != nil {
		return Config{}, err
	}
	if cfg.EnrichTimeout <= 0 {
		cfg.EnrichTimeout = timeouts.EnrichLookup
	}
	return cfg, nil
}

// Run renders the configured event to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceNotifications, func(ctx context.Context) error {
		return preview(ctx, cfg, os.Stdin, os.Stdout)
	})
}

func preview(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer) error {
	data, err := readEvent(cfg.EventPath, stdin)
	if err != nil {
		return err
	}
	event, err := domain.DecodeEvent(data)
	if err != nil {
		return err
	}

	if snapshot, ok := event.(domain.StoreSnapshotEvent); ok && snapshot.Snapshot.CurrencyCode == "" && cfg.GuildID != "" && cfg.DBPath != "" {
		snapshot.Snapshot.CurrencyCode = guildCurrency(ctx, cfg)
		event = snapshot
	}

	client := steamapi.New(steamapi.Config{
		APIKey:        cfg.SteamAPIKey,
		StoreBaseURL:  cfg.StoreBaseURL,
		WebAPIBaseURL: cfg.WebAPIBaseURL,
	})
	coordinator := enrich.New(enrich.Lookups{
		Profiles:   client,
		Events:     client,
		Products:   client,
		ClientInfo: client,
	}, enrich.WithTimeout(cfg.EnrichTimeout))
	renderer := render.New(coordinator, render.WithLocalizer(render.NewLocalizer(cfg.Locale)))

	payload, err := renderer.Render(ctx, event)
	if err != nil {
		return fmt.Errorf("render %s: %w", event.Kind(), err)
	}
	if payload == nil {
		log.Printf("render %s: store details unresolved, nothing to send", event.Kind())
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return nil
}

func readEvent(path string, stdin io.Reader) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read event from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}
	return data, nil
}

// guildCurrency opens the guild store and returns the guild's currency. A
// region registers a new guild and a currency overrides the stored one. Any
// failure yields "" so the renderer falls back to the default currency.
func guildCurrency(ctx context.Context, cfg Config) string {
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Printf("open guild store: %v", err)
		return ""
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("close guild store: %v", err)
		}
	}()
	return updateGuild(ctx, db, cfg)
}

func updateGuild(ctx context.Context, store storage.GuildStore, cfg Config) string {
	if cfg.Region != "" {
		record := storage.GuildRecord{ID: cfg.GuildID, Name: cfg.GuildName, Region: cfg.Region}
		if err := store.PutGuild(ctx, record); err != nil {
			log.Printf("register guild %s: %v", cfg.GuildID, err)
		}
	}
	if cfg.Currency != "" {
		if err := store.SetGuildCurrency(ctx, cfg.GuildID, cfg.Currency, time.Now()); err != nil {
			log.Printf("set guild %s currency: %v", cfg.GuildID, err)
		}
	}
	return lookupCurrency(ctx, store, cfg.GuildID)
}

func lookupCurrency(ctx context.Context, store storage.CurrencyStore, guildID string) string {
	code, err := store.GuildCurrency(ctx, guildID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("guild %s has no currency, using default", guildID)
		} else {
			log.Printf("guild %s currency: %v", guildID, err)
		}
		return ""
	}
	return code
}
