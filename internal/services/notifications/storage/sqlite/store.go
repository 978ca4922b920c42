package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/steamwatch/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/steamwatch/internal/services/notifications/format"
	"github.com/louisbranch/steamwatch/internal/services/notifications/storage"
	"github.com/louisbranch/steamwatch/internal/services/notifications/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for guild settings.
type Store struct {
	sqlDB      *sql.DB
	currencies *format.Table
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a guild SQLite store at the provided path and applies
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, currencies: format.Currencies()}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// PutGuild inserts a guild once. Existing rows are left untouched. A blank
// currency is derived from the guild's region.
func (s *Store) PutGuild(ctx context.Context, record storage.GuildRecord) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return fmt.Errorf("guild id is required")
	}
	code, err := s.currencyCode(record)
	if err != nil {
		return err
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	if _, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO guild (id, name, region, currency_code, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO NOTHING
`, record.ID, strings.TrimSpace(record.Name), strings.TrimSpace(record.Region), code, toMillis(createdAt), toMillis(updatedAt)); err != nil {
		return fmt.Errorf("put guild: %w", err)
	}
	return nil
}

func (s *Store) currencyCode(record storage.GuildRecord) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(record.CurrencyCode))
	if code == "" {
		return s.currencies.CurrencyForRegion(record.Region), nil
	}
	if _, ok := s.currencies.Lookup(code); !ok {
		return "", fmt.Errorf("currency %q is not supported", record.CurrencyCode)
	}
	return code, nil
}

// GuildCurrency returns the currency code configured for a guild.
func (s *Store) GuildCurrency(ctx context.Context, guildID string) (string, error) {
	if err := s.ready(ctx); err != nil {
		return "", err
	}
	var code string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT currency_code FROM guild WHERE id = ?`, strings.TrimSpace(guildID)).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("get guild currency: %w", err)
	}
	return code, nil
}

// SetGuildCurrency changes the currency of an existing guild.
func (s *Store) SetGuildCurrency(ctx context.Context, guildID string, currencyCode string, updatedAt time.Time) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(currencyCode) == "" {
		return fmt.Errorf("currency code is required")
	}
	code, err := s.currencyCode(storage.GuildRecord{CurrencyCode: currencyCode})
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE guild SET currency_code = ?, updated_at = ? WHERE id = ?
`, code, toMillis(updatedAt), strings.TrimSpace(guildID))
	if err != nil {
		return fmt.Errorf("set guild currency: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set guild currency rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
