// Package storage defines persistence contracts for per-guild notification
// settings.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested guild record is missing.
	ErrNotFound = errors.New("record not found")
)

// GuildRecord stores the display settings of one chat guild.
type GuildRecord struct {
	ID           string
	Name         string
	Region       string
	CurrencyCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CurrencyStore resolves the storefront currency a guild displays prices in.
type CurrencyStore interface {
	GuildCurrency(ctx context.Context, guildID string) (string, error)
}

// GuildStore persists guild settings.
type GuildStore interface {
	CurrencyStore
	PutGuild(ctx context.Context, record GuildRecord) error
	SetGuildCurrency(ctx context.Context, guildID string, currencyCode string, updatedAt time.Time) error
}
