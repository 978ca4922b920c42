// Package fields assembles the ordered detail list of a notification from
// predicate-gated contributions.
package fields

import (
	"strings"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
)

const (
	// TitleLimit is the character budget for titles such as news headlines.
	TitleLimit = 128
	// DescriptionLimit is the chat embed description budget.
	DescriptionLimit = 4096
	// ClientLinkName labels the deep link field.
	ClientLinkName = "Steam Client Link"

	ellipsis = "..."
)

// Entry is one optional contribution to a field list. Build is only called
// when Present holds.
type Entry struct {
	Present bool
	Build   func() domain.Field
	last    bool
}

// When contributes the field built by build when ok holds.
func When(ok bool, build func() domain.Field) Entry {
	return Entry{Present: ok, Build: build}
}

// Always contributes a field unconditionally. Callers pass the fallback
// literal as value when the source is empty.
func Always(name, value string, inline bool) Entry {
	return Entry{Present: true, Build: func() domain.Field {
		return domain.Field{Name: name, Value: value, Inline: inline}
	}}
}

// Text contributes a field only when value has visible text.
func Text(name, value string, inline bool) Entry {
	return Entry{Present: strings.TrimSpace(value) != "", Build: func() domain.Field {
		return domain.Field{Name: name, Value: value, Inline: inline}
	}}
}

// ClientLink contributes the deep link field. It is emitted after every
// other entry regardless of where it appears in the list.
func ClientLink(name, link string) Entry {
	if name == "" {
		name = ClientLinkName
	}
	return Entry{Present: link != "", last: true, Build: func() domain.Field {
		return domain.Field{Name: name, Value: link}
	}}
}

// Compose builds the fields of every present entry in list order, with
// client link entries moved to the end. Fields that build to a blank value
// are dropped so every emitted value is displayable.
func Compose(entries ...Entry) []domain.Field {
	out := make([]domain.Field, 0, len(entries))
	var trailing []domain.Field
	for _, entry := range entries {
		if !entry.Present || entry.Build == nil {
			continue
		}
		field := entry.Build()
		if strings.TrimSpace(field.Value) == "" {
			continue
		}
		if entry.last {
			trailing = append(trailing, field)
			continue
		}
		out = append(out, field)
	}
	return append(out, trailing...)
}

// Truncate shortens s to at most limit characters, replacing the tail with
// an ellipsis. Strings within the limit are returned unchanged.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(runes[:max(limit, 0)])
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

// Title truncates s to TitleLimit.
func Title(s string) string {
	return Truncate(s, TitleLimit)
}

// Join joins values with newlines, or returns fallback when none has text.
func Join(values []string, fallback string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, "\n")
}
