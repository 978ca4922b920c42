package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/enrich"
	"github.com/louisbranch/steamwatch/internal/services/notifications/fields"
	"github.com/louisbranch/steamwatch/internal/services/notifications/format"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamurl"
)

const (
	glyphYes     = "✅"
	glyphNo      = "❌"
	glyphWarning = "⚠️"

	detailsTypeGame = "game"
)

// StoreSnapshot renders a full storefront card. Product details, live
// player count and client info are fetched concurrently. Without product
// details there is nothing to show and the payload is nil.
func (r *Renderer) StoreSnapshot(ctx context.Context, e domain.StoreSnapshotEvent) (*domain.Payload, error) {
	appID := e.Snapshot.AppID
	cur := r.currencies.Resolve(e.Snapshot.CurrencyCode)

	result := r.enricher.Fetch(ctx, enrich.Request{ProductID: appID, CountryCode: cur.CountryCode})
	details, ok := result.Details.Get()
	if !ok {
		return nil, nil
	}

	players, hasPlayers := result.PlayerCount.Get()
	hasPlayers = hasPlayers && details.Type == detailsTypeGame

	release, hasRelease := details.ReleaseDate.Get()
	platforms, hasPlatforms := details.Platforms.Get()

	list := fields.Compose(
		fields.Always(r.label(keyPrice), r.snapshotPrice(cur, details), true),
		fields.When(len(details.Developers) > 0, func() domain.Field {
			return domain.Field{Name: r.label(keyDevelopers), Value: fields.Join(details.Developers, r.label(keyUnknown)), Inline: true}
		}),
		fields.When(len(details.Publishers) > 0 && details.Publishers[0] != "", func() domain.Field {
			return domain.Field{Name: r.label(keyPublishers), Value: strings.Join(details.Publishers, "\n"), Inline: true}
		}),
		fields.When(hasPlayers, func() domain.Field {
			return domain.Field{Name: r.label(keyPlayerCount), Value: format.Count(players), Inline: true}
		}),
		fields.When(hasRelease, func() domain.Field {
			value := strings.TrimSpace(release.Date)
			if value == "" {
				value = r.label(keyUnknown)
			}
			return domain.Field{Name: r.label(keyReleaseDate), Value: value, Inline: true}
		}),
		fields.When(details.Achievements.Present() || details.Recommendations.Present(), func() domain.Field {
			return domain.Field{Name: r.label(keyDetails), Value: r.totals(details), Inline: true}
		}),
		fields.When(len(details.Categories) > 0, func() domain.Field {
			return domain.Field{Name: r.label(keyCategories), Value: fields.Join(details.Categories, r.label(keyNone)), Inline: true}
		}),
		fields.When(len(details.Genres) > 0, func() domain.Field {
			return domain.Field{Name: r.label(keyGenres), Value: fields.Join(details.Genres, r.label(keyNone)), Inline: true}
		}),
		fields.When(hasPlatforms, func() domain.Field {
			return domain.Field{Name: r.label(keyPlatforms), Value: platformLines(platforms), Inline: true}
		}),
		fields.Always(r.label(keyDeck), r.deckRating(ParseDeckCompatibility(result.DeckCategory)), false),
		r.clientLink(steamurl.ClientStoreLink(appID, domain.ItemKindApp)),
	)

	payload := domain.Payload{
		Title:       details.Name,
		Description: html.UnescapeString(details.ShortDescription),
		Color:       domain.ColorDefault,
		Timestamp:   r.now().UTC(),
		URL:         steamurl.Store(appID, domain.ItemKindApp),
	}
	overrides := []domain.Override{
		domain.WithImage(details.HeaderImage),
		domain.WithFields(list),
	}
	if website := strings.TrimSpace(details.Website); website != "" {
		overrides = append(overrides, domain.WithActionLinks(domain.ActionLink{Label: r.label(keyViewWebsite), URL: website}))
	}
	out := payload.With(overrides...)
	return &out, nil
}

func (r *Renderer) snapshotPrice(cur format.Currency, details domain.StoreDetails) string {
	if details.IsFree {
		return "**" + r.label(keyFree) + "**"
	}
	if overview, ok := details.PriceOverview.Get(); ok {
		return r.currencies.Price(cur.Code, overview.Initial, overview.Final, overview.DiscountPercent)
	}
	return r.label(keyNotAvailable)
}

func (r *Renderer) totals(details domain.StoreDetails) string {
	achievements, hasAchievements := details.Achievements.Get()
	recommendations, hasRecommendations := details.Recommendations.Get()
	return fmt.Sprintf("%s **%s:** %s\n%s **%s:** %s",
		stateGlyph(hasAchievements), r.label(keyAchievements), format.Count(achievements.Total),
		stateGlyph(hasRecommendations), r.label(keyRecommendations), format.Count(recommendations.Total),
	)
}

func platformLines(p domain.Platforms) string {
	return fmt.Sprintf("%s **Windows**\n%s **Mac**\n%s **Linux**",
		stateGlyph(p.Windows), stateGlyph(p.Mac), stateGlyph(p.Linux))
}

func stateGlyph(ok bool) string {
	if ok {
		return glyphYes
	}
	return glyphNo
}

// ParseDeckCompatibility reads the client's compatibility category code.
// Absent, unparseable or out-of-range codes are DeckUnknown.
func ParseDeckCompatibility(category domain.Optional[string]) domain.DeckCompatibility {
	raw, ok := category.Get()
	if !ok {
		return domain.DeckUnknown
	}
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return domain.DeckUnknown
	}
	rating := domain.DeckCompatibility(code)
	switch rating {
	case domain.DeckUnsupported, domain.DeckPlayable, domain.DeckVerified:
		return rating
	default:
		return domain.DeckUnknown
	}
}

func (r *Renderer) deckRating(rating domain.DeckCompatibility) string {
	switch rating {
	case domain.DeckVerified:
		return glyphYes + " **" + r.label(keyDeckVerified) + "**"
	case domain.DeckPlayable:
		return glyphWarning + " **" + r.label(keyDeckPlayable) + "**"
	case domain.DeckUnsupported:
		return glyphNo + " **" + r.label(keyDeckUnsupported) + "**"
	default:
		return "**" + r.label(keyDeckUnknown) + "**"
	}
}
