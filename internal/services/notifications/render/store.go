package render

import (
	"time"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/fields"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamurl"
)

// FreeOffer renders a free package with its availability window.
func (r *Renderer) FreeOffer(e domain.FreeOfferEvent) domain.Payload {
	headline := r.label(keyFreeToKeep)
	if e.Offer.Type == domain.FreeOfferWeekend {
		headline = r.label(keyFreeWeekend)
	}

	base := appBase(e.App, appContent{
		Title:       e.App.Name,
		Description: "**" + headline + "**",
		URL:         steamurl.Store(e.App.ID, domain.ItemKindApp),
		Timestamp:   r.now(),
	})

	icon := ImageFor(domain.KindFreeOffer, ImageIdentity{})
	return base.With(
		domain.WithThumbnail(icon),
		domain.WithFooterIcon(icon),
		domain.WithFields(fields.Compose(
			fields.Always(r.label(keyStarts), r.offerTime(e.Offer.StartTime), true),
			fields.Always(r.label(keyEnds), r.offerTime(e.Offer.EndTime), true),
			r.clientLink(steamurl.ClientStoreLink(e.App.ID, domain.ItemKindApp)),
		)),
	)
}

func (r *Renderer) offerTime(t time.Time) string {
	if t.IsZero() {
		return r.label(keyUnknown)
	}
	return discordTime(t)
}

// PriceChange renders a changed application price.
func (r *Renderer) PriceChange(e domain.PriceChangeEvent) domain.Payload {
	q := e.Quote
	base := appBase(e.App, appContent{
		Title:       e.App.Name,
		Description: r.currencies.Price(q.CurrencyCode, q.Initial, q.Final, q.DiscountPercent),
		URL:         steamurl.Store(e.App.ID, domain.ItemKindApp),
		Timestamp:   r.now(),
	})
	return base.With(domain.WithFields(fields.Compose(
		r.clientLink(steamurl.ClientStoreLink(e.App.ID, domain.ItemKindApp)),
	)))
}

// StoreItem renders a message about one storefront product. Icons only
// exist for applications, so bundles and packages carry no thumbnail or
// footer icon.
func (r *Renderer) StoreItem(e domain.StoreItemEvent) domain.Payload {
	item := e.Item
	base := appBase(domain.AppContext{ID: item.ID, Icon: item.Icon, Name: item.Name}, appContent{
		Title:       item.Name,
		Description: e.Message,
		URL:         steamurl.Store(item.ID, item.Kind),
		Timestamp:   r.now(),
	})

	overrides := []domain.Override{
		domain.WithFields(fields.Compose(r.clientLink(steamurl.ClientStoreLink(item.ID, item.Kind)))),
	}
	if item.Kind != domain.ItemKindApp {
		overrides = append(overrides, domain.WithThumbnail(""), domain.WithFooterIcon(""))
	}
	return base.With(overrides...)
}
