// Package render maps domain events to notification payloads. Each variant
// has one renderer; Render dispatches on the event type.
package render

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	apperrors "github.com/louisbranch/steamwatch/internal/platform/errors"
	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/enrich"
	"github.com/louisbranch/steamwatch/internal/services/notifications/fields"
	"github.com/louisbranch/steamwatch/internal/services/notifications/format"
	"github.com/louisbranch/steamwatch/internal/services/notifications/transform"
)

// Renderer renders events with its enrichment and transform collaborators.
// It holds no per-render state and is safe for concurrent use.
type Renderer struct {
	enricher    enrich.Fetcher
	transformer transform.Transformer
	currencies  *format.Table
	loc         Localizer
	now         func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTransformer replaces the article transformer.
func WithTransformer(t transform.Transformer) Option {
	return func(r *Renderer) {
		if t != nil {
			r.transformer = t
		}
	}
}

// WithCurrencies replaces the currency table.
func WithCurrencies(table *format.Table) Option {
	return func(r *Renderer) {
		if table != nil {
			r.currencies = table
		}
	}
}

// WithLocalizer sets the label printer.
func WithLocalizer(loc Localizer) Option {
	return func(r *Renderer) { r.loc = loc }
}

// WithClock sets the time source for variants stamped at render time.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// New builds a Renderer. A nil enricher leaves every lookup unresolved.
func New(enricher enrich.Fetcher, opts ...Option) *Renderer {
	if enricher == nil {
		enricher = noEnrichment{}
	}
	r := &Renderer{
		enricher:    enricher,
		transformer: transform.New(),
		currencies:  format.Currencies(),
		loc:         NewLocalizer("en"),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type noEnrichment struct{}

func (noEnrichment) Fetch(context.Context, enrich.Request) enrich.Result { return enrich.Result{} }

// Render validates event and renders its variant. The payload is nil without
// an error only when a store snapshot's product details are unresolved.
func (r *Renderer) Render(ctx context.Context, event domain.Event) (*domain.Payload, error) {
	if event == nil {
		return nil, apperrors.New(apperrors.CodeContractViolation, "event is required")
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	var payload domain.Payload
	switch e := event.(type) {
	case domain.AppSummaryEvent:
		payload = r.AppSummary(e)
	case domain.CuratorReviewEvent:
		payload = r.CuratorReview(e)
	case domain.ForumPostEvent:
		payload = r.ForumPost(e)
	case domain.FreeOfferEvent:
		payload = r.FreeOffer(e)
	case domain.GroupNewsEvent:
		payload = r.GroupNews(ctx, e)
	case domain.NewsEvent:
		payload = r.News(ctx, e)
	case domain.PriceChangeEvent:
		payload = r.PriceChange(e)
	case domain.StoreItemEvent:
		payload = r.StoreItem(e)
	case domain.WorkshopEvent:
		payload = r.Workshop(ctx, e)
	case domain.StoreSnapshotEvent:
		return r.StoreSnapshot(ctx, e)
	default:
		return nil, apperrors.WithMetadata(apperrors.CodeUnknownEventKind, "no renderer for event", map[string]string{
			"kind": string(event.Kind()),
		})
	}
	return &payload, nil
}

// transform runs the article transformer, falling back to the trimmed raw
// body when it fails.
func (r *Renderer) transform(ctx context.Context, body string) transform.Article {
	article, err := r.transformer.Transform(ctx, body)
	if err != nil {
		log.Printf("render transform: %v", err)
		return transform.Article{Markdown: fields.Truncate(strings.TrimSpace(body), fields.DescriptionLimit)}
	}
	return article
}

func (r *Renderer) label(key string) string {
	return label(r.loc, key)
}

func (r *Renderer) clientLink(link string) fields.Entry {
	return fields.ClientLink(r.label(keyClientLink), link)
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func discordTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:F>", t.Unix())
}
