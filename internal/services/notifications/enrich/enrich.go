// Package enrich resolves the optional upstream context a notification
// needs. Lookups run concurrently and each failure degrades to an
// unresolved slot instead of failing the render.
package enrich

import (
	"context"
	"log"
	"time"

	"github.com/leighmacdonald/steamid/v2/steamid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/steamwatch/internal/platform/timeouts"
	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
)

const tracerName = "github.com/louisbranch/steamwatch/internal/services/notifications/enrich"

// ProfileLookup resolves community profiles.
type ProfileLookup interface {
	ActorSummary(ctx context.Context, id steamid.SID64) (domain.ActorSummary, error)
}

// EventLookup maps an article URL to its structured event id.
type EventLookup interface {
	StructuredEventID(ctx context.Context, articleURL string) (string, error)
}

// ProductLookup resolves storefront metadata and live player counts.
type ProductLookup interface {
	ProductDetails(ctx context.Context, appID int, countryCode string) (domain.StoreDetails, error)
	LivePlayerCount(ctx context.Context, appID int) (int, error)
}

// ClientInfoLookup resolves client-side product info such as the handheld
// compatibility category code.
type ClientInfoLookup interface {
	DeckCompatibility(ctx context.Context, appID int) (string, error)
}

// Lookups groups the upstream collaborators. Nil members leave their slots
// unresolved.
type Lookups struct {
	Profiles   ProfileLookup
	Events     EventLookup
	Products   ProductLookup
	ClientInfo ClientInfoLookup
}

// Request names the lookups one render needs. Zero values skip a lookup.
type Request struct {
	Actor       steamid.SID64
	ArticleURL  string
	ProductID   int
	CountryCode string
}

// Result holds one slot per lookup.
type Result struct {
	Actor        domain.Optional[domain.ActorSummary]
	EventID      domain.Optional[string]
	Details      domain.Optional[domain.StoreDetails]
	PlayerCount  domain.Optional[int]
	DeckCategory domain.Optional[string]
}

// Fetcher is the contract renderers depend on.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) Result
}

// Coordinator issues lookups concurrently with a per-lookup timeout.
type Coordinator struct {
	lookups Lookups
	timeout time.Duration
	tracer  trace.Tracer
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithTimeout bounds each lookup; zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) { c.timeout = d }
}

// WithTracer overrides the global tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Coordinator) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// New builds a Coordinator over lookups.
func New(lookups Lookups, opts ...Option) *Coordinator {
	c := &Coordinator{
		lookups: lookups,
		timeout: timeouts.EnrichLookup,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch runs every lookup req asks for and waits for all of them. It never
// fails: errors, timeouts and cancellation leave the slot unresolved.
func (c *Coordinator) Fetch(ctx context.Context, req Request) Result {
	var (
		result Result
		group  errgroup.Group
	)

	if req.Actor.Valid() && c.lookups.Profiles != nil {
		group.Go(func() error {
			result.Actor = resolve(ctx, c, "enrich.actor", func(ctx context.Context) (domain.ActorSummary, error) {
				return c.lookups.Profiles.ActorSummary(ctx, req.Actor)
			}, attribute.String("steam.actor_id", req.Actor.String()))
			return nil
		})
	}

	if req.ArticleURL != "" && c.lookups.Events != nil {
		group.Go(func() error {
			result.EventID = resolve(ctx, c, "enrich.event_id", func(ctx context.Context) (string, error) {
				return c.lookups.Events.StructuredEventID(ctx, req.ArticleURL)
			}, attribute.String("steam.article_url", req.ArticleURL))
			return nil
		})
	}

	if req.ProductID > 0 {
		appAttr := attribute.Int("steam.app_id", req.ProductID)
		if c.lookups.Products != nil {
			group.Go(func() error {
				result.Details = resolve(ctx, c, "enrich.product_details", func(ctx context.Context) (domain.StoreDetails, error) {
					return c.lookups.Products.ProductDetails(ctx, req.ProductID, req.CountryCode)
				}, appAttr, attribute.String("steam.country_code", req.CountryCode))
				return nil
			})
			group.Go(func() error {
				result.PlayerCount = resolve(ctx, c, "enrich.player_count", func(ctx context.Context) (int, error) {
					return c.lookups.Products.LivePlayerCount(ctx, req.ProductID)
				}, appAttr)
				return nil
			})
		}
		if c.lookups.ClientInfo != nil {
			group.Go(func() error {
				result.DeckCategory = resolve(ctx, c, "enrich.client_info", func(ctx context.Context) (string, error) {
					return c.lookups.ClientInfo.DeckCompatibility(ctx, req.ProductID)
				}, appAttr)
				return nil
			})
		}
	}

	// Every task returns nil; failures live in the slots.
	_ = group.Wait()
	return result
}

func resolve[T any](ctx context.Context, c *Coordinator, name string, lookup func(context.Context) (T, error), attrs ...attribute.KeyValue) domain.Optional[T] {
	ctx, span := c.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	value, err := lookup(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("%s unresolved: %v", name, err)
		return domain.None[T]()
	}
	return domain.Some(value)
}
