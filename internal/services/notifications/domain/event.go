package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/steamwatch/internal/platform/errors"
)

// Kind tags one variant of the closed event union.
type Kind string

const (
	KindAppSummary    Kind = "app_summary"
	KindCuratorReview Kind = "curator_review"
	KindForumPost     Kind = "forum_post"
	KindFreeOffer     Kind = "free_offer"
	KindGroupNews     Kind = "group_news"
	KindNews          Kind = "news"
	KindPriceChange   Kind = "price_change"
	KindStoreSnapshot Kind = "store_snapshot"
	KindStoreItem     Kind = "store_item"
	KindWorkshop      Kind = "workshop"
)

// Kinds lists every variant in a stable order.
var Kinds = []Kind{
	KindAppSummary,
	KindCuratorReview,
	KindForumPost,
	KindFreeOffer,
	KindGroupNews,
	KindNews,
	KindPriceChange,
	KindStoreSnapshot,
	KindStoreItem,
	KindWorkshop,
}

// Event is a detected domain event together with the identity context it
// is rendered against. Only the variants declared in this package implement it.
type Event interface {
	Kind() Kind
	// Validate reports a contract violation when required identity is missing.
	Validate() error
	sealed()
}

// AppSummaryEvent renders the shared application skeleton on its own.
type AppSummaryEvent struct {
	App         AppContext `json:"app"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Timestamp   time.Time  `json:"timestamp"`
}

// CuratorReviewEvent is a new curator review of an application.
type CuratorReviewEvent struct {
	App     AppContext    `json:"app"`
	Curator GroupContext  `json:"curator"`
	Review  CuratorReview `json:"review"`
}

// ForumPostEvent is new activity in a forum thread.
type ForumPostEvent struct {
	Forum  ForumContext `json:"forum"`
	Thread ForumThread  `json:"thread"`
}

// FreeOfferEvent is a newly detected free package.
type FreeOfferEvent struct {
	App   AppContext `json:"app"`
	Offer FreeOffer  `json:"offer"`
}

// GroupNewsEvent is a new community group announcement.
type GroupNewsEvent struct {
	Group GroupContext      `json:"group"`
	News  GroupAnnouncement `json:"news"`
}

// NewsEvent is a new application news article.
type NewsEvent struct {
	App     AppContext  `json:"app"`
	Article ArticlePost `json:"article"`
}

// PriceChangeEvent is a changed application price.
type PriceChangeEvent struct {
	App   AppContext `json:"app"`
	Quote PriceQuote `json:"quote"`
}

// StoreSnapshotEvent requests a full storefront card.
type StoreSnapshotEvent struct {
	Snapshot StoreSnapshot `json:"snapshot"`
}

// StoreItemEvent is a free-form message about one storefront item.
type StoreItemEvent struct {
	Item    StoreItem `json:"item"`
	Message string    `json:"message"`
}

// WorkshopEvent is a new or updated workshop submission.
type WorkshopEvent struct {
	App       AppContext        `json:"app"`
	File      WorkshopFile      `json:"file"`
	Timestamp WorkshopTimestamp `json:"timestamp"`
}

func (AppSummaryEvent) Kind() Kind    { return KindAppSummary }
func (CuratorReviewEvent) Kind() Kind { return KindCuratorReview }
func (ForumPostEvent) Kind() Kind     { return KindForumPost }
func (FreeOfferEvent) Kind() Kind     { return KindFreeOffer }
func (GroupNewsEvent) Kind() Kind     { return KindGroupNews }
func (NewsEvent) Kind() Kind          { return KindNews }
func (PriceChangeEvent) Kind() Kind   { return KindPriceChange }
func (StoreSnapshotEvent) Kind() Kind { return KindStoreSnapshot }
func (StoreItemEvent) Kind() Kind     { return KindStoreItem }
func (WorkshopEvent) Kind() Kind      { return KindWorkshop }

func (AppSummaryEvent) sealed()    {}
func (CuratorReviewEvent) sealed() {}
func (ForumPostEvent) sealed()     {}
func (FreeOfferEvent) sealed()     {}
func (GroupNewsEvent) sealed()     {}
func (NewsEvent) sealed()          {}
func (PriceChangeEvent) sealed()   {}
func (StoreSnapshotEvent) sealed() {}
func (StoreItemEvent) sealed()     {}
func (WorkshopEvent) sealed()      {}

func (e AppSummaryEvent) Validate() error    { return e.App.validate(KindAppSummary) }
func (e CuratorReviewEvent) Validate() error { return e.App.validate(KindCuratorReview) }
func (e ForumPostEvent) Validate() error     { return nil }
func (e FreeOfferEvent) Validate() error     { return e.App.validate(KindFreeOffer) }
func (e NewsEvent) Validate() error          { return e.App.validate(KindNews) }

func (e PriceChangeEvent) Validate() error {
	if err := e.App.validate(KindPriceChange); err != nil {
		return err
	}
	q := e.Quote
	if q.Initial < 0 || q.Final < 0 || q.DiscountPercent < 0 || q.DiscountPercent > 100 {
		return ContractViolation(KindPriceChange, "quote", "price quote amounts must be non-negative with a discount of at most 100")
	}
	return nil
}

func (e GroupNewsEvent) Validate() error {
	if e.Group.ID <= 0 {
		return ContractViolation(KindGroupNews, "group.id", "group context is missing its id")
	}
	return nil
}

func (e StoreSnapshotEvent) Validate() error {
	if e.Snapshot.AppID <= 0 {
		return ContractViolation(KindStoreSnapshot, "snapshot.app_id", "store snapshot is missing its app id")
	}
	return nil
}

func (e StoreItemEvent) Validate() error {
	if e.Item.ID <= 0 {
		return ContractViolation(KindStoreItem, "item.id", "store item is missing its id")
	}
	if !e.Item.Kind.Valid() {
		return ContractViolation(KindStoreItem, "item.kind", fmt.Sprintf("store item kind %q is not app, bundle or sub", e.Item.Kind))
	}
	return nil
}

func (e WorkshopEvent) Validate() error {
	if err := e.App.validate(KindWorkshop); err != nil {
		return err
	}
	if strings.TrimSpace(e.File.PublishedFileID) == "" {
		return ContractViolation(KindWorkshop, "file.published_file_id", "workshop file is missing its id")
	}
	if e.File.FileSizeBytes < 0 {
		return ContractViolation(KindWorkshop, "file.file_size_bytes", "workshop file size is negative")
	}
	return nil
}

// An app context with neither id nor icon cannot produce any link or image.
func (a AppContext) validate(kind Kind) error {
	if a.ID <= 0 && strings.TrimSpace(a.Icon) == "" {
		return ContractViolation(kind, "app", "app context is missing both id and icon")
	}
	return nil
}

// ContractViolation reports input missing required identity for variant.
func ContractViolation(variant Kind, field, message string) error {
	return apperrors.WithMetadata(apperrors.CodeContractViolation, message, map[string]string{
		"variant": string(variant),
		"field":   field,
	})
}

// IsContractViolation reports whether err is a caller contract violation.
func IsContractViolation(err error) bool {
	return apperrors.HasCode(err, apperrors.CodeContractViolation)
}

// DecodeEvent decodes a {"kind": ..., ...} envelope into its event variant.
func DecodeEvent(data []byte) (Event, error) {
	var envelope struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", err)
	}

	var event Event
	var err error
	switch Kind(strings.ToLower(strings.TrimSpace(string(envelope.Kind)))) {
	case KindAppSummary:
		event, err = decodeAs[AppSummaryEvent](data)
	case KindCuratorReview:
		event, err = decodeAs[CuratorReviewEvent](data)
	case KindForumPost:
		event, err = decodeAs[ForumPostEvent](data)
	case KindFreeOffer:
		event, err = decodeAs[FreeOfferEvent](data)
	case KindGroupNews:
		event, err = decodeAs[GroupNewsEvent](data)
	case KindNews:
		event, err = decodeAs[NewsEvent](data)
	case KindPriceChange:
		event, err = decodeAs[PriceChangeEvent](data)
	case KindStoreSnapshot:
		event, err = decodeAs[StoreSnapshotEvent](data)
	case KindStoreItem:
		event, err = decodeAs[StoreItemEvent](data)
	case KindWorkshop:
		event, err = decodeAs[WorkshopEvent](data)
	default:
		return nil, apperrors.WithMetadata(apperrors.CodeUnknownEventKind, "unknown event kind", map[string]string{
			"kind": string(envelope.Kind),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s event: %w", envelope.Kind, err)
	}
	return event, nil
}

func decodeAs[T Event](data []byte) (Event, error) {
	var event T
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return event, nil
}
