package domain

import (
	"time"

	"github.com/leighmacdonald/steamid/v2/steamid"
)

// ItemKind is the storefront product family of an item.
type ItemKind string

const (
	ItemKindApp    ItemKind = "app"
	ItemKindBundle ItemKind = "bundle"
	ItemKindSub    ItemKind = "sub"
)

// Valid reports whether k is a known product family.
func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindApp, ItemKindBundle, ItemKindSub:
		return true
	default:
		return false
	}
}

// AppContext is the minimal identity of a watched application.
type AppContext struct {
	ID   int    `json:"id"`
	Icon string `json:"icon"`
	Name string `json:"name"`
}

// GroupContext is the minimal identity of a community group or curator.
type GroupContext struct {
	ID     int    `json:"id"`
	Avatar string `json:"avatar"`
	Name   string `json:"name"`
}

// ForumContext identifies a forum and whichever owner it hangs off. Forums
// belong either to an application (AppID set) or to a group.
type ForumContext struct {
	Name        string `json:"name"`
	AppID       int    `json:"app_id,omitempty"`
	AppIcon     string `json:"app_icon,omitempty"`
	GroupAvatar string `json:"group_avatar,omitempty"`
}

// ReviewStatus is a curator's verdict.
type ReviewStatus string

const (
	ReviewRecommended    ReviewStatus = "Recommended"
	ReviewNotRecommended ReviewStatus = "Not Recommended"
	ReviewInformational  ReviewStatus = "Informational"
)

// CuratorReview is one curator recommendation of an application.
type CuratorReview struct {
	AppID       int          `json:"app_id"`
	Status      ReviewStatus `json:"status"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
}

// ForumThread is a forum topic with its latest activity.
type ForumThread struct {
	Author         string    `json:"author"`
	Title          string    `json:"title"`
	Locked         bool      `json:"locked"`
	Solved         bool      `json:"solved"`
	Sticky         bool      `json:"sticky"`
	ContentPreview string    `json:"content_preview"`
	URL            string    `json:"url"`
	LastPostAt     time.Time `json:"last_post_at"`
}

// FreeOfferType distinguishes keep-forever promotions from free weekends.
type FreeOfferType string

const (
	FreeOfferPromo   FreeOfferType = "promo"
	FreeOfferWeekend FreeOfferType = "weekend"
)

// FreeOffer is a time-limited free package.
type FreeOffer struct {
	Type      FreeOfferType `json:"type"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
}

// GroupAnnouncement is a community group news event.
type GroupAnnouncement struct {
	EventID  string        `json:"event_id"`
	Headline string        `json:"headline"`
	Body     string        `json:"body"`
	PosterID steamid.SID64 `json:"poster_id"`
	PostTime int64         `json:"post_time"`
}

// ArticlePost is an application news article.
type ArticlePost struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
	URL      string `json:"url"`
	Date     int64  `json:"date"`
	Author   string `json:"author,omitempty"`
}

// PriceQuote is a price observation in hundredths of the currency unit.
type PriceQuote struct {
	CurrencyCode    string `json:"currency_code"`
	DiscountPercent int    `json:"discount_percent"`
	Final           int    `json:"final"`
	Initial         int    `json:"initial"`
}

// StoreSnapshot requests a full storefront card for one application.
type StoreSnapshot struct {
	AppID        int    `json:"app_id"`
	CurrencyCode string `json:"currency_code,omitempty"`
}

// StoreItem is one product (app, bundle or package) on the storefront.
type StoreItem struct {
	ID   int      `json:"id"`
	Kind ItemKind `json:"kind"`
	Name string   `json:"name"`
	Icon string   `json:"icon,omitempty"`
}

// WorkshopFileType is the workshop submission category.
type WorkshopFileType int

const (
	WorkshopFileItem WorkshopFileType = iota
	WorkshopFileMicrotransaction
	WorkshopFileCollection
	WorkshopFileArt
	WorkshopFileVideo
	WorkshopFileScreenshot
	WorkshopFileGame
	WorkshopFileSoftware
	WorkshopFileConcept
	WorkshopFileWebGuide
	WorkshopFileIntegratedGuide
	WorkshopFileMerch
	WorkshopFileControllerBinding
	WorkshopFileSteamworksAccessInvite
	WorkshopFileSteamVideo
	WorkshopFileGameManagedItem
)

var workshopFileTypeNames = map[WorkshopFileType]string{
	WorkshopFileItem:                   "Item",
	WorkshopFileMicrotransaction:       "Microtransaction",
	WorkshopFileCollection:             "Collection",
	WorkshopFileArt:                    "Art",
	WorkshopFileVideo:                  "Video",
	WorkshopFileScreenshot:             "Screenshot",
	WorkshopFileGame:                   "Game",
	WorkshopFileSoftware:               "Software",
	WorkshopFileConcept:                "Concept",
	WorkshopFileWebGuide:               "WebGuide",
	WorkshopFileIntegratedGuide:        "IntegratedGuide",
	WorkshopFileMerch:                  "Merch",
	WorkshopFileControllerBinding:      "ControllerBinding",
	WorkshopFileSteamworksAccessInvite: "SteamworksAccessInvite",
	WorkshopFileSteamVideo:             "SteamVideo",
	WorkshopFileGameManagedItem:        "GameManagedItem",
}

// Name returns the category name, or false for codes outside the enumeration.
func (t WorkshopFileType) Name() (string, bool) {
	name, ok := workshopFileTypeNames[t]
	return name, ok
}

// HasFileSize reports whether submissions of this type carry a meaningful
// file size.
func (t WorkshopFileType) HasFileSize() bool {
	switch t {
	case WorkshopFileArt, WorkshopFileItem, WorkshopFileMicrotransaction, WorkshopFileScreenshot, WorkshopFileWebGuide:
		return true
	default:
		return false
	}
}

// WorkshopFile is one workshop submission.
type WorkshopFile struct {
	PublishedFileID string           `json:"published_file_id"`
	CreatorID       steamid.SID64    `json:"creator_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Tags            []string         `json:"tags"`
	FileType        WorkshopFileType `json:"file_type"`
	FileSizeBytes   int64            `json:"file_size_bytes"`
	TimeCreated     int64            `json:"time_created"`
	TimeUpdated     int64            `json:"time_updated"`
	PreviewURL      string           `json:"preview_url,omitempty"`
}

// WorkshopTimestamp selects which workshop time a notification reports.
type WorkshopTimestamp string

const (
	WorkshopTimeCreated WorkshopTimestamp = "created"
	WorkshopTimeUpdated WorkshopTimestamp = "updated"
)
