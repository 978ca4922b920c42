package domain

import "github.com/leighmacdonald/steamid/v2/steamid"

// ActorSummary is a resolved community profile.
type ActorSummary struct {
	DisplayName string
	AvatarURL   string
	ProfileID   steamid.SID64
}

// PriceOverview is the storefront price block of an application.
type PriceOverview struct {
	Currency        string
	DiscountPercent int
	Final           int
	Initial         int
}

// ReleaseDate is the storefront release block.
type ReleaseDate struct {
	ComingSoon bool
	Date       string
}

// Total is a storefront counter block such as achievements.
type Total struct {
	Total int
}

// Platforms lists operating system support.
type Platforms struct {
	Windows bool
	Mac     bool
	Linux   bool
}

// StoreDetails is the storefront metadata of one application. Optional
// blocks are absent when the storefront omits them.
type StoreDetails struct {
	Type             string
	Name             string
	IsFree           bool
	ShortDescription string
	HeaderImage      string
	Website          string
	Developers       []string
	Publishers       []string
	PriceOverview    Optional[PriceOverview]
	ReleaseDate      Optional[ReleaseDate]
	Achievements     Optional[Total]
	Recommendations  Optional[Total]
	Categories       []string
	Genres           []string
	Platforms        Optional[Platforms]
}

// DeckCompatibility is the handheld compatibility rating of an application.
// The numeric encoding follows the storefront's resolved_category values.
type DeckCompatibility int

const (
	DeckUnknown DeckCompatibility = iota
	DeckUnsupported
	DeckPlayable
	DeckVerified
)

// String returns the rating name; codes outside the enumeration are Unknown.
func (d DeckCompatibility) String() string {
	switch d {
	case DeckUnsupported:
		return "Unsupported"
	case DeckPlayable:
		return "Playable"
	case DeckVerified:
		return "Verified"
	default:
		return "Unknown"
	}
}
