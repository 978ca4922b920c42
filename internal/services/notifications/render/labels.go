package render

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer is the minimal message-printer contract required by the renderer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// NewLocalizer returns a catalog printer for locale, falling back to English
// when locale does not parse.
func NewLocalizer(locale string) Localizer {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

const (
	keyClientLink      = "notification.field.client_link"
	keyStarts          = "notification.field.starts"
	keyEnds            = "notification.field.ends"
	keyPrice           = "notification.field.price"
	keyDevelopers      = "notification.field.developers"
	keyPublishers      = "notification.field.publishers"
	keyPlayerCount     = "notification.field.player_count"
	keyReleaseDate     = "notification.field.release_date"
	keyDetails         = "notification.field.details"
	keyCategories      = "notification.field.categories"
	keyGenres          = "notification.field.genres"
	keyPlatforms       = "notification.field.platforms"
	keyDeck            = "notification.field.deck_compatibility"
	keyTags            = "notification.field.tags"
	keyType            = "notification.field.type"
	keyFileSize        = "notification.field.file_size"
	keyAchievements    = "notification.label.achievements"
	keyRecommendations = "notification.label.recommendations"
	keyUnknown         = "notification.value.unknown"
	keyNone            = "notification.value.none"
	keyNotAvailable    = "notification.value.not_available"
	keyFree            = "notification.value.free"
	keyFreeToKeep      = "notification.value.free_to_keep"
	keyFreeWeekend     = "notification.value.free_weekend"
	keyViewWebsite     = "notification.action.view_website"
	keyDeckVerified    = "notification.deck.verified"
	keyDeckPlayable    = "notification.deck.playable"
	keyDeckUnsupported = "notification.deck.unsupported"
	keyDeckUnknown     = "notification.deck.unknown"
)

// englishLabels doubles as the English catalog and the fallback used when a
// printer has no translation.
var englishLabels = map[string]string{
	keyClientLink:      "Steam Client Link",
	keyStarts:          "Starts",
	keyEnds:            "Ends",
	keyPrice:           "Price",
	keyDevelopers:      "Developers",
	keyPublishers:      "Publishers",
	keyPlayerCount:     "Player Count",
	keyReleaseDate:     "Release Date",
	keyDetails:         "Details",
	keyCategories:      "Categories",
	keyGenres:          "Genres",
	keyPlatforms:       "Platforms",
	keyDeck:            "Steam Deck Compatibility",
	keyTags:            "Tags",
	keyType:            "Type",
	keyFileSize:        "File Size",
	keyAchievements:    "Achievements",
	keyRecommendations: "Recommendations",
	keyUnknown:         "Unknown",
	keyNone:            "None",
	keyNotAvailable:    "N/A",
	keyFree:            "Free",
	keyFreeToKeep:      "Free To Keep",
	keyFreeWeekend:     "Free Weekend",
	keyViewWebsite:     "View Website",
	keyDeckVerified:    "Verified",
	keyDeckPlayable:    "Playable",
	keyDeckUnsupported: "Unsupported",
	keyDeckUnknown:     "Unknown",
}

func localize(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		if asString, ok := key.(string); ok {
			return asString
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}

// label resolves key through loc, using the English text when the printer
// has no entry.
func label(loc Localizer, key string) string {
	fallback := englishLabels[key]
	value := strings.TrimSpace(localize(loc, key))
	if value == "" || value == key {
		return fallback
	}
	return value
}
