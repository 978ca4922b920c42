// Package steamurl builds canonical storefront, community and CDN URLs and
// client deep links from identifiers. Every function is total: missing image
// hashes resolve to DefaultIcon rather than an error.
package steamurl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/leighmacdonald/steamid/v2/steamid"
	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
)

const (
	storeBase     = "https://store.steampowered.com"
	communityBase = "https://steamcommunity.com"
	appImageBase  = "https://cdn.cloudflare.steamstatic.com/steamcommunity/public/images/apps"
	avatarBase    = "https://avatars.cloudflare.steamstatic.com"
	clanImageBase = "https://clan.cloudflare.steamstatic.com/images"

	// clanImagePlaceholder prefixes image paths embedded in news bodies.
	clanImagePlaceholder = "{STEAM_CLAN_IMAGE}"
)

// DefaultIcon is used whenever no application icon or group avatar is known.
const DefaultIcon = "https://cdn.cloudflare.steamstatic.com/steamcommunity/public/images/apps/753/135dc1ac1cd9763dfc8ad52f4e880d2ac058a36c.jpg"

// AvatarSize selects a group avatar rendition.
type AvatarSize string

const (
	AvatarMedium AvatarSize = "medium"
	AvatarFull   AvatarSize = "full"
)

// OwnerKind selects which namespace an announcement lives under.
type OwnerKind string

const (
	OwnerApp   OwnerKind = "app"
	OwnerGroup OwnerKind = "group"
)

// Store returns the storefront page of an item. Unknown kinds are treated as apps.
func Store(id int, kind domain.ItemKind) string {
	if !kind.Valid() {
		kind = domain.ItemKindApp
	}
	return fmt.Sprintf("%s/%s/%d", storeBase, kind, id)
}

// CuratorReview returns the store page of an app filtered to one curator.
func CuratorReview(appID, curatorID int) string {
	return Store(appID, domain.ItemKindApp) + "?curator_clanid=" + strconv.Itoa(curatorID)
}

// Curator returns a curator's storefront page.
func Curator(curatorID int) string {
	return fmt.Sprintf("%s/curator/%d", storeBase, curatorID)
}

// AppIcon returns the CDN URL of an application icon.
func AppIcon(appID int, icon string) string {
	icon = strings.TrimSpace(icon)
	if appID <= 0 || icon == "" {
		return DefaultIcon
	}
	return fmt.Sprintf("%s/%d/%s.jpg", appImageBase, appID, icon)
}

// GroupAvatar returns the CDN URL of a group avatar.
func GroupAvatar(hash string, size AvatarSize) string {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return DefaultIcon
	}
	if size != AvatarFull {
		size = AvatarMedium
	}
	return fmt.Sprintf("%s/%s_%s.jpg", avatarBase, hash, size)
}

// Profile returns a community profile page.
func Profile(id steamid.SID64) string {
	return communityBase + "/profiles/" + id.String()
}

// EventAnnouncement returns the web page of a structured announcement.
func EventAnnouncement(ownerID int, eventID string, owner OwnerKind) string {
	if owner == OwnerGroup {
		return fmt.Sprintf("%s/gid/%d/announcements/detail/%s", communityBase, ownerID, url.PathEscape(eventID))
	}
	return fmt.Sprintf("%s/news/app/%d/view/%s", storeBase, ownerID, url.PathEscape(eventID))
}

// Workshop returns the community page of a workshop submission.
func Workshop(fileID string) string {
	return communityBase + "/sharedfiles/filedetails/?id=" + url.QueryEscape(fileID)
}

// NewsImage expands a news body image reference to an absolute URL.
func NewsImage(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, clanImagePlaceholder) {
		return clanImageBase + strings.TrimPrefix(path, clanImagePlaceholder)
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return clanImageBase + "/" + strings.TrimPrefix(path, "/")
}

// LinkKind selects a client deep link form.
type LinkKind string

const (
	LinkApp      LinkKind = "app"
	LinkBundle   LinkKind = "bundle"
	LinkSub      LinkKind = "sub"
	LinkWorkshop LinkKind = "workshop"
)

// LinkKindFor maps a storefront item family to its deep link form.
func LinkKindFor(kind domain.ItemKind) LinkKind {
	switch kind {
	case domain.ItemKindBundle:
		return LinkBundle
	case domain.ItemKindSub:
		return LinkSub
	default:
		return LinkApp
	}
}

// ClientLink returns the deep link opening an item in the desktop client.
func ClientLink(kind LinkKind, id string) string {
	switch kind {
	case LinkBundle:
		return ClientOpenURL(fmt.Sprintf("%s/bundle/%s", storeBase, id))
	case LinkSub:
		return ClientOpenURL(fmt.Sprintf("%s/sub/%s", storeBase, id))
	case LinkWorkshop:
		return "steam://url/CommunityFilePage/" + id
	default:
		return "steam://store/" + id
	}
}

// ClientStoreLink is ClientLink for numeric storefront items.
func ClientStoreLink(id int, kind domain.ItemKind) string {
	return ClientLink(LinkKindFor(kind), strconv.Itoa(id))
}

// ClientOpenURL returns a deep link that opens target in the client browser.
func ClientOpenURL(target string) string {
	return "steam://openurl/" + target
}

// ClientEventAnnouncement returns the deep link of an application announcement.
func ClientEventAnnouncement(appID int, eventID string) string {
	return ClientOpenURL(EventAnnouncement(appID, eventID, OwnerApp))
}
