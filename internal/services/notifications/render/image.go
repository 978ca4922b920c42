package render

import (
	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamurl"
)

// ImageIdentity carries the identity fields an icon can be derived from.
type ImageIdentity struct {
	AppID       int
	AppIcon     string
	GroupAvatar string
	AvatarSize  steamurl.AvatarSize
}

// ImageFor picks the icon for a variant. Forums prefer their application's
// icon over the owning group's avatar, free offers always use the default
// icon and curator or group content uses the group avatar. Everything else
// uses the application icon. Missing identity yields steamurl.DefaultIcon.
func ImageFor(kind domain.Kind, id ImageIdentity) string {
	size := id.AvatarSize
	if size == "" {
		size = steamurl.AvatarMedium
	}
	switch kind {
	case domain.KindForumPost:
		if id.AppID > 0 {
			return steamurl.AppIcon(id.AppID, id.AppIcon)
		}
		return steamurl.GroupAvatar(id.GroupAvatar, size)
	case domain.KindFreeOffer:
		return steamurl.DefaultIcon
	case domain.KindCuratorReview, domain.KindGroupNews:
		return steamurl.GroupAvatar(id.GroupAvatar, size)
	default:
		return steamurl.AppIcon(id.AppID, id.AppIcon)
	}
}
