package render

import (
	"context"
	"strings"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/enrich"
	"github.com/louisbranch/steamwatch/internal/services/notifications/fields"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamurl"
)

const (
	glyphLock   = "🔒"
	glyphSolved = "✅"
	glyphPin    = "📌"
)

// CuratorReview renders a curator recommendation.
func (r *Renderer) CuratorReview(e domain.CuratorReviewEvent) domain.Payload {
	color := domain.ColorDefault
	switch e.Review.Status {
	case domain.ReviewNotRecommended:
		color = domain.ColorError
	case domain.ReviewInformational:
		color = domain.ColorPending
	}

	description := strings.TrimSpace(e.Review.Description)
	if description == "" {
		description = r.label(keyNotAvailable)
	}

	appID := e.Review.AppID
	if appID <= 0 {
		appID = e.App.ID
	}
	icon := steamurl.AppIcon(appID, e.App.Icon)

	return domain.Payload{
		Title:       e.App.Name,
		Description: `> "` + description + `"`,
		Color:       color,
		Timestamp:   e.Review.Date.UTC(),
		URL:         steamurl.CuratorReview(appID, e.Curator.ID),
		Thumbnail:   &domain.Media{URL: icon},
		Author: &domain.Author{
			Name:    e.Curator.Name,
			IconURL: ImageFor(domain.KindCuratorReview, ImageIdentity{GroupAvatar: e.Curator.Avatar}),
			URL:     steamurl.Curator(e.Curator.ID),
		},
		Footer: &domain.Footer{Text: string(e.Review.Status), IconURL: icon},
		Fields: fields.Compose(r.clientLink(steamurl.ClientStoreLink(appID, domain.ItemKindApp))),
	}
}

// forumGlyph picks one status marker: locked, then solved, then sticky.
func forumGlyph(thread domain.ForumThread) string {
	switch {
	case thread.Locked:
		return glyphLock
	case thread.Solved:
		return glyphSolved
	case thread.Sticky:
		return glyphPin
	default:
		return ""
	}
}

// ForumPost renders new forum activity.
func (r *Renderer) ForumPost(e domain.ForumPostEvent) domain.Payload {
	title := e.Thread.Title
	if glyph := forumGlyph(e.Thread); glyph != "" {
		title = glyph + " " + title
	}

	icon := ImageFor(domain.KindForumPost, ImageIdentity{
		AppID:       e.Forum.AppID,
		AppIcon:     e.Forum.AppIcon,
		GroupAvatar: e.Forum.GroupAvatar,
		AvatarSize:  steamurl.AvatarMedium,
	})

	payload := domain.Payload{
		Title:       title,
		Description: e.Thread.ContentPreview,
		Color:       domain.ColorDefault,
		Timestamp:   e.Thread.LastPostAt.UTC(),
		URL:         e.Thread.URL,
		Thumbnail:   &domain.Media{URL: icon},
		Footer:      &domain.Footer{Text: e.Forum.Name, IconURL: icon},
	}
	var link string
	if e.Thread.URL != "" {
		link = steamurl.ClientOpenURL(e.Thread.URL)
	}

	overrides := []domain.Override{domain.WithFields(fields.Compose(r.clientLink(link)))}
	if author := strings.TrimSpace(e.Thread.Author); author != "" {
		overrides = append(overrides, domain.WithAuthor(domain.Author{Name: author}))
	}
	return payload.With(overrides...)
}

// GroupNews renders a group announcement with its poster resolved from the
// community profile lookup.
func (r *Renderer) GroupNews(ctx context.Context, e domain.GroupNewsEvent) domain.Payload {
	result := r.enricher.Fetch(ctx, enrich.Request{Actor: e.News.PosterID})
	article := r.transform(ctx, e.News.Body)

	payload := domain.Payload{
		Title:       fields.Title(e.News.Headline),
		Description: article.Markdown,
		Color:       domain.ColorDefault,
		Timestamp:   unixTime(e.News.PostTime),
		URL:         steamurl.EventAnnouncement(e.Group.ID, e.News.EventID, steamurl.OwnerGroup),
		Thumbnail: &domain.Media{URL: ImageFor(domain.KindGroupNews, ImageIdentity{
			GroupAvatar: e.Group.Avatar,
			AvatarSize:  steamurl.AvatarFull,
		})},
		Footer: &domain.Footer{
			Text: e.Group.Name,
			IconURL: ImageFor(domain.KindGroupNews, ImageIdentity{
				GroupAvatar: e.Group.Avatar,
				AvatarSize:  steamurl.AvatarMedium,
			}),
		},
	}

	overrides := []domain.Override{domain.WithImage(article.Thumbnail)}
	if actor, ok := result.Actor.Get(); ok {
		overrides = append(overrides, domain.WithAuthor(actorAuthor(actor)))
	}
	return payload.With(overrides...)
}

func actorAuthor(actor domain.ActorSummary) domain.Author {
	author := domain.Author{Name: actor.DisplayName, IconURL: actor.AvatarURL}
	if actor.ProfileID.Valid() {
		author.URL = steamurl.Profile(actor.ProfileID)
	}
	return author
}
