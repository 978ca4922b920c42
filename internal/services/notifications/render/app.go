package render

import (
	"time"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamurl"
)

type appContent struct {
	Title       string
	Description string
	URL         string
	Timestamp   time.Time
}

// appBase is the skeleton shared by application variants: the app name and
// icon in the footer and the icon as thumbnail.
func appBase(app domain.AppContext, content appContent) domain.Payload {
	icon := steamurl.AppIcon(app.ID, app.Icon)
	return domain.Payload{
		Title:       content.Title,
		Description: content.Description,
		Color:       domain.ColorDefault,
		Timestamp:   content.Timestamp.UTC(),
		URL:         content.URL,
		Thumbnail:   &domain.Media{URL: icon},
		Footer:      &domain.Footer{Text: app.Name, IconURL: icon},
	}
}

// AppSummary renders the application skeleton on its own.
func (r *Renderer) AppSummary(e domain.AppSummaryEvent) domain.Payload {
	return appBase(e.App, appContent{
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Timestamp:   e.Timestamp,
	})
}
