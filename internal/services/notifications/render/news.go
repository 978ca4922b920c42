package render

import (
	"context"
	"strings"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/enrich"
	"github.com/louisbranch/steamwatch/internal/services/notifications/fields"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamurl"
)

// News renders an application article. When the article maps to a
// structured event, the event page replaces the article URL and a client
// link to the event is attached.
func (r *Renderer) News(ctx context.Context, e domain.NewsEvent) domain.Payload {
	result := r.enricher.Fetch(ctx, enrich.Request{ArticleURL: e.Article.URL})
	article := r.transform(ctx, e.Article.Contents)

	url := e.Article.URL
	var link string
	if eventID, ok := result.EventID.Get(); ok && strings.TrimSpace(eventID) != "" {
		url = steamurl.EventAnnouncement(e.App.ID, eventID, steamurl.OwnerApp)
		link = steamurl.ClientEventAnnouncement(e.App.ID, eventID)
	}

	base := appBase(e.App, appContent{
		Title:       fields.Title(e.Article.Title),
		Description: article.Markdown,
		URL:         url,
		Timestamp:   unixTime(e.Article.Date),
	})

	overrides := []domain.Override{
		domain.WithImage(article.Thumbnail),
		domain.WithFields(fields.Compose(r.clientLink(link))),
	}
	if author := strings.TrimSpace(e.Article.Author); author != "" {
		overrides = append(overrides, domain.WithAuthor(domain.Author{Name: author}))
	}
	return base.With(overrides...)
}
