package render

import (
	"context"

	"github.com/louisbranch/steamwatch/internal/services/notifications/domain"
	"github.com/louisbranch/steamwatch/internal/services/notifications/enrich"
	"github.com/louisbranch/steamwatch/internal/services/notifications/fields"
	"github.com/louisbranch/steamwatch/internal/services/notifications/format"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamurl"
)

// Workshop renders a new or updated workshop submission.
func (r *Renderer) Workshop(ctx context.Context, e domain.WorkshopEvent) domain.Payload {
	file := e.File
	result := r.enricher.Fetch(ctx, enrich.Request{Actor: file.CreatorID})
	article := r.transform(ctx, file.Description)

	stamp := file.TimeCreated
	if e.Timestamp == domain.WorkshopTimeUpdated {
		stamp = file.TimeUpdated
	}

	typeName, ok := file.FileType.Name()
	if !ok {
		typeName = r.label(keyUnknown)
	}

	base := appBase(e.App, appContent{
		Title:       file.Title,
		Description: article.Markdown,
		URL:         steamurl.Workshop(file.PublishedFileID),
		Timestamp:   unixTime(stamp),
	})

	image := file.PreviewURL
	if image == "" {
		image = article.Thumbnail
	}

	overrides := []domain.Override{
		domain.WithImage(image),
		domain.WithFields(fields.Compose(
			fields.Always(r.label(keyTags), fields.Join(file.Tags, r.label(keyNone)), true),
			fields.Always(r.label(keyType), typeName, true),
			fields.When(file.FileType.HasFileSize(), func() domain.Field {
				return domain.Field{Name: r.label(keyFileSize), Value: format.ByteSize(file.FileSizeBytes), Inline: true}
			}),
			r.clientLink(steamurl.ClientLink(steamurl.LinkWorkshop, file.PublishedFileID)),
		)),
	}
	if actor, ok := result.Actor.Get(); ok {
		overrides = append(overrides, domain.WithAuthor(actorAuthor(actor)))
	}
	return base.With(overrides...)
}
