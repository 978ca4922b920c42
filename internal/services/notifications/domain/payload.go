package domain

import (
	"slices"
	"time"
)

// Color is the accent color of a rendered payload.
type Color int

const (
	// ColorDefault is the storefront accent used by most payloads.
	ColorDefault Color = 0x00ADEE
	// ColorError flags negative outcomes such as a not-recommended review.
	ColorError Color = 0xA62019
	// ColorPending flags informational or in-progress states.
	ColorPending Color = 0xE5A50A
	// ColorSuccess flags positive outcomes.
	ColorSuccess Color = 0x57A64E
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorError:
		return "error"
	case ColorPending:
		return "pending"
	case ColorSuccess:
		return "success"
	default:
		return "custom"
	}
}

// Media references one image attached to a payload.
type Media struct {
	URL string `json:"url"`
}

// Author identifies who produced the source event.
type Author struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Footer is the small trailing line of a payload.
type Footer struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// Field is one entry of the ordered detail list. Value is always non-empty;
// renderers substitute fallback literals rather than emit blanks.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// ActionLink is a labelled link button sent alongside the payload.
type ActionLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Payload is the normalized notification rendered for chat delivery. Its
// JSON form matches the chat platform's rich embed schema; ActionLinks are
// carried next to it as link buttons.
type Payload struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       Color        `json:"color"`
	Timestamp   time.Time    `json:"timestamp"`
	URL         string       `json:"url,omitempty"`
	Thumbnail   *Media       `json:"thumbnail,omitempty"`
	Image       *Media       `json:"image,omitempty"`
	Author      *Author      `json:"author,omitempty"`
	Footer      *Footer      `json:"footer,omitempty"`
	Fields      []Field      `json:"fields,omitempty"`
	ActionLinks []ActionLink `json:"action_links,omitempty"`
}

// Override mutates a fresh copy of a payload inside With.
type Override func(*Payload)

// Clone returns a deep copy that shares no pointers or slices with p.
func (p Payload) Clone() Payload {
	out := p
	out.Timestamp = p.Timestamp.UTC()
	if p.Thumbnail != nil {
		thumb := *p.Thumbnail
		out.Thumbnail = &thumb
	}
	if p.Image != nil {
		image := *p.Image
		out.Image = &image
	}
	if p.Author != nil {
		author := *p.Author
		out.Author = &author
	}
	if p.Footer != nil {
		footer := *p.Footer
		out.Footer = &footer
	}
	out.Fields = slices.Clone(p.Fields)
	out.ActionLinks = slices.Clone(p.ActionLinks)
	return out
}

// With returns a new payload built from a copy of p with overrides applied
// in order. p itself is never modified.
func (p Payload) With(overrides ...Override) Payload {
	out := p.Clone()
	for _, override := range overrides {
		if override != nil {
			override(&out)
		}
	}
	return out
}

// WithColor sets the accent color.
func WithColor(color Color) Override {
	return func(p *Payload) { p.Color = color }
}

// WithAuthor attaches an author block.
func WithAuthor(author Author) Override {
	return func(p *Payload) { p.Author = &author }
}

// WithImage attaches a large image; an empty url leaves the payload as is.
func WithImage(url string) Override {
	return func(p *Payload) {
		if url != "" {
			p.Image = &Media{URL: url}
		}
	}
}

// WithThumbnail replaces the thumbnail; an empty url removes it.
func WithThumbnail(url string) Override {
	return func(p *Payload) {
		if url == "" {
			p.Thumbnail = nil
			return
		}
		p.Thumbnail = &Media{URL: url}
	}
}

// WithFooterIcon replaces the footer icon; an empty url removes it.
func WithFooterIcon(url string) Override {
	return func(p *Payload) {
		if p.Footer != nil {
			p.Footer.IconURL = url
		}
	}
}

// WithFields replaces the detail list.
func WithFields(fields []Field) Override {
	return func(p *Payload) { p.Fields = slices.Clone(fields) }
}

// WithActionLinks replaces the link buttons.
func WithActionLinks(links ...ActionLink) Override {
	return func(p *Payload) { p.ActionLinks = slices.Clone(links) }
}
