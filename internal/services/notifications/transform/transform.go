// Package transform converts storefront rich text (BBCode and inline HTML)
// into chat markdown and extracts a representative image.
package transform

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/louisbranch/steamwatch/internal/services/notifications/fields"
	"github.com/louisbranch/steamwatch/internal/services/notifications/steamurl"
)

// Article is a transformed body.
type Article struct {
	Markdown  string
	Thumbnail string
}

// Transformer converts a raw body into markdown.
type Transformer interface {
	Transform(ctx context.Context, body string) (Article, error)
}

// Markdown is the default Transformer.
type Markdown struct {
	limit int
}

// New returns a Markdown transformer capped at the chat description budget.
func New() *Markdown {
	return &Markdown{limit: fields.DescriptionLimit}
}

var (
	bbURLWithTarget = regexp.MustCompile(`(?i)\[url=["']?([^\]"']*)["']?\]`)
	bbURLBare       = regexp.MustCompile(`(?is)\[url\](.*?)\[/url\]`)
	bbImage         = regexp.MustCompile(`(?is)\[img\](.*?)\[/img\]`)
	bbYouTube       = regexp.MustCompile(`(?is)\[previewyoutube=([^;\]]+)[^\]]*\]\s*\[/previewyoutube\]`)
	bbSimpleTag     = regexp.MustCompile(`(?i)\[(/?)(b|i|u|s|strike|h1|h2|h3|list|olist|quote|code|spoiler|p|hr|noparse)\]`)
	bbListItem      = regexp.MustCompile(`\[\*\]`)
	blankLines      = regexp.MustCompile(`\n{3,}`)
)

var bbTagNames = map[string]string{
	"strike":  "s",
	"list":    "ul",
	"olist":   "ol",
	"quote":   "blockquote",
	"noparse": "span",
}

// Transform converts body to markdown. The first image becomes the
// thumbnail and is removed from the text.
func (m *Markdown) Transform(ctx context.Context, body string) (Article, error) {
	if err := ctx.Err(); err != nil {
		return Article{}, err
	}
	conv := &converter{}
	conv.run(bbcodeToHTML(body))

	text := blankLines.ReplaceAllString(conv.out.String(), "\n\n")
	text = strings.TrimSpace(text)
	limit := m.limit
	if limit <= 0 {
		limit = fields.DescriptionLimit
	}
	return Article{Markdown: fields.Truncate(text, limit), Thumbnail: conv.thumbnail}, nil
}

func bbcodeToHTML(body string) string {
	body = bbYouTube.ReplaceAllString(body, `<a href="https://www.youtube.com/watch?v=$1">https://www.youtube.com/watch?v=$1</a>`)
	body = bbImage.ReplaceAllString(body, `<img src="$1">`)
	body = bbURLBare.ReplaceAllString(body, `<a href="$1">$1</a>`)
	body = bbURLWithTarget.ReplaceAllString(body, `<a href="$1">`)
	body = strings.ReplaceAll(body, "[/url]", "</a>")
	body = bbListItem.ReplaceAllString(body, "<li>")
	return bbSimpleTag.ReplaceAllStringFunc(body, func(tag string) string {
		match := bbSimpleTag.FindStringSubmatch(tag)
		name := strings.ToLower(match[2])
		if mapped, ok := bbTagNames[name]; ok {
			name = mapped
		}
		return "<" + match[1] + name + ">"
	})
}

type converter struct {
	out        bytes.Buffer
	thumbnail  string
	links      []openLink
	quoteDepth int
}

type openLink struct {
	href  string
	start int
}

var inlineMarks = map[string]string{
	"b":       "**",
	"strong":  "**",
	"i":       "*",
	"em":      "*",
	"u":       "__",
	"s":       "~~",
	"strike":  "~~",
	"del":     "~~",
	"spoiler": "||",
	"code":    "`",
}

var headingMarks = map[string]string{
	"h1": "# ",
	"h2": "## ",
	"h3": "### ",
}

func (c *converter) run(src string) {
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return
		case html.TextToken:
			c.text(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			c.start(z.Token())
		case html.EndTagToken:
			name, _ := z.TagName()
			c.end(string(name))
		}
	}
}

func (c *converter) text(s string) {
	if c.quoteDepth > 0 {
		s = strings.ReplaceAll(s, "\n", "\n> ")
	}
	c.out.WriteString(s)
}

func (c *converter) newline() {
	if c.out.Len() == 0 {
		return
	}
	if !bytes.HasSuffix(c.out.Bytes(), []byte("\n")) {
		c.out.WriteString("\n")
	}
	if c.quoteDepth > 0 {
		c.out.WriteString("> ")
	}
}

func (c *converter) start(tok html.Token) {
	if mark, ok := inlineMarks[tok.Data]; ok {
		c.out.WriteString(mark)
		return
	}
	if mark, ok := headingMarks[tok.Data]; ok {
		c.newline()
		c.out.WriteString(mark)
		return
	}
	switch tok.Data {
	case "a":
		href := attr(tok, "href")
		if href != "" {
			c.out.WriteString("[")
		}
		c.links = append(c.links, openLink{href: href, start: c.out.Len()})
	case "img":
		if src := attr(tok, "src"); src != "" && c.thumbnail == "" {
			c.thumbnail = steamurl.NewsImage(src)
		}
	case "br":
		c.out.WriteString("\n")
	case "li":
		c.newline()
		c.out.WriteString("- ")
	case "blockquote":
		c.quoteDepth++
		c.newline()
		if !bytes.HasSuffix(c.out.Bytes(), []byte("> ")) {
			c.out.WriteString("> ")
		}
	case "hr":
		c.newline()
		c.out.WriteString("---\n")
	}
}

func (c *converter) end(name string) {
	if mark, ok := inlineMarks[name]; ok {
		c.out.WriteString(mark)
		return
	}
	if _, ok := headingMarks[name]; ok {
		c.out.WriteString("\n")
		return
	}
	switch name {
	case "a":
		if len(c.links) == 0 {
			return
		}
		link := c.links[len(c.links)-1]
		c.links = c.links[:len(c.links)-1]
		if link.href == "" {
			return
		}
		// Links wrapping only an image leave no text to anchor.
		if c.out.Len() == link.start {
			c.out.Truncate(link.start - 1)
			return
		}
		c.out.WriteString("](" + link.href + ")")
	case "p":
		c.out.WriteString("\n\n")
	case "ul", "ol":
		c.out.WriteString("\n")
	case "blockquote":
		if c.quoteDepth > 0 {
			c.quoteDepth--
		}
		c.out.WriteString("\n")
	}
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
