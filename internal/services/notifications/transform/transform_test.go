package transform

import (
	"context"
	"strings"
	"testing"
)

func TestTransformMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bold", body: "[b]Patch[/b] notes", want: "**Patch** notes"},
		{name: "italic and strike", body: "[i]new[/i] [strike]old[/strike]", want: "*new* ~~old~~"},
		{name: "spoiler", body: "[spoiler]ending[/spoiler]", want: "||ending||"},
		{name: "url with target", body: "[url=https://example.com]site[/url]", want: "[site](https://example.com)"},
		{name: "bare url", body: "[url]https://example.com[/url]", want: "[https://example.com](https://example.com)"},
		{name: "list", body: "[list][*]One[*]Two[/list]", want: "- One\n- Two"},
		{name: "heading", body: "[h1]Title[/h1]Body", want: "# Title\nBody"},
		{name: "quote", body: "[quote]wise\nwords[/quote]", want: "> wise\n> words"},
		{name: "html paragraphs", body: "<p>Hello <strong>world</strong></p><p>Bye &amp; thanks</p>", want: "Hello **world**\n\nBye & thanks"},
		{name: "html link", body: `<a href="https://example.com/x">read</a><br>more`, want: "[read](https://example.com/x)\nmore"},
		{name: "youtube", body: "[previewyoutube=abc123;full][/previewyoutube]", want: "[https://www.youtube.com/watch?v=abc123](https://www.youtube.com/watch?v=abc123)"},
		{name: "plain", body: "  just text  ", want: "just text"},
		{name: "empty", body: "", want: ""},
	}
	for _, tc := range tests {
		got, err := New().Transform(context.Background(), tc.body)
		if err != nil {
			t.Fatalf("%s: Transform: %v", tc.name, err)
		}
		if got.Markdown != tc.want {
			t.Fatalf("%s: markdown = %q, want %q", tc.name, got.Markdown, tc.want)
		}
	}
}

func TestTransformExtractsFirstImage(t *testing.T) {
	t.Parallel()

	body := "[img]{STEAM_CLAN_IMAGE}/123/abc.png[/img]Hello[img]https://cdn.example.com/second.png[/img]"
	got, err := New().Transform(context.Background(), body)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got.Thumbnail != "https://clan.cloudflare.steamstatic.com/images/123/abc.png" {
		t.Fatalf("thumbnail = %q, want expanded clan image", got.Thumbnail)
	}
	if got.Markdown != "Hello" {
		t.Fatalf("markdown = %q, want Hello", got.Markdown)
	}
}

func TestTransformDropsImageOnlyLinks(t *testing.T) {
	t.Parallel()

	got, err := New().Transform(context.Background(), "[url=https://example.com][img]https://cdn.example.com/a.png[/img][/url]text")
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got.Markdown != "text" {
		t.Fatalf("markdown = %q, want text", got.Markdown)
	}
	if got.Thumbnail != "https://cdn.example.com/a.png" {
		t.Fatalf("thumbnail = %q", got.Thumbnail)
	}
}

func TestTransformWithoutImageHasNoThumbnail(t *testing.T) {
	t.Parallel()

	got, err := New().Transform(context.Background(), "[b]x[/b]")
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got.Thumbnail != "" {
		t.Fatalf("thumbnail = %q, want empty", got.Thumbnail)
	}
}

func TestTransformCapsLength(t *testing.T) {
	t.Parallel()

	got, err := New().Transform(context.Background(), strings.Repeat("a", 5000))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if n := len([]rune(got.Markdown)); n != 4096 {
		t.Fatalf("length = %d, want 4096", n)
	}
	if !strings.HasSuffix(got.Markdown, "...") {
		t.Fatal("expected ellipsis suffix")
	}
}

func TestTransformHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Transform(ctx, "x"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
