package surface

import (
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html><head><title>Ada</title></head>
<body>
  <section id="experience"><div class="timeline" data-experience="items"><p>loading</p></div></section>
  <div class="social-links social-links-large" data-profile="social"></div>
  <footer><div class="social-links" data-profile="social"></div></footer>
</body></html>`

func TestSurface_QueryAllDocumentOrder(t *testing.T) {
	s, err := ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	social := s.QueryAll(MustParseSelector(`[data-profile="social"]`))
	if len(social) != 2 {
		t.Fatalf("expected 2 social containers, got %d", len(social))
	}
	if !social[0].HasClass("social-links-large") || social[1].HasClass("social-links-large") {
		t.Fatalf("unexpected class order: %v / %v", social[0].Classes(), social[1].Classes())
	}

	large := s.Query(MustParseSelector(`[data-profile="social"].social-links-large`))
	if !large.Same(social[0]) {
		t.Fatalf("expected class selector to match the first container")
	}

	if s.Query(MustParseSelector(`[data-projects="items"]`)) != nil {
		t.Fatalf("expected no projects container")
	}
}

func TestElement_SetInnerHTMLReplacesChildren(t *testing.T) {
	s, err := ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	el := s.Query(MustParseSelector(`[data-experience="items"]`))
	if el == nil {
		t.Fatalf("experience container not found")
	}

	if err := el.SetInnerHTML(`<div class="timeline-item">one</div><div class="timeline-item">two</div>`); err != nil {
		t.Fatalf("set inner html: %v", err)
	}

	children := el.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].Text() != "one" || children[1].Text() != "two" {
		t.Fatalf("unexpected order: %q %q", children[0].Text(), children[1].Text())
	}

	out, err := s.Bytes()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "loading") {
		t.Fatalf("expected placeholder to be replaced:\n%s", out)
	}
}

func TestElement_SetTextEscapes(t *testing.T) {
	s, err := ParseString(`<html><body><h1 data-profile="name"></h1></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	el := s.Query(MustParseSelector(`[data-profile="name"]`))
	el.SetText("<b>Ada</b>")

	inner, err := el.InnerHTML()
	if err != nil {
		t.Fatalf("inner html: %v", err)
	}
	if inner != "&lt;b&gt;Ada&lt;/b&gt;" {
		t.Fatalf("expected escaped text, got %q", inner)
	}
}

func TestParse_NilReader(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}
