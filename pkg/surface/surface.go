package surface

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Surface is a parsed host page.
type Surface struct {
	root *html.Node
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Surface, error) {
	if r == nil {
		return nil, errors.New("surface: reader is nil")
	}
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("surface: parse document: %w", err)
	}
	return &Surface{root: root}, nil
}

// ParseString is Parse for in-memory pages.
func ParseString(doc string) (*Surface, error) {
	return Parse(strings.NewReader(doc))
}

// Render serialises the document, including any bound sections.
func (s *Surface) Render(w io.Writer) error {
	if s == nil || s.root == nil {
		return errors.New("surface: document is nil")
	}
	return html.Render(w, s.root)
}

// Bytes returns the serialised document.
func (s *Surface) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// QueryAll returns every element matching sel in document order.
func (s *Surface) QueryAll(sel Selector) []*Element {
	if s == nil || s.root == nil {
		return nil
	}
	nodes := sel.queryAll(s.root)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Element{node: n})
	}
	return out
}

// Query returns the first element matching sel, or nil.
func (s *Surface) Query(sel Selector) *Element {
	if s == nil || s.root == nil || !sel.Valid() {
		return nil
	}
	n := cascadia.Query(s.root, sel.group)
	if n == nil {
		return nil
	}
	return &Element{node: n}
}
