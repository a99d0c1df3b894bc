package surface

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector group. Any syntax cascadia accepts
// works, so marker containers can be addressed as
//
//	[data-experience="items"]
//	[data-profile="social"].social-links-large
//	#contact .social-links
//	ul[data-x~=y], ol[data-x~=y]
type Selector struct {
	raw   string
	group cascadia.SelectorGroup
}

// ParseSelector compiles raw into a Selector.
func ParseSelector(raw string) (Selector, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Selector{}, fmt.Errorf("surface: empty selector")
	}
	group, err := cascadia.ParseGroup(trimmed)
	if err != nil {
		return Selector{}, fmt.Errorf("surface: selector %q: %w", raw, err)
	}
	return Selector{raw: trimmed, group: group}, nil
}

// MustParseSelector panics when raw is invalid. Useful for package defaults.
func MustParseSelector(raw string) Selector {
	sel, err := ParseSelector(raw)
	if err != nil {
		panic(err)
	}
	return sel
}

// String returns the selector source.
func (s Selector) String() string {
	return s.raw
}

// Valid reports whether s was produced by ParseSelector.
func (s Selector) Valid() bool {
	return len(s.group) > 0
}

func (s Selector) queryAll(root *html.Node) []*html.Node {
	if !s.Valid() || root == nil {
		return nil
	}
	return cascadia.QueryAll(root, s.group)
}

// Matches reports whether e matches s.
func (s Selector) Matches(e *Element) bool {
	if !s.Valid() || e == nil || e.node == nil {
		return false
	}
	return s.group.Match(e.node)
}
