package surface

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element is a container on the surface.
type Element struct {
	node *html.Node
}

// Tag returns the element name, e.g. "div".
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the attribute value or "".
func (e *Element) Attr(name string) string {
	value, _ := e.lookupAttr(name)
	return value
}

func (e *Element) lookupAttr(name string) (string, bool) {
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// Classes returns the class list.
func (e *Element) Classes() []string {
	return strings.Fields(e.Attr("class"))
}

// HasClass reports whether class is in the class list.
func (e *Element) HasClass(class string) bool {
	for _, candidate := range e.Classes() {
		if candidate == class {
			return true
		}
	}
	return false
}

// SetInnerHTML replaces the element's children with the parsed markup.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("surface: parse fragment for <%s>: %w", e.node.Data, err)
	}
	e.clear()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// SetText replaces the element's children with a single text node.
func (e *Element) SetText(text string) {
	e.clear()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// InnerHTML serialises the element's children.
func (e *Element) InnerHTML() (string, error) {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// Text returns the concatenated text content.
func (e *Element) Text() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(e.node)
	return b.String()
}

// Children returns the child elements, skipping text and comments.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &Element{node: c})
		}
	}
	return out
}

// Same reports whether e and other wrap the same node.
func (e *Element) Same(other *Element) bool {
	return e != nil && other != nil && e.node == other.node
}

func (e *Element) clear() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}
