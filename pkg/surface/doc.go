// Package surface models the host page that portfolio sections are bound
// into. It parses an HTML document, locates marker containers with CSS
// selectors compiled by cascadia and replaces container contents.
package surface
