// Package template defines the renderer-agnostic template contract used by
// the section binder. The gotemplate sub-package provides the pongo2-backed
// implementation.
package template
