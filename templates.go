package portfolio

import (
	"io/fs"

	"github.com/goliatone/go-portfolio/pkg/binder"
)

// EmbeddedTemplates exposes the built-in section templates so callers can copy
// or extend them without importing the binder package directly.
func EmbeddedTemplates() fs.FS {
	return binder.TemplatesFS()
}
