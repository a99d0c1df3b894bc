package portfolio

import (
	internalLoader "github.com/goliatone/go-portfolio/internal/portfolio/loader"
	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgportfolio.LoaderOption) pkgportfolio.Loader {
	cfg := pkgportfolio.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
