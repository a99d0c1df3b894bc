package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/goliatone/go-portfolio/pkg/dataset"
	"github.com/goliatone/go-portfolio/pkg/orchestrator"
	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// Dataset aliases the immutable result of one load.
type Dataset = pkgportfolio.Dataset

// Result is the outcome of rendering a page.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderPage binds page with the resources found at sources. Remote sources
// are fetched with a default HTTP client. Options are applied after the
// defaults and may replace them.
func RenderPage(ctx context.Context, page io.Reader, sources dataset.Sources, options ...orchestrator.Option) (Result, error) {
	defaults := []orchestrator.Option{
		orchestrator.WithLoader(NewLoader(pkgportfolio.WithHTTPFallback(0))),
		orchestrator.WithSources(sources),
	}
	orch := orchestrator.New(append(defaults, options...)...)
	return orch.Run(ctx, orchestrator.Request{Page: page})
}

// RenderSite binds index.html of site with site's data/<name>.json files.
// RenderSite(ctx, SiteFS()) renders the starter site.
func RenderSite(ctx context.Context, site fs.FS, options ...orchestrator.Option) (Result, error) {
	page, err := fs.ReadFile(site, "index.html")
	if err != nil {
		return Result{}, fmt.Errorf("portfolio: read index.html: %w", err)
	}
	defaults := []orchestrator.Option{
		orchestrator.WithLoader(NewLoader(pkgportfolio.WithFileSystem(site))),
		orchestrator.WithSources(dataset.FSSources("")),
	}
	orch := orchestrator.New(append(defaults, options...)...)
	return orch.Run(ctx, orchestrator.Request{Page: bytes.NewReader(page)})
}
