package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-portfolio/internal/portfolio/loader"
	"github.com/goliatone/go-portfolio/pkg/binder"
	"github.com/goliatone/go-portfolio/pkg/dataset"
	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/surface"
)

// DataLoader produces the dataset for one run.
type DataLoader interface {
	Load(ctx context.Context) pkgportfolio.Dataset
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects the resource loader used by the default data loader.
func WithLoader(loader pkgportfolio.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithSources sets where the default data loader reads resources from.
func WithSources(sources dataset.Sources) Option {
	return func(o *Orchestrator) {
		o.sources = sources
	}
}

// WithDataLoader replaces the data loader entirely. WithLoader and
// WithSources are ignored when it is set.
func WithDataLoader(loader DataLoader) Option {
	return func(o *Orchestrator) {
		o.data = loader
	}
}

// WithBinder injects a preconfigured binder.
func WithBinder(b *binder.Binder) Option {
	return func(o *Orchestrator) {
		o.binder = b
	}
}

// WithBinderOptions configures the default binder. Ignored when WithBinder
// is used.
func WithBinderOptions(options ...binder.Option) Option {
	return func(o *Orchestrator) {
		o.binderOptions = append(o.binderOptions, options...)
	}
}

// WithThemeSelector resolves the theme named by each request. Without a
// selector theme fields on the request are ignored.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithLogger sets the destination of diagnostics for the default data loader
// and binder.
func WithLogger(logger pkgportfolio.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates one load and one bind per Run.
type Orchestrator struct {
	loader        pkgportfolio.Loader
	sources       dataset.Sources
	data          DataLoader
	binder        *binder.Binder
	binderOptions []binder.Option
	themeSelector theme.ThemeSelector
	logger        pkgportfolio.Logger
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies use the built-in implementations: a file loader reading
// data/<name>.json from the working directory and the default binder.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render of a host page.
type Request struct {
	// Page is the host page. Ignored when Surface is set.
	Page io.Reader

	// Surface allows callers to bind an already parsed page.
	Surface *surface.Surface

	// ThemeName and ThemeVariant select a theme through the configured
	// selector. Blank values defer to the selector defaults.
	ThemeName    string
	ThemeVariant string
}

// Result is the outcome of a Run.
type Result struct {
	Dataset pkgportfolio.Dataset
	Report  binder.Report
	Surface *surface.Surface
	HTML    []byte
}

// Run parses the page, loads the dataset exactly once and binds it exactly
// once. Fetch and section failures do not fail the run; they show up as
// absent dataset fields and in the Report.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	surf, err := resolveSurface(req)
	if err != nil {
		return Result{}, err
	}

	b, err := o.binderFor(req)
	if err != nil {
		return Result{}, err
	}

	data := o.data.Load(ctx)
	report := b.Bind(ctx, surf, data)

	var buf bytes.Buffer
	if err := surf.Render(&buf); err != nil {
		return Result{}, fmt.Errorf("orchestrator: render page: %w", err)
	}

	return Result{
		Dataset: data,
		Report:  report,
		Surface: surf,
		HTML:    buf.Bytes(),
	}, nil
}

func resolveSurface(req Request) (*surface.Surface, error) {
	if req.Surface != nil {
		return req.Surface, nil
	}
	if req.Page == nil {
		return nil, errors.New("orchestrator: page or surface is required")
	}
	surf, err := surface.Parse(req.Page)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse page: %w", err)
	}
	return surf, nil
}

func (o *Orchestrator) binderFor(req Request) (*binder.Binder, error) {
	if o.themeSelector == nil {
		return o.binder, nil
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return o.binder.WithTheme(selection), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = pkgportfolio.DefaultLogger()
	}
	if o.data == nil {
		if o.loader == nil {
			o.loader = internalLoader.New(pkgportfolio.NewLoaderOptions())
		}
		if o.sources == nil {
			o.sources = dataset.FileSources(".")
		}
		fetcher := dataset.NewFetcher(o.loader, dataset.WithFetcherLogger(o.logger))
		o.data = dataset.NewLoader(fetcher, o.sources, dataset.WithLogger(o.logger))
	}
	if o.binder == nil {
		options := append([]binder.Option{binder.WithLogger(o.logger)}, o.binderOptions...)
		b, err := binder.New(options...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default binder: %w", err)
			return
		}
		o.binder = b
	}
}
