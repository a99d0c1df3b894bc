package binder

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/render/template"
	"github.com/goliatone/go-portfolio/pkg/render/template/gotemplate"
	"github.com/goliatone/go-portfolio/pkg/surface"
	"github.com/goliatone/go-portfolio/pkg/validation"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in section templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Binder binds a dataset onto a render surface.
type Binder struct {
	registry  *Registry
	markers   compiledMarkers
	overrides map[ContainerKind]string
	env       *Env
}

// Option configures a Binder.
type Option func(*config)

type config struct {
	registry  *Registry
	sections  []Section
	markers   Markers
	renderer  template.TemplateRenderer
	templates []fs.FS
	overrides map[ContainerKind]string
	selection *theme.Selection
	policy    *bluemonday.Policy
	validator *validation.Validator
	logger    pkgportfolio.Logger
}

// WithRegistry replaces the section registry.
func WithRegistry(registry *Registry) Option {
	return func(c *config) {
		c.registry = registry
	}
}

// WithSection replaces the section bound for section.Kind().
func WithSection(section Section) Option {
	return func(c *config) {
		if section != nil {
			c.sections = append(c.sections, section)
		}
	}
}

// WithMarkers configures the discovery selectors. Blank fields keep their
// defaults.
func WithMarkers(markers Markers) Option {
	return func(c *config) {
		c.markers = markers
	}
}

// WithTemplateRenderer replaces the template engine. Templates are looked up
// by container kind, e.g. "experience".
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(c *config) {
		c.renderer = renderer
	}
}

// WithTemplateFS adds a template directory searched before the built-in
// templates. Later calls take precedence over earlier ones.
func WithTemplateFS(files fs.FS) Option {
	return func(c *config) {
		if files != nil {
			c.templates = append([]fs.FS{files}, c.templates...)
		}
	}
}

// WithTemplateOverride sets the template used for kind. value is a template
// name or inline template content.
func WithTemplateOverride(kind ContainerKind, value string) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = make(map[ContainerKind]string)
		}
		c.overrides[kind] = value
	}
}

// WithTheme applies the template overrides of a theme selection.
func WithTheme(selection *theme.Selection) Option {
	return func(c *config) {
		c.selection = selection
	}
}

// WithPolicy replaces the fragment sanitiser policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

// WithValidator replaces the record validator.
func WithValidator(v *validation.Validator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithLogger sets the destination of binder diagnostics.
func WithLogger(logger pkgportfolio.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New constructs a Binder. Without options it binds the default markers with
// the built-in templates.
func New(options ...Option) (*Binder, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	markers, err := compileMarkers(cfg.markers)
	if err != nil {
		return nil, err
	}

	return &Binder{
		registry:  cfg.registry,
		markers:   markers,
		overrides: cfg.overrides,
		env: &Env{
			renderer:  cfg.renderer,
			overrides: mergeOverrides(ThemeTemplates(cfg.selection), cfg.overrides),
			policy:    cfg.policy,
			validator: cfg.validator,
			logger:    cfg.logger,
		},
	}, nil
}

func (c *config) applyDefaults() error {
	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	for _, section := range c.sections {
		if err := c.registry.Replace(section); err != nil {
			return err
		}
	}
	if c.renderer == nil {
		opts := make([]gotemplate.Option, 0, len(c.templates)+1)
		for _, files := range c.templates {
			opts = append(opts, gotemplate.WithFS(files))
		}
		opts = append(opts, gotemplate.WithFS(TemplatesFS()))
		engine, err := gotemplate.New(opts...)
		if err != nil {
			return fmt.Errorf("binder: template engine: %w", err)
		}
		c.renderer = engine
	}
	if c.policy == nil {
		c.policy = FragmentPolicy()
	}
	if c.validator == nil {
		c.validator = validation.Default()
	}
	if c.logger == nil {
		c.logger = pkgportfolio.DefaultLogger()
	}
	return nil
}

// mergeOverrides layers explicit overrides on top of theme templates.
func mergeOverrides(themed, explicit map[ContainerKind]string) map[ContainerKind]string {
	out := make(map[ContainerKind]string, len(themed)+len(explicit))
	for kind, value := range themed {
		out[kind] = value
	}
	for kind, value := range explicit {
		out[kind] = value
	}
	return out
}

// WithTheme returns a copy of the binder using the template overrides of
// selection. Overrides set through options still win.
func (b *Binder) WithTheme(selection *theme.Selection) *Binder {
	if b == nil || selection == nil {
		return b
	}
	env := *b.env
	env.overrides = mergeOverrides(ThemeTemplates(selection), b.overrides)
	return &Binder{
		registry:  b.registry,
		markers:   b.markers,
		overrides: b.overrides,
		env:       &env,
	}
}

// Registry returns the section registry.
func (b *Binder) Registry() *Registry {
	return b.registry
}

// Bind discovers the marker containers of surf and binds every section
// whose container and data are present. It never returns an error; what
// happened to each section is described by the Report.
func (b *Binder) Bind(ctx context.Context, surf *surface.Surface, data pkgportfolio.Dataset) Report {
	if ctx == nil {
		ctx = context.Background()
	}
	var report Report
	if surf == nil {
		b.env.logger.Printf("binder: no render surface, skipping all sections")
		return report
	}

	containers := discover(surf, b.markers)
	for _, kind := range Kinds() {
		section, err := b.registry.Get(kind)
		if err != nil {
			continue
		}
		report.Sections = append(report.Sections, b.bindSection(ctx, section, containers[kind], data))
	}
	return report
}

func (b *Binder) bindSection(ctx context.Context, section Section, targets []Container, data pkgportfolio.Dataset) (result SectionReport) {
	kind := section.Kind()
	result = SectionReport{Kind: kind, Containers: len(targets)}
	logger := b.env.logger

	if len(targets) == 0 {
		logger.Printf("binder: skipping %s: no container on page", kind)
		result.Outcome = SkipNoContainer
		return result
	}
	if !data.Present(section.Resource()) {
		logger.Printf("binder: skipping %s: %s data unavailable", kind, section.Resource())
		result.Outcome = SkipNoData
		return result
	}
	if err := ctx.Err(); err != nil {
		logger.Printf("binder: %s failed: %v", kind, err)
		result.Outcome = Failed
		result.Err = err
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("binder: %s panicked: %v", kind, r)
			logger.Printf("%v", err)
			result.Outcome = Failed
			result.Err = err
		}
	}()

	stats, err := section.Bind(ctx, b.env, data, targets)
	if errors.Is(err, ErrNoRecords) {
		logger.Printf("binder: skipping %s: %v", kind, err)
		result.Outcome = SkipNoData
		return result
	}
	result.SectionStats = stats
	for _, issue := range stats.Issues {
		logger.Printf("binder: %s: skipping %s", kind, issue)
	}
	if err != nil {
		logger.Printf("binder: %s failed: %v", kind, err)
		result.Outcome = Failed
		result.Err = err
		return result
	}
	result.Outcome = Bound
	return result
}
