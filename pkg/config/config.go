// Package config reads the site configuration used by the portfolio command
// and the root helpers. Files may be JSON or YAML.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-portfolio/pkg/binder"
	"github.com/goliatone/go-portfolio/pkg/dataset"
	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// Config describes one portfolio site.
type Config struct {
	// Page is the host page bound by render.
	Page string `json:"page" yaml:"page"`
	// Output is where the bound page is written. Empty means stdout.
	Output string `json:"output" yaml:"output"`
	// BaseURL, when set, loads data/<name>.json from a remote origin.
	BaseURL string `json:"base_url" yaml:"base_url"`
	// SiteDir holds the data/ directory when BaseURL is empty.
	SiteDir string `json:"site_dir" yaml:"site_dir"`
	// Resources overrides the location of individual resources. Values are
	// file paths or http(s) URLs.
	Resources map[string]string `json:"resources" yaml:"resources"`
	// Templates is a directory of section templates searched before the
	// built-in ones.
	Templates      string         `json:"templates" yaml:"templates"`
	Markers        binder.Markers `json:"markers" yaml:"markers"`
	Theme          Theme          `json:"theme" yaml:"theme"`
	RequestTimeout Duration       `json:"request_timeout" yaml:"request_timeout"`
}

// Theme selects and optionally defines a theme. Templates are keyed by
// container kind theme keys, e.g. "portfolio.experience".
type Theme struct {
	Name      string                       `json:"name" yaml:"name"`
	Variant   string                       `json:"variant" yaml:"variant"`
	Templates map[string]string            `json:"templates" yaml:"templates"`
	Variants  map[string]map[string]string `json:"variants" yaml:"variants"`
}

// Duration accepts Go duration strings ("5s") or integer seconds.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.set(raw)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return d.set(raw)
}

func (d *Duration) set(raw any) error {
	switch v := raw.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(v * float64(time.Second)))
	case int:
		*d = Duration(time.Duration(v) * time.Second)
	case string:
		if strings.TrimSpace(v) == "" {
			*d = 0
			return nil
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("config: invalid duration %v", raw)
	}
	return nil
}

// Default returns the configuration of the starter site layout.
func Default() Config {
	return Config{
		Page:    "index.html",
		SiteDir: ".",
		Markers: binder.DefaultMarkers(),
	}
}

// Load reads and parses the config file at path. Relative paths inside the
// file are resolved against the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return Config{}, err
	}
	return cfg.resolvePaths(filepath.Dir(path)), nil
}

// Parse decodes data as JSON, falling back to YAML, over Default().
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		if yerr := yaml.Unmarshal(data, &cfg); yerr != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks resource names and the base URL.
func (c Config) Validate() error {
	var errs []error
	for name := range c.Resources {
		if _, err := pkgportfolio.ParseResourceName(name); err != nil {
			errs = append(errs, err)
		}
	}
	if c.BaseURL != "" {
		if _, err := dataset.URLSources(c.BaseURL); err != nil {
			errs = append(errs, err)
		}
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, errors.New("request_timeout must not be negative"))
	}
	return errors.Join(errs...)
}

func (c Config) resolvePaths(dir string) Config {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) || isURL(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	c.Page = resolve(c.Page)
	if c.Output != "" {
		c.Output = resolve(c.Output)
	}
	c.SiteDir = resolve(c.SiteDir)
	c.Templates = resolve(c.Templates)
	if len(c.Resources) > 0 {
		resources := make(map[string]string, len(c.Resources))
		for name, location := range c.Resources {
			resources[name] = resolve(location)
		}
		c.Resources = resources
	}
	return c
}

// Sources builds the resource sources: BaseURL when set, SiteDir otherwise,
// with Resources entries layered on top.
func (c Config) Sources() (dataset.Sources, error) {
	var (
		sources dataset.Sources
		err     error
	)
	switch {
	case c.BaseURL != "":
		sources, err = dataset.URLSources(c.BaseURL)
		if err != nil {
			return nil, err
		}
	default:
		root := c.SiteDir
		if root == "" {
			root = "."
		}
		sources = dataset.FileSources(root)
	}

	for raw, location := range c.Resources {
		name, err := pkgportfolio.ParseResourceName(raw)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		src, err := dataset.ResolveSource(location)
		if err != nil {
			return nil, fmt.Errorf("config: resource %s: %w", name, err)
		}
		sources = sources.With(name, src)
	}
	return sources, nil
}

// LoaderOptions returns the loader options implied by the config. HTTP is
// enabled whenever any source is remote.
func (c Config) LoaderOptions() []pkgportfolio.LoaderOption {
	var options []pkgportfolio.LoaderOption
	if c.usesHTTP() {
		options = append(options, pkgportfolio.WithHTTPFallback(c.RequestTimeout.Std()))
	} else if c.RequestTimeout > 0 {
		options = append(options, pkgportfolio.WithRequestTimeout(c.RequestTimeout.Std()))
	}
	return options
}

func (c Config) usesHTTP() bool {
	if c.BaseURL != "" {
		return true
	}
	for _, location := range c.Resources {
		if isURL(location) {
			return true
		}
	}
	return false
}

// Manifest builds a go-theme manifest from the inline theme definition, or
// returns nil when the config only names a theme.
func (t Theme) Manifest() *theme.Manifest {
	if t.Name == "" || (len(t.Templates) == 0 && len(t.Variants) == 0) {
		return nil
	}
	manifest := &theme.Manifest{
		Name:      t.Name,
		Templates: copyMap(t.Templates),
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, templates := range t.Variants {
			manifest.Variants[name] = theme.Variant{Templates: copyMap(templates)}
		}
	}
	return manifest
}

func copyMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func isURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}
