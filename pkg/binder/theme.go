package binder

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// ThemeTemplates returns the section templates a theme selection overrides,
// keyed by container kind. Variant templates replace the manifest's base
// templates. Values are template names or inline template content.
func ThemeTemplates(selection *theme.Selection) map[ContainerKind]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	merged := make(map[string]string)
	for key, value := range selection.Manifest.Templates {
		merged[key] = value
	}
	if selection.Variant != "" {
		if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Templates {
				merged[key] = value
			}
		}
	}

	out := make(map[ContainerKind]string)
	for _, kind := range Kinds() {
		if value := strings.TrimSpace(merged[kind.ThemeKey()]); value != "" {
			out[kind] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ManifestSelector resolves theme selections from manifests held in memory.
// It satisfies theme.ThemeSelector.
type ManifestSelector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers manifests and remembers the theme and
// variant used when Select receives blank names.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*ManifestSelector, error) {
	selector := &ManifestSelector{
		manifests:      make(map[string]*theme.Manifest),
		defaultTheme:   defaultTheme,
		defaultVariant: defaultVariant,
	}
	for _, manifest := range manifests {
		if err := selector.Register(manifest); err != nil {
			return nil, err
		}
	}
	return selector, nil
}

// Register adds a manifest. Duplicate names return an error.
func (s *ManifestSelector) Register(manifest *theme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return fmt.Errorf("binder: theme manifest with a name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.manifests[manifest.Name]; exists {
		return fmt.Errorf("binder: theme %q already registered", manifest.Name)
	}
	s.manifests[manifest.Name] = manifest
	return nil
}

// Themes lists the registered theme names.
func (s *ManifestSelector) Themes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the selection for name and variant, falling back to the
// defaults for blank arguments. Unknown themes and variants are errors.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if strings.TrimSpace(name) == "" {
		name = s.defaultTheme
		if strings.TrimSpace(variant) == "" {
			variant = s.defaultVariant
		}
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("binder: theme %q not found", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("binder: theme %q has no variant %q", name, variant)
		}
	}

	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
