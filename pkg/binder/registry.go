package binder

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores sections by the container kind they bind.
type Registry struct {
	mu       sync.RWMutex
	sections map[ContainerKind]Section
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		sections: make(map[ContainerKind]Section),
	}
}

// DefaultRegistry returns a registry holding the built-in sections.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, section := range defaultSections() {
		registry.MustRegister(section)
	}
	return registry
}

// Register adds a section by its Kind(). Duplicate kinds return an error.
func (r *Registry) Register(section Section) error {
	if section == nil {
		return fmt.Errorf("binder: section is required")
	}
	kind := section.Kind()
	if kind == "" {
		return fmt.Errorf("binder: section kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sections[kind]; exists {
		return fmt.Errorf("binder: section %q already registered", kind)
	}
	r.sections[kind] = section
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(section Section) {
	if err := r.Register(section); err != nil {
		panic(err)
	}
}

// Replace registers section, overriding any section of the same kind.
func (r *Registry) Replace(section Section) error {
	if section == nil || section.Kind() == "" {
		return fmt.Errorf("binder: section with a kind is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sections[section.Kind()] = section
	return nil
}

// Get retrieves a section by kind.
func (r *Registry) Get(kind ContainerKind) (Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, ok := r.sections[kind]
	if !ok {
		return nil, fmt.Errorf("binder: section %q not found", kind)
	}
	return section, nil
}

// Has reports whether a section is registered for kind.
func (r *Registry) Has(kind ContainerKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sections[kind]
	return ok
}

// List returns the registered kinds sorted by name.
func (r *Registry) List() []ContainerKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]ContainerKind, 0, len(r.sections))
	for kind := range r.sections {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
