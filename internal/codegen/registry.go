package codegen

import (
	"fmt"
	"sort"
)

// Factory creates a generator for the given options
type Factory func(opts Options) Generator

// Registry manages available artifact generators
type Registry struct {
	generators map[string]Factory
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	r := &Registry{
		generators: make(map[string]Factory),
	}
	return r
}

// Register adds a new generator factory to the registry
func (r *Registry) Register(artifact string, factory Factory) {
	r.generators[artifact] = factory
}

// Get returns a generator for the specified artifact. Empty options take
// their defaults.
func (r *Registry) Get(artifact string, opts Options) (Generator, error) {
	factory, exists := r.generators[artifact]
	if !exists {
		return nil, fmt.Errorf("unsupported artifact: %s", artifact)
	}

	return factory(opts.WithDefaults()), nil
}

// Artifacts returns the registered artifact names in sorted order
func (r *Registry) Artifacts() []string {
	artifacts := make([]string, 0, len(r.generators))
	for name := range r.generators {
		artifacts = append(artifacts, name)
	}
	sort.Strings(artifacts)
	return artifacts
}
