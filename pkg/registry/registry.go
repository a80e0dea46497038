// Package registry maps node type names to factories, so declarative tree
// definitions can instantiate leaf nodes by name.
package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/copse/pkg/domain"
)

// Factory constructs a node instance for one type.
type Factory func(logger *slog.Logger) domain.Node

// Registry manages the available node types.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a node type to the registry.
// If a type with the same name exists, it is overwritten.
func (r *Registry) Register(typeName string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[typeName] = f
}

// NewNode instantiates a node of the given type.
// Returns domain.ErrUnknownNodeType if the type is not registered.
func (r *Registry) NewNode(typeName string, logger *slog.Logger) (domain.Node, error) {
	r.mu.RLock()
	f, ok := r.factories[typeName]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNodeType, typeName)
	}
	return f(logger), nil
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
