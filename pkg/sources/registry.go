package sources

import (
	"sort"
	"sync"

	"github.com/feedtools/subsync/pkg/errors"
)

// Factory constructs a fresh Source instance. Each run gets its own
// instance so session state never leaks between runs.
type Factory func() Source

// Registry maps provider names to factories. It is constructed
// explicitly at startup and scoped to one run; there is no package
// global.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given provider name. Later
// registrations overwrite earlier ones.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// New constructs a source by provider name.
func (r *Registry) New(name string) (Source, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.ConfigError{
			Field:   "provider",
			Value:   name,
			Message: "unknown provider " + name,
			Err:     errors.ErrUnknownProvider,
		}
	}
	return factory(), nil
}

// Has reports whether a provider name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
