package registry

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/nfrund/folio/internal/config"
)

// Key names a service and fixes its type. Values read "<owner>.<service>",
// e.g. "core.email" or "contact.sink".
type Key[T any] string

// Registry is where the app and its modules share services during startup.
// Modules register in one phase and resolve in the next, so a module can
// replace a service before the default is installed.
type Registry struct {
	mu       sync.RWMutex
	services map[string]any
	cfg      config.Provider
}

// New creates an empty registry carrying the app configuration.
func New(cfg config.Provider) *Registry {
	return &Registry{services: make(map[string]any), cfg: cfg}
}

// Config returns the configuration provider stored in the registry.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Keys lists the registered service names in order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.services))
	for k := range r.services {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Set registers value under key, replacing any earlier value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[string(key)] = value
}

func lookup(r *Registry, name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	val, ok := r.services[name]
	return val, ok
}

// Get returns the service under key. A value of another type counts as missing.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	val, ok := lookup(r, string(key))
	if !ok {
		var zero T
		return zero, false
	}
	result, ok := val.(T)
	return result, ok
}

// MustGet is Get for services the app cannot start without.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := lookup(r, string(key))
	if !ok {
		panic(fmt.Sprintf("registry: no service for key %q", string(key)))
	}
	result, ok := val.(T)
	if !ok {
		panic(fmt.Sprintf("registry: service %q is %T, not %v", string(key), val, reflect.TypeFor[T]()))
	}
	return result
}
