// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/uibridge"
)

// Factory creates a Backend with the given options.
// Factories that cannot reach a GPU return an error wrapping
// uibridge.ErrNoDevice.
type Factory func(opts Options) (Backend, error)

// RegistryEntry represents a registered backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Backends at or below zero are never picked automatically.
	//   - 100: native swapchain backends
	//   - 50: host-owned swapchain
	//   - 0: offscreen
	Priority int

	// Factory creates backend instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered backends.
//
// Backends register themselves from their package init:
//
//	func init() {
//	    surface.Register("hosted", 50, New, nil)
//	}
//
// and are picked by name or by priority:
//
//	b, err := surface.NewBackend("hosted", surface.Options{})
//	// or the best available:
//	b, err := surface.NewBestBackend(surface.Options{})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewBestBackend.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewBackend creates the named backend from the global registry.
func NewBackend(name string, opts Options) (Backend, error) {
	return globalRegistry.NewBackend(name, opts)
}

// NewBestBackend creates the highest-priority available backend from the
// global registry.
func NewBestBackend(opts Options) (Backend, error) {
	return globalRegistry.NewBestBackend(opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names, best first.
func (r *Registry) List() []string {
	return names(r.snapshot(false))
}

// Available returns the names of the backends that can run here, best first.
func (r *Registry) Available() []string {
	return names(r.snapshot(true))
}

// Get returns a copy of the entry registered under name.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	c := *e
	return &c, true
}

// NewBestBackend tries every available backend with a positive priority,
// highest first, and returns the first one that starts. When none does the
// error wraps uibridge.ErrNoDevice and every backend's failure.
func (r *Registry) NewBestBackend(opts Options) (Backend, error) {
	var errs []error
	for _, e := range r.snapshot(true) {
		if e.Priority <= 0 {
			continue
		}
		b, err := e.Factory(opts)
		if err == nil {
			uibridge.Logger().Info("surface: backend selected", "backend", e.Name, "priority", e.Priority)
			return b, nil
		}
		uibridge.Logger().Warn("surface: backend failed", "backend", e.Name, "err", err)
		errs = append(errs, fmt.Errorf("%s: %w", e.Name, err))
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: %w", uibridge.ErrNoDevice, ErrNoBackendAvailable)
	}
	return nil, fmt.Errorf("%w: %w", uibridge.ErrNoDevice, errors.Join(errs...))
}

// NewBackend creates the named backend.
func (r *Registry) NewBackend(name string, opts Options) (Backend, error) {
	e, ok := r.Get(name)
	switch {
	case !ok:
		return nil, &BackendNotFoundError{Name: name}
	case !e.Available():
		return nil, &BackendUnavailableError{Name: name}
	}
	return e.Factory(opts)
}

// snapshot copies the entries ordered by priority (highest first), then
// by name. Availability probes run outside the lock.
func (r *Registry) snapshot(onlyAvailable bool) []RegistryEntry {
	r.mu.RLock()
	all := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, *e)
	}
	r.mu.RUnlock()

	if onlyAvailable {
		all = slices.DeleteFunc(all, func(e RegistryEntry) bool { return !e.Available() })
	}
	slices.SortFunc(all, func(a, b RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return all
}

func names(entries []RegistryEntry) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
