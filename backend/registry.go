// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"sort"
	"sync"
)

// Factory creates a Renderer with the given options.
type Factory func(opts Options) (Renderer, error)

// Entry describes a registered backend.
type Entry struct {
	// Type is the backend this entry produces.
	Type Type

	// Priority determines fallback order (higher = preferred).
	// Standard priorities:
	//   - 100: GPU accelerated
	//   - 50: vector recording
	//   - 10: CPU raster
	Priority int

	// Factory creates renderer instances.
	Factory Factory

	// Available reports whether the backend can be used on this system.
	Available func() bool
}

// Registry maps backend types to factories.
//
// Backends register themselves from init functions, so a program opts into
// a backend by importing its package:
//
//	import _ "github.com/gogpu/two/backend/gpu"
type Registry struct {
	mu      sync.RWMutex
	entries map[Type]*Entry
}

// NewRegistry creates an empty registry.
// Most code uses the package-level functions backed by the global registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Type]*Entry)}
}

var globalRegistry = NewRegistry()

func init() {
	Register(Raster, 10, func(opts Options) (Renderer, error) {
		return NewRaster(opts)
	}, nil)
	Register(Vector, 50, func(opts Options) (Renderer, error) {
		return NewVectorRenderer(opts)
	}, nil)
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a type twice replaces the previous entry.
func Register(t Type, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(t, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(t Type) {
	globalRegistry.Unregister(t)
}

// Available returns the available backend types, highest priority first.
func Available() []Type {
	return globalRegistry.Available()
}

// IsAvailable reports whether t is registered and usable.
func IsAvailable(t Type) bool {
	return globalRegistry.IsAvailable(t)
}

// New creates a renderer of type t from the global registry, falling back
// to the best available type when t cannot be used.
func New(t Type, opts Options) (Renderer, error) {
	return globalRegistry.New(t, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(t Type, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[Type]*Entry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[t] = &Entry{
		Type:      t,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(t Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, t)
}

// Get returns a copy of the entry registered for t.
func (r *Registry) Get(t Type) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[t]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// IsAvailable reports whether t is registered and usable.
func (r *Registry) IsAvailable(t Type) bool {
	e, ok := r.Get(t)
	return ok && e.Available()
}

// Available returns the available backend types, highest priority first.
func (r *Registry) Available() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Available() {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})

	types := make([]Type, len(entries))
	for i, e := range entries {
		types[i] = e.Type
	}
	return types
}

// New creates a renderer of type t.
//
// When t is unregistered, unavailable or its factory fails, New walks
// the remaining backends in a fixed fallback order (Raster first, since
// it has no system requirements) and returns the first that succeeds.
// Only option validation errors are returned as-is.
func (r *Registry) New(t Type, opts Options) (Renderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if e, ok := r.Get(t); ok && e.Available() {
		rr, err := e.Factory(opts)
		if err == nil {
			return rr, nil
		}
		Logger().Debug("backend factory failed, falling back", "type", t, "err", err)
	} else {
		Logger().Debug("backend unavailable, falling back", "type", t)
	}

	var lastErr error
	for _, ft := range r.fallbackOrder(t) {
		e, ok := r.Get(ft)
		if !ok || !e.Available() {
			continue
		}
		rr, err := e.Factory(opts)
		if err == nil {
			return rr, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// fallbackOrder lists the types to try after t failed: Raster first, then
// every other available type by priority.
func (r *Registry) fallbackOrder(t Type) []Type {
	order := []Type{Raster}
	for _, at := range r.Available() {
		if at != Raster {
			order = append(order, at)
		}
	}
	out := order[:0]
	for _, ot := range order {
		if ot != t {
			out = append(out, ot)
		}
	}
	return out
}
