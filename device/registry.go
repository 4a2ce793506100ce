// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"sort"
	"sync"

	"github.com/gogpu/hwvideo"
)

// DriverFactory creates a Driver. It must not load the driver library.
type DriverFactory func() Driver

// RegistryEntry represents a registered driver.
type RegistryEntry struct {
	// Name is the unique identifier for this driver.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native platform drivers (Direct3D 11)
	//   - 50: portable drivers (wgpu)
	Priority int

	// Factory creates driver instances.
	Factory DriverFactory

	// Available reports if the driver is available on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered drivers.
//
// Platform backends register themselves from init:
//
//	func init() {
//	    device.Register("d3d11", 100, NewDriver, Available)
//	}
//
// and callers either name a driver or take the best available one:
//
//	dev, err := device.NegotiateByName("d3d11", req)
//	dev, err := device.NegotiateBest(req)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NegotiateBest.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a driver to the global registry.
// If available is nil, the driver is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory DriverFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a driver from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered driver names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available drivers sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a driver in the global registry.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NegotiateBest negotiates a device with the best available driver.
func NegotiateBest(req Request) (*Device, error) {
	return globalRegistry.NegotiateBest(req)
}

// NegotiateByName negotiates a device with a specific driver.
func NegotiateByName(name string, req Request) (*Device, error) {
	return globalRegistry.NegotiateByName(name, req)
}

// Register adds a driver to this registry.
func (r *Registry) Register(name string, priority int, factory DriverFactory, available func() bool) {
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

// Unregister removes a driver from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered driver names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available drivers sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific driver.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	entryCopy := *entry
	return &entryCopy, true
}

// NegotiateBest tries each available driver in priority order and returns
// the first negotiated device.
func (r *Registry) NegotiateBest(req Request) (*Device, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoDriverAvailable
	}

	var lastErr error
	for _, name := range available {
		dev, err := r.NegotiateByName(name, req)
		if err == nil {
			return dev, nil
		}
		hwvideo.Logger().Debug("driver failed, trying next", "driver", name, "err", err)
		lastErr = err
	}
	return nil, lastErr
}

// NegotiateByName negotiates a device with the named driver.
func (r *Registry) NegotiateByName(name string, req Request) (*Device, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &DriverNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &DriverUnavailableError{Name: name}
	}

	return Negotiate(entry.Factory(), req)
}

// sortedNames returns driver names sorted by priority (highest first), ties
// broken by name. If onlyAvailable is true, filters to available drivers.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
