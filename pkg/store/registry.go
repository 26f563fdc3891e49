package store

import "sync/atomic"

// Registry holds the current Store generation. Swapping is atomic so
// in-flight queries keep the snapshot they started with and never see a
// half-built replacement.
type Registry struct {
	current atomic.Pointer[Store]
}

func NewRegistry(initial *Store) *Registry {
	registry := &Registry{}
	if initial != nil {
		registry.current.Store(initial)
	}

	return registry
}

// Current returns the live generation, or nil when no feed has been
// loaded yet.
func (r *Registry) Current() *Store {
	return r.current.Load()
}

// Swap replaces the live generation with a fully-built new one and
// reports whether the publish timestamp actually changed.
func (r *Registry) Swap(next *Store) bool {
	previous := r.current.Swap(next)

	return previous == nil || previous.PublishTimestamp != next.PublishTimestamp
}
