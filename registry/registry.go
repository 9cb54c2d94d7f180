// Package registry provides a handle-keyed registry for process-wide
// services and named scene objects.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicate is returned when a handle is already taken.
var ErrDuplicate = errors.New("handle already registered")

// Handle identifies a registered value.
type Handle string

// Registry maps handles to values. The first registration for a handle wins.
type Registry[T any] struct {
	byHandle map[Handle]T
	order    []Handle
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{byHandle: make(map[Handle]T)}
}

// Register stores value under handle.
// Returns ErrDuplicate if the handle is already registered.
func (r *Registry[T]) Register(handle Handle, value T) error {
	if _, ok := r.byHandle[handle]; ok {
		return fmt.Errorf("registering %q: %w", handle, ErrDuplicate)
	}
	r.byHandle[handle] = value
	r.order = append(r.order, handle)
	return nil
}

// Lookup returns the value registered under handle.
func (r *Registry[T]) Lookup(handle Handle) (T, bool) {
	v, ok := r.byHandle[handle]
	return v, ok
}

// MustLookup is like Lookup but panics if the handle is unknown.
func (r *Registry[T]) MustLookup(handle Handle) T {
	v, ok := r.byHandle[handle]
	if !ok {
		panic(fmt.Sprintf("registry: unknown handle %q", handle))
	}
	return v
}

// Remove deletes handle. Returns false if it was not registered.
func (r *Registry[T]) Remove(handle Handle) bool {
	if _, ok := r.byHandle[handle]; !ok {
		return false
	}
	delete(r.byHandle, handle)
	for i, h := range r.order {
		if h == handle {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of registered handles.
func (r *Registry[T]) Len() int {
	return len(r.order)
}

// Handles returns all handles in registration order.
func (r *Registry[T]) Handles() []Handle {
	out := make([]Handle, len(r.order))
	copy(out, r.order)
	return out
}

// Sorted returns all handles in lexical order.
func (r *Registry[T]) Sorted() []Handle {
	out := r.Handles()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
