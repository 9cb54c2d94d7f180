package systems

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/transformutils/components"
)

// ErrCycle is returned when a parent assignment would create a loop.
var ErrCycle = errors.New("hierarchy cycle")

// Hierarchy is an explicit parent/children index over scene entities.
// Traversals use an explicit stack, so depth is bounded only by memory.
type Hierarchy struct {
	parent   map[ecs.Entity]ecs.Entity
	children map[ecs.Entity][]ecs.Entity
	layers   *ecs.Map[components.Layer]
}

// NewHierarchy creates an empty hierarchy index.
func NewHierarchy(w *ecs.World) *Hierarchy {
	return &Hierarchy{
		parent:   make(map[ecs.Entity]ecs.Entity),
		children: make(map[ecs.Entity][]ecs.Entity),
		layers:   ecs.NewMap[components.Layer](w),
	}
}

// SetParent attaches child under parent, detaching it from any previous parent.
func (h *Hierarchy) SetParent(child, parent ecs.Entity) error {
	for e := parent; ; {
		if e == child {
			return fmt.Errorf("parenting entity %d under %d: %w", child.ID(), parent.ID(), ErrCycle)
		}
		next, ok := h.parent[e]
		if !ok {
			break
		}
		e = next
	}

	h.Detach(child)
	h.parent[child] = parent
	h.children[parent] = append(h.children[parent], child)
	return nil
}

// Detach removes child from its parent. No-op for roots.
func (h *Hierarchy) Detach(child ecs.Entity) {
	p, ok := h.parent[child]
	if !ok {
		return
	}
	delete(h.parent, child)

	siblings := h.children[p]
	for i, c := range siblings {
		if c == child {
			siblings = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(siblings) == 0 {
		delete(h.children, p)
	} else {
		h.children[p] = siblings
	}
}

// Parent returns the parent of e.
func (h *Hierarchy) Parent(e ecs.Entity) (ecs.Entity, bool) {
	p, ok := h.parent[e]
	return p, ok
}

// Children returns the direct children of e in attachment order.
func (h *Hierarchy) Children(e ecs.Entity) []ecs.Entity {
	return h.children[e]
}

// Walk visits root and all its descendants depth-first, parents before children.
func (h *Hierarchy) Walk(root ecs.Entity, visit func(e ecs.Entity)) {
	stack := []ecs.Entity{root}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(e)

		kids := h.children[e]
		// Push in reverse so children pop in attachment order
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

// Descendants returns root followed by all its descendants.
func (h *Hierarchy) Descendants(root ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	h.Walk(root, func(e ecs.Entity) { out = append(out, e) })
	return out
}

// DefaultLayer is the layer SwitchLayer gives to descendants.
const DefaultLayer = 0

// SwitchLayer puts root on layer and every descendant on DefaultLayer.
// Returns the number of entities updated.
func (h *Hierarchy) SwitchLayer(root ecs.Entity, layer int) int {
	return h.SwitchLayers(root, layer, DefaultLayer)
}

// SwitchLayers puts root on layer and every descendant on descendantLayer.
// Returns the number of entities updated.
func (h *Hierarchy) SwitchLayers(root ecs.Entity, layer, descendantLayer int) int {
	count := 0
	h.Walk(root, func(e ecs.Entity) {
		value := descendantLayer
		if e == root {
			value = layer
		}
		if h.layers.Has(e) {
			h.layers.Get(e).Value = value
		} else {
			h.layers.Add(e, &components.Layer{Value: value})
		}
		count++
	})
	return count
}
