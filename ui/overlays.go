package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/transformutils/registry"
)

// OverlayID identifies a toggleable view layer.
type OverlayID string

const (
	OverlayGizmos OverlayID = "gizmos"
	OverlayGrid   OverlayID = "grid"
	OverlayLabels OverlayID = "labels"
	OverlayPerf   OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID       OverlayID
	Name     string
	Key      int32  // Toggle key (0 = none)
	KeyLabel string // Key shown in the controls panel
	Category string // "visual" or "debug"
	Default  bool   // Enabled at startup
}

// OverlayRegistry tracks overlay descriptors and their on/off state.
type OverlayRegistry struct {
	overlays *registry.Registry[OverlayDescriptor]
	enabled  map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with the viewer's overlays.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{
		overlays: registry.New[OverlayDescriptor](),
		enabled:  make(map[OverlayID]bool),
	}
	for _, desc := range []OverlayDescriptor{
		{ID: OverlayGrid, Name: "Ground Grid", Key: rl.KeyG, KeyLabel: "G", Category: "visual", Default: true},
		{ID: OverlayLabels, Name: "Labels", Key: rl.KeyN, KeyLabel: "N", Category: "visual", Default: true},
		{ID: OverlayGizmos, Name: "Gizmos", Key: rl.KeyZ, KeyLabel: "Z", Category: "debug", Default: true},
		{ID: OverlayPerf, Name: "Performance", Key: rl.KeyP, KeyLabel: "P", Category: "debug"},
	} {
		_ = r.Register(desc)
	}
	return r
}

// Register adds an overlay in its default state.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) error {
	if err := r.overlays.Register(registry.Handle(desc.ID), desc); err != nil {
		return err
	}
	r.enabled[desc.ID] = desc.Default
	return nil
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.overlays.Lookup(registry.Handle(id)); !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled reports whether an overlay is on.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// all returns descriptors in registration order.
func (r *OverlayRegistry) all() []OverlayDescriptor {
	handles := r.overlays.Handles()
	out := make([]OverlayDescriptor, len(handles))
	for i, h := range handles {
		out[i] = r.overlays.MustLookup(h)
	}
	return out
}

// ByCategory returns overlays in category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var out []OverlayDescriptor
	for _, desc := range r.all() {
		if desc.Category == category {
			out = append(out, desc)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (r *OverlayRegistry) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, desc := range r.all() {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress toggles the overlay bound to key, if any.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool) {
	for _, desc := range r.all() {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID)
		}
	}
	return "", false
}
