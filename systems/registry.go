package systems

import (
	"github.com/pthm-cable/transformutils/registry"
	"github.com/pthm-cable/transformutils/telemetry"
)

// SystemInfo describes a per-tick system for the perf panel.
type SystemInfo struct {
	ID          string // Perf phase name
	Name        string
	Description string
	Category    string // "motion", "visual" or "internal"
}

// SystemRegistry catalogs the per-tick systems keyed by perf phase.
type SystemRegistry struct {
	systems *registry.Registry[SystemInfo]
}

// NewSystemRegistry creates a registry holding the scene's systems.
func NewSystemRegistry() *SystemRegistry {
	r := &SystemRegistry{systems: registry.New[SystemInfo]()}
	for _, info := range []SystemInfo{
		{ID: telemetry.PhaseLevitation, Name: "Levitation", Description: "Moves levitaters along their axis", Category: "motion"},
		{ID: telemetry.PhaseSpin, Name: "Spin", Description: "Rotates spinners about their axis", Category: "motion"},
		{ID: telemetry.PhaseGizmos, Name: "Gizmos", Description: "Collects debug segments", Category: "visual"},
		{ID: telemetry.PhaseTrace, Name: "Trace", Description: "Records transforms to trace.csv", Category: "internal"},
	} {
		// IDs above are distinct constants
		_ = r.Register(info)
	}
	return r
}

// Register adds a system. A second system with the same ID is rejected.
func (r *SystemRegistry) Register(info SystemInfo) error {
	return r.systems.Register(registry.Handle(info.ID), info)
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	return r.systems.Lookup(registry.Handle(id))
}

// GetName returns the display name for id, or id itself when unknown.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.Get(id); ok {
		return info.Name
	}
	return id
}

// ByCategory returns the systems in category, in registration order.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var out []SystemInfo
	for _, h := range r.systems.Handles() {
		if info := r.systems.MustLookup(h); info.Category == category {
			out = append(out, info)
		}
	}
	return out
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	handles := r.systems.Handles()
	ids := make([]string, len(handles))
	for i, h := range handles {
		ids[i] = string(h)
	}
	return ids
}
