package scene

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/systems"
)

// SetEnabled activates or deactivates an object's motion components.
// Activation captures the current pose; deactivation restores it.
func (s *Scene) SetEnabled(handle string, enabled bool) error {
	e, err := s.entity(handle)
	if err != nil {
		return err
	}

	state := s.enabledMap.Get(e)
	if state.Value == enabled {
		return nil
	}
	state.Value = enabled

	if s.levMap.Has(e) {
		lev := s.levMap.Get(e)
		if enabled {
			lev.Activate(s.frames.WorldPosition(e))
		} else {
			s.frames.SetWorldPosition(e, lev.Deactivate())
		}
	}
	if s.spinMap.Has(e) {
		spin := s.spinMap.Get(e)
		if enabled {
			spin.Activate(s.frames.WorldRotation(e))
		} else {
			s.frames.SetWorldRotation(e, spin.Deactivate())
		}
	}

	slog.Debug("object enabled changed", "object", handle, "enabled", enabled, "tick", s.tick)
	return nil
}

// UpdateAmplitude changes a levitater's range and restarts it from the current position.
func (s *Scene) UpdateAmplitude(handle string, amplitude float64) error {
	e, err := s.levitater(handle)
	if err != nil {
		return err
	}
	s.levMap.Get(e).UpdateAmplitude(amplitude, s.frames.WorldPosition(e))
	return nil
}

// UpdatePeriod changes a levitater's period and restarts it from the current position.
func (s *Scene) UpdatePeriod(handle string, period float64) error {
	e, err := s.levitater(handle)
	if err != nil {
		return err
	}
	s.levMap.Get(e).UpdatePeriod(period, s.frames.WorldPosition(e))
	return nil
}

// UpdateAxis changes a levitater's axis and restarts it from the current position.
func (s *Scene) UpdateAxis(handle string, axis r3.Vec) error {
	e, err := s.levitater(handle)
	if err != nil {
		return err
	}
	s.levMap.Get(e).UpdateAxis(axis, s.frames.WorldPosition(e))
	return nil
}

// UpdateSpinPeriod changes a spinner's period and re-anchors it at the current orientation.
func (s *Scene) UpdateSpinPeriod(handle string, period float64) error {
	e, err := s.spinner(handle)
	if err != nil {
		return err
	}
	s.spinMap.Get(e).UpdatePeriod(period, s.frames.WorldRotation(e))
	return nil
}

// UpdateSpinAxis changes a spinner's axis and re-anchors it at the current orientation.
func (s *Scene) UpdateSpinAxis(handle string, axis r3.Vec) error {
	e, err := s.spinner(handle)
	if err != nil {
		return err
	}
	s.spinMap.Get(e).UpdateAxis(axis, s.frames.WorldRotation(e))
	return nil
}

// SwitchLayer moves an object to layer and all its descendants to
// systems.DefaultLayer. Returns the number of objects changed.
func (s *Scene) SwitchLayer(handle string, layer int) (int, error) {
	return s.SwitchLayers(handle, layer, systems.DefaultLayer)
}

// SwitchLayers moves an object to layer and all its descendants to
// descendantLayer. Returns the number of objects changed.
func (s *Scene) SwitchLayers(handle string, layer, descendantLayer int) (int, error) {
	e, err := s.entity(handle)
	if err != nil {
		return 0, err
	}
	n := s.hierarchy.SwitchLayers(e, layer, descendantLayer)
	slog.Debug("layer switched", "object", handle, "layer", layer, "descendant_layer", descendantLayer, "objects", n)
	return n, nil
}

// SetParent attaches child under parent. An empty parent detaches child.
// The child keeps its world pose, so active motion carries on in place.
func (s *Scene) SetParent(child, parent string) error {
	c, err := s.entity(child)
	if err != nil {
		return err
	}
	pos, rot := s.frames.World(c)
	if parent == "" {
		s.hierarchy.Detach(c)
	} else {
		p, err := s.entity(parent)
		if err != nil {
			return err
		}
		if err := s.hierarchy.SetParent(c, p); err != nil {
			return err
		}
	}
	s.frames.SetWorld(c, pos, rot)
	return nil
}

func (s *Scene) levitater(handle string) (ecs.Entity, error) {
	e, err := s.entity(handle)
	if err != nil {
		return e, err
	}
	if !s.levMap.Has(e) {
		return e, fmt.Errorf("%q has no levitater: %w", handle, ErrUnknownObject)
	}
	return e, nil
}

func (s *Scene) spinner(handle string) (ecs.Entity, error) {
	e, err := s.entity(handle)
	if err != nil {
		return e, err
	}
	if !s.spinMap.Has(e) {
		return e, fmt.Errorf("%q has no spinner: %w", handle, ErrUnknownObject)
	}
	return e, nil
}
