// Package scene hosts the objects: it owns the ECS world, drives the
// fixed-timestep loop and exposes the runtime controls.
package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/components"
	"github.com/pthm-cable/transformutils/config"
	"github.com/pthm-cable/transformutils/mathutil"
	"github.com/pthm-cable/transformutils/motion"
	"github.com/pthm-cable/transformutils/registry"
	"github.com/pthm-cable/transformutils/systems"
	"github.com/pthm-cable/transformutils/telemetry"
)

// ErrUnknownObject is returned when a handle names no scene object.
var ErrUnknownObject = errors.New("unknown object")

// Options holds configuration for scene initialization.
type Options struct {
	Seed      int64  // RNG seed for spawn positions
	OutputDir string // Directory for CSV logs and config snapshot (empty = disabled)
	LogStats  bool   // Log perf stats and object state via slog
}

// Scene holds the complete scene state.
type Scene struct {
	cfg   *config.Config
	world *ecs.World
	seed  int64

	objects *registry.Registry[ecs.Entity]

	// Entity mappers
	objectMapper *ecs.Map4[components.Name, components.Transform, components.Layer, components.Enabled]
	nameMap      *ecs.Map[components.Name]
	transformMap *ecs.Map[components.Transform]
	layerMap     *ecs.Map[components.Layer]
	enabledMap   *ecs.Map[components.Enabled]
	levMap       *ecs.Map[components.Levitater]
	spinMap      *ecs.Map[components.Spinner]

	// Systems
	hierarchy  *systems.Hierarchy
	frames     *systems.Frames
	levitation *systems.LevitationSystem
	spin       *systems.SpinSystem
	gizmos     *systems.GizmoSystem
	systemInfo *systems.SystemRegistry

	// Telemetry
	perf       *telemetry.PerfCollector
	output     *telemetry.OutputManager
	summarizer *telemetry.Summarizer
	traceBuf   []telemetry.TraceSample
	logStats   bool

	scheduler *Scheduler
	segments  []systems.Segment

	tick int32
}

// New builds the world and spawns the configured objects.
func New(cfg *config.Config, opts Options) (*Scene, error) {
	world := ecs.NewWorld()
	hierarchy := systems.NewHierarchy(world)
	frames := systems.NewFrames(world, hierarchy)

	s := &Scene{
		cfg:          cfg,
		world:        world,
		seed:         opts.Seed,
		objects:      registry.New[ecs.Entity](),
		objectMapper: ecs.NewMap4[components.Name, components.Transform, components.Layer, components.Enabled](world),
		nameMap:      ecs.NewMap[components.Name](world),
		transformMap: ecs.NewMap[components.Transform](world),
		layerMap:     ecs.NewMap[components.Layer](world),
		enabledMap:   ecs.NewMap[components.Enabled](world),
		levMap:       ecs.NewMap[components.Levitater](world),
		spinMap:      ecs.NewMap[components.Spinner](world),
		hierarchy:    hierarchy,
		frames:       frames,
		levitation:   systems.NewLevitationSystem(world, frames),
		spin:         systems.NewSpinSystem(world, frames),
		gizmos:       systems.NewGizmoSystem(world, frames),
		systemInfo:   systems.NewSystemRegistry(),
		perf:         telemetry.NewPerfCollector(perfWindow(cfg)),
		summarizer:   telemetry.NewSummarizer(),
		logStats:     opts.LogStats,
		scheduler:    NewScheduler(cfg.Physics.DT, cfg.Physics.MaxStepsPerFrame),
	}

	if err := s.spawnObjects(); err != nil {
		return nil, err
	}
	s.collectSegments()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	s.output = output
	if err := s.output.WriteConfig(cfg); err != nil {
		s.output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	return s, nil
}

// perfWindow is one second of fixed steps.
func perfWindow(cfg *config.Config) int {
	return max(1, int(1/cfg.Physics.DT))
}

// spawnObjects creates one entity per configured object, then links parents
// and enables everything not marked disabled.
func (s *Scene) spawnObjects() error {
	for _, oc := range s.cfg.Objects {
		if _, err := s.spawn(oc); err != nil {
			return err
		}
	}

	for _, oc := range s.cfg.Objects {
		if oc.Parent == "" {
			continue
		}
		child := s.objects.MustLookup(registry.Handle(oc.Name))
		parent := s.objects.MustLookup(registry.Handle(oc.Parent))
		if err := s.hierarchy.SetParent(child, parent); err != nil {
			return fmt.Errorf("object %q: %w", oc.Name, err)
		}
	}

	for _, oc := range s.cfg.Objects {
		if oc.Disabled {
			continue
		}
		if err := s.SetEnabled(oc.Name, true); err != nil {
			return err
		}
	}
	return nil
}

// spawn creates a disabled entity for one object config.
func (s *Scene) spawn(oc config.ObjectConfig) (ecs.Entity, error) {
	var position r3.Vec
	if oc.Position != nil {
		position = oc.Position.R3()
	} else {
		position = mathutil.RandomVectorInCube(s.spawnRNG(oc.Name), s.cfg.Spawn.Min.R3(), s.cfg.Spawn.Max.R3())
	}
	rotation := mathutil.Identity
	if oc.Rotation != nil {
		rotation = mathutil.FromEuler(oc.Rotation.R3())
	}

	name := components.Name{Value: oc.Name}
	tr := components.Transform{Position: position, Rotation: rotation}
	layer := components.Layer{Value: oc.Layer}
	enabled := components.Enabled{Value: false}
	entity := s.objectMapper.NewEntity(&name, &tr, &layer, &enabled)

	if err := s.objects.Register(registry.Handle(oc.Name), entity); err != nil {
		return entity, fmt.Errorf("spawning object: %w", err)
	}

	if oc.Levitater != nil {
		lev := components.NewLevitater(motion.OscillatorSettings{
			Amplitude: oc.Levitater.Range,
			Period:    oc.Levitater.Frequency,
			Axis:      oc.Levitater.Axis.R3(),
		}, oc.Levitater.DebugDraw)
		s.levMap.Add(entity, &lev)
	}
	if oc.Spinner != nil {
		spin := components.NewSpinner(motion.RotatorSettings{
			Period: oc.Spinner.Frequency,
			Axis:   oc.Spinner.Axis.R3(),
		}, oc.Spinner.DebugDraw)
		s.spinMap.Add(entity, &spin)
	}

	return entity, nil
}

// spawnRNG returns a random source for one object. Each object draws from its
// own stream keyed by name, so adding objects leaves other placements alone.
func (s *Scene) spawnRNG(name string) *rand.Rand {
	return rand.New(rand.NewSource(s.seed ^ int64(xxhash.Sum64String(name))))
}

// entity resolves a handle to its entity.
func (s *Scene) entity(handle string) (ecs.Entity, error) {
	e, ok := s.objects.Lookup(registry.Handle(handle))
	if !ok {
		return ecs.Entity{}, fmt.Errorf("%q: %w", handle, ErrUnknownObject)
	}
	return e, nil
}

// Step advances the scene by one fixed tick.
func (s *Scene) Step() {
	dt := s.cfg.Physics.DT

	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhaseLevitation)
	s.levitation.Update(dt)

	s.perf.StartPhase(telemetry.PhaseSpin)
	s.spin.Update(dt)

	s.tick++

	s.perf.StartPhase(telemetry.PhaseGizmos)
	s.collectSegments()

	s.perf.StartPhase(telemetry.PhaseTrace)
	s.recordTrace()

	s.perf.EndTick()

	s.flushTelemetry()
}

// Advance runs the fixed steps owed for frameSeconds of wall time.
// Returns the number of steps taken.
func (s *Scene) Advance(frameSeconds float64) int {
	steps := s.scheduler.Advance(frameSeconds)
	for range steps {
		s.Step()
	}
	return steps
}

// Tick returns the number of fixed steps taken.
func (s *Scene) Tick() int32 {
	return s.tick
}

// SimTime returns the simulated time in seconds.
func (s *Scene) SimTime() float64 {
	return float64(s.tick) * s.cfg.Physics.DT
}

// Seed returns the RNG seed the scene was built with.
func (s *Scene) Seed() int64 {
	return s.seed
}

// Config returns the scene configuration.
func (s *Scene) Config() *config.Config {
	return s.cfg
}

// Handles returns object handles in spawn order.
func (s *Scene) Handles() []string {
	handles := s.objects.Handles()
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = string(h)
	}
	return out
}

// Systems returns metadata about the per-tick systems.
func (s *Scene) Systems() *systems.SystemRegistry {
	return s.systemInfo
}

// PerfStats returns timing statistics over the recent window.
func (s *Scene) PerfStats() telemetry.PerfStats {
	return s.perf.Stats()
}

// RecordFrame records frame timing for graphics mode.
func (s *Scene) RecordFrame() {
	s.perf.RecordFrame()
}

// Summaries returns the per-object trace summaries so far.
func (s *Scene) Summaries() []telemetry.ObjectSummary {
	return s.summarizer.Summaries()
}

// Close writes the run summary and closes output files.
func (s *Scene) Close() error {
	summaries := s.summarizer.Summaries()
	if s.logStats {
		for _, sum := range summaries {
			slog.Info("object summary", "summary", sum)
		}
	}
	if err := s.output.WriteSummary(summaries); err != nil {
		s.output.Close()
		return err
	}
	return s.output.Close()
}

// Object is a read-only view of one scene object.
type Object struct {
	Handle    string
	Entity    ecs.Entity
	Position  r3.Vec      // world space
	Rotation  quat.Number // world space
	Layer     int
	Enabled   bool
	Levitater *components.Levitater
	Spinner   *components.Spinner
}

// Object returns a view of the named object.
func (s *Scene) Object(handle string) (Object, error) {
	e, err := s.entity(handle)
	if err != nil {
		return Object{}, err
	}
	return s.object(handle, e), nil
}

// Objects returns views of all objects in spawn order.
func (s *Scene) Objects() []Object {
	handles := s.objects.Handles()
	out := make([]Object, 0, len(handles))
	for _, h := range handles {
		out = append(out, s.object(string(h), s.objects.MustLookup(h)))
	}
	return out
}

func (s *Scene) object(handle string, e ecs.Entity) Object {
	pos, rot := s.worldPose(e)
	obj := Object{
		Handle:   handle,
		Entity:   e,
		Position: pos,
		Rotation: rot,
		Layer:    s.layerMap.Get(e).Value,
		Enabled:  s.enabledMap.Get(e).Value,
	}
	if s.levMap.Has(e) {
		obj.Levitater = s.levMap.Get(e)
	}
	if s.spinMap.Has(e) {
		obj.Spinner = s.spinMap.Get(e)
	}
	return obj
}
