package spawn

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warbound/ecs"
	"github.com/milk9111/warbound/ecs/components"
	"github.com/milk9111/warbound/game"
	"github.com/milk9111/warbound/prefabs"
)

// DataInitializer is the optional capability a spawned instance's components
// may expose. The spawner invokes it at most once per spawn, passing the
// resolved data record and the owning player id. When several components
// implement it, only the first one in the world's component describe order
// receives the call; behaviors come before stat components there, so a
// scripted prefab's script is the single init hook.
type DataInitializer interface {
	InitFromRecord(rec any, ownerID int) error
}

// Spawner is the single entry point for turning an entity ID into a live
// world instance. It resolves the ID against a data registry, resolves the
// record against the prefab templates, instantiates the template into the
// world, and dispatches the optional initialization hook.
//
// The spawner owns none of its collaborators; all four are injected once via
// Initialize by the composition root.
type Spawner struct {
	units     *game.UnitRegistry
	buildings *game.BuildingRegistry
	resolver  *prefabs.Resolver
	world     *ecs.World

	// LogSpawns emits a diagnostic on every successful spawn. It never
	// affects control flow.
	LogSpawns bool
}

func NewSpawner() *Spawner {
	return &Spawner{}
}

// Initialize injects the spawner's collaborators. Must be called before any
// spawn call.
func (s *Spawner) Initialize(units *game.UnitRegistry, buildings *game.BuildingRegistry, resolver *prefabs.Resolver, world *ecs.World) {
	if s == nil {
		return
	}
	s.units = units
	s.buildings = buildings
	s.resolver = resolver
	s.world = world
}

// IsInitialized reports whether all collaborators are set.
func (s *Spawner) IsInitialized() bool {
	return s != nil && s.units != nil && s.buildings != nil && s.resolver != nil && s.world != nil
}

// SpawnUnit creates one live instance of the unit type id at pos with the
// given rotation, owned by ownerID. On failure it returns a zero entity and
// an error wrapping one of ErrNotInitialized, ErrUnknownEntityID, or
// ErrMissingTemplate.
//
// If the instance exposes a DataInitializer capability and the hook fails,
// the error is returned as-is and the instance stays in the world.
func (s *Spawner) SpawnUnit(id string, pos cp.Vector, rotation float64, ownerID int) (ecs.Entity, error) {
	if !s.IsInitialized() {
		return ecs.Entity{}, fmt.Errorf("spawn unit %q: %w", id, ErrNotInitialized)
	}

	rec, ok := s.units.Get(id)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("spawn unit %q: %w", id, ErrUnknownEntityID)
	}

	// resolve by the record's own ID, not the caller's raw input, in case
	// the registry ever normalizes or aliases IDs
	spec, ok := s.resolver.UnitTemplate(rec.ID)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("spawn unit %q: %w", rec.ID, ErrMissingTemplate)
	}

	e, err := s.instantiate(spec, rec.DisplayName, pos, rotation, ownerID)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("spawn unit %q: %w", rec.ID, err)
	}

	if err := s.dispatchInit(e, rec, ownerID); err != nil {
		return e, err
	}

	if s.LogSpawns {
		log.Printf("Spawner: spawned unit %q at (%.1f, %.1f) for player %d", rec.ID, pos.X, pos.Y, ownerID)
	}
	return e, nil
}

// SpawnUnitAt is SpawnUnit with an identity rotation.
func (s *Spawner) SpawnUnitAt(id string, pos cp.Vector, ownerID int) (ecs.Entity, error) {
	return s.SpawnUnit(id, pos, 0, ownerID)
}

// SpawnBuilding is the building-family counterpart of SpawnUnit.
func (s *Spawner) SpawnBuilding(id string, pos cp.Vector, rotation float64, ownerID int) (ecs.Entity, error) {
	if !s.IsInitialized() {
		return ecs.Entity{}, fmt.Errorf("spawn building %q: %w", id, ErrNotInitialized)
	}

	rec, ok := s.buildings.Get(id)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("spawn building %q: %w", id, ErrUnknownEntityID)
	}

	spec, ok := s.resolver.BuildingTemplate(rec.ID)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("spawn building %q: %w", rec.ID, ErrMissingTemplate)
	}

	e, err := s.instantiate(spec, rec.DisplayName, pos, rotation, ownerID)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("spawn building %q: %w", rec.ID, err)
	}

	if err := s.dispatchInit(e, rec, ownerID); err != nil {
		return e, err
	}

	if s.LogSpawns {
		log.Printf("Spawner: spawned building %q at (%.1f, %.1f) for player %d", rec.ID, pos.X, pos.Y, ownerID)
	}
	return e, nil
}

// SpawnBuildingAt is SpawnBuilding with an identity rotation.
func (s *Spawner) SpawnBuildingAt(id string, pos cp.Vector, ownerID int) (ecs.Entity, error) {
	return s.SpawnBuilding(id, pos, 0, ownerID)
}

func (s *Spawner) instantiate(spec *prefabs.EntitySpec, displayName string, pos cp.Vector, rotation float64, ownerID int) (ecs.Entity, error) {
	e, err := buildEntity(s.world, spec, pos, rotation)
	if err != nil {
		return ecs.Entity{}, err
	}

	s.world.SetLabel(e, &components.Label{Value: fmt.Sprintf("%s (P%d)", displayName, ownerID)})
	s.world.SetOwnership(e, &components.Ownership{PlayerID: ownerID})
	return e, nil
}

func (s *Spawner) dispatchInit(e ecs.Entity, rec any, ownerID int) error {
	for _, c := range s.world.DescribeComponents(e) {
		if init, ok := c.(DataInitializer); ok {
			return init.InitFromRecord(rec, ownerID)
		}
	}
	return nil
}
