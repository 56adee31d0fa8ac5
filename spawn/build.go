package spawn

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warbound/ecs"
	"github.com/milk9111/warbound/ecs/components"
	"github.com/milk9111/warbound/prefabs"
)

type buildContext struct {
	Position cp.Vector
	Rotation float64
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":  addTransform,
	"sprite":     addSprite,
	"collider":   addCollider,
	"health":     addHealth,
	"combat":     addCombat,
	"move_speed": addMoveSpeed,
	"production": addProduction,
	"script":     addScript,
}

// transform first so colliders and scripts can read placement
var componentBuildOrder = []string{
	"transform",
	"sprite",
	"collider",
	"health",
	"combat",
	"move_speed",
	"production",
	"script",
}

func buildEntity(w *ecs.World, spec *prefabs.EntitySpec, pos cp.Vector, rotation float64) (ecs.Entity, error) {
	if w == nil {
		return ecs.Entity{}, fmt.Errorf("build entity: world is nil")
	}
	if spec == nil || len(spec.Components) == 0 {
		return ecs.Entity{}, fmt.Errorf("build entity: template %q does not define components", specName(spec))
	}

	e := w.CreateEntity()
	ctx := &buildContext{Position: pos, Rotation: rotation}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}
	if _, ok := remaining["transform"]; !ok {
		remaining["transform"] = nil
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		builder := componentRegistry[name]
		if err := builder(w, e, raw, ctx); err != nil {
			w.DestroyEntity(e)
			return ecs.Entity{}, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		w.DestroyEntity(e)
		return ecs.Entity{}, fmt.Errorf("build entity: %q: no builder for component %q", spec.Name, names[0])
	}

	if c := w.GetCollider(e); c != nil && w.Physics() != nil {
		w.Physics().EnsureBody(e.ID, w.GetTransform(e), c)
	}

	return e, nil
}

func specName(spec *prefabs.EntitySpec) string {
	if spec == nil {
		return ""
	}
	return spec.Name
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	w.SetTransform(e, &components.Transform{
		X:        ctx.Position.X,
		Y:        ctx.Position.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: ctx.Rotation,
	})
	return nil
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Image == "" {
		return nil
	}
	w.SetSprite(e, &components.Sprite{
		Image:   spec.Image,
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
	})
	return nil
}

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	if spec.Width <= 0 {
		spec.Width = 32
	}
	if spec.Height <= 0 {
		spec.Height = 32
	}
	if !spec.Static && spec.Mass <= 0 {
		spec.Mass = 1
	}
	w.SetCollider(e, &components.Collider{
		Width:  spec.Width,
		Height: spec.Height,
		Mass:   spec.Mass,
		Static: spec.Static,
	})
	return nil
}

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		spec.Max = 1
	}
	w.SetHealth(e, &components.Health{Current: spec.Max, Max: spec.Max})
	return nil
}

func addCombat(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CombatComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode combat spec: %w", err)
	}
	w.SetCombat(e, &components.Combat{
		Attack:         spec.Attack,
		AttackRange:    spec.AttackRange,
		CooldownFrames: spec.CooldownFrames,
	})
	return nil
}

func addMoveSpeed(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MoveSpeedComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode move speed spec: %w", err)
	}
	w.SetMoveSpeed(e, &components.MoveSpeed{Speed: spec.Speed})
	return nil
}

func addProduction(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ProductionComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode production spec: %w", err)
	}
	if spec.QueueSize <= 0 {
		spec.QueueSize = 5
	}
	w.SetProduction(e, &components.Production{
		RallyX:    spec.RallyX,
		RallyY:    spec.RallyY,
		QueueSize: spec.QueueSize,
	})
	return nil
}

func addScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ScriptComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode script spec: %w", err)
	}
	if spec.Script == "" {
		return nil
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return fmt.Errorf("load script %q: %w", spec.Script, err)
	}
	w.SetBehavior(e, components.NewScriptBehavior(spec.Script, src))
	return nil
}
