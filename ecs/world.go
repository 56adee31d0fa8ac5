package ecs

import "github.com/milk9111/warbound/ecs/components"

// World owns entities and their component storage. It is the instantiation
// substrate the spawner places new instances into.
type World struct {
	entities entityStore

	transforms  *Store
	labels      *Store
	owners      *Store
	sprites     *Store
	moveSpeeds  *Store
	healths     *Store
	combats     *Store
	productions *Store
	colliders   *Store
	behaviors   *Store

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores() {
		s.Remove(e.ID)
	}
	if w.physicsWorld != nil {
		w.physicsWorld.RemoveBody(e.ID)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// SetPhysicsWorld attaches a physics world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// Physics returns the attached physics world, if any.
func (w *World) Physics() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// DescribeComponents returns every component attached to e, behaviors first.
// The order is fixed so callers probing for capabilities get a deterministic
// answer.
func (w *World) DescribeComponents(e Entity) []any {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	var out []any
	for _, s := range w.stores() {
		if v := s.Get(e.ID); v != nil {
			out = append(out, v)
		}
	}
	return out
}

func (w *World) stores() []*Store {
	return []*Store{
		w.Behaviors(),
		w.Combats(),
		w.Productions(),
		w.Healths(),
		w.MoveSpeeds(),
		w.Transforms(),
		w.Sprites(),
		w.Labels(),
		w.Owners(),
		w.Colliders(),
	}
}

// Transforms returns the transform storage.
func (w *World) Transforms() *Store {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &Store{}
	}
	return w.transforms
}

// Labels returns the label storage.
func (w *World) Labels() *Store {
	if w == nil {
		return nil
	}
	if w.labels == nil {
		w.labels = &Store{}
	}
	return w.labels
}

// Owners returns the ownership storage.
func (w *World) Owners() *Store {
	if w == nil {
		return nil
	}
	if w.owners == nil {
		w.owners = &Store{}
	}
	return w.owners
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *Store {
	if w == nil {
		return nil
	}
	if w.sprites == nil {
		w.sprites = &Store{}
	}
	return w.sprites
}

// MoveSpeeds returns the move speed storage.
func (w *World) MoveSpeeds() *Store {
	if w == nil {
		return nil
	}
	if w.moveSpeeds == nil {
		w.moveSpeeds = &Store{}
	}
	return w.moveSpeeds
}

// Healths returns the health storage.
func (w *World) Healths() *Store {
	if w == nil {
		return nil
	}
	if w.healths == nil {
		w.healths = &Store{}
	}
	return w.healths
}

// Combats returns the combat storage.
func (w *World) Combats() *Store {
	if w == nil {
		return nil
	}
	if w.combats == nil {
		w.combats = &Store{}
	}
	return w.combats
}

// Productions returns the production storage.
func (w *World) Productions() *Store {
	if w == nil {
		return nil
	}
	if w.productions == nil {
		w.productions = &Store{}
	}
	return w.productions
}

// Colliders returns the collider storage.
func (w *World) Colliders() *Store {
	if w == nil {
		return nil
	}
	if w.colliders == nil {
		w.colliders = &Store{}
	}
	return w.colliders
}

// Behaviors returns the behavior storage.
func (w *World) Behaviors() *Store {
	if w == nil {
		return nil
	}
	if w.behaviors == nil {
		w.behaviors = &Store{}
	}
	return w.behaviors
}

// SetTransform attaches a transform component.
func (w *World) SetTransform(e Entity, t *components.Transform) {
	if w == nil || t == nil {
		return
	}
	w.Transforms().Set(e.ID, t)
}

// GetTransform returns a transform component.
func (w *World) GetTransform(e Entity) *components.Transform {
	if w == nil {
		return nil
	}
	if t, ok := w.Transforms().Get(e.ID).(*components.Transform); ok {
		return t
	}
	return nil
}

// SetLabel attaches a label component.
func (w *World) SetLabel(e Entity, l *components.Label) {
	if w == nil || l == nil {
		return
	}
	w.Labels().Set(e.ID, l)
}

// GetLabel returns a label component.
func (w *World) GetLabel(e Entity) *components.Label {
	if w == nil {
		return nil
	}
	if l, ok := w.Labels().Get(e.ID).(*components.Label); ok {
		return l
	}
	return nil
}

// SetOwnership attaches an ownership component.
func (w *World) SetOwnership(e Entity, o *components.Ownership) {
	if w == nil || o == nil {
		return
	}
	w.Owners().Set(e.ID, o)
}

// GetOwnership returns an ownership component.
func (w *World) GetOwnership(e Entity) *components.Ownership {
	if w == nil {
		return nil
	}
	if o, ok := w.Owners().Get(e.ID).(*components.Ownership); ok {
		return o
	}
	return nil
}

// SetSprite attaches a sprite component.
func (w *World) SetSprite(e Entity, s *components.Sprite) {
	if w == nil || s == nil {
		return
	}
	w.Sprites().Set(e.ID, s)
}

// GetSprite returns a sprite component.
func (w *World) GetSprite(e Entity) *components.Sprite {
	if w == nil {
		return nil
	}
	if s, ok := w.Sprites().Get(e.ID).(*components.Sprite); ok {
		return s
	}
	return nil
}

// SetMoveSpeed attaches a move speed component.
func (w *World) SetMoveSpeed(e Entity, m *components.MoveSpeed) {
	if w == nil || m == nil {
		return
	}
	w.MoveSpeeds().Set(e.ID, m)
}

// GetMoveSpeed returns a move speed component.
func (w *World) GetMoveSpeed(e Entity) *components.MoveSpeed {
	if w == nil {
		return nil
	}
	if m, ok := w.MoveSpeeds().Get(e.ID).(*components.MoveSpeed); ok {
		return m
	}
	return nil
}

// SetHealth attaches a health component.
func (w *World) SetHealth(e Entity, h *components.Health) {
	if w == nil || h == nil {
		return
	}
	w.Healths().Set(e.ID, h)
}

// GetHealth returns a health component.
func (w *World) GetHealth(e Entity) *components.Health {
	if w == nil {
		return nil
	}
	if h, ok := w.Healths().Get(e.ID).(*components.Health); ok {
		return h
	}
	return nil
}

// SetCombat attaches a combat component.
func (w *World) SetCombat(e Entity, c *components.Combat) {
	if w == nil || c == nil {
		return
	}
	w.Combats().Set(e.ID, c)
}

// GetCombat returns a combat component.
func (w *World) GetCombat(e Entity) *components.Combat {
	if w == nil {
		return nil
	}
	if c, ok := w.Combats().Get(e.ID).(*components.Combat); ok {
		return c
	}
	return nil
}

// SetProduction attaches a production component.
func (w *World) SetProduction(e Entity, p *components.Production) {
	if w == nil || p == nil {
		return
	}
	w.Productions().Set(e.ID, p)
}

// GetProduction returns a production component.
func (w *World) GetProduction(e Entity) *components.Production {
	if w == nil {
		return nil
	}
	if p, ok := w.Productions().Get(e.ID).(*components.Production); ok {
		return p
	}
	return nil
}

// SetCollider attaches a collider component.
func (w *World) SetCollider(e Entity, c *components.Collider) {
	if w == nil || c == nil {
		return
	}
	w.Colliders().Set(e.ID, c)
}

// GetCollider returns a collider component.
func (w *World) GetCollider(e Entity) *components.Collider {
	if w == nil {
		return nil
	}
	if c, ok := w.Colliders().Get(e.ID).(*components.Collider); ok {
		return c
	}
	return nil
}

// SetBehavior attaches an opaque behavior component.
func (w *World) SetBehavior(e Entity, b any) {
	if w == nil || b == nil {
		return
	}
	w.Behaviors().Set(e.ID, b)
}

// GetBehavior returns the behavior component, or nil.
func (w *World) GetBehavior(e Entity) any {
	if w == nil {
		return nil
	}
	return w.Behaviors().Get(e.ID)
}
