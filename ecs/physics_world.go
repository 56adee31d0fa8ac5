package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warbound/ecs/components"
)

// PhysicsWorld owns the Chipmunk space and the bodies of placed entities.
type PhysicsWorld struct {
	space *cp.Space

	entityToBody  map[int]*cp.Body
	shapeToEntity map[*cp.Shape]int
}

// NewPhysicsWorld creates a zero-gravity top-down physics space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	return &PhysicsWorld{
		space:         space,
		entityToBody:  make(map[int]*cp.Body),
		shapeToEntity: make(map[*cp.Shape]int),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// EnsureBody creates a body and box shape for an entity if it does not have
// one yet, placed at the entity's transform. The collider keeps a reference
// to the body.
func (pw *PhysicsWorld) EnsureBody(id int, t *components.Transform, c *components.Collider) *cp.Body {
	if pw == nil || pw.space == nil || id <= 0 || t == nil || c == nil {
		return nil
	}
	if body, ok := pw.entityToBody[id]; ok {
		return body
	}

	width := c.Width * scaleOrOne(t.ScaleX)
	height := c.Height * scaleOrOne(t.ScaleY)

	var body *cp.Body
	if c.Static {
		body = cp.NewStaticBody()
	} else {
		mass := c.Mass
		if mass <= 0 {
			mass = 1
		}
		// fixed rotation keeps units upright under collisions
		body = cp.NewBody(mass, math.Inf(1))
	}
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	body.SetAngle(t.Rotation)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	pw.entityToBody[id] = body
	pw.shapeToEntity[shape] = id
	c.Body = body
	return body
}

// Body returns the entity's body, if it has one.
func (pw *PhysicsWorld) Body(id int) *cp.Body {
	if pw == nil {
		return nil
	}
	return pw.entityToBody[id]
}

// RemoveBody detaches and frees the entity's body and shapes.
func (pw *PhysicsWorld) RemoveBody(id int) {
	if pw == nil || pw.space == nil {
		return
	}
	body, ok := pw.entityToBody[id]
	if !ok {
		return
	}
	body.EachShape(func(shape *cp.Shape) {
		delete(pw.shapeToEntity, shape)
		pw.space.RemoveShape(shape)
	})
	pw.space.RemoveBody(body)
	delete(pw.entityToBody, id)
}

// Step advances the simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
