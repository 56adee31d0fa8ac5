package components

import "github.com/jakecoffman/cp"

// Collider describes the physics footprint of an entity. Body is populated by
// the physics world once the entity is placed in the space.
type Collider struct {
	Width  float64
	Height float64
	Mass   float64
	Static bool

	Body *cp.Body
}
