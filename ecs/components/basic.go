package components

// Transform is the world placement of an entity.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Label is a diagnostic name for an entity. It is informational only and
// never used for lookup.
type Label struct {
	Value string
}

// Ownership records which player controls the entity.
type Ownership struct {
	PlayerID int
}

// Sprite references a drawable image by path. Image decoding and drawing stay
// in the render layer; the core only carries the reference.
type Sprite struct {
	Image   string
	OriginX float64
	OriginY float64
}

// MoveSpeed is the entity's movement rate in world units per second.
type MoveSpeed struct {
	Speed float64
}
