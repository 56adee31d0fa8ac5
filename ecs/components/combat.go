package components

// Health tracks hit points.
type Health struct {
	Current int
	Max     int
}

// Combat holds attack stats. Prefab values are defaults; when the entity is
// spawned from a data record the record's stats win.
type Combat struct {
	Attack         int
	AttackRange    float64
	CooldownFrames int
}

func (c *Combat) InitFromRecord(rec any, _ int) error {
	attrs, ok := rec.(interface{ Attrs() map[string]any })
	if !ok {
		return nil
	}
	m := attrs.Attrs()
	if v, ok := m["attack"].(int); ok && v > 0 {
		c.Attack = v
	}
	if v, ok := m["attack_range"].(float64); ok && v > 0 {
		c.AttackRange = v
	}
	return nil
}

// Production marks a building that trains units, with a rally point relative
// to the building origin.
type Production struct {
	RallyX    float64
	RallyY    float64
	QueueSize int
	Queue     []string
}
