package game

// UnitRecord describes one unit type. Records are immutable once registered;
// the ID is the sole lookup key across data, templates, and spawn calls.
type UnitRecord struct {
	ID          string  `yaml:"id"`
	DisplayName string  `yaml:"display_name"`
	Faction     string  `yaml:"faction"`
	Class       string  `yaml:"class"`
	MoveSpeed   float64 `yaml:"move_speed"`
	MaxHealth   int     `yaml:"max_health"`
	Attack      int     `yaml:"attack"`
	AttackRange float64 `yaml:"attack_range"`
	GoldCost    int     `yaml:"gold_cost"`
}

func (r UnitRecord) RecordID() string {
	return r.ID
}

func (r UnitRecord) Attrs() map[string]any {
	return map[string]any{
		"id":           r.ID,
		"display_name": r.DisplayName,
		"faction":      r.Faction,
		"class":        r.Class,
		"move_speed":   r.MoveSpeed,
		"max_health":   r.MaxHealth,
		"attack":       r.Attack,
		"attack_range": r.AttackRange,
		"gold_cost":    r.GoldCost,
	}
}

// BuildingRecord describes one building type.
type BuildingRecord struct {
	ID          string   `yaml:"id"`
	DisplayName string   `yaml:"display_name"`
	Faction     string   `yaml:"faction"`
	Tier        int      `yaml:"tier"`
	MaxHealth   int      `yaml:"max_health"`
	GoldCost    int      `yaml:"gold_cost"`
	BuildTime   int      `yaml:"build_time"`
	Produces    []string `yaml:"produces"`
}

func (r BuildingRecord) RecordID() string {
	return r.ID
}

func (r BuildingRecord) Attrs() map[string]any {
	return map[string]any{
		"id":           r.ID,
		"display_name": r.DisplayName,
		"faction":      r.Faction,
		"tier":         r.Tier,
		"max_health":   r.MaxHealth,
		"gold_cost":    r.GoldCost,
		"build_time":   r.BuildTime,
	}
}
