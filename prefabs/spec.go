package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntitySpec is the instantiable template for one entity type: a named bag of
// component specs keyed by component name.
type EntitySpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntitySpec(filename string) (*EntitySpec, error) {
	spec, err := LoadSpec[EntitySpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type SpriteComponentSpec struct {
	Image   string  `yaml:"image"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type ColliderComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
	Static bool    `yaml:"static"`
}

type HealthComponentSpec struct {
	Max int `yaml:"max"`
}

type CombatComponentSpec struct {
	Attack         int     `yaml:"attack"`
	AttackRange    float64 `yaml:"attack_range"`
	CooldownFrames int     `yaml:"cooldown_frames"`
}

type MoveSpeedComponentSpec struct {
	Speed float64 `yaml:"speed"`
}

type ProductionComponentSpec struct {
	RallyX    float64 `yaml:"rally_x"`
	RallyY    float64 `yaml:"rally_y"`
	QueueSize int     `yaml:"queue_size"`
}

type ScriptComponentSpec struct {
	Script string `yaml:"script"`
}
