package game

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var rosterFS embed.FS

type unitRoster struct {
	Units []UnitRecord `yaml:"units"`
}

type buildingRoster struct {
	Buildings []BuildingRecord `yaml:"buildings"`
}

// LoadUnitRoster reads the authored unit roster. A file of the same relative
// path on disk overrides the embedded copy so edits show up without a rebuild.
func LoadUnitRoster() ([]UnitRecord, error) {
	data, err := loadRosterFile("units.yaml")
	if err != nil {
		return nil, fmt.Errorf("game: load units.yaml: %w", err)
	}
	var roster unitRoster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("game: unmarshal units.yaml: %w", err)
	}
	return roster.Units, nil
}

// LoadBuildingRoster reads the authored building roster.
func LoadBuildingRoster() ([]BuildingRecord, error) {
	data, err := loadRosterFile("buildings.yaml")
	if err != nil {
		return nil, fmt.Errorf("game: load buildings.yaml: %w", err)
	}
	var roster buildingRoster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("game: unmarshal buildings.yaml: %w", err)
	}
	return roster.Buildings, nil
}

func loadRosterFile(name string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("game", "data", name)); err == nil {
		return data, nil
	}
	return rosterFS.ReadFile("data/" + name)
}
