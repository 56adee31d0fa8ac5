package game

import "testing"

func TestLoadUnitRoster(t *testing.T) {
	units, err := LoadUnitRoster()
	if err != nil {
		t.Fatalf("load unit roster: %v", err)
	}
	if len(units) == 0 {
		t.Fatalf("expected at least one unit in the roster")
	}

	byID := map[string]UnitRecord{}
	for _, u := range units {
		if u.ID == "" {
			t.Fatalf("roster contains a unit with no id: %+v", u)
		}
		byID[u.ID] = u
	}

	footman, ok := byID["footman_01"]
	if !ok {
		t.Fatalf("expected footman_01 in the roster")
	}
	if footman.DisplayName != "Footman" || footman.Faction != "vale" {
		t.Fatalf("unexpected footman record: %+v", footman)
	}
	if footman.MaxHealth <= 0 || footman.Attack <= 0 {
		t.Fatalf("footman stats should be positive: %+v", footman)
	}
}

func TestLoadBuildingRoster(t *testing.T) {
	buildings, err := LoadBuildingRoster()
	if err != nil {
		t.Fatalf("load building roster: %v", err)
	}

	var barracks *BuildingRecord
	for i := range buildings {
		if buildings[i].ID == "barracks_01" {
			barracks = &buildings[i]
		}
	}
	if barracks == nil {
		t.Fatalf("expected barracks_01 in the roster")
	}
	if barracks.DisplayName != "Barracks" || barracks.Tier != 1 {
		t.Fatalf("unexpected barracks record: %+v", barracks)
	}
	if len(barracks.Produces) == 0 {
		t.Fatalf("barracks should produce units")
	}
}

func TestRosterRegistersCleanly(t *testing.T) {
	units, err := LoadUnitRoster()
	if err != nil {
		t.Fatalf("load unit roster: %v", err)
	}

	r := NewUnitRegistry()
	r.RegisterAll(units)
	if r.Len() != len(units) {
		t.Fatalf("expected %d registered units, got %d", len(units), r.Len())
	}
}
