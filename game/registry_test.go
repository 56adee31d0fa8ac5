package game

import "testing"

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewUnitRegistry()
	rec := UnitRecord{ID: "footman_01", DisplayName: "Footman", Faction: "vale", Class: "infantry"}
	r.Register(rec)

	got, ok := r.Get("footman_01")
	if !ok {
		t.Fatalf("expected footman_01 to be registered")
	}
	if got != rec {
		t.Fatalf("expected %+v, got %+v", rec, got)
	}
	if !r.Exists("footman_01") {
		t.Fatalf("Exists should report true for a registered id")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", r.Len())
	}
}

func TestRegistryUnknownID(t *testing.T) {
	r := NewUnitRegistry()
	r.Register(UnitRecord{ID: "footman_01"})

	cases := []string{"", "never_registered", "FOOTMAN_01"}
	for _, id := range cases {
		if _, ok := r.Get(id); ok {
			t.Fatalf("Get(%q) should be absent", id)
		}
		if r.Exists(id) {
			t.Fatalf("Exists(%q) should be false", id)
		}
	}
}

func TestRegistryLastWriteWins(t *testing.T) {
	r := NewUnitRegistry()
	r.Register(UnitRecord{ID: "footman_01", DisplayName: "Footman"})
	r.Register(UnitRecord{ID: "footman_01", DisplayName: "Veteran Footman"})

	got, ok := r.Get("footman_01")
	if !ok {
		t.Fatalf("expected footman_01 to be registered")
	}
	if got.DisplayName != "Veteran Footman" {
		t.Fatalf("expected the second record to win, got %q", got.DisplayName)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 record after overwrite, got %d", r.Len())
	}
}

func TestRegisterAllSkipsInvalid(t *testing.T) {
	r := NewUnitRegistry()
	r.RegisterAll([]UnitRecord{
		{ID: "footman_01", DisplayName: "Footman"},
		{}, // zero record has no id
		{ID: "archer_01", DisplayName: "Archer"},
	})

	if r.Len() != 2 {
		t.Fatalf("expected 2 valid records, got %d", r.Len())
	}
	if !r.Exists("footman_01") || !r.Exists("archer_01") {
		t.Fatalf("valid records should survive an invalid element")
	}
}

func TestRegistryFilters(t *testing.T) {
	units := NewUnitRegistry()
	units.RegisterAll([]UnitRecord{
		{ID: "footman_01", Faction: "vale", Class: "infantry"},
		{ID: "archer_01", Faction: "vale", Class: "ranged"},
		{ID: "raider_01", Faction: "ashen", Class: "cavalry"},
	})

	t.Run("by_faction", func(t *testing.T) {
		if got := units.ByFaction("vale"); len(got) != 2 {
			t.Fatalf("expected 2 vale units, got %d", len(got))
		}
		if got := units.ByFaction("unknown"); len(got) != 0 {
			t.Fatalf("expected no units for unknown faction, got %d", len(got))
		}
	})

	t.Run("by_class", func(t *testing.T) {
		got := units.ByClass("cavalry")
		if len(got) != 1 || got[0].ID != "raider_01" {
			t.Fatalf("expected only raider_01, got %v", got)
		}
	})

	buildings := NewBuildingRegistry()
	buildings.RegisterAll([]BuildingRecord{
		{ID: "barracks_01", Faction: "vale", Tier: 1},
		{ID: "war_camp_01", Faction: "ashen", Tier: 2},
	})

	t.Run("by_tier", func(t *testing.T) {
		got := buildings.ByTier(2)
		if len(got) != 1 || got[0].ID != "war_camp_01" {
			t.Fatalf("expected only war_camp_01, got %v", got)
		}
	})
}

func TestRegistryClear(t *testing.T) {
	r := NewBuildingRegistry()
	r.Register(BuildingRecord{ID: "barracks_01"})
	r.Clear()

	if r.Len() != 0 {
		t.Fatalf("expected empty registry after Clear, got %d", r.Len())
	}
	if r.Exists("barracks_01") {
		t.Fatalf("cleared record should not exist")
	}

	// registry stays usable after a hot-reload clear
	r.Register(BuildingRecord{ID: "farm_01"})
	if !r.Exists("farm_01") {
		t.Fatalf("registration after Clear should work")
	}
}

func TestRegistryAllSnapshot(t *testing.T) {
	r := NewUnitRegistry()
	r.RegisterAll([]UnitRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	seen := map[string]bool{}
	for _, rec := range all {
		seen[rec.ID] = true
	}
	for _, id := range []string{"a", "b", "c"} {
		if !seen[id] {
			t.Fatalf("missing %q in All()", id)
		}
	}
}
