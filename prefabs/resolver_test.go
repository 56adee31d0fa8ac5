package prefabs

import "testing"

func TestResolverBuildsFromCatalog(t *testing.T) {
	r := NewResolver(&Catalog{
		Units: []CatalogEntry{
			{ID: "footman_01", Prefab: "footman.yaml"},
			{ID: "archer_01", Prefab: "archer.yaml"},
		},
		Buildings: []CatalogEntry{
			{ID: "barracks_01", Prefab: "barracks.yaml"},
		},
	})

	spec, ok := r.UnitTemplate("footman_01")
	if !ok {
		t.Fatalf("expected a template for footman_01")
	}
	if spec.Name != "footman" {
		t.Fatalf("expected footman prefab, got %q", spec.Name)
	}
	if len(spec.Components) == 0 {
		t.Fatalf("footman prefab should declare components")
	}

	if !r.HasBuildingTemplate("barracks_01") {
		t.Fatalf("expected a template for barracks_01")
	}
	if r.UnitTemplateCount() != 2 {
		t.Fatalf("expected 2 unit templates, got %d", r.UnitTemplateCount())
	}
	if r.BuildingTemplateCount() != 1 {
		t.Fatalf("expected 1 building template, got %d", r.BuildingTemplateCount())
	}
}

func TestResolverAbsentLookups(t *testing.T) {
	r := NewResolver(&Catalog{
		Units: []CatalogEntry{{ID: "footman_01", Prefab: "footman.yaml"}},
	})

	cases := []struct {
		name string
		id   string
	}{
		{"empty_id", ""},
		{"unknown_id", "dragon_01"},
		{"wrong_family", "footman_01"}, // registered as a unit, not a building
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, ok := r.BuildingTemplate(c.id); ok {
				t.Fatalf("BuildingTemplate(%q) should be absent", c.id)
			}
			if r.HasBuildingTemplate(c.id) {
				t.Fatalf("HasBuildingTemplate(%q) should be false", c.id)
			}
		})
	}

	if _, ok := r.UnitTemplate("dragon_01"); ok {
		t.Fatalf("unknown unit id should be absent")
	}
}

func TestResolverSkipsInvalidEntries(t *testing.T) {
	r := NewResolver(&Catalog{
		Units: []CatalogEntry{
			{ID: "", Prefab: "footman.yaml"},
			{ID: "no_prefab", Prefab: ""},
			{ID: "ghost_01", Prefab: "does_not_exist.yaml"},
			{ID: "footman_01", Prefab: "footman.yaml"},
		},
	})

	if r.UnitTemplateCount() != 1 {
		t.Fatalf("expected only the valid entry to resolve, got %d", r.UnitTemplateCount())
	}
	if !r.HasUnitTemplate("footman_01") {
		t.Fatalf("valid entry should resolve despite invalid neighbors")
	}
	if r.HasUnitTemplate("ghost_01") || r.HasUnitTemplate("no_prefab") {
		t.Fatalf("invalid entries should be skipped")
	}
}

func TestResolverDuplicateKeepsLast(t *testing.T) {
	r := NewResolver(&Catalog{
		Units: []CatalogEntry{
			{ID: "soldier", Prefab: "footman.yaml"},
			{ID: "soldier", Prefab: "archer.yaml"},
		},
	})

	spec, ok := r.UnitTemplate("soldier")
	if !ok {
		t.Fatalf("expected duplicate id to resolve")
	}
	if spec.Name != "archer" {
		t.Fatalf("expected the last catalog entry to win, got %q", spec.Name)
	}
	if r.UnitTemplateCount() != 1 {
		t.Fatalf("duplicates should collapse to one template, got %d", r.UnitTemplateCount())
	}
}

func TestResolverNoCatalog(t *testing.T) {
	r := NewResolver(nil)

	if r.UnitTemplateCount() != 0 || r.BuildingTemplateCount() != 0 {
		t.Fatalf("a resolver without a catalog should resolve nothing")
	}
	if _, ok := r.UnitTemplate("footman_01"); ok {
		t.Fatalf("lookups against a missing catalog should be absent, not fail")
	}
}

func TestResolverDefaultCatalogFile(t *testing.T) {
	r := NewResolverFromFile("")

	if !r.HasUnitTemplate("footman_01") {
		t.Fatalf("default catalog should map footman_01")
	}
	if !r.HasBuildingTemplate("barracks_01") {
		t.Fatalf("default catalog should map barracks_01")
	}
}

func TestResolverReinitialize(t *testing.T) {
	catalog := &Catalog{
		Units: []CatalogEntry{{ID: "footman_01", Prefab: "footman.yaml"}},
	}
	r := NewResolver(catalog)
	if r.UnitTemplateCount() != 1 {
		t.Fatalf("expected 1 template before reinitialize")
	}

	catalog.Units = append(catalog.Units, CatalogEntry{ID: "archer_01", Prefab: "archer.yaml"})

	// lookups are cached until an explicit rebuild
	if r.HasUnitTemplate("archer_01") {
		t.Fatalf("catalog edits should not show up before Reinitialize")
	}

	r.Reinitialize()
	if !r.HasUnitTemplate("archer_01") {
		t.Fatalf("Reinitialize should pick up the edited catalog")
	}
}

func TestLoadEntitySpec(t *testing.T) {
	spec, err := LoadEntitySpec("barracks.yaml")
	if err != nil {
		t.Fatalf("load barracks prefab: %v", err)
	}
	if spec.Name != "barracks" {
		t.Fatalf("expected barracks, got %q", spec.Name)
	}
	if _, ok := spec.Components["production"]; !ok {
		t.Fatalf("barracks prefab should declare production")
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	raw := map[string]any{"attack": 12, "attack_range": 24.0}
	spec, err := DecodeComponentSpec[CombatComponentSpec](raw)
	if err != nil {
		t.Fatalf("decode combat spec: %v", err)
	}
	if spec.Attack != 12 || spec.AttackRange != 24 {
		t.Fatalf("unexpected decode result: %+v", spec)
	}

	zero, err := DecodeComponentSpec[CombatComponentSpec](nil)
	if err != nil {
		t.Fatalf("nil raw should decode to zero value: %v", err)
	}
	if zero.Attack != 0 {
		t.Fatalf("expected zero value for nil raw, got %+v", zero)
	}
}
