package prefabs

import "log"

// CatalogEntry pairs an entity ID with the prefab file that visually and
// structurally represents it.
type CatalogEntry struct {
	ID     string `yaml:"id"`
	Prefab string `yaml:"prefab"`
}

// Catalog is the authored ID-to-prefab mapping, one ordered list per entity
// family. It is edited outside the game and immutable at runtime.
type Catalog struct {
	Units     []CatalogEntry `yaml:"units"`
	Buildings []CatalogEntry `yaml:"buildings"`
}

func LoadCatalog(filename string) (*Catalog, error) {
	catalog, err := LoadSpec[Catalog](filename)
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

// DefaultCatalogFile is the catalog the resolver loads when built from a file
// path without an explicit name.
const DefaultCatalogFile = "catalog.yaml"

// Resolver maps entity IDs to parsed prefab templates. The mappings are built
// lazily on first lookup and at most once per resolver instance unless
// Reinitialize is called. Entries with an empty ID or prefab path are skipped
// with a diagnostic; a duplicate ID keeps the last entry in catalog order.
type Resolver struct {
	catalog     *Catalog
	catalogFile string

	built     bool
	units     map[string]*EntitySpec
	buildings map[string]*EntitySpec
}

// NewResolver builds a resolver over an already-loaded catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// NewResolverFromFile builds a resolver that loads its catalog from a prefab
// file on first use. Pass "" for the default catalog file.
func NewResolverFromFile(filename string) *Resolver {
	if filename == "" {
		filename = DefaultCatalogFile
	}
	return &Resolver{catalogFile: filename}
}

func (r *Resolver) UnitTemplate(id string) (*EntitySpec, bool) {
	if r == nil || id == "" {
		return nil, false
	}
	r.ensureBuilt()
	spec, ok := r.units[id]
	return spec, ok
}

func (r *Resolver) BuildingTemplate(id string) (*EntitySpec, bool) {
	if r == nil || id == "" {
		return nil, false
	}
	r.ensureBuilt()
	spec, ok := r.buildings[id]
	return spec, ok
}

func (r *Resolver) HasUnitTemplate(id string) bool {
	_, ok := r.UnitTemplate(id)
	return ok
}

func (r *Resolver) HasBuildingTemplate(id string) bool {
	_, ok := r.BuildingTemplate(id)
	return ok
}

func (r *Resolver) UnitTemplateCount() int {
	if r == nil {
		return 0
	}
	r.ensureBuilt()
	return len(r.units)
}

func (r *Resolver) BuildingTemplateCount() int {
	if r == nil {
		return 0
	}
	r.ensureBuilt()
	return len(r.buildings)
}

// Reinitialize discards the built mappings and rebuilds from the current
// catalog. Intended for design-time hot-reload, not steady-state gameplay.
func (r *Resolver) Reinitialize() {
	if r == nil {
		return
	}
	r.built = false
	r.units = nil
	r.buildings = nil
	r.ensureBuilt()
}

func (r *Resolver) ensureBuilt() {
	if r.built {
		return
	}
	r.built = true

	catalog := r.catalog
	if catalog == nil && r.catalogFile != "" {
		loaded, err := LoadCatalog(r.catalogFile)
		if err != nil {
			log.Printf("Resolver: load catalog %q: %v", r.catalogFile, err)
		} else {
			catalog = loaded
		}
	}
	if catalog == nil {
		log.Printf("Resolver: no catalog configured, all lookups will miss")
		r.units = map[string]*EntitySpec{}
		r.buildings = map[string]*EntitySpec{}
		return
	}

	r.units = buildTemplateMap("unit", catalog.Units)
	r.buildings = buildTemplateMap("building", catalog.Buildings)
}

func buildTemplateMap(family string, entries []CatalogEntry) map[string]*EntitySpec {
	out := make(map[string]*EntitySpec, len(entries))
	for _, entry := range entries {
		if entry.ID == "" || entry.Prefab == "" {
			log.Printf("Resolver: skipping invalid %s catalog entry (id=%q prefab=%q)", family, entry.ID, entry.Prefab)
			continue
		}
		spec, err := LoadEntitySpec(entry.Prefab)
		if err != nil {
			log.Printf("Resolver: skipping %s %q: %v", family, entry.ID, err)
			continue
		}
		if _, ok := out[entry.ID]; ok {
			log.Printf("Resolver: duplicate %s template %q, keeping the last entry", family, entry.ID)
		}
		out[entry.ID] = spec
	}
	return out
}
