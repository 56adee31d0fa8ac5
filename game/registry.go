package game

import "log"

// Record is any data record addressable by a stable string ID.
type Record interface {
	RecordID() string
}

// Registry is an in-memory store of records keyed by ID. Registration is a
// best-effort administrative operation: records with an empty ID are ignored
// and re-registering an existing ID overwrites the prior record. Registration
// is expected to happen during startup (or a wholesale hot-reload) before any
// lookups; the registry does no locking of its own.
type Registry[T Record] struct {
	byID map[string]T
}

// Register inserts or overwrites a record keyed by its ID. Records with an
// empty ID are silently ignored.
func (r *Registry[T]) Register(rec T) {
	if r == nil {
		return
	}
	id := rec.RecordID()
	if id == "" {
		return
	}
	if r.byID == nil {
		r.byID = make(map[string]T)
	}
	if _, ok := r.byID[id]; ok {
		log.Printf("Registry: duplicate record %q, keeping the newest", id)
	}
	r.byID[id] = rec
}

// RegisterAll registers each record in sequence. An invalid element never
// aborts the remaining insertions.
func (r *Registry[T]) RegisterAll(recs []T) {
	for _, rec := range recs {
		r.Register(rec)
	}
}

// Get returns the record for id, or false if id is empty or unknown.
func (r *Registry[T]) Get(id string) (T, bool) {
	var zero T
	if r == nil || id == "" {
		return zero, false
	}
	rec, ok := r.byID[id]
	if !ok {
		return zero, false
	}
	return rec, true
}

// All returns a snapshot of every registered record in unspecified order.
func (r *Registry[T]) All() []T {
	if r == nil || len(r.byID) == 0 {
		return nil
	}
	out := make([]T, 0, len(r.byID))
	for _, rec := range r.byID {
		out = append(out, rec)
	}
	return out
}

// Filter returns a snapshot of the records matching keep, in unspecified order.
func (r *Registry[T]) Filter(keep func(T) bool) []T {
	if r == nil || keep == nil {
		return nil
	}
	var out []T
	for _, rec := range r.byID {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Exists reports whether a record for id is present.
func (r *Registry[T]) Exists(id string) bool {
	if r == nil || id == "" {
		return false
	}
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of registered records.
func (r *Registry[T]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byID)
}

// Clear removes all records. Intended for hot-reload, not steady-state use.
func (r *Registry[T]) Clear() {
	if r == nil {
		return
	}
	r.byID = nil
}

// UnitRegistry stores unit records and adds unit-specific filter queries.
type UnitRegistry struct {
	Registry[UnitRecord]
}

func NewUnitRegistry() *UnitRegistry {
	return &UnitRegistry{}
}

func (r *UnitRegistry) ByFaction(faction string) []UnitRecord {
	return r.Filter(func(rec UnitRecord) bool { return rec.Faction == faction })
}

func (r *UnitRegistry) ByClass(class string) []UnitRecord {
	return r.Filter(func(rec UnitRecord) bool { return rec.Class == class })
}

// BuildingRegistry stores building records and adds building-specific filter
// queries.
type BuildingRegistry struct {
	Registry[BuildingRecord]
}

func NewBuildingRegistry() *BuildingRegistry {
	return &BuildingRegistry{}
}

func (r *BuildingRegistry) ByFaction(faction string) []BuildingRecord {
	return r.Filter(func(rec BuildingRecord) bool { return rec.Faction == faction })
}

func (r *BuildingRegistry) ByTier(tier int) []BuildingRecord {
	return r.Filter(func(rec BuildingRecord) bool { return rec.Tier == tier })
}
