package components

import (
	"strings"
	"testing"
)

type fakeRecord struct {
	attrs map[string]any
}

func (f fakeRecord) Attrs() map[string]any {
	return f.attrs
}

func TestScriptBehaviorRunsOnInit(t *testing.T) {
	src := []byte(`
fmt := import("fmt")
banner := fmt.sprintf("%s mustered for player %d", entity.display_name, owner)
`)
	b := NewScriptBehavior("muster.tengo", src)

	rec := fakeRecord{attrs: map[string]any{"display_name": "Militia", "faction": "vale"}}
	if err := b.InitFromRecord(rec, 3); err != nil {
		t.Fatalf("init hook failed: %v", err)
	}

	if b.Runs() != 1 {
		t.Fatalf("expected 1 run, got %d", b.Runs())
	}
	banner, ok := b.Var("banner").(string)
	if !ok {
		t.Fatalf("expected a banner string, got %v", b.Var("banner"))
	}
	if banner != "Militia mustered for player 3" {
		t.Fatalf("unexpected banner: %q", banner)
	}
}

func TestScriptBehaviorErrorPropagates(t *testing.T) {
	b := NewScriptBehavior("broken.tengo", []byte(`x := undefined_fn()`))

	err := b.InitFromRecord(fakeRecord{attrs: map[string]any{}}, 1)
	if err == nil {
		t.Fatalf("expected a script error")
	}
	if !strings.Contains(err.Error(), "broken.tengo") {
		t.Fatalf("error should name the script: %v", err)
	}
	if b.Runs() != 1 {
		t.Fatalf("a failed run still counts, got %d", b.Runs())
	}
}

func TestScriptBehaviorNonRecordInput(t *testing.T) {
	b := NewScriptBehavior("noop.tengo", []byte(`ok := owner > 0`))

	// records without attrs still run with an empty entity map
	if err := b.InitFromRecord(struct{}{}, 2); err != nil {
		t.Fatalf("init hook failed: %v", err)
	}
	if ok, _ := b.Var("ok").(bool); !ok {
		t.Fatalf("expected ok=true")
	}
}

func TestCombatInitFromRecord(t *testing.T) {
	c := &Combat{Attack: 1, AttackRange: 10}
	rec := fakeRecord{attrs: map[string]any{"attack": 99, "attack_range": 180.0}}

	if err := c.InitFromRecord(rec, 1); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if c.Attack != 99 {
		t.Fatalf("record attack should win, got %d", c.Attack)
	}
	if c.AttackRange != 180 {
		t.Fatalf("record attack range should win, got %f", c.AttackRange)
	}

	// a record without combat stats leaves prefab defaults alone
	d := &Combat{Attack: 7}
	if err := d.InitFromRecord(fakeRecord{attrs: map[string]any{}}, 1); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if d.Attack != 7 {
		t.Fatalf("prefab default should survive, got %d", d.Attack)
	}
}
