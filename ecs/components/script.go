package components

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptBehavior runs an authored tengo script when its entity is spawned.
// The script sees two globals: `entity` (the data record's attributes) and
// `owner` (the controlling player id).
type ScriptBehavior struct {
	Name string

	src  []byte
	runs int
	vars *tengo.Compiled
}

func NewScriptBehavior(name string, src []byte) *ScriptBehavior {
	return &ScriptBehavior{Name: name, src: src}
}

func (s *ScriptBehavior) InitFromRecord(rec any, ownerID int) error {
	s.runs++

	attrs := map[string]any{}
	if a, ok := rec.(interface{ Attrs() map[string]any }); ok {
		attrs = a.Attrs()
	}

	script := tengo.NewScript(s.src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("entity", attrs); err != nil {
		return fmt.Errorf("script %q: add entity: %w", s.Name, err)
	}
	if err := script.Add("owner", ownerID); err != nil {
		return fmt.Errorf("script %q: add owner: %w", s.Name, err)
	}

	compiled, err := script.Run()
	if err != nil {
		return fmt.Errorf("script %q: %w", s.Name, err)
	}
	s.vars = compiled
	return nil
}

// Runs returns how many times the spawn hook has fired.
func (s *ScriptBehavior) Runs() int {
	if s == nil {
		return 0
	}
	return s.runs
}

// Var returns a global left behind by the last script run, or nil.
func (s *ScriptBehavior) Var(name string) any {
	if s == nil || s.vars == nil {
		return nil
	}
	v := s.vars.Get(name)
	if v == nil {
		return nil
	}
	return v.Value()
}
