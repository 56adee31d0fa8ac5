package main

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/warbound/ecs"
	"github.com/milk9111/warbound/ecs/components"
	"github.com/milk9111/warbound/game"
	"github.com/milk9111/warbound/prefabs"
	"github.com/milk9111/warbound/spawn"
	"golang.org/x/image/font/basicfont"
)

var ownerColors = []color.RGBA{
	{R: 90, G: 140, B: 230, A: 255},
	{R: 220, G: 90, B: 90, A: 255},
	{R: 120, G: 200, B: 120, A: 255},
}

type sandbox struct {
	units     *game.UnitRegistry
	buildings *game.BuildingRegistry
	resolver  *prefabs.Resolver
	world     *ecs.World
	spawner   *spawn.Spawner

	// reloads delivers hot-reload ticks; the reload itself happens on the
	// update goroutine because the registries and resolver do no locking.
	reloads <-chan struct{}

	unitIDs     []string
	buildingIDs []string
	selected    int
	owner       int
	lastErr     string
}

func newSandbox(units *game.UnitRegistry, buildings *game.BuildingRegistry, resolver *prefabs.Resolver, world *ecs.World, spawner *spawn.Spawner) *sandbox {
	s := &sandbox{
		units:     units,
		buildings: buildings,
		resolver:  resolver,
		world:     world,
		spawner:   spawner,
		owner:     1,
	}
	s.refreshIDs()
	return s
}

func (s *sandbox) refreshIDs() {
	s.unitIDs = s.unitIDs[:0]
	for _, rec := range s.units.All() {
		s.unitIDs = append(s.unitIDs, rec.ID)
	}
	sort.Strings(s.unitIDs)

	s.buildingIDs = s.buildingIDs[:0]
	for _, rec := range s.buildings.All() {
		s.buildingIDs = append(s.buildingIDs, rec.ID)
	}
	sort.Strings(s.buildingIDs)

	// a reload can shrink the roster under the current selection
	if total := len(s.unitIDs) + len(s.buildingIDs); s.selected >= total {
		s.selected = 0
	}
}

// processReloads applies at most one pending hot-reload tick per frame.
func (s *sandbox) processReloads() {
	select {
	case _, ok := <-s.reloads:
		if !ok {
			s.reloads = nil
			return
		}
		s.reload()
	default:
	}
}

func (s *sandbox) reload() {
	log.Printf("sandbox: authored files changed, reloading")
	s.resolver.Reinitialize()
	s.units.Clear()
	s.buildings.Clear()
	if err := loadRosters(s.units, s.buildings); err != nil {
		log.Printf("sandbox: reload rosters: %v", err)
		s.lastErr = err.Error()
	}
	s.refreshIDs()
}

func (s *sandbox) Update() error {
	s.processReloads()
	s.refreshIDs()

	total := len(s.unitIDs) + len(s.buildingIDs)
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && total > 0 {
		s.selected = (s.selected + 1) % total
	}
	for i := 0; i < 9 && i < total; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			s.selected = i
		}
	}
	for i := 0; i < len(ownerColors); i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1 + ebiten.Key(i)) {
			s.owner = i + 1
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && total > 0 {
		mx, my := ebiten.CursorPosition()
		pos := cp.Vector{X: float64(mx), Y: float64(my)}

		var err error
		if s.selected < len(s.unitIDs) {
			_, err = s.spawner.SpawnUnitAt(s.unitIDs[s.selected], pos, s.owner)
		} else {
			_, err = s.spawner.SpawnBuildingAt(s.buildingIDs[s.selected-len(s.unitIDs)], pos, s.owner)
		}
		if err != nil {
			s.lastErr = err.Error()
		} else {
			s.lastErr = ""
		}
	}

	s.world.Physics().Step(1.0 / 60.0)
	return nil
}

func (s *sandbox) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13

	for _, id := range s.world.Transforms().IDs() {
		t, ok := s.world.Transforms().Get(id).(*components.Transform)
		if !ok {
			continue
		}

		w, h := 24.0, 24.0
		if c, ok := s.world.Colliders().Get(id).(*components.Collider); ok {
			w, h = c.Width*t.ScaleX, c.Height*t.ScaleY
			if c.Body != nil {
				p := c.Body.Position()
				t.X, t.Y = p.X, p.Y
			}
		}

		clr := ownerColors[0]
		if o, ok := s.world.Owners().Get(id).(*components.Ownership); ok && o.PlayerID-1 >= 0 && o.PlayerID-1 < len(ownerColors) {
			clr = ownerColors[o.PlayerID-1]
		}
		vector.DrawFilledRect(screen, float32(t.X-w/2), float32(t.Y-h/2), float32(w), float32(h), clr, false)

		if l, ok := s.world.Labels().Get(id).(*components.Label); ok {
			text.Draw(screen, l.Value, face, int(t.X-w/2), int(t.Y-h/2)-4, color.White)
		}
	}

	s.drawPalette(screen, face)
}

func (s *sandbox) drawPalette(screen *ebiten.Image, face *basicfont.Face) {
	y := 16
	text.Draw(screen, fmt.Sprintf("player %d (F1-F%d)  click to spawn  tab/1-9 to select", s.owner, len(ownerColors)), face, 8, y, color.White)
	y += 16

	for i, id := range s.unitIDs {
		s.drawPaletteRow(screen, face, i, "unit", id, &y)
	}
	for i, id := range s.buildingIDs {
		s.drawPaletteRow(screen, face, len(s.unitIDs)+i, "building", id, &y)
	}

	if s.lastErr != "" {
		text.Draw(screen, s.lastErr, face, 8, 624, color.RGBA{R: 255, G: 120, B: 120, A: 255})
	}
}

func (s *sandbox) drawPaletteRow(screen *ebiten.Image, face *basicfont.Face, index int, family, id string, y *int) {
	marker := "  "
	if index == s.selected {
		marker = "> "
	}
	text.Draw(screen, fmt.Sprintf("%s%d. %s %s", marker, index+1, family, id), face, 8, *y, color.White)
	*y += 14
}

func (s *sandbox) Layout(_, _ int) (int, int) {
	return 960, 640
}
