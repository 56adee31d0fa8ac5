package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/warbound/ecs"
	"github.com/milk9111/warbound/game"
	"github.com/milk9111/warbound/prefabs"
	"github.com/milk9111/warbound/spawn"
)

// The sandbox is the composition root: it loads the authored rosters and
// catalog, wires the registries and resolver into the spawner, and runs a
// small viewer for spawning entities by hand.
func main() {
	units := game.NewUnitRegistry()
	buildings := game.NewBuildingRegistry()
	if err := loadRosters(units, buildings); err != nil {
		log.Fatalf("sandbox: %v", err)
	}

	resolver := prefabs.NewResolverFromFile("")

	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld())

	spawner := spawn.NewSpawner()
	spawner.Initialize(units, buildings, resolver, world)
	spawner.LogSpawns = true

	g := newSandbox(units, buildings, resolver, world, spawner)

	// The registries and resolver do no locking, so the watcher only hands
	// the update loop a tick; the reload itself runs inside sandbox.Update.
	watcher, err := prefabs.WatchAuthoredFiles("prefabs", "prefabs/scripts", "game/data")
	if err != nil {
		log.Printf("sandbox: hot-reload disabled: %v", err)
	} else {
		defer watcher.Close()
		g.reloads = watcher.Reloads()
	}

	ebiten.SetWindowSize(960, 640)
	ebiten.SetWindowTitle("warbound sandbox")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadRosters(units *game.UnitRegistry, buildings *game.BuildingRegistry) error {
	unitRecs, err := game.LoadUnitRoster()
	if err != nil {
		return err
	}
	units.RegisterAll(unitRecs)

	buildingRecs, err := game.LoadBuildingRoster()
	if err != nil {
		return err
	}
	buildings.RegisterAll(buildingRecs)
	return nil
}
