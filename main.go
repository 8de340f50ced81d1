package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/prefabs"
)

func main() {
	levelNum := flag.Int("level", 0, "start directly in level 1-3 instead of the main menu")
	debug := flag.Bool("debug", false, "enable debug mode (F2 copies the level spec, F3 shows colliders, prefab edits hot reload)")
	seed := flag.Uint64("seed", 0, "random seed for spawns; 0 picks one from the clock")
	wallClock := flag.Bool("wallclock", false, "step the simulation by measured frame time instead of a fixed step")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	if spec.Window.Width <= 0 || spec.Window.Height <= 0 {
		spec.Window.Width, spec.Window.Height = common.BaseWidth, common.BaseHeight
	}
	if spec.Framerate <= 0 {
		spec.Framerate = common.DefaultFramerate
	}

	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetTPS(spec.Framerate)

	game := NewGame(spec, GameOptions{
		Level:     *levelNum,
		Debug:     *debug,
		Seed:      *seed,
		WallClock: *wallClock,
	})
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
