package main

import (
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/level"
	"github.com/milk9111/skyhop/prefabs"
	"github.com/milk9111/skyhop/settings"
	"github.com/milk9111/skyhop/spawn"
	"golang.org/x/image/colornames"
)

// maxWallStep caps a wall-clock tick at three frames of the default rate.
const maxWallStep = 3.0 / common.DefaultFramerate

type scene int

const (
	sceneMainMenu scene = iota
	sceneLevelSelect
	sceneOptions
	sceneLevel
)

type GameOptions struct {
	Level     int
	Debug     bool
	Seed      uint64
	WallClock bool
}

type Game struct {
	spec     prefabs.GameSpec
	opts     GameOptions
	settings *settings.Settings

	scene scene
	menus map[scene]*ebitenui.UI

	level    *level.Level
	levelNum int

	// pending replaces level once the player starts another run.
	pending     *level.Config
	pendingRuns int

	debug *debugTools
	quit  bool
}

func NewGame(spec prefabs.GameSpec, opts GameOptions) *Game {
	g := &Game{
		spec:     spec,
		opts:     opts,
		settings: settings.New(spec.Audio.MusicVolume, spec.Audio.SFXVolume),
	}
	theme := newMenuTheme()
	g.menus = map[scene]*ebitenui.UI{
		sceneMainMenu:    NewMainMenuUI(g, theme),
		sceneLevelSelect: NewLevelSelectUI(g, theme),
		sceneOptions:     NewOptionsUI(g, theme),
	}
	if opts.Debug {
		g.debug = newDebugTools(prefabs.Dir)
	}
	if opts.Level > 0 {
		g.startLevel(opts.Level)
	}
	return g
}

func (g *Game) show(s scene) {
	g.scene = s
}

func (g *Game) startLevel(n int) {
	cfg, err := level.Load(n)
	if err != nil {
		log.Printf("failed to load %s: %v", level.LevelName(n), err)
		return
	}
	if err := g.enterLevel(n, cfg); err != nil {
		log.Printf("failed to start %s: %v", cfg.Name, err)
	}
}

func (g *Game) enterLevel(n int, cfg level.Config) error {
	seed := g.opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	var ts common.TimeSource = common.NewFixedStep(cfg.Framerate)
	if g.opts.WallClock {
		ts = common.NewWallClock(maxWallStep)
	}

	lvl, err := level.New(cfg, g.settings, ts, spawn.NewRand(seed), level.WithDebug(g.levelDebug()))
	if err != nil {
		return err
	}
	g.closeLevel()
	g.level, g.levelNum = lvl, n
	g.show(sceneLevel)
	return nil
}

func (g *Game) levelDebug() bool {
	return g.level != nil && g.level.Debug()
}

func (g *Game) closeLevel() {
	if g.level != nil {
		g.level.Close()
	}
	g.level = nil
	g.pending = nil
}

func (g *Game) queueReload(cfg level.Config) {
	g.pending = &cfg
	g.pendingRuns = g.level.Runs()
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.debug != nil {
		g.debug.update(g)
	}

	if g.scene != sceneLevel {
		g.menus[g.scene].Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.closeLevel()
		g.show(sceneMainMenu)
		return nil
	}
	if err := g.level.Update(); err != nil {
		return err
	}
	if g.level.MenuRequested() {
		g.closeLevel()
		g.show(sceneMainMenu)
		return nil
	}
	if g.pending != nil && g.level.Runs() != g.pendingRuns {
		if err := g.enterLevel(g.levelNum, *g.pending); err != nil {
			log.Printf("failed to apply reload: %v", err)
			g.pending = nil
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene == sceneLevel {
		g.level.Draw(screen)
		return
	}
	screen.Fill(colornames.Skyblue)
	g.menus[g.scene].Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Window.Width, g.spec.Window.Height
}

func (g *Game) Close() {
	g.closeLevel()
	if g.debug != nil {
		if err := g.debug.Close(); err != nil {
			log.Printf("debug: %v", err)
		}
	}
}
