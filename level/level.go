package level

import (
	"fmt"
	"image"
	"log"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/ecs/entity"
	"github.com/milk9111/skyhop/ecs/system"
	"github.com/milk9111/skyhop/settings"
	"github.com/milk9111/skyhop/spawn"
)

// Option customizes a Level at construction.
type Option func(*Level)

// WithInputSystem replaces the ebiten input sampler, typically with a
// scripted one in tests. A nil system leaves input untouched.
func WithInputSystem(sys ecs.System) Option {
	return func(l *Level) { l.input = sys }
}

// WithAudio supplies the sound effect factory and music player instead of
// the synthesized ebiten players. A nil music player disables music.
func WithAudio(factory entity.SoundFactory, music component.SoundPlayer) Option {
	return func(l *Level) {
		l.soundFactory = factory
		l.music = music
		l.audioSet = true
	}
}

func WithDebug(on bool) Option {
	return func(l *Level) { l.render.Debug = on }
}

type Level struct {
	cfg      Config
	lib      *assets.Library
	settings *settings.Settings
	rng      spawn.Rand

	world      *ecs.World
	controller ecs.Entity
	player     ecs.Entity
	state      *StateMachine

	input  ecs.System
	frame  *ecs.Scheduler
	post   *ecs.Scheduler
	render *system.RenderSystem

	soundFactory entity.SoundFactory
	music        component.SoundPlayer
	audioSet     bool

	runs          int
	menuRequested bool
}

// New builds a level ready to play: background, ground, player and every
// system wired in frame order. The run starts Active.
func New(cfg Config, s *settings.Settings, ts common.TimeSource, rng spawn.Rand, opts ...Option) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: %s: nil rand", ErrInvalidConfig, cfg.Name)
	}

	lib, err := assets.NewLibrary(cfg.Art)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", cfg.Name, err)
	}
	director, err := spawn.NewDirector(cfg.Name, cfg.DirectorScript)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", cfg.Name, err)
	}

	l := &Level{
		cfg:      cfg,
		lib:      lib,
		settings: s,
		rng:      rng,
		world:    ecs.NewWorld(),
		state:    NewStateMachine(),
		input:    system.NewInputSystem(),
		render:   system.NewRenderSystem(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if !l.audioSet {
		l.soundFactory = synthesizedSound
		music, err := assets.NewLoopPlayer(assets.MusicPCM())
		if err != nil {
			return nil, fmt.Errorf("level: %s: %w", cfg.Name, err)
		}
		l.music = music
	}

	if err := l.build(director); err != nil {
		return nil, fmt.Errorf("level: %s: %w", cfg.Name, err)
	}

	l.frame = ecs.NewScheduler(
		system.NewClockSystem(ts),
		system.NewPlayerControlSystem(),
		system.NewSpawnSystem(lib),
		system.NewPhysicsSystem(),
		system.NewAnimationSystem(),
		system.NewScrollSystem(),
		system.NewObstacleSystem(),
		system.NewFlyerSystem(),
		system.NewScoreSystem(),
		system.NewGravityZoneSystem(),
		system.NewCollisionSystem(),
	)
	l.post = ecs.NewScheduler(
		system.NewEffectsSystem(),
		system.NewAudioSystem(s),
		system.NewMusicSystem(s),
	)

	l.state.OnEnter(StateOver, l.enterOver)
	l.state.OnEnter(StateActive, l.enterActive)
	l.runs = 1
	return l, nil
}

func synthesizedSound(name string) (component.SoundPlayer, error) {
	pcm, err := assets.SoundPCM(name)
	if err != nil {
		return nil, err
	}
	return assets.NewSoundPlayer(pcm), nil
}

func (l *Level) build(director *spawn.Director) error {
	cfg := l.cfg
	params := entity.ControllerParams{
		Bounds: cfg.Bounds,
		Spawner: &component.Spawner{
			Obstacles: spawn.NewTimer(cfg.ObstacleInterval),
			Director:  director,
			Rand:      l.rng,
			Obstacle:  cfg.Obstacle,
			Flyer:     cfg.Flyer,
		},
	}
	if cfg.Flyers {
		params.Spawner.Flyers = spawn.NewTimer(cfg.FlyerInterval)
	}
	if cfg.GravityFlips {
		params.Zone = &component.GravityZone{
			Trigger:     spawn.NewDistanceTrigger(cfg.Zone.Min, cfg.Zone.Max, cfg.Zone.Warning, l.rng),
			TravelSpeed: cfg.Zone.TravelSpeed,
			BlinkPeriod: cfg.Zone.BlinkPeriod,
			IconVisible: true,
		}
	}
	if cfg.ScreenEffects {
		flash, shake := cfg.Flash, cfg.Shake
		params.Flash = &flash
		params.Shake = &shake
	}

	controller, err := entity.NewLevelController(l.world, params)
	if err != nil {
		return err
	}
	l.controller = controller

	if _, err := entity.NewBackground(l.world, l.lib.Background, cfg.BackgroundFPS, cfg.BackgroundSpeed); err != nil {
		return err
	}
	if _, err := entity.NewGround(l.world, l.lib.Ground, cfg.GroundSpeed, cfg.Height, cfg.SolidGround); err != nil {
		return err
	}
	if _, err := entity.NewAudio(l.world, cfg.Sounds, l.soundFactory, l.music, cfg.MusicVolume); err != nil {
		return err
	}
	return l.spawnPlayer()
}

func (l *Level) spawnPlayer() error {
	for _, e := range l.world.Query(component.PlayerTagComponent.Kind()) {
		ecs.DestroyEntity(l.world, e)
	}
	player, err := entity.NewPlayer(l.world, l.lib.Avatar, l.cfg.Player)
	if err != nil {
		return err
	}
	l.player = player
	return nil
}

// Update advances the level by one frame.
func (l *Level) Update() error {
	if l.input != nil {
		l.input.Update(l.world)
	}
	wasOver := l.state.Current() == StateOver

	l.frame.Update(l.world)

	for _, evt := range l.world.Events().Drain() {
		if evt.Type != ecs.EventDeath {
			continue
		}
		if death, ok := evt.Data.(ecs.DeathEvent); ok {
			log.Printf("level: %s: run over (%s) score=%d", l.cfg.Name, death.Cause, l.Score())
		}
		l.state.Transition(StateOver)
	}

	if wasOver {
		if input, ok := ecs.Get(l.world, l.controller, component.InputComponent.Kind()); ok && input.Pressed {
			if image.Pt(input.CursorX, input.CursorY).In(l.menuButton()) {
				l.menuRequested = true
			} else {
				l.Restart()
			}
		}
	}

	l.post.Update(l.world)
	return nil
}

func (l *Level) enterOver(State) {
	if ls := l.levelState(); ls != nil {
		ls.Active = false
	}
	for _, e := range l.world.Query(component.PlayerTagComponent.Kind()) {
		ecs.DestroyEntity(l.world, e)
	}
	l.player = 0
	if l.cfg.ScreenEffects {
		system.StartEffects(l.world, l.elapsed())
	}
}

func (l *Level) enterActive(State) {
	for _, e := range l.world.Query(component.FlyerTagComponent.Kind()) {
		ecs.DestroyEntity(l.world, e)
	}
	for _, e := range l.world.Query(component.ObstacleTagComponent.Kind()) {
		ecs.DestroyEntity(l.world, e)
	}
	if err := l.spawnPlayer(); err != nil {
		log.Printf("level: %s: respawn: %v", l.cfg.Name, err)
	}

	if ls := l.levelState(); ls != nil {
		ls.Active = true
		ls.ActiveTime = 0
		ls.Score = 0
	}
	if sp, ok := ecs.Get(l.world, l.controller, component.SpawnerComponent.Kind()); ok {
		sp.Obstacles.Reset()
		sp.Flyers.Reset()
	}
	if zone, ok := ecs.Get(l.world, l.controller, component.GravityZoneComponent.Kind()); ok {
		system.ResetGravityZone(zone, l.elapsed())
	}
	if flash, ok := ecs.Get(l.world, l.controller, component.ScreenFlashComponent.Kind()); ok {
		flash.Active = false
	}
	if shake, ok := ecs.Get(l.world, l.controller, component.ScreenShakeComponent.Kind()); ok {
		shake.Active = false
		shake.OffsetX, shake.OffsetY = 0, 0
	}
	l.runs++
}

// Restart begins a new run from Over. It does nothing while Active.
func (l *Level) Restart() {
	l.state.Transition(StateActive)
}

// Close stops the level's music.
func (l *Level) Close() {
	system.StopMusic(l.world)
}

func (l *Level) levelState() *component.LevelState {
	ls, _ := ecs.Get(l.world, l.controller, component.LevelStateComponent.Kind())
	return ls
}

func (l *Level) elapsed() float64 {
	if clock, ok := ecs.Get(l.world, l.controller, component.ClockComponent.Kind()); ok {
		return clock.Elapsed
	}
	return 0
}

func (l *Level) State() State { return l.state.Current() }

func (l *Level) Config() Config { return l.cfg }

func (l *Level) World() *ecs.World { return l.world }

// Player returns the avatar while one exists.
func (l *Level) Player() (ecs.Entity, bool) {
	if !ecs.IsAlive(l.world, l.player) {
		return 0, false
	}
	return l.player, true
}

// Score is the whole seconds survived in the current run.
func (l *Level) Score() int {
	if ls := l.levelState(); ls != nil {
		return ls.Score
	}
	return 0
}

// Runs counts started runs, including the first.
func (l *Level) Runs() int { return l.runs }

// MenuRequested reports whether the main-menu button was pressed.
func (l *Level) MenuRequested() bool { return l.menuRequested }

func (l *Level) Debug() bool { return l.render.Debug }

func (l *Level) SetDebug(on bool) { l.render.Debug = on }
