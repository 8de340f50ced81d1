// Package level runs one playable level: it owns the world, the systems in
// frame order and the Active/Over state machine. The three shipped levels
// are the same Level driven by different Configs.
package level

import (
	"errors"
	"fmt"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/ecs/entity"
	"github.com/milk9111/skyhop/prefabs"
	"github.com/milk9111/skyhop/spawn"
)

var ErrInvalidConfig = errors.New("level: invalid config")

// Capabilities switch on the optional behaviour of a level.
type Capabilities struct {
	Flyers        bool
	GravityFlips  bool
	ScreenEffects bool
}

// ZoneConfig configures distance-triggered gravity flips.
type ZoneConfig struct {
	Min         int
	Max         int
	Warning     float64
	TravelSpeed float64
	BlinkPeriod float64
}

type Config struct {
	Name  string
	Title string

	Width     float64
	Height    float64
	Framerate int

	Art           assets.LibraryOptions
	BackgroundFPS float64

	BackgroundSpeed float64
	GroundSpeed     float64
	SolidGround     bool
	Bounds          component.LevelBounds

	Player entity.PlayerParams

	ObstacleInterval float64
	Obstacle         component.ObstacleParams
	DirectorScript   []byte

	Capabilities

	FlyerInterval float64
	Flyer         component.FlyerParams
	Zone          ZoneConfig
	Flash         component.ScreenFlash
	Shake         component.ScreenShake

	Sounds      []entity.SoundSpec
	MusicVolume float64

	// Spec is the source the config was built from, kept for debug export.
	Spec prefabs.LevelSpec
}

// Load reads game.yaml and the numbered level spec and builds a validated
// Config.
func Load(n int) (Config, error) {
	game, err := prefabs.LoadGameSpec()
	if err != nil {
		return Config{}, err
	}
	spec, err := prefabs.LoadLevelSpec(n)
	if err != nil {
		return Config{}, err
	}
	return FromSpec(game, spec)
}

// FromSpec converts loaded specs into a Config. A named director script is
// read here; it is compiled when the level is built.
func FromSpec(game prefabs.GameSpec, spec prefabs.LevelSpec) (Config, error) {
	width, height := float64(game.Window.Width), float64(game.Window.Height)
	if width == 0 || height == 0 {
		width, height = common.BaseWidth, common.BaseHeight
	}
	framerate := game.Framerate
	if framerate == 0 {
		framerate = common.DefaultFramerate
	}

	o := spec.Obstacles
	cfg := Config{
		Name:      spec.Name,
		Title:     spec.Title,
		Width:     width,
		Height:    height,
		Framerate: framerate,
		Art: assets.LibraryOptions{
			Avatar:           spec.Art.Avatar,
			AvatarScale:      spec.Art.AvatarScale,
			Background:       spec.Art.Background,
			BackgroundFrames: spec.Art.BackgroundFrames,
			CrowScale:        spec.Art.CrowScale,
			Width:            int(width),
			Height:           int(height),
			GroundHeight:     spec.Art.GroundHeight,
		},
		BackgroundFPS:   spec.Art.BackgroundFPS,
		BackgroundSpeed: spec.Scroll.Background,
		GroundSpeed:     spec.Scroll.Ground,
		SolidGround:     spec.Bounds.SolidGround,
		Bounds: component.LevelBounds{
			Width:        width,
			Height:       height,
			CeilingFatal: spec.Bounds.CeilingFatal,
			FloorFatal:   spec.Bounds.FloorFatal,
		},
		Player: entity.PlayerParams{
			JumpImpulse: spec.Player.JumpImpulse,
			Gravity:     spec.Player.Gravity,
			TiltFactor:  spec.Player.TiltFactor,
			AnimFPS:     spec.Player.AnimFPS,
			SpawnX:      spec.Player.SpawnX,
			SpawnY:      spec.Player.SpawnY,
		},
		ObstacleInterval: o.Interval,
		Obstacle: component.ObstacleParams{
			Speed:           o.Speed,
			CullMargin:      o.CullMargin,
			Scale:           o.Scale,
			XJitterMin:      o.XJitter.Min,
			XJitterMax:      o.XJitter.Max,
			BottomMin:       o.Bottom.Min,
			BottomMax:       o.Bottom.Max,
			TopMin:          o.Top.Min,
			TopMax:          o.Top.Max,
			DoubleXOffset:   o.Double.XOffset,
			DoublePush:      o.Double.Push,
			DoubleScale:     o.Double.Scale,
			MovingXOffset:   o.Moving.XOffset,
			MovingAnchor:    o.Moving.Anchor,
			MovingAmplitude: o.Moving.Amplitude,
			MovingSpeed:     o.Moving.Speed,
			MovingScale:     o.Moving.Scale,
		},
		MusicVolume: spec.Music.Volume,
		Spec:        spec,
	}
	if cfg.Player.SpawnX == 0 {
		cfg.Player.SpawnX = width / 20
	}
	if cfg.Player.SpawnY == 0 {
		cfg.Player.SpawnY = height / 2
	}
	for _, s := range spec.Sounds {
		cfg.Sounds = append(cfg.Sounds, entity.SoundSpec{Name: s.Name, Volume: s.Volume})
	}

	if o.Script != "" {
		src, err := prefabs.LoadScript(o.Script)
		if err != nil {
			return Config{}, fmt.Errorf("level: %s: load script %s: %w", spec.Name, o.Script, err)
		}
		cfg.DirectorScript = src
	}

	if f := spec.Flyers; f != nil {
		cfg.Flyers = true
		cfg.FlyerInterval = f.Interval
		cfg.Flyer = component.FlyerParams{
			SpeedMin:    f.Speed.Min,
			SpeedMax:    f.Speed.Max,
			YMin:        f.Y.Min,
			YMax:        f.Y.Max,
			PairChance:  f.PairChance,
			MinDistance: f.MinDistance,
			FPS:         f.FPS,
			TrailLength: f.TrailLength,
			TrailAlpha:  f.TrailAlpha,
			Lethal:      f.Lethal,
		}
	}
	if z := spec.Gravity; z != nil {
		cfg.GravityFlips = true
		cfg.Zone = ZoneConfig{
			Min:         z.Min,
			Max:         z.Max,
			Warning:     z.Warning,
			TravelSpeed: z.TravelSpeed,
			BlinkPeriod: z.BlinkPeriod,
		}
	}
	if e := spec.Effects; e != nil {
		cfg.ScreenEffects = true
		cfg.Flash = component.ScreenFlash{Color: e.Flash.Color.NRGBA(), Duration: e.Flash.Duration}
		cfg.Shake = component.ScreenShake{Magnitude: e.Shake.Magnitude, Duration: e.Shake.Duration}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the level loop cannot run.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, c.Name, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return invalid("viewport %vx%v", c.Width, c.Height)
	case c.Framerate <= 0:
		return invalid("framerate %d", c.Framerate)
	case c.ObstacleInterval <= 0:
		return invalid("obstacle interval %v", c.ObstacleInterval)
	case c.Obstacle.Scale <= 0:
		return invalid("obstacle scale %v", c.Obstacle.Scale)
	case c.Player.Gravity == 0:
		return invalid("zero gravity")
	}

	if c.Flyers {
		if c.FlyerInterval <= 0 {
			return invalid("flyer interval %v", c.FlyerInterval)
		}
		if c.Flyer.SpeedMin > c.Flyer.SpeedMax || c.Flyer.YMin > c.Flyer.YMax {
			return invalid("flyer ranges speed [%d, %d] y [%d, %d]", c.Flyer.SpeedMin, c.Flyer.SpeedMax, c.Flyer.YMin, c.Flyer.YMax)
		}
		if c.Flyer.PairChance > 0 {
			if err := spawn.CheckPairRange(c.Flyer.YMin, c.Flyer.YMax, c.Flyer.MinDistance); err != nil {
				return fmt.Errorf("%w: %s: flyers: %w", ErrInvalidConfig, c.Name, err)
			}
		}
	}
	if c.GravityFlips {
		if c.Zone.Min <= 0 || c.Zone.Min > c.Zone.Max {
			return invalid("gravity zone range [%d, %d]", c.Zone.Min, c.Zone.Max)
		}
		if c.Zone.TravelSpeed <= 0 {
			return invalid("gravity zone travel speed %v", c.Zone.TravelSpeed)
		}
	}
	return nil
}

// LevelName is the display name for a 1-based level number.
func LevelName(n int) string {
	return fmt.Sprintf("LEVEL %d", n)
}
