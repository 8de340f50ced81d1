package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const GameFile = "game.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds the window and session defaults shared by every level.
type GameSpec struct {
	Title     string     `yaml:"title"`
	Window    WindowSpec `yaml:"window"`
	Framerate int        `yaml:"framerate"`
	Audio     VolumeSpec `yaml:"audio"`
}

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type VolumeSpec struct {
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}

func LoadGameSpec() (GameSpec, error) {
	return LoadSpec[GameSpec](GameFile)
}

// LevelSpec describes one level variant. Optional sections switch on the
// matching capability.
type LevelSpec struct {
	Name      string           `yaml:"name"`
	Title     string           `yaml:"title"`
	Art       ArtSpec          `yaml:"art"`
	Player    PlayerSpec       `yaml:"player"`
	Scroll    ScrollSpec       `yaml:"scroll"`
	Bounds    BoundsSpec       `yaml:"bounds"`
	Obstacles ObstacleSpec     `yaml:"obstacles"`
	Flyers    *FlyerSpec       `yaml:"flyers,omitempty"`
	Gravity   *GravityZoneSpec `yaml:"gravity_zone,omitempty"`
	Effects   *EffectsSpec     `yaml:"effects,omitempty"`
	Sounds    []AudioSpec      `yaml:"sounds"`
	Music     MusicSpec        `yaml:"music"`
}

type ArtSpec struct {
	Avatar           string  `yaml:"avatar"`
	AvatarScale      float64 `yaml:"avatar_scale"`
	Background       string  `yaml:"background"`
	BackgroundFrames int     `yaml:"background_frames"`
	BackgroundFPS    float64 `yaml:"background_fps"`
	CrowScale        float64 `yaml:"crow_scale"`
	GroundHeight     int     `yaml:"ground_height"`
}

type PlayerSpec struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	TiltFactor  float64 `yaml:"tilt_factor"`
	AnimFPS     float64 `yaml:"anim_fps"`
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
}

type ScrollSpec struct {
	Background float64 `yaml:"background"`
	Ground     float64 `yaml:"ground"`
}

type BoundsSpec struct {
	CeilingFatal bool `yaml:"ceiling_fatal"`
	FloorFatal   bool `yaml:"floor_fatal"`
	SolidGround  bool `yaml:"solid_ground"`
}

// RangeSpec is an inclusive integer range.
type RangeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type ObstacleSpec struct {
	Interval   float64   `yaml:"interval"`
	Speed      float64   `yaml:"speed"`
	CullMargin float64   `yaml:"cull_margin"`
	Scale      float64   `yaml:"scale"`
	XJitter    RangeSpec `yaml:"x_jitter"`
	Bottom     RangeSpec `yaml:"bottom"`
	Top        RangeSpec `yaml:"top"`
	Double     PairSpec  `yaml:"double"`
	Moving     BobSpec   `yaml:"moving"`
	// Script names a director in scripts/. Empty spawns single columns only.
	Script string `yaml:"script,omitempty"`
}

type PairSpec struct {
	XOffset float64 `yaml:"x_offset"`
	Push    float64 `yaml:"push"`
	Scale   float64 `yaml:"scale"`
}

type BobSpec struct {
	XOffset   float64 `yaml:"x_offset"`
	Anchor    float64 `yaml:"anchor"`
	Amplitude float64 `yaml:"amplitude"`
	Speed     float64 `yaml:"speed"`
	Scale     float64 `yaml:"scale"`
}

type FlyerSpec struct {
	Interval    float64   `yaml:"interval"`
	Speed       RangeSpec `yaml:"speed"`
	Y           RangeSpec `yaml:"y"`
	PairChance  float64   `yaml:"pair_chance"`
	MinDistance int       `yaml:"min_distance"`
	FPS         float64   `yaml:"fps"`
	TrailLength int       `yaml:"trail_length"`
	TrailAlpha  int       `yaml:"trail_alpha"`
	Lethal      bool      `yaml:"lethal"`
}

type GravityZoneSpec struct {
	Min         int     `yaml:"min"`
	Max         int     `yaml:"max"`
	Warning     float64 `yaml:"warning"`
	TravelSpeed float64 `yaml:"travel_speed"`
	BlinkPeriod float64 `yaml:"blink_period"`
}

type EffectsSpec struct {
	Flash FlashSpec `yaml:"flash"`
	Shake ShakeSpec `yaml:"shake"`
}

type FlashSpec struct {
	Color    *YAMLColor `yaml:"color"`
	Duration float64    `yaml:"duration"`
}

type ShakeSpec struct {
	Magnitude float64 `yaml:"magnitude"`
	Duration  float64 `yaml:"duration"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
}

type MusicSpec struct {
	Volume float64 `yaml:"volume"`
}

// LevelFile returns the spec file name for a 1-based level number.
func LevelFile(n int) string {
	return fmt.Sprintf("level%d.yaml", n)
}

func LoadLevelSpec(n int) (LevelSpec, error) {
	return LoadSpec[LevelSpec](LevelFile(n))
}

// MarshalLevelSpec renders spec back to YAML.
func MarshalLevelSpec(spec LevelSpec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal %s: %w", spec.Name, err)
	}
	return data, nil
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the color, or opaque black when unset.
func (c *YAMLColor) NRGBA() color.NRGBA {
	if c == nil || c.Color == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) MarshalYAML() (any, error) {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
