package component

import "github.com/milk9111/skyhop/spawn"

// ObstacleParams places single, double and moving obstacle columns.
type ObstacleParams struct {
	Speed      float64
	CullMargin float64
	Scale      float64

	XJitterMin int
	XJitterMax int
	// Upright columns are bottom-anchored at Height + [BottomMin, BottomMax];
	// hanging ones are top-anchored at [TopMin, TopMax].
	BottomMin int
	BottomMax int
	TopMin    int
	TopMax    int

	DoubleXOffset float64
	DoublePush    float64
	DoubleScale   float64

	MovingXOffset   float64
	MovingAnchor    float64
	MovingAmplitude float64
	MovingSpeed     float64
	MovingScale     float64
}

// FlyerParams places decorative flyers.
type FlyerParams struct {
	SpeedMin    int
	SpeedMax    int
	YMin        int
	YMax        int
	PairChance  float64
	MinDistance int
	FPS         float64
	TrailLength int
	TrailAlpha  int
	Lethal      bool
}

// Spawner owns the level's spawn timers and randomness.
type Spawner struct {
	Obstacles *spawn.Timer
	// Flyers is nil in levels without decorative flyers.
	Flyers   *spawn.Timer
	Director *spawn.Director
	Rand     spawn.Rand

	Obstacle ObstacleParams
	Flyer    FlyerParams
}

var SpawnerComponent = NewComponent[Spawner]()

// GravityZone flips the player's gravity each time the distance trigger
// fires.
type GravityZone struct {
	Trigger     *spawn.DistanceTrigger
	TravelSpeed float64
	Flipped     bool
	// BlinkPeriod toggles the warning icon while a flip is imminent.
	BlinkPeriod float64
	IconVisible bool
	LastBlink   float64
}

var GravityZoneComponent = NewComponent[GravityZone]()
