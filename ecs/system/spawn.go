package system

import (
	"log"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/ecs/entity"
	"github.com/milk9111/skyhop/spawn"
)

// SpawnSystem fires the obstacle and flyer timers while the run is active
// and places whatever they produce just past the right edge.
type SpawnSystem struct {
	lib *assets.Library
}

func NewSpawnSystem(lib *assets.Library) *SpawnSystem {
	return &SpawnSystem{lib: lib}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || s.lib == nil || !levelActive(w) {
		return
	}
	spawner, ok := ecs.Singleton(w, component.SpawnerComponent.Kind())
	if !ok || spawner.Rand == nil {
		return
	}
	bounds, ok := ecs.Singleton(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	dt := frameDT(w)

	if spawner.Obstacles.Advance(dt) {
		if err := s.spawnObstacle(w, spawner, bounds); err != nil {
			log.Printf("spawn: obstacle: %v", err)
		}
	}
	if spawner.Flyers != nil && spawner.Flyers.Advance(dt) {
		if err := s.spawnFlyers(w, spawner, bounds); err != nil {
			log.Printf("spawn: flyers: %v", err)
		}
	}
}

func (s *SpawnSystem) spawnObstacle(w *ecs.World, sp *component.Spawner, bounds *component.LevelBounds) error {
	p := sp.Obstacle
	switch sp.Director.Choose(sp.Rand) {
	case spawn.VariantDouble:
		return s.spawnDouble(w, p, bounds)
	case spawn.VariantMoving:
		return s.spawnMoving(w, sp.Rand, p, bounds)
	default:
		return s.spawnSingle(w, sp.Rand, p, bounds)
	}
}

// spawnSingle places one column either standing on the bottom edge or
// hanging from the top, centered a random distance past the right edge.
func (s *SpawnSystem) spawnSingle(w *ecs.World, r spawn.Rand, p component.ObstacleParams, bounds *component.LevelBounds) error {
	hanging := spawn.Chance(r, 0.5)
	variant := r.IntN(assets.ObstacleVariants)
	frame := s.lib.Obstacle(variant, p.Scale, hanging)

	centerX := bounds.Width + float64(spawn.IntBetween(r, p.XJitterMin, p.XJitterMax))
	x := centerX - float64(frame.Width())/2
	var y float64
	if hanging {
		y = float64(spawn.IntBetween(r, p.TopMin, p.TopMax))
	} else {
		y = bounds.Height + float64(spawn.IntBetween(r, p.BottomMin, p.BottomMax)) - float64(frame.Height())
	}
	_, err := entity.NewObstacle(w, frame, x, y, p.Speed, p.CullMargin)
	return err
}

// spawnDouble places a standing and a hanging column at the same x, each
// pushed DoublePush pixels past its edge.
func (s *SpawnSystem) spawnDouble(w *ecs.World, p component.ObstacleParams, bounds *component.LevelBounds) error {
	centerX := bounds.Width + p.DoubleXOffset

	bottom := s.lib.Obstacle(0, p.DoubleScale, false)
	x := centerX - float64(bottom.Width())/2
	if _, err := entity.NewObstacle(w, bottom, x, bounds.Height+p.DoublePush-float64(bottom.Height()), p.Speed, p.CullMargin); err != nil {
		return err
	}

	top := s.lib.Obstacle(0, p.DoubleScale, true)
	_, err := entity.NewObstacle(w, top, x, -p.DoublePush, p.Speed, p.CullMargin)
	return err
}

// spawnMoving places a bobbing column anchored MovingAnchor pixels past the
// top or bottom edge.
func (s *SpawnSystem) spawnMoving(w *ecs.World, r spawn.Rand, p component.ObstacleParams, bounds *component.LevelBounds) error {
	hanging := spawn.Chance(r, 0.5)
	frame := s.lib.Obstacle(0, p.MovingScale, hanging)

	x := bounds.Width + p.MovingXOffset - float64(frame.Width())/2
	y := -p.MovingAnchor
	if !hanging {
		y = bounds.Height + p.MovingAnchor - float64(frame.Height())
	}
	_, err := entity.NewMovingObstacle(w, frame, x, y, p.Speed, p.CullMargin, p.MovingAmplitude, p.MovingSpeed)
	return err
}

// spawnFlyers places one flyer, or with PairChance two flyers at least
// MinDistance apart vertically.
func (s *SpawnSystem) spawnFlyers(w *ecs.World, sp *component.Spawner, bounds *component.LevelBounds) error {
	p := sp.Flyer
	var ys []int
	if spawn.Chance(sp.Rand, p.PairChance) {
		y1, y2, err := spawn.PairedPositions(sp.Rand, p.YMin, p.YMax, p.MinDistance)
		if err != nil {
			return err
		}
		ys = []int{y1, y2}
	} else {
		ys = []int{spawn.IntBetween(sp.Rand, p.YMin, p.YMax)}
	}

	for _, y := range ys {
		params := entity.FlyerParams{
			Speed:       float64(spawn.IntBetween(sp.Rand, p.SpeedMin, p.SpeedMax)),
			FPS:         p.FPS,
			TrailLength: p.TrailLength,
			TrailAlpha:  p.TrailAlpha,
			Lethal:      p.Lethal,
		}
		if _, err := entity.NewFlyer(w, s.lib.Crow, bounds.Width, float64(y), params); err != nil {
			return err
		}
	}
	return nil
}
