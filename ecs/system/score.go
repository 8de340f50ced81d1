package system

import (
	"math"

	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
)

// ScoreSystem counts whole seconds spent Active.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	dt := frameDT(w)
	ecs.ForEach(w, component.LevelStateComponent.Kind(), func(_ ecs.Entity, state *component.LevelState) {
		if !state.Active {
			return
		}
		state.ActiveTime += dt
		state.Score = int(math.Floor(state.ActiveTime + 1e-9))
	})
}
