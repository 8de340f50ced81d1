package component

// LevelState mirrors the game state machine for systems. Score is the whole
// number of seconds spent Active in the current run.
type LevelState struct {
	Active     bool
	ActiveTime float64
	Score      int
}

var LevelStateComponent = NewComponent[LevelState]()
