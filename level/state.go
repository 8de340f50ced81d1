package level

// State is the run state of a level.
type State int

const (
	StateActive State = iota
	StateOver
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// StateMachine tracks Active/Over and runs enter hooks on real changes.
type StateMachine struct {
	current State
	onEnter map[State][]func(from State)
}

func NewStateMachine() *StateMachine {
	return &StateMachine{current: StateActive, onEnter: map[State][]func(State){}}
}

func (m *StateMachine) Current() State {
	return m.current
}

// OnEnter registers fn to run whenever the machine enters s.
func (m *StateMachine) OnEnter(s State, fn func(from State)) {
	if fn == nil {
		return
	}
	m.onEnter[s] = append(m.onEnter[s], fn)
}

// Transition moves to the given state. It is a no-op returning false when
// the machine is already there.
func (m *StateMachine) Transition(to State) bool {
	if m.current == to {
		return false
	}
	from := m.current
	m.current = to
	for _, fn := range m.onEnter[to] {
		fn(from)
	}
	return true
}
