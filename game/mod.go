package game

type StateHash uint64

// State is a position searchable by MCTS. Implementations are immutable:
// Next always returns a new state.
type State interface {
	// Key identifies the position; equal positions have equal keys
	Key() string
	// Ended reports whether the player to move has lost
	Ended() bool
	// ValidActions lists the legal action ids in ascending order
	ValidActions() []int
	Next(action int) (State, error)
}
