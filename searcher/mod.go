package searcher

import (
	"errors"
	"shogi/game"
)

// Hyperparameters for MCTS
const (
	DefaultCPuct = 0.2
	MaxDepth     = 512
)

// Backed-up values, from the perspective of the player who moved into a state
const (
	Win  = 1.0
	Draw = 0.0
)

var ErrUnvisitedState = errors.New("state has not been visited")

// Oracle estimates a position for the search.
type Oracle interface {
	// Predict returns a prior weight for each of the game.ActionSize actions,
	// not necessarily masked or normalized, and the expected outcome in [-1, 1]
	// for the player to move in state.
	Predict(state game.State) (priors []float64, value float64)
}
