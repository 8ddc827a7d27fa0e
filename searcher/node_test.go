package searcher

import (
	"fmt"
	"shogi/game"
)

// mockState is a subtraction game: the player to move takes 1 or 2 tokens
// and a player facing an empty pile has lost.
type mockState struct {
	tokens int
}

func (s mockState) Key() string {
	return fmt.Sprintf("tokens=%d", s.tokens)
}

func (s mockState) Ended() bool {
	return s.tokens == 0
}

func (s mockState) ValidActions() []int {
	var actions []int
	for a := 1; a <= 2 && a <= s.tokens; a++ {
		actions = append(actions, a)
	}
	return actions
}

func (s mockState) Next(action int) (game.State, error) {
	if action < 1 || action > 2 || action > s.tokens {
		return nil, fmt.Errorf("cannot take %d from %d", action, s.tokens)
	}
	return mockState{tokens: s.tokens - action}, nil
}

// cycleState alternates between two positions forever.
type cycleState struct {
	side int
}

func (s cycleState) Key() string                  { return fmt.Sprintf("side=%d", s.side) }
func (s cycleState) Ended() bool                  { return false }
func (s cycleState) ValidActions() []int          { return []int{0} }
func (s cycleState) Next(int) (game.State, error) { return cycleState{side: 1 - s.side}, nil }

type mockOracle struct {
	prior float64
	value float64
	calls int
}

func (o *mockOracle) Predict(state game.State) ([]float64, float64) {
	o.calls++
	priors := make([]float64, game.ActionSize)
	for i := range priors {
		priors[i] = o.prior
	}
	return priors, o.value
}

func uniformOracle() *mockOracle {
	return &mockOracle{prior: 1}
}
