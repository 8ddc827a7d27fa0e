// Package oracle provides policy/value estimators for the searcher that do
// not need a trained model.
package oracle

import (
	"fmt"
	"shogi/game"
	"shogi/searcher"

	"golang.org/x/exp/rand"
)

// New returns the oracle registered under name.
func New(name string, seed uint64) (searcher.Oracle, error) {
	switch name {
	case "", "uniform":
		return Uniform{}, nil
	case "random":
		return NewRandom(seed), nil
	case "material":
		return Material{}, nil
	}
	return nil, fmt.Errorf("unknown oracle %q", name)
}

func flat() []float64 {
	priors := make([]float64, game.ActionSize)
	for i := range priors {
		priors[i] = 1
	}
	return priors
}

// Uniform weighs all actions equally and considers every position even.
type Uniform struct{}

func (Uniform) Predict(game.State) ([]float64, float64) {
	return flat(), 0
}

// Random draws priors and values from a seeded generator. Not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Predict(game.State) ([]float64, float64) {
	priors := make([]float64, game.ActionSize)
	for i := range priors {
		priors[i] = r.rng.Float64()
	}
	return priors, 2*r.rng.Float64() - 1
}

// Material keeps flat priors and scores positions by material balance.
type Material struct{}

func (Material) Predict(s game.State) ([]float64, float64) {
	gs, ok := s.(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}
	return flat(), game.EvaluateMaterial(gs)
}
