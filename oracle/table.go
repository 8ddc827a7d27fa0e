package oracle

import (
	"fmt"
	"shogi/game"
	"shogi/searcher"
)

type Prediction struct {
	Priors []float64
	Value  float64
}

// Table answers from stored predictions keyed by state and defers to a
// fallback oracle for everything else.
type Table struct {
	entries  map[string]Prediction
	fallback searcher.Oracle
}

func NewTable(fallback searcher.Oracle) *Table {
	if fallback == nil {
		fallback = Uniform{}
	}
	return &Table{
		entries:  make(map[string]Prediction),
		fallback: fallback,
	}
}

// Set stores a prediction for state. Priors are copied and must cover all
// game.ActionSize actions.
func (t *Table) Set(state game.State, priors []float64, value float64) error {
	if len(priors) != game.ActionSize {
		return fmt.Errorf("expected %d priors, got %d", game.ActionSize, len(priors))
	}
	t.entries[state.Key()] = Prediction{
		Priors: append([]float64(nil), priors...),
		Value:  value,
	}
	return nil
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) Predict(state game.State) ([]float64, float64) {
	if p, ok := t.entries[state.Key()]; ok {
		return append([]float64(nil), p.Priors...), p.Value
	}
	return t.fallback.Predict(state)
}
