package agent

import (
	"shogi/experiments/metrics"
	"shogi/game"
)

// Decision is an agent's chosen action together with the search that produced it.
type Decision struct {
	Action int
	Policy []float64
	Metric metrics.SearchMetric
}

type Agent interface {
	// FindMove searches state and picks an action
	FindMove(state game.State) (Decision, error)
}
