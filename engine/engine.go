package engine

import (
	"shogi/experiments/metrics"
	"shogi/game"
)

const MaxMoves = 300

type Engine interface {
	// Run starts a game till there's a winner or a max number of moves is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
