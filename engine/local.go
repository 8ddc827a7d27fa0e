package engine

import (
	"fmt"
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type LocalOption func(e *LocalEngine)

// LocalEngine plays a game between two in-process agents.
type LocalEngine struct {
	State    *game.GameState
	Agents   map[game.Player]agent.Agent
	maxMoves int
	observer func(move game.Move, state *game.GameState)
}

func WithMaxMoves(n int) LocalOption {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

func WithStart(state *game.GameState) LocalOption {
	return func(e *LocalEngine) {
		if state != nil {
			e.State = state
		}
	}
}

// WithObserver registers a callback invoked after every played move.
func WithObserver(observer func(move game.Move, state *game.GameState)) LocalOption {
	return func(e *LocalEngine) {
		e.observer = observer
	}
}

func Local(black, white agent.Agent, options ...LocalOption) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each player")
	}
	e := &LocalEngine{
		State:    game.NewGame(),
		Agents:   map[game.Player]agent.Agent{game.Black: black, game.White: white},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found or the move cap is reached.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.State.Player()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting from %s", e.State.Player(), game.FormatSFEN(e.State))

	step := 0
	for !e.State.Ended() && step < e.maxMoves {
		player := e.State.Player()
		decision, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			SearchMetric: decision.Metric,
		})

		move, err := game.Decode(decision.Action)
		if err != nil {
			return 0, gameMetric, moveMetrics, err
		}
		next, err := e.State.Play(move)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("%s played an illegal move: %w", player, err)
		}
		e.State = next
		if e.observer != nil {
			e.observer(move, next)
		}
	}

	winner := e.State.Winner()
	if winner == 0 {
		log.Debug().Msgf("stopped after %d moves without a winner", step)
	}

	gameMetric.Winner = int(winner)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	return winner, gameMetric, moveMetrics, nil
}
