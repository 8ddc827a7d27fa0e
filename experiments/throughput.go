package experiments

import (
	"fmt"
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// Throughput summarises how fast one configuration searched.
type Throughput struct {
	Config            metrics.AgentConfig
	Moves             int
	Episodes          int
	Duration          time.Duration
	EpisodesPerSecond float64
}

func ThroughputConfigs() []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Oracle: "uniform", Episodes: 50},
		{ID: 2, Oracle: "uniform", Episodes: 200},
		{ID: 3, Oracle: "material", Episodes: 50},
		{ID: 4, Oracle: "material", Episodes: 200},
	}
}

// RunThroughputExperiment lets every configuration play moves plies of
// self-play from start, or the initial position when start is nil, and
// records the search speed.
func RunThroughputExperiment(root string, configs []metrics.AgentConfig, start *game.GameState, moves int) ([]Throughput, error) {
	if start == nil {
		start = game.NewGame()
	}
	if moves <= 0 {
		moves = 10
	}
	setup := metrics.Setup{Name: "throughput", MaxMoves: moves, StartTime: time.Now()}
	moveRecords := []metrics.MoveRecord{}
	results := make([]Throughput, 0, len(configs))

	log.Info().Msg("starting throughput experiment...")

	for ci, config := range configs {
		mcts, err := createMCTS(config)
		if err != nil {
			return nil, err
		}
		a := agent.NewEvaluationAgent(mcts)
		result := Throughput{Config: config}

		state := start
		for step := 1; step <= moves && !state.Ended(); step++ {
			decision, err := a.FindMove(state)
			if err != nil {
				return nil, fmt.Errorf("agent %d move %d: %w", config.ID, step, err)
			}
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game: config.ID,
				MoveMetric: metrics.MoveMetric{
					Step:         step,
					Player:       int(state.Player()),
					SearchMetric: decision.Metric,
				},
			})
			result.Moves++
			result.Episodes += decision.Metric.Episodes
			result.Duration += decision.Metric.Duration

			next, err := state.Next(decision.Action)
			if err != nil {
				return nil, fmt.Errorf("agent %d move %d: %w", config.ID, step, err)
			}
			state = next.(*game.GameState)
		}
		if result.Duration > 0 {
			result.EpisodesPerSecond = float64(result.Episodes) / result.Duration.Seconds()
		}
		results = append(results, result)

		log.Info().Msgf("config %d of %d searched %.0f episodes/s", ci+1, len(configs), result.EpisodesPerSecond)
	}

	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)
	log.Info().Msg("completed throughput experiment")

	if err := store(root, "throughput", setup, configs, nil, moveRecords); err != nil {
		return nil, err
	}
	return results, nil
}
