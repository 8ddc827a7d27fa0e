package experiments

import (
	"fmt"
	"shogi/engine"
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/oracle"
	"shogi/searcher"
	"shogi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	NumGames = 10 // Per match up
	Episodes = 200
	BaseDir  = "experiments"
)

// Result tallies the games of one matchup from agent1's point of view.
type Result struct {
	MatchUp metrics.MatchUp
	Wins    int
	Losses  int
	Draws   int
}

func (r Result) WinRate() float64 {
	total := r.Wins + r.Losses + r.Draws
	if total == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Draws)) / float64(total)
}

// OracleMatchUps pairs a uniform baseline against every other oracle with
// the same search budget.
func OracleMatchUps(episodes int) []metrics.MatchUp {
	baseline := metrics.AgentConfig{ID: 0, Oracle: "uniform", Episodes: episodes}
	configs := []metrics.AgentConfig{
		{ID: 1, Oracle: "material", Episodes: episodes},
		{ID: 2, Oracle: "random", Episodes: episodes, Seed: 7},
		{ID: 3, Oracle: "material", Episodes: episodes, CPuct: 1.0},
	}
	matchUps := []metrics.MatchUp{}
	for _, config := range configs {
		matchUps = append(matchUps, metrics.MatchUp{Agent1: baseline, Agent2: config})
	}
	return matchUps
}

// RunArena plays numGames per matchup from start, or the initial position
// when start is nil, alternating colors between games, and writes the setup,
// agent configs and game and move records under root/name.
func RunArena(root, name string, matchUps []metrics.MatchUp, start *game.GameState, numGames, maxMoves int) ([]Result, error) {
	if numGames <= 0 {
		numGames = NumGames
	}
	if maxMoves <= 0 {
		maxMoves = engine.MaxMoves
	}
	setup := metrics.Setup{
		Name:      name,
		Matchups:  matchUps,
		NumGames:  numGames,
		MaxMoves:  maxMoves,
		StartTime: time.Now(),
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	results := make([]Result, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup.Agent1
		config2 := matchup.Agent2
		result := Result{MatchUp: matchup}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			// Agent1 plays black in even games
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}

			winner, gameMetric, moveMetrics, err := runGame(black, white, start, maxMoves)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch {
			case winner == 0:
				result.Draws++
			case (winner == game.Black) == (i%2 == 0):
				result.Wins++
			default:
				result.Losses++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d, agent%d win rate %.2f", mi+1, len(matchUps), config1.ID, result.WinRate())
	}

	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)
	log.Info().Msgf("completed %s experiment in %s", name, setup.Duration)

	if err := store(root, name, setup, configsOf(matchUps), gameRecords, moveRecords); err != nil {
		return nil, err
	}
	return results, nil
}

func store(root, name string, setup metrics.Setup, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSetup(setup); err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if games != nil {
		if err := writer.WriteGameRecords(games); err != nil {
			return fmt.Errorf("failed to write game records: %w", err)
		}
		log.Info().Msg("stored game records")
	}

	if err := writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

func configsOf(matchUps []metrics.MatchUp) []metrics.AgentConfig {
	seen := map[int]bool{}
	configs := []metrics.AgentConfig{}
	for _, matchup := range matchUps {
		for _, config := range []metrics.AgentConfig{matchup.Agent1, matchup.Agent2} {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}
	}
	return configs
}

// runGame executes a single game between two agents and returns the winner
func runGame(black, white metrics.AgentConfig, start *game.GameState, maxMoves int) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	blackMCTS, err := createMCTS(black)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	whiteMCTS, err := createMCTS(white)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	e := engine.Local(
		agent.NewEvaluationAgent(blackMCTS),
		agent.NewEvaluationAgent(whiteMCTS),
		engine.WithMaxMoves(maxMoves),
		engine.WithStart(start),
	)
	return e.Run()
}

func createMCTS(config metrics.AgentConfig) (*searcher.MCTS, error) {
	o, err := oracle.New(config.Oracle, config.Seed)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}

	episodes := config.Episodes
	if episodes <= 0 {
		episodes = Episodes
	}
	options := []searcher.Option{searcher.WithEpisodes(episodes)}
	if config.CPuct > 0 {
		options = append(options, searcher.WithCPuct(config.CPuct))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(o, options...), nil
}
