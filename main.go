package main

import (
	"flag"
	"fmt"
	"os"
	"shogi/display"
	"shogi/engine"
	"shogi/experiments"
	"shogi/game"
	"shogi/meta"
	"shogi/oracle"
	"shogi/searcher"
	"shogi/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "show", "selfplay, arena, throughput or show")
	configPath := flag.String("config", "", "YAML config file")
	episodes := flag.Int("episodes", meta.EPISODES, "Number of searches per move")
	games := flag.Int("games", 1, "Number of games to play")
	oracleName := flag.String("oracle", "uniform", "uniform, random or material")
	cpuct := flag.Float64("cpuct", meta.CPUCT, "Exploration constant")
	sfen := flag.String("sfen", "", "Starting position for every mode, the initial position when empty")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	config := meta.Default()
	if *configPath != "" {
		var err error
		config, err = meta.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// Explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "episodes":
			config.Episodes = *episodes
		case "games":
			config.Games = *games
		case "oracle":
			config.Oracle = *oracleName
		case "cpuct":
			config.CPuct = *cpuct
		case "level":
			config.LogLevel = *level
		}
	})

	lvl, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	start := game.NewGame()
	if *sfen != "" {
		start, err = game.ParseSFEN(*sfen)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid starting position")
		}
	}

	switch *mode {
	case "selfplay":
		err = runSelfPlay(config, start)
	case "arena":
		_, err = experiments.RunArena(config.OutputDir, "arena", experiments.OracleMatchUps(config.Episodes), start, config.Games, config.MaxMoves)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(config.OutputDir, experiments.ThroughputConfigs(), start, 10)
	case "show":
		fmt.Println(display.Board(start))
		fmt.Print(display.Moves(start.LegalMoves()))
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func runSelfPlay(config meta.Config, start *game.GameState) error {
	o, err := oracle.New(config.Oracle, config.Seed)
	if err != nil {
		return err
	}

	results := map[game.Player]int{}
	for i := 0; i < config.Games; i++ {
		// A fresh tree per game
		mcts := searcher.NewMCTS(o,
			searcher.WithEpisodes(config.Episodes),
			searcher.WithCPuct(config.CPuct),
			searcher.WithMaxDepth(config.MaxDepth),
			searcher.WithMetrics(),
		)
		options := []agent.TrainingOption{
			agent.WithTemperature(config.Temperature),
			agent.WithSeed(config.Seed + uint64(i)),
		}
		if config.GreedyAfter > 0 {
			options = append(options, agent.WithGreedyAfter(config.GreedyAfter))
		}
		a := agent.NewTrainingAgent(mcts, options...)

		log.Info().Msgf("starting self-play game %d of %d...", i+1, config.Games)
		examples, winner, err := engine.Episode(a, start, config.MaxMoves)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		results[winner]++
		log.Info().Msgf("completed game %d after %d moves with winner: %s", i+1, len(examples), winner)
	}

	log.Info().Msgf("black %d, white %d, unfinished %d", results[game.Black], results[game.White], results[0])
	return nil
}
