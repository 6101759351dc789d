package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"cube/communication/client"
	"cube/communication/server"
	"cube/config"
	"cube/engine"
	"cube/experiments"
	"cube/game"
	"cube/searcher"
	"cube/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	board := flag.String("board", "", "Board to advise on, 16 pillars of 4 cells in row-major order, e.g. \"C.../..../...\"")
	player := flag.String("player", "cube", "Player to move: cube or ball")
	depth := flag.Int("depth", 0, "Search depth in plies (overrides config)")
	goroutines := flag.Int("goroutines", 0, "Goroutines backing up root moves (overrides config)")
	serve := flag.Bool("serve", false, "Serve the advisor HTTP API")
	addr := flag.String("addr", "", "Listen address for -serve (overrides config)")
	selfplay := flag.Bool("selfplay", false, "Play a game between two advisors")
	remote := flag.String("remote", "", "Advisor server URL playing Ball in -selfplay")
	experiment := flag.String("experiment", "", "Run an experiment: depth, exploration or throughput")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *goroutines > 0 {
		cfg.Search.Goroutines = *goroutines
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch {
	case *serve:
		s := server.NewServer(cfg.Search.Depth, cfg.Search.MaxDepth, cfg.Search.Goroutines)
		if err := s.ListenAndServe(cfg.Server.Addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	case *selfplay:
		runSelfPlay(cfg, *remote)
	case *experiment != "":
		runExperiment(cfg, *experiment)
	default:
		if err := advise(cfg, *board, *player); err != nil {
			log.Fatal().Err(err).Msg("failed to advise")
		}
	}
}

func newMinimax(cfg config.Config) *searcher.Minimax {
	return searcher.NewMinimax(
		searcher.WithDepth(cfg.Search.Depth),
		searcher.WithGoroutines(cfg.Search.Goroutines),
		searcher.WithMetrics(),
	)
}

func advise(cfg config.Config, board, player string) error {
	var cube game.Cube
	if board != "" {
		var err error
		if cube, err = game.ParseCube(board); err != nil {
			return err
		}
	}
	mover, err := game.ParsePiece(player)
	if err != nil {
		return err
	}

	fmt.Print(cube.Render())
	advisor := agent.NewAdvisor(newMinimax(cfg))
	fmt.Printf("%s to move, position evaluates to %s\n", mover, advisor.EvaluateInitialPosition(cube, mover))

	decision, err := advisor.FindMove(game.NewGameState(cube, mover))
	switch {
	case errors.Is(err, agent.ErrGameOver):
		fmt.Printf("game is over: %s for %s\n", decision.Score, mover)
		return nil
	case errors.Is(err, searcher.ErrNoLegalMove):
		fmt.Println("no legal move: the cube is full")
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("best move: column %d, row %d (score %s, %d nodes in %s)\n",
		decision.Move.Column, decision.Move.Row, decision.Score, decision.Metrics.Nodes, decision.Metrics.Duration)
	return nil
}

func runSelfPlay(cfg config.Config, remote string) {
	var opponent agent.Agent = agent.NewAdvisor(newMinimax(cfg))
	if remote != "" {
		remoteAgent := client.NewRemoteAgent(remote, cfg.Search.Depth)
		if err := remoteAgent.Ping(); err != nil {
			log.Fatal().Err(err).Msgf("advisor server at %s is unreachable", remote)
		}
		opponent = remoteAgent
	}

	options := []engine.Option{}
	if cfg.Experiment.OpeningPlies > 0 {
		options = append(options, engine.WithOpening(cfg.Experiment.OpeningPlies, cfg.Experiment.Seed))
	}
	e := engine.LocalEngine([]agent.Agent{agent.NewAdvisor(newMinimax(cfg)), opponent}, options...)
	winner, gameMetric, _ := e.Run()

	fmt.Print(e.State.Cube.Render())
	if winner == game.Empty {
		fmt.Printf("no winner after %d moves\n", gameMetric.TotalMoves)
		return
	}
	fmt.Printf("%s wins after %d moves\n", winner, gameMetric.TotalMoves)
}

func runExperiment(cfg config.Config, name string) {
	settings := experiments.Settings{
		OutputDir:    cfg.Experiment.OutputDir,
		NumGames:     cfg.Experiment.NumGames,
		OpeningPlies: cfg.Experiment.OpeningPlies,
		Seed:         cfg.Experiment.Seed,
	}

	run := map[string]func(experiments.Settings) (string, error){
		"depth":       experiments.RunDepthExperiment,
		"exploration": experiments.RunExplorationExperiment,
		"throughput":  experiments.RunThroughputExperiment,
	}[name]
	if run == nil {
		log.Fatal().Msgf("unknown experiment %q", name)
	}

	dir, err := run(settings)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	fmt.Printf("results stored in %s\n", dir)
}
