package experiments

import (
	"fmt"

	"cube/engine"
	"cube/experiments/metrics"
	"cube/game"
	"cube/searcher"
	"cube/searcher/agent"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per match up

// Settings control how many games are played and where their records go.
type Settings struct {
	OutputDir    string
	NumGames     int    // Per match up, NumGames if zero
	OpeningPlies int    // Random moves played before the agents take over
	Seed         uint64 // Seed of the first game's opening, incremented per game
}

func (s Settings) games() int {
	if s.NumGames > 0 {
		return s.NumGames
	}
	return NumGames
}

// RunDepthExperiment pairs agents of increasing search depth against a depth 2 baseline.
func RunDepthExperiment(settings Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 2, Goroutines: 1}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Depth: 1, Goroutines: 1},
		{ID: 2, Depth: 2, Goroutines: 1}, // Baseline equivalent
		{ID: 3, Depth: 3, Goroutines: 4},
		{ID: 4, Depth: 4, Goroutines: 8},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", settings, append(depthConfigs, baseline), matchUps)
}

// RunExplorationExperiment measures how much random exploration costs a depth 2 agent.
func RunExplorationExperiment(settings Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 2, Goroutines: 1}
	explorationConfigs := []metrics.AgentConfig{
		{ID: 1, Depth: 2, Goroutines: 1, Epsilon: 0.1},
		{ID: 2, Depth: 2, Goroutines: 1, Epsilon: 0.25},
		{ID: 3, Depth: 2, Goroutines: 1, Epsilon: 0.5},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range explorationConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("exploration", settings, append(explorationConfigs, baseline), matchUps)
}

func runExperiment(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < settings.games(); i++ {
			// Alternate the starting agent so neither side keeps the first-move advantage
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}
			seed := settings.Seed + uint64(count)

			winner, gameMetric, moveMetrics := runGame(first, second, settings.OpeningPlies, seed)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(name, settings.OutputDir, configs, gameRecords, moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to store %s experiment: %w", name, err)
	}
	return dir, nil
}

func store(name, root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", err
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays a single game in which first plays Cube and second plays Ball.
func runGame(first, second metrics.AgentConfig, openingPlies int, seed uint64) (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		createAgent(first, seed),
		createAgent(second, seed+1),
	}
	options := []engine.Option{}
	if openingPlies > 0 {
		options = append(options, engine.WithOpening(openingPlies, seed))
	}
	e := engine.LocalEngine(agents, options...)

	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	advisor := agent.NewAdvisor(searcher.NewMinimax(options...))
	if config.Epsilon > 0 {
		return agent.NewExplorationAgent(advisor, config.Epsilon, seed)
	}
	return advisor
}
