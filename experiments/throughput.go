package experiments

import "cube/experiments/metrics"

// RunThroughputExperiment plays depth 3 self-play games with an increasing number of
// goroutines backing up the root. Both players share a config for the same playing
// strength and similar game length, so move records isolate the search speedup.
func RunThroughputExperiment(settings Settings) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 3, Goroutines: 1},
		{ID: 2, Depth: 3, Goroutines: 2},
		{ID: 3, Depth: 3, Goroutines: 4},
		{ID: 4, Depth: 3, Goroutines: 8},
		{ID: 5, Depth: 3, Goroutines: 16},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment("throughput", settings, configs, matchUps)
}
