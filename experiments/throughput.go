package experiments

import (
	"time"

	"baz/experiments/metrics"
)

// RunThroughputExperiment measures searched nodes per move as goroutines are added. Both sides use
// the same config for the same playing strength and similar game length.
func RunThroughputExperiment() error {
	const NumGames = 2 // Per match up
	const Duration = 50 * time.Millisecond
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16, 32} {
		config := metrics.AgentConfig{
			ID:         i + 1,
			Player:     MinMaxPlayer,
			Heuristic:  GoFasterHeuristic,
			Goroutines: goroutines,
			Duration:   Duration,
		}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return Run("throughput", configs, matchUps, NumGames)
}
