package experiments

import (
	"time"

	"baz/engine"
	"baz/experiments/metrics"
	"baz/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Goroutines: 1, Duration: TimeBudget},
	{ID: 2, Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Goroutines: 2, Duration: TimeBudget},
	{ID: 3, Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Goroutines: 4, Duration: TimeBudget},
	{ID: 4, Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Goroutines: 8, Duration: TimeBudget},
	{ID: 5, Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Goroutines: 16, Duration: TimeBudget},
}

// RunParallelizationToStrength pairs every parallel agent against the sequential baseline.
func RunParallelizationToStrength() error {
	baseline := metrics.AgentConfig{ID: 0, Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Goroutines: 1, Duration: TimeBudget}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Run("parallelization_to_strength", append(parallelConfigs, baseline), matchUps, NumGames)
}

// RunHeuristicTournament plays every heuristic against every other one at equal budgets, plus
// the random baselines.
func RunHeuristicTournament() error {
	configs := []metrics.AgentConfig{
		{ID: 1, Player: MinMaxPlayer, Heuristic: NaiveHeuristic, Duration: TimeBudget},
		{ID: 2, Player: MinMaxPlayer, Heuristic: GoFastHeuristic, Duration: TimeBudget},
		{ID: 3, Player: MinMaxPlayer, Heuristic: GoFasterHeuristic, Duration: TimeBudget},
		{ID: 4, Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Duration: TimeBudget},
		{ID: 5, Player: GreedyPlayer, Heuristic: GeniusHeuristic},
		{ID: 6, Player: ForwardRandomPlayer},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}

	return Run("heuristic_tournament", configs, matchUps, NumGames)
}

// RunWidthExperiment compares width limits below the root against the default agent.
func RunWidthExperiment() error {
	baseline := metrics.AgentConfig{ID: 0, Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Duration: TimeBudget}
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for i, width := range []int{4, 8, 16, 32} {
		config := baseline
		config.ID = i + 1
		config.MaxWidth = width
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Run("width", append(configs, baseline), matchUps, NumGames)
}

// Run plays games per match up, alternating which agent moves first, and stores the configs and
// records under experiments/<name>.
func Run(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}
	return run(writer, name, configs, matchUps, games)
}

func run(writer *metrics.Writer, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int) error {
	// Store experiment metadata
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := range games {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}
			count++

			winner, gameMetric, moveMetrics, err := runGame(first, second, uint64(count))
			if err != nil {
				return errors.Wrapf(err, "matchup %d game %d", mi+1, i+1)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				First:      first.ID,
				Second:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %v", mi+1, len(matchUps), i+1, games, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment results
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return errors.Wrap(err, "failed to write move records")
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// runGame plays a single game between two agents and returns the winner
func runGame(first, second metrics.AgentConfig, seed uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	p1, err := NewPlayer(first, seed)
	if err != nil {
		return game.Undecided, metrics.GameMetric{}, nil, err
	}
	p2, err := NewPlayer(second, seed+1)
	if err != nil {
		return game.Undecided, metrics.GameMetric{}, nil, err
	}

	return engine.LocalEngine(p1, p2).Run()
}
