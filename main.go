package main

import (
	"flag"
	"os"
	"time"

	"baz/engine"
	"baz/experiments"
	"baz/experiments/metrics"
	"baz/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "play", "play, tournament, parallelization, width or throughput")
	first := flag.String("first", experiments.MinMaxPlayer, "First's player kind for play")
	second := flag.String("second", experiments.ForwardRandomPlayer, "Second's player kind for play")
	heuristic := flag.String("heuristic", experiments.GeniusHeuristic, "Heuristic of greedy and minmax players for play")
	duration := flag.Duration("duration", meta.TIME_BUDGET, "Thinking time per move for play")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Goroutines searching the root for play")
	debug := flag.Bool("debug", false, "Log every completed search depth")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *experiment {
	case "play":
		err = play(
			metrics.AgentConfig{ID: 1, Player: *first, Heuristic: *heuristic, Duration: *duration, Goroutines: *goroutines},
			metrics.AgentConfig{ID: 2, Player: *second, Heuristic: *heuristic, Duration: *duration, Goroutines: *goroutines},
		)
	case "tournament":
		err = experiments.RunHeuristicTournament()
	case "parallelization":
		err = experiments.RunParallelizationToStrength()
	case "width":
		err = experiments.RunWidthExperiment()
	case "throughput":
		err = experiments.RunThroughputExperiment()
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *experiment)
	}
}

// play runs a single game between two agents and logs the final position
func play(first, second metrics.AgentConfig) error {
	seed := uint64(time.Now().UnixNano())
	p1, err := experiments.NewPlayer(first, seed)
	if err != nil {
		return err
	}
	p2, err := experiments.NewPlayer(second, seed+1)
	if err != nil {
		return err
	}

	winner, gameMetric, _, err := engine.LocalEngine(p1, p2).Run()
	if err != nil {
		return err
	}
	log.Info().Dur("duration", gameMetric.Duration).Int("moves", gameMetric.TotalMoves).Msgf("winner: %v", winner)
	return nil
}
