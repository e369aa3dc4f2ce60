package experiments

import (
	"baz/experiments/metrics"
	"baz/heuristic"
	"baz/player"
	"baz/searcher"

	"github.com/pkg/errors"
)

// Player kinds of metrics.AgentConfig.
const (
	RandomPlayer        = "random"
	ForwardRandomPlayer = "forward-random"
	GreedyPlayer        = "greedy"
	MinMaxPlayer        = "minmax"
)

// Heuristic names of metrics.AgentConfig.
const (
	NaiveHeuristic    = "naive"
	GoFastHeuristic   = "gofast"
	GoFasterHeuristic = "gofaster"
	GeniusHeuristic   = "genius"
)

// NewPlayer builds the contestant config describes. seed drives every random choice it makes.
func NewPlayer(config metrics.AgentConfig, seed uint64) (player.Player, error) {
	switch config.Player {
	case RandomPlayer:
		return player.NewRandom(seed), nil
	case ForwardRandomPlayer:
		return player.NewForwardRandom(seed), nil
	case GreedyPlayer:
		return newGreedy(config.Heuristic)
	case MinMaxPlayer:
		return newMinMax(config, seed)
	default:
		return nil, errors.Errorf("agent %d: unknown player %q", config.ID, config.Player)
	}
}

func newGreedy(name string) (player.Player, error) {
	switch name {
	case NaiveHeuristic:
		return player.NewGreedy[heuristic.Result[float64]](heuristic.Naive{}), nil
	case GoFastHeuristic:
		return player.NewGreedy[heuristic.Result[int]](heuristic.GoFast{}), nil
	case GoFasterHeuristic:
		return player.NewGreedy[heuristic.Result[int]](heuristic.GoFaster{}), nil
	case GeniusHeuristic:
		return player.NewGreedy[heuristic.Result[float64]](heuristic.Genius{}), nil
	default:
		return nil, errors.Errorf("unknown heuristic %q", name)
	}
}

func newMinMax(config metrics.AgentConfig, seed uint64) (player.Player, error) {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.MaxWidth > 0 {
		options = append(options, searcher.WithMaxWidth(config.MaxWidth))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}

	switch config.Heuristic {
	case NaiveHeuristic:
		return searcher.NewMinMax[heuristic.Result[float64]](heuristic.Naive{}, options...), nil
	case GoFastHeuristic:
		return searcher.NewMinMax[heuristic.Result[int]](heuristic.GoFast{}, options...), nil
	case GoFasterHeuristic:
		return searcher.NewMinMax[heuristic.Result[int]](heuristic.GoFaster{}, options...), nil
	case GeniusHeuristic:
		return searcher.NewMinMax[heuristic.Result[float64]](heuristic.Genius{}, options...), nil
	default:
		return nil, errors.Errorf("agent %d: unknown heuristic %q", config.ID, config.Heuristic)
	}
}
