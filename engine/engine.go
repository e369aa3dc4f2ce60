package engine

import (
	"baz/experiments/metrics"
	"baz/game"
)

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
