package searcher

import (
	"context"

	"baz/experiments/metrics"
	"baz/game"
	"baz/heuristic"
)

// Searcher picks a move for color within its own time budget. The move is legal, or a forfeit
// when color has no legal move.
type Searcher interface {
	Search(ctx context.Context, board game.Board, color game.Color) (game.Move, metrics.SearchMetric)
}

var _ Searcher = (*MinMax[heuristic.Result[float64]])(nil)
