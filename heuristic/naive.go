package heuristic

import "baz/game"

// Naive treats the game as a race: both sides run every piece straight home, and the side that
// would finish first cuts the other short. Each side's projection is its banked score plus the
// share of its remaining heights it can cash in before the race ends.
type Naive struct {
	results[float64]
}

func (h Naive) Evaluate(board game.Board, color game.Color) Result[float64] {
	if value, ok := Terminal[Result[float64]](h, board, color); ok {
		return value
	}
	ourPoints, ourTurns := race(board, color)
	theirPoints, theirTurns := race(board, color.Opponent())
	turns := min(ourTurns, theirTurns)

	ours := project(board.Score(color), ourPoints, ourTurns, turns)
	theirs := project(board.Score(color.Opponent()), theirPoints, theirTurns, turns)
	return Estimate(ours - theirs)
}

func project(banked uint8, points, turns, available int) float64 {
	projected := float64(banked)
	if turns > 0 {
		projected += float64(points) * float64(available) / float64(turns)
	}
	return projected
}
