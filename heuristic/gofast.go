package heuristic

import "baz/game"

// GoFast prefers boards where its own pieces need fewer turns to score, ignoring the opponent.
type GoFast struct {
	results[int]
}

func (h GoFast) Evaluate(board game.Board, color game.Color) Result[int] {
	if value, ok := Terminal[Result[int]](h, board, color); ok {
		return value
	}
	return Estimate(-remainingTurns(board, color))
}

// GoFaster tries to finish sooner than the opponent, which also rewards booming the opponent's
// fastest pieces.
type GoFaster struct {
	results[int]
}

func (h GoFaster) Evaluate(board game.Board, color game.Color) Result[int] {
	if value, ok := Terminal[Result[int]](h, board, color); ok {
		return value
	}
	return Estimate(remainingTurns(board, color.Opponent()) - remainingTurns(board, color))
}

func remainingTurns(board game.Board, color game.Color) int {
	_, turns := race(board, color)
	return turns
}
