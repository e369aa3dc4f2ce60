package heuristic

import "baz/game"

// Value is a totally ordered evaluation.
type Value[V any] interface {
	Compare(other V) int
}

// Heuristic scores a board from color's point of view. Min and Max are a certain loss and a
// certain win, Draw a certain draw; every estimate Evaluate returns ranks strictly between the
// first two.
type Heuristic[V Value[V]] interface {
	Evaluate(board game.Board, color game.Color) V
	Min() V
	Max() V
	Draw() V
}

// Terminal maps a decided board to the exact value for color. ok is false while undecided.
func Terminal[V Value[V]](h Heuristic[V], board game.Board, color game.Color) (value V, ok bool) {
	outcome := board.Winner()
	switch {
	case outcome == game.Undecided:
		return value, false
	case outcome == game.Draw:
		return h.Draw(), true
	case outcome.Winner() == color:
		return h.Max(), true
	default:
		return h.Min(), true
	}
}

// Better returns the greater of a and b, preferring a on ties.
func Better[V Value[V]](a, b V) V {
	if b.Compare(a) > 0 {
		return b
	}
	return a
}

// Worse returns the lesser of a and b, preferring a on ties.
func Worse[V Value[V]](a, b V) V {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}

// turnsToScore is the number of moves a piece needs to bank its points when moving at full
// range straight at its score zone.
func turnsToScore(color game.Color, piece game.Piece) int {
	distance := distance(color, piece.Position)
	height := int(piece.Height)
	return (distance + height - 1) / height
}

func distance(color game.Color, p game.Position) int {
	if color == game.First {
		return game.BoardSize - int(p.Y)
	}
	return int(p.Y) + 1
}

// race sums the live heights of color and the turns needed to score all of them.
func race(board game.Board, color game.Color) (points, turns int) {
	lo, hi := color.Range()
	for _, p := range board.Pieces[lo:hi] {
		if !p.Alive() {
			continue
		}
		points += int(p.Height)
		turns += turnsToScore(color, p)
	}
	return points, turns
}
