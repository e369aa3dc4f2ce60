package heuristic

import "baz/game"

// Genius refines Naive with threats: every piece the opponent could boom right now is either
// boomed or not, and the race is averaged over all of those scenarios. With at most four pieces a
// side there are at most sixteen of them.
//
// The estimate ignores pieces walking into range while they race home; the search is expected to
// punish that optimism.
type Genius struct {
	results[float64]
}

type racer struct {
	height   int
	distance int
	exposed  bool
}

func (h Genius) Evaluate(board game.Board, color game.Color) Result[float64] {
	if value, ok := Terminal[Result[float64]](h, board, color); ok {
		return value
	}
	ourPoints, ourTurns := averageRace(board, color)
	theirPoints, theirTurns := averageRace(board, color.Opponent())
	turns := min(ourTurns, theirTurns)

	ours := float64(board.Score(color))
	if ourTurns > 0 {
		ours += ourPoints * turns / ourTurns
	}
	theirs := float64(board.Score(color.Opponent()))
	if theirTurns > 0 {
		theirs += theirPoints * turns / theirTurns
	}
	return Estimate(ours - theirs)
}

// averageRace returns the points and turns of color's race averaged over every subset of its
// exposed pieces being boomed once.
func averageRace(board game.Board, color game.Color) (points, turns float64) {
	exposed := map[int]bool{}
	for move := range board.Moves(color.Opponent()) {
		if move.Kind == game.CaptureMove {
			exposed[move.Piece] = true
		}
	}

	var racers []racer
	lo, hi := color.Range()
	for i := lo; i < hi; i++ {
		p := board.Pieces[i]
		if !p.Alive() {
			continue
		}
		racers = append(racers, racer{
			height:   int(p.Height),
			distance: distance(color, p.Position),
			exposed:  exposed[i],
		})
	}

	scenarios := 1 << len(racers)
	sumPoints, sumTurns := 0, 0
	for mask := 0; mask < scenarios; mask++ {
		p, t := scenario(mask, racers)
		sumPoints += p
		sumTurns += t
	}
	return float64(sumPoints) / float64(scenarios), float64(sumTurns) / float64(scenarios)
}

// scenario races the pieces with bit i of mask booming racer i, if it is exposed.
func scenario(mask int, racers []racer) (points, turns int) {
	for i, r := range racers {
		height := r.height
		if r.exposed && (mask>>i)&1 == 1 {
			height--
		}
		if height <= 0 {
			continue
		}
		points += height
		turns += (r.distance + height - 1) / height
	}
	return points, turns
}
