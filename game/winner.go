package game

// Outcome is the result of a board as far as it is already decided.
type Outcome uint8

const (
	Undecided Outcome = iota
	FirstWins
	SecondWins
	Draw
)

func winsFor(color Color) Outcome {
	if color == First {
		return FirstWins
	}
	return SecondWins
}

// Winner decides the board: a forfeit loses outright; a side with nothing left to score ends the
// game on points; otherwise a side that cannot catch up even by scoring every remaining height
// has already lost. Reaching exactly the opponent's score is still open.
func (b Board) Winner() Outcome {
	if b.Forfeited != NoColor {
		return winsFor(b.Forfeited.Opponent())
	}

	firstPotential, secondPotential := b.Potential(First), b.Potential(Second)
	firstScore, secondScore := int(b.FirstScore), int(b.SecondScore)

	if firstPotential == 0 || secondPotential == 0 {
		switch {
		case firstScore > secondScore:
			return FirstWins
		case secondScore > firstScore:
			return SecondWins
		default:
			return Draw
		}
	}

	if firstScore+firstPotential < secondScore {
		return SecondWins
	}
	if secondScore+secondPotential < firstScore {
		return FirstWins
	}
	return Undecided
}

// Winner returns the winning color, NoColor for a draw or an undecided game.
func (o Outcome) Winner() Color {
	switch o {
	case FirstWins:
		return First
	case SecondWins:
		return Second
	default:
		return NoColor
	}
}

func (o Outcome) Decided() bool {
	return o != Undecided
}

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}
