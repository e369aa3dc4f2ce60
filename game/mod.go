package game

// Color identifies a side. NoColor is only used as "nobody", e.g. when no side has forfeited.
type Color uint8

const (
	NoColor Color = iota
	First
	Second
)

const (
	NumPieces     = 8
	PiecesPerSide = NumPieces / 2
	BoardSize     = 8
)

func (c Color) Opponent() Color {
	switch c {
	case First:
		return Second
	case Second:
		return First
	default:
		return NoColor
	}
}

// Range returns the half-open slice of piece indices owned by the color.
func (c Color) Range() (lo, hi int) {
	switch c {
	case First:
		return 0, PiecesPerSide
	case Second:
		return PiecesPerSide, NumPieces
	default:
		panic("no piece range for NoColor")
	}
}

// scoringRow is the row just past the far edge, where pieces of the color bank their points.
func (c Color) scoringRow() int {
	if c == First {
		return BoardSize
	}
	return -1
}

func (c Color) String() string {
	switch c {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}

func colorOfSlot(index int) Color {
	if index < PiecesPerSide {
		return First
	}
	return Second
}
