package game

import "fmt"

// MoveKind tags the variant carried by a Move.
type MoveKind uint8

const (
	CaptureMove MoveKind = iota + 1
	RelocateMove
	ScoreMove
	ForfeitMove
)

// Move is a tagged variant. Piece is the acting piece for Relocate and Score and the target for
// Capture; To is only meaningful for Relocate and Color only for Forfeit. Moves are comparable.
type Move struct {
	Kind  MoveKind
	Piece int
	To    Position
	Color Color
}

// Capture booms the piece at index target.
func Capture(target int) Move {
	return Move{Kind: CaptureMove, Piece: target}
}

func Relocate(piece int, to Position) Move {
	return Move{Kind: RelocateMove, Piece: piece, To: to}
}

func Score(piece int) Move {
	return Move{Kind: ScoreMove, Piece: piece}
}

func Forfeit(color Color) Move {
	return Move{Kind: ForfeitMove, Color: color}
}

// validate panics on moves no generator could have produced.
func (m Move) validate() {
	switch m.Kind {
	case CaptureMove, RelocateMove, ScoreMove:
		if m.Piece < 0 || m.Piece >= NumPieces {
			panic(fmt.Sprintf("move %v references piece %d outside 0-%d", m, m.Piece, NumPieces-1))
		}
	case ForfeitMove:
		if m.Color != First && m.Color != Second {
			panic(fmt.Sprintf("forfeit by %v", m.Color))
		}
	default:
		panic(fmt.Sprintf("unknown move kind %d", m.Kind))
	}
}

func (m Move) String() string {
	switch m.Kind {
	case CaptureMove:
		return fmt.Sprintf("boom #%d", m.Piece)
	case RelocateMove:
		return fmt.Sprintf("zoom #%d to %v", m.Piece, m.To)
	case ScoreMove:
		return fmt.Sprintf("score #%d", m.Piece)
	case ForfeitMove:
		return fmt.Sprintf("%v concedes", m.Color)
	default:
		return fmt.Sprintf("move(kind=%d)", m.Kind)
	}
}
