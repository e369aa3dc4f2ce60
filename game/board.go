package game

import "fmt"

// Board is a value type: Apply returns a new Board and never touches the receiver.
// Pieces 0-3 belong to First and 4-7 to Second.
type Board struct {
	Pieces      [NumPieces]Piece
	FirstScore  uint8
	SecondScore uint8
	Forfeited   Color // NoColor unless a side has conceded
}

// NewBoard returns the starting position: every piece at height three on its home rank, columns c-f.
func NewBoard() Board {
	var b Board
	for i := 0; i < PiecesPerSide; i++ {
		b.Pieces[i] = NewPiece(First, 2+i, 0)
		b.Pieces[PiecesPerSide+i] = NewPiece(Second, 2+i, BoardSize-1)
	}
	return b
}

// Apply returns the board that results from playing move.
func (b Board) Apply(move Move) Board {
	move.validate()
	switch move.Kind {
	case CaptureMove:
		b.Pieces[move.Piece].Height = b.Pieces[move.Piece].Height.Boom()
	case RelocateMove:
		b.Pieces[move.Piece].Position = move.To
	case ScoreMove:
		piece := &b.Pieces[move.Piece]
		b.addScore(piece.Color, uint8(piece.Height))
		piece.Height = Dead
	case ForfeitMove:
		b.Forfeited = move.Color
	}
	return b
}

// PieceAt returns the index of the live piece standing on position.
func (b Board) PieceAt(position Position) (int, bool) {
	for i := range b.Pieces {
		if b.Pieces[i].Alive() && b.Pieces[i].Position == position {
			return i, true
		}
	}
	return -1, false
}

func (b Board) Piece(index int) Piece {
	if index < 0 || index >= NumPieces {
		panic(fmt.Sprintf("piece index %d outside 0-%d", index, NumPieces-1))
	}
	return b.Pieces[index]
}

func (b Board) Score(color Color) uint8 {
	switch color {
	case First:
		return b.FirstScore
	case Second:
		return b.SecondScore
	default:
		panic(fmt.Sprintf("no score for %v", color))
	}
}

func (b *Board) addScore(color Color, points uint8) {
	if color == First {
		b.FirstScore += points
	} else {
		b.SecondScore += points
	}
}

// Potential is the sum of live heights of a side: the most it can still score.
func (b Board) Potential(color Color) int {
	lo, hi := color.Range()
	potential := 0
	for _, p := range b.Pieces[lo:hi] {
		potential += int(p.Height)
	}
	return potential
}

func (b Board) String() string {
	out := fmt.Sprintf("first: %d  second: %d\n", b.FirstScore, b.SecondScore)
	for y := BoardSize - 1; y >= 0; y-- {
		out += fmt.Sprintf("%d|", y+1)
		for x := 0; x < BoardSize; x++ {
			index, ok := b.PieceAt(Position{X: int8(x), Y: int8(y)})
			switch {
			case !ok:
				out += " ."
			case b.Pieces[index].Color == First:
				out += fmt.Sprintf(" %d", b.Pieces[index].Height)
			default:
				out += fmt.Sprintf(" %c", "-abc"[b.Pieces[index].Height])
			}
		}
		out += "\n"
	}
	return out + " +----------------\n   a b c d e f g h\n"
}
