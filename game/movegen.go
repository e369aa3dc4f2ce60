package game

import (
	"iter"
	"slices"
)

// directions in generation order: W, SW, S, SE, E, NE, N, NW.
var directions = [8][2]int{
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
}

// MovesFor lazily yields the legal moves of the piece at index. Each range over the returned
// sequence is a fresh traversal.
func (b Board) MovesFor(index int) iter.Seq[Move] {
	piece := b.Piece(index)
	return func(yield func(Move) bool) {
		if !piece.Alive() {
			return
		}
		scored := false
		for _, dir := range directions {
			position := piece.Position
			for range int(piece.Height) {
				step := position.Offset(dir[0], dir[1])
				if step.Kind == Invalid {
					break
				}
				if step.Kind == ScoreZone {
					if step.Zone == piece.Color && !scored {
						scored = true
						if !yield(Score(index)) {
							return
						}
					}
					break
				}
				position = step.Position
				if other, ok := b.PieceAt(position); ok {
					if b.Pieces[other].Color != piece.Color {
						if !yield(Capture(other)) {
							return
						}
					}
					break
				}
				if !yield(Relocate(index, position)) {
					return
				}
			}
		}
	}
}

// Moves lazily yields every legal move of color, piece by piece in index order.
func (b Board) Moves(color Color) iter.Seq[Move] {
	lo, hi := color.Range()
	return func(yield func(Move) bool) {
		for i := lo; i < hi; i++ {
			for move := range b.MovesFor(i) {
				if !yield(move) {
					return
				}
			}
		}
	}
}

func (b Board) LegalMoves(color Color) []Move {
	return slices.Collect(b.Moves(color))
}

// IsLegal reports whether move is one of the moves the generator offers to color.
func (b Board) IsLegal(color Color, move Move) bool {
	for legal := range b.Moves(color) {
		if legal == move {
			return true
		}
	}
	return false
}
