package game

// Height bounds both how far a piece moves and how many points it banks.
type Height uint8

const (
	Dead Height = iota
	One
	Two
	Three
)

// Boom lowers the height by one step, stopping at Dead.
func (h Height) Boom() Height {
	if h == Dead {
		return Dead
	}
	return h - 1
}

type Piece struct {
	Color    Color
	Position Position
	Height   Height
}

func NewPiece(color Color, x, y int) Piece {
	return Piece{
		Color:    color,
		Position: NewPosition(x, y),
		Height:   Three,
	}
}

func (p Piece) Alive() bool {
	return p.Height != Dead
}
