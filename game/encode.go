package game

// Compact is a fixed-width, comparable form of a Board, usable as a map key. Byte i of Pieces
// holds piece i as height<<6 | position index. The forfeit flag is not part of it.
type Compact struct {
	Pieces uint64
	First  uint8
	Second uint8
}

func (b Board) Encode() Compact {
	var packed uint64
	for i, p := range b.Pieces {
		packed |= uint64(encodePiece(p)) << (8 * i)
	}
	return Compact{Pieces: packed, First: b.FirstScore, Second: b.SecondScore}
}

// Decode rebuilds a non-forfeited Board. Colors follow from the slot of each piece.
func Decode(c Compact) Board {
	var b Board
	for i := range b.Pieces {
		packed := byte(c.Pieces >> (8 * i))
		b.Pieces[i] = Piece{
			Color:    colorOfSlot(i),
			Position: PositionFromIndex(int(packed & 0x3f)),
			Height:   Height(packed >> 6),
		}
	}
	b.FirstScore = c.First
	b.SecondScore = c.Second
	return b
}

func encodePiece(p Piece) byte {
	return byte(p.Height)<<6 | byte(p.Position.Index())
}
