package game

import (
	"fmt"

	"github.com/pkg/errors"
)

const columns = "abcdefgh"

// Position is an on-board square. Off-board squares and score zones are never Positions,
// they only appear as the outcome of Offset.
type Position struct {
	X, Y int8
}

// StepKind classifies the square reached by Offset.
type StepKind uint8

const (
	Invalid StepKind = iota
	OnBoard
	ScoreZone
)

// Step is the outcome of moving one square from a Position.
// Position is set for OnBoard, Zone for ScoreZone.
type Step struct {
	Kind     StepKind
	Position Position
	Zone     Color
}

func NewPosition(x, y int) Position {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		panic(fmt.Sprintf("position (%d,%d) is off the board", x, y))
	}
	return Position{X: int8(x), Y: int8(y)}
}

// PositionFromIndex is the inverse of Index.
func PositionFromIndex(index int) Position {
	if index < 0 || index >= BoardSize*BoardSize {
		panic(fmt.Sprintf("position index %d is off the board", index))
	}
	return Position{X: int8(index % BoardSize), Y: int8(index / BoardSize)}
}

// ParsePosition reads algebraic notation such as "c1".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, errors.Errorf("invalid square %q", s)
	}
	x := int(s[0]) - 'a'
	y := int(s[1]) - '1'
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return Position{}, errors.Errorf("square %q is outside the board", s)
	}
	return Position{X: int8(x), Y: int8(y)}, nil
}

// Index is the linear index x+8y.
func (p Position) Index() int {
	return int(p.X) + BoardSize*int(p.Y)
}

// Offset classifies the square (x+dx, y+dy): a score zone when the row is one past a side's
// far edge (columns -1..8 included), invalid when off the board, on-board otherwise.
func (p Position) Offset(dx, dy int) Step {
	x := int(p.X) + dx
	y := int(p.Y) + dy
	if x >= -1 && x <= BoardSize {
		switch y {
		case First.scoringRow():
			return Step{Kind: ScoreZone, Zone: First}
		case Second.scoringRow():
			return Step{Kind: ScoreZone, Zone: Second}
		}
	}
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return Step{Kind: Invalid}
	}
	return Step{Kind: OnBoard, Position: Position{X: int8(x), Y: int8(y)}}
}

func (p Position) String() string {
	return fmt.Sprintf("%c%d", columns[p.X], p.Y+1)
}
