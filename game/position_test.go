package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffset(t *testing.T) {
	t.Run("stepping onto the board", func(t *testing.T) {
		step := NewPosition(3, 3).Offset(1, -1)

		require.Equal(t, OnBoard, step.Kind, "Square should be on the board")
		require.Equal(t, NewPosition(4, 2), step.Position, "Square should be offset by (1,-1)")
	})

	t.Run("stepping past the far edge of first", func(t *testing.T) {
		for _, dx := range []int{-1, 0, 1} {
			step := NewPosition(0, 7).Offset(dx, 1)

			require.Equal(t, ScoreZone, step.Kind, "Row 8 should be a score zone (dx=%d)", dx)
			require.Equal(t, First, step.Zone, "Row 8 should belong to first")
		}
	})

	t.Run("stepping past the far edge of second", func(t *testing.T) {
		step := NewPosition(7, 0).Offset(1, -1)

		require.Equal(t, ScoreZone, step.Kind, "Row -1 should be a score zone, even in column 8")
		require.Equal(t, Second, step.Zone, "Row -1 should belong to second")
	})

	t.Run("stepping off the side of the board", func(t *testing.T) {
		require.Equal(t, Invalid, NewPosition(0, 3).Offset(-1, 0).Kind, "Column -1 should be invalid")
		require.Equal(t, Invalid, NewPosition(7, 3).Offset(1, 1).Kind, "Column 8 should be invalid")
	})

	t.Run("stepping beyond the extended band", func(t *testing.T) {
		require.Equal(t, Invalid, NewPosition(0, 7).Offset(-2, 1).Kind, "Column -2 is outside the score zone band")
		require.Equal(t, Invalid, NewPosition(0, 7).Offset(0, 2).Kind, "Row 9 is not a score zone")
	})

	t.Run("classification is pure", func(t *testing.T) {
		for index := 0; index < BoardSize*BoardSize; index++ {
			p := PositionFromIndex(index)
			for _, dir := range directions {
				require.Equal(t, p.Offset(dir[0], dir[1]), p.Offset(dir[0], dir[1]),
					"Offset should be a pure function of its inputs")
			}
		}
	})
}

func TestPositionIndex(t *testing.T) {
	for index := 0; index < BoardSize*BoardSize; index++ {
		require.Equal(t, index, PositionFromIndex(index).Index(), "Index should invert PositionFromIndex")
	}
	require.Equal(t, 2+8*3, NewPosition(2, 3).Index(), "Index should be x+8y")
}

func TestParsePosition(t *testing.T) {
	t.Run("reading algebraic squares", func(t *testing.T) {
		p, err := ParsePosition("c1")
		require.NoError(t, err)
		require.Equal(t, NewPosition(2, 0), p)
		require.Equal(t, "c1", p.String(), "String should invert ParsePosition")

		p, err = ParsePosition("h8")
		require.NoError(t, err)
		require.Equal(t, NewPosition(7, 7), p)
	})

	t.Run("rejecting squares outside the board", func(t *testing.T) {
		for _, s := range []string{"i1", "a9", "a0", "", "a", "a10", "C1"} {
			_, err := ParsePosition(s)
			require.Error(t, err, "%q should be rejected", s)
		}
	})
}

func TestNewPositionPanicsOffBoard(t *testing.T) {
	require.Panics(t, func() { NewPosition(8, 0) }, "Off-board coordinates are an invariant violation")
	require.Panics(t, func() { PositionFromIndex(64) }, "Index 64 is off the board")
}
