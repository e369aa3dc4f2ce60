package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMoveText(t *testing.T) {
	tests := []struct {
		move Move
		text string
	}{
		{Capture(5), "Boom 5"},
		{Relocate(2, NewPosition(3, 2)), "Zoom 2 19"},
		{Score(7), "Score 7"},
		{Forfeit(First), "Concede first"},
		{Forfeit(Second), "Concede second"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			text, err := tt.move.MarshalText()
			require.NoError(t, err)
			require.Equal(t, tt.text, string(text))

			parsed, err := ParseMove(tt.text + "\n")
			require.NoError(t, err)
			require.Equal(t, tt.move, parsed, "Parsing should invert encoding")

			var m Move
			require.NoError(t, m.UnmarshalText(text))
			require.Equal(t, tt.move, m)
		})
	}
}

func TestParseMoveRejectsMalformedLines(t *testing.T) {
	for _, line := range []string{
		"",
		"Jump 1",
		"Boom",
		"Boom 8",
		"Boom -1",
		"Boom x",
		"Boom 1 2",
		"Zoom 1",
		"Zoom 1 64",
		"Score 3 3",
		"Concede",
		"Concede purple",
		"boom 1",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseMove(line)
			require.Error(t, err, "%q should be rejected", line)
			require.ErrorIs(t, err, ErrMalformedMove)
			require.Equal(t, ErrMalformedMove, errors.Cause(err))
		})
	}
}

func TestMarshalTextRejectsInvalidMoves(t *testing.T) {
	_, err := Move{}.MarshalText()
	require.Error(t, err)

	_, err = Forfeit(NoColor).MarshalText()
	require.Error(t, err)
}
