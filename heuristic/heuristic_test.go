package heuristic

import (
	"testing"

	"baz/game"

	"github.com/stretchr/testify/require"
)

func deadBoard() game.Board {
	b := game.NewBoard()
	for i := range b.Pieces {
		b.Pieces[i].Height = game.Dead
	}
	return b
}

func TestNaive(t *testing.T) {
	h := Naive{}

	t.Run("symmetric start is even", func(t *testing.T) {
		v := h.Evaluate(game.NewBoard(), game.First)
		require.Equal(t, 0, v.Compare(h.Draw()), "Neither side is ahead at the start")
	})

	t.Run("advanced piece is an advantage", func(t *testing.T) {
		b := game.NewBoard().Apply(game.Relocate(0, game.NewPosition(2, 3)))

		require.Equal(t, 1, h.Evaluate(b, game.First).Compare(h.Draw()))
		require.Equal(t, -1, h.Evaluate(b, game.Second).Compare(h.Draw()))
	})

	t.Run("banked points count", func(t *testing.T) {
		b := game.NewBoard()
		b.Pieces[3].Height = game.Dead
		b.FirstScore = 3

		require.Equal(t, 1, h.Evaluate(b, game.First).Compare(h.Draw()))
	})
}

func TestDecidedBoardsUseExactValues(t *testing.T) {
	won := deadBoard()
	won.FirstScore = 1
	drawn := deadBoard()
	forfeited := game.NewBoard().Apply(game.Forfeit(game.Second))

	check := func(t *testing.T, evaluate func(game.Board, game.Color) int, win, loss, draw func() int) {
		require.Equal(t, win(), evaluate(won, game.First), "First has won")
		require.Equal(t, loss(), evaluate(won, game.Second), "Second has lost")
		require.Equal(t, draw(), evaluate(drawn, game.First), "Nobody left, equal scores")
		require.Equal(t, win(), evaluate(forfeited, game.First), "Second conceded")
	}

	t.Run("naive", func(t *testing.T) {
		h := Naive{}
		require.Equal(t, h.Max(), h.Evaluate(won, game.First))
		require.Equal(t, h.Min(), h.Evaluate(won, game.Second))
		require.Equal(t, h.Draw(), h.Evaluate(drawn, game.First))
		require.Equal(t, h.Max(), h.Evaluate(forfeited, game.First))
	})

	t.Run("go faster", func(t *testing.T) {
		h := GoFaster{}
		kind := func(b game.Board, c game.Color) int { return int(h.Evaluate(b, c).Kind) }
		check(t, kind,
			func() int { return int(Win) },
			func() int { return int(Loss) },
			func() int { return int(Draw) })
	})

	t.Run("genius", func(t *testing.T) {
		h := Genius{}
		kind := func(b game.Board, c game.Color) int { return int(h.Evaluate(b, c).Kind) }
		check(t, kind,
			func() int { return int(Win) },
			func() int { return int(Loss) },
			func() int { return int(Draw) })
	})
}

func TestHeuristicsSurviveEmptySides(t *testing.T) {
	b := game.NewBoard()
	for i := 4; i < 8; i++ {
		b.Pieces[i].Height = game.Dead
	}

	require.NotPanics(t, func() {
		Naive{}.Evaluate(b, game.First)
		GoFast{}.Evaluate(b, game.Second)
		GoFaster{}.Evaluate(b, game.First)
		Genius{}.Evaluate(b, game.Second)
	})
	require.NotPanics(t, func() {
		averageRace(b, game.Second)
		race(b, game.Second)
	})
}

func TestGoFast(t *testing.T) {
	h := GoFast{}
	start := game.NewBoard()

	// Every piece is eight rows from home at height three: three turns each.
	require.Equal(t, Estimate(-12), h.Evaluate(start, game.First))

	advanced := start.Apply(game.Relocate(0, game.NewPosition(2, 3)))
	require.Equal(t, Estimate(-11), h.Evaluate(advanced, game.First))
	require.Equal(t, Estimate(1), GoFaster{}.Evaluate(advanced, game.First))
	require.Equal(t, Estimate(-1), GoFaster{}.Evaluate(advanced, game.Second))
}

func TestScenarioTurns(t *testing.T) {
	matrix := []struct {
		racer  racer
		points int
		turns  int
	}{
		{racer{1, 1, false}, 1, 1},
		{racer{1, 8, false}, 1, 8},
		{racer{2, 1, false}, 2, 1},
		{racer{2, 2, false}, 2, 1},
		{racer{2, 3, false}, 2, 2},
		{racer{2, 8, false}, 2, 4},
		{racer{3, 3, false}, 3, 1},
		{racer{3, 4, false}, 3, 2},
		{racer{3, 7, false}, 3, 3},
		{racer{3, 8, false}, 3, 3},
	}
	for _, tt := range matrix {
		points, turns := scenario(0, []racer{tt.racer})
		require.Equal(t, tt.points, points, "points for %+v", tt.racer)
		require.Equal(t, tt.turns, turns, "turns for %+v", tt.racer)
	}
}

func TestScenarioBooms(t *testing.T) {
	t.Run("no boom in the mask", func(t *testing.T) {
		points, turns := scenario(0, []racer{{3, 1, false}, {2, 1, false}, {1, 1, true}})
		require.Equal(t, 6, points)
		require.Equal(t, 3, turns)
	})

	t.Run("boomed pieces lose a height", func(t *testing.T) {
		for _, tt := range []struct {
			racer         racer
			points, turns int
		}{
			{racer{1, 1, true}, 0, 0},
			{racer{2, 1, true}, 1, 1},
			{racer{3, 1, true}, 2, 1},
			{racer{3, 8, true}, 2, 4},
		} {
			points, turns := scenario(0b1, []racer{tt.racer})
			require.Equal(t, tt.points, points, "points for %+v", tt.racer)
			require.Equal(t, tt.turns, turns, "turns for %+v", tt.racer)
		}
	})

	t.Run("only exposed pieces can be boomed", func(t *testing.T) {
		points, _ := scenario(0b11, []racer{{3, 1, false}, {3, 1, true}})
		require.Equal(t, 5, points)
	})
}

func TestGenius(t *testing.T) {
	h := Genius{}
	safe := game.NewBoard()
	exposed := safe.Apply(game.Relocate(4, game.NewPosition(2, 3)))

	// The pieces on c1 and c4 now threaten each other.
	require.NotPanics(t, func() { h.Evaluate(exposed, game.First) })
	require.Equal(t, 0, h.Evaluate(safe, game.First).Compare(h.Draw()), "Symmetric start is even")
}
