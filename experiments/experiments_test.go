package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"baz/experiments/metrics"
	"baz/heuristic"
	"baz/player"
	"baz/searcher"

	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	t.Run("every kind and heuristic", func(t *testing.T) {
		for _, kind := range []string{GreedyPlayer, MinMaxPlayer} {
			for _, h := range []string{NaiveHeuristic, GoFastHeuristic, GoFasterHeuristic, GeniusHeuristic} {
				p, err := NewPlayer(metrics.AgentConfig{Player: kind, Heuristic: h}, 1)
				require.NoError(t, err, "%s with %s", kind, h)
				require.NotNil(t, p)
			}
		}
		p, err := NewPlayer(metrics.AgentConfig{Player: RandomPlayer}, 1)
		require.NoError(t, err)
		require.IsType(t, &player.Random{}, p)

		p, err = NewPlayer(metrics.AgentConfig{Player: ForwardRandomPlayer}, 1)
		require.NoError(t, err)
		require.IsType(t, &player.ForwardRandom{}, p)
	})

	t.Run("minmax implements the searcher", func(t *testing.T) {
		p, err := NewPlayer(metrics.AgentConfig{Player: MinMaxPlayer, Heuristic: GeniusHeuristic, Duration: time.Millisecond}, 1)
		require.NoError(t, err)
		require.IsType(t, &searcher.MinMax[heuristic.Result[float64]]{}, p)
		require.Implements(t, (*searcher.Searcher)(nil), p)
	})

	t.Run("unknown names", func(t *testing.T) {
		_, err := NewPlayer(metrics.AgentConfig{Player: "oracle"}, 1)
		require.ErrorContains(t, err, "oracle")

		_, err = NewPlayer(metrics.AgentConfig{Player: MinMaxPlayer, Heuristic: "magic"}, 1)
		require.ErrorContains(t, err, "magic")

		_, err = NewPlayer(metrics.AgentConfig{Player: GreedyPlayer}, 1)
		require.Error(t, err, "Greedy needs a heuristic")
	})
}

func TestRun(t *testing.T) {
	writer, err := metrics.NewWriterAt(t.TempDir(), "test")
	require.NoError(t, err)

	greedy := metrics.AgentConfig{ID: 1, Player: GreedyPlayer, Heuristic: GoFasterHeuristic}
	random := metrics.AgentConfig{ID: 2, Player: RandomPlayer}
	configs := []metrics.AgentConfig{greedy, random}

	require.NoError(t, run(writer, "test", configs, [][2]metrics.AgentConfig{{greedy, random}}, 2))

	count := func(file string) [][]string {
		f, err := os.Open(filepath.Join(writer.Dir(), file))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	require.Len(t, count("agent_configs.csv"), 3)

	games := count("game_records.csv")
	require.Len(t, games, 3, "Header plus two games")
	require.Equal(t, []string{"1", "2"}, games[1][2:4], "Agent 1 starts the first game")
	require.Equal(t, []string{"2", "1"}, games[2][2:4], "Agent 2 starts the second game")

	require.Greater(t, len(count("move_records.csv")), 2, "Every game records its moves")
}

func TestRunFailsOnBadConfig(t *testing.T) {
	writer, err := metrics.NewWriterAt(t.TempDir(), "test")
	require.NoError(t, err)

	bad := metrics.AgentConfig{ID: 1, Player: "oracle"}
	err = run(writer, "test", []metrics.AgentConfig{bad}, [][2]metrics.AgentConfig{{bad, bad}}, 1)

	require.ErrorContains(t, err, "matchup 1 game 1")
}
