package engine

import (
	"context"
	"time"

	"baz/experiments/metrics"
	"baz/game"
	"baz/gamemaster"
	"baz/meta"
	"baz/player"
	"baz/searcher"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithStart continues a game from state instead of the initial position.
func WithStart(state game.State) Option {
	return func(e *localEngine) {
		e.start = state
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

type localEngine struct {
	players  [2]player.Player // by color, First then Second
	start    game.State
	maxTurns int
}

func LocalEngine(first, second player.Player, options ...Option) *localEngine {
	if first == nil || second == nil {
		panic("need two players")
	}
	e := &localEngine{
		players:  [2]player.Player{first, second},
		start:    game.NewState(),
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is decided. A game still open after the turn
// limit is adjudicated on points. A move the referee rejects aborts the game with an error.
func (e *localEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	referee := gamemaster.NewLocalEngineFrom(e.start)
	state, getUpdate := referee.Init()

	gameMetric := metrics.GameMetric{
		ID:             uuid.New(),
		StartingPlayer: state.Turn,
		StartTime:      time.Now(),
	}
	logger := log.With().Stringer("game", gameMetric.ID).Logger()
	logger.Info().Msgf("%v is starting", state.Turn)

	var moveMetrics []metrics.MoveMetric
	for turn := 1; !state.Winner().Decided() && turn <= e.maxTurns; turn++ {
		move, searchMetric := e.decide(state)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       state.Turn,
			Move:         move,
			SearchMetric: searchMetric,
		})

		if err := referee.Play(move); err != nil {
			logger.Warn().Err(err).Stringer("player", state.Turn).Int("turn", turn).Msg("rejected move")
			return game.Undecided, e.complete(gameMetric, len(moveMetrics)), moveMetrics,
				errors.Wrapf(err, "turn %d by %v", turn, state.Turn)
		}
		_, next, ok := getUpdate()
		if !ok {
			panic("referee accepted a move without publishing it")
		}
		state = next
	}

	outcome := state.Winner()
	gameMetric.Winner = outcome
	if !outcome.Decided() {
		outcome = adjudicate(state.Board)
		gameMetric.Winner = outcome
		gameMetric.Adjudicated = true
		logger.Info().Msgf("stopped after %d turns, adjudicated on points", e.maxTurns)
	}
	gameMetric = e.complete(gameMetric, len(moveMetrics))
	logger.Info().Uint8("first", state.Board.FirstScore).Uint8("second", state.Board.SecondScore).
		Msgf("game over after %d moves, winner: %v", gameMetric.TotalMoves, outcome)

	return outcome, gameMetric, moveMetrics, nil
}

func (e *localEngine) decide(state game.State) (game.Move, metrics.SearchMetric) {
	p := e.players[state.Turn-game.First]
	if s, ok := p.(searcher.Searcher); ok {
		return s.Search(context.Background(), state.Board, state.Turn)
	}
	start := time.Now()
	move := p.Decide(state.Board, state.Turn)
	return move, metrics.SearchMetric{Goroutines: 1, Duration: time.Since(start)}
}

func (e *localEngine) complete(gameMetric metrics.GameMetric, moves int) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	return gameMetric
}

// adjudicate decides an unfinished game by the points banked so far.
func adjudicate(board game.Board) game.Outcome {
	switch {
	case board.FirstScore > board.SecondScore:
		return game.FirstWins
	case board.SecondScore > board.FirstScore:
		return game.SecondWins
	default:
		return game.Draw
	}
}
