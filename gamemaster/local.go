package gamemaster

import (
	"baz/game"

	"github.com/pkg/errors"
)

var (
	ErrNotStarted  = errors.New("game not started")
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// UpdateGetter returns the next played move and the state after it without blocking. ok is false
// when no update is pending or the game is over and every update has been read.
type UpdateGetter func() (move game.Move, state game.State, ok bool)

// Engine referees a single game: it only lets legal moves of the side to move through.
type Engine interface {
	Init() (game.State, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	state game.State
}

type localEngine struct {
	start    game.State
	state    game.State
	updateCh chan update
	gameOver bool
}

func NewLocalEngine() *localEngine {
	return NewLocalEngineFrom(game.NewState())
}

// NewLocalEngineFrom referees a game continuing from state.
func NewLocalEngineFrom(state game.State) *localEngine {
	return &localEngine{start: state}
}

func (e *localEngine) Init() (game.State, UpdateGetter) {
	e.state = e.start
	e.gameOver = e.state.Winner().Decided()
	// Play publishes one update per move, read it before the next move.
	e.updateCh = make(chan update, 1)
	if e.gameOver {
		close(e.updateCh)
	}
	return e.state, func() (game.Move, game.State, bool) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return game.Move{}, game.State{}, false
			}
			return u.move, u.state, true
		default:
			return game.Move{}, game.State{}, false
		}
	}
}

// Play applies move for the side to move. A forfeit is accepted only from a side without any
// legal move.
func (e *localEngine) Play(move game.Move) error {
	if e.updateCh == nil {
		return ErrNotStarted
	}
	if e.gameOver {
		return ErrGameOver
	}
	if err := e.check(move); err != nil {
		return err
	}

	e.state = e.state.Play(move)
	e.updateCh <- update{move: move, state: e.state}
	if e.state.Winner().Decided() {
		e.gameOver = true
		close(e.updateCh)
	}
	return nil
}

func (e *localEngine) check(move game.Move) error {
	turn := e.state.Turn
	if move.Kind == game.ForfeitMove {
		if move.Color != turn {
			return errors.Wrapf(ErrIllegalMove, "%v cannot concede for %v", turn, move.Color)
		}
		if len(e.state.LegalMoves()) > 0 {
			return errors.Wrapf(ErrIllegalMove, "%v still has legal moves", turn)
		}
		return nil
	}
	if !e.state.Board.IsLegal(turn, move) {
		return errors.Wrapf(ErrIllegalMove, "%v for %v", move, turn)
	}
	return nil
}

// State returns the position the next move is played on.
func (e *localEngine) State() game.State {
	return e.state
}

func (e *localEngine) GameOver() bool {
	return e.gameOver
}
