package game

// State pairs a board with the side to move. Like Board it is a value: Play returns a copy.
type State struct {
	Board Board
	Turn  Color
	Ply   int // moves played so far
}

// NewState returns the starting position with First to move.
func NewState() State {
	return State{Board: NewBoard(), Turn: First}
}

func (s State) Player() Color {
	return s.Turn
}

func (s State) LegalMoves() []Move {
	return s.Board.LegalMoves(s.Turn)
}

// Play applies move and hands the turn to the opponent.
func (s State) Play(move Move) State {
	return State{
		Board: s.Board.Apply(move),
		Turn:  s.Turn.Opponent(),
		Ply:   s.Ply + 1,
	}
}

// Hash identifies the position (board and side to move) for caching callers.
func (s State) Hash() StateHash {
	return StateHash{Compact: s.Board.Encode(), Turn: s.Turn}
}

func (s State) Winner() Outcome {
	return s.Board.Winner()
}

// StateHash is comparable and therefore usable as a map key.
type StateHash struct {
	Compact
	Turn Color
}
