package player

import (
	"baz/game"
	"baz/heuristic"

	"golang.org/x/exp/rand"
)

// Player decides a move for color. The move is legal, or a forfeit when color has no legal move.
type Player interface {
	Decide(board game.Board, color game.Color) game.Move
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) Decide(board game.Board, color game.Color) game.Move {
	return pick(p.rng, board.LegalMoves(color), color)
}

// ForwardRandom picks uniformly among the moves that score or bring a piece closer to scoring,
// and plays like Random when there are none.
type ForwardRandom struct {
	rng *rand.Rand
}

func NewForwardRandom(seed uint64) *ForwardRandom {
	return &ForwardRandom{rng: rand.New(rand.NewSource(seed))}
}

func (p *ForwardRandom) Decide(board game.Board, color game.Color) game.Move {
	var forward []game.Move
	for move := range board.Moves(color) {
		if isForward(board, color, move) {
			forward = append(forward, move)
		}
	}
	if len(forward) > 0 {
		return pick(p.rng, forward, color)
	}
	return pick(p.rng, board.LegalMoves(color), color)
}

func isForward(board game.Board, color game.Color, move game.Move) bool {
	switch move.Kind {
	case game.ScoreMove:
		return true
	case game.RelocateMove:
		from := board.Piece(move.Piece).Position
		if color == game.First {
			return move.To.Y > from.Y
		}
		return move.To.Y < from.Y
	default:
		return false
	}
}

func pick(rng *rand.Rand, moves []game.Move, color game.Color) game.Move {
	if len(moves) == 0 {
		return game.Forfeit(color)
	}
	return moves[rng.Intn(len(moves))]
}

// Greedy plays the move whose resulting board the heuristic likes best, the first one on ties.
type Greedy[V heuristic.Value[V]] struct {
	Heuristic heuristic.Heuristic[V]
}

func NewGreedy[V heuristic.Value[V]](h heuristic.Heuristic[V]) *Greedy[V] {
	return &Greedy[V]{Heuristic: h}
}

func (p *Greedy[V]) Decide(board game.Board, color game.Color) game.Move {
	best, found := game.Forfeit(color), false
	var bestValue V
	for move := range board.Moves(color) {
		value := p.Heuristic.Evaluate(board.Apply(move), color)
		if !found || value.Compare(bestValue) > 0 {
			best, bestValue, found = move, value, true
		}
	}
	return best
}
