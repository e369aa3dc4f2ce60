package searcher

import (
	"context"
	"slices"
	"time"

	"baz/experiments/metrics"
	"baz/game"
	"baz/heuristic"
	"baz/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// MinMax is an iterative-deepening alpha-beta searcher. The root's replies are searched in
// parallel. A MinMax serves one decision at a time.
type MinMax[V heuristic.Value[V]] struct {
	config
	heuristic heuristic.Heuristic[V]
	rng       *rand.Rand
}

func NewMinMax[V heuristic.Value[V]](h heuristic.Heuristic[V], options ...Option) *MinMax[V] {
	m := &MinMax[V]{ // Default values
		config: config{
			duration:   meta.TIME_BUDGET,
			startDepth: meta.START_DEPTH,
			maxDepth:   meta.MAX_DEPTH,
			maxWidth:   meta.MAX_WIDTH,
			goroutines: meta.GO_ROUTINES,
			seed:       uint64(time.Now().UnixNano()),
			metrics:    metrics.NewDummyCollector(),
		},
		heuristic: h,
	}
	for _, option := range options {
		option(&m.config)
	}
	if m.startDepth > m.maxDepth {
		panic("start depth exceeds max depth")
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	return m
}

// Decide returns a legal move for color, or a forfeit if there is none.
func (m *MinMax[V]) Decide(board game.Board, color game.Color) game.Move {
	move, _ := m.Search(context.Background(), board, color)
	return move
}

// Search deepens until the time budget or ctx runs out and returns the best move of the last
// depth that finished. The move ordering alone counts as a finished depth, so a move is
// returned however short the budget.
func (m *MinMax[V]) Search(ctx context.Context, board game.Board, color game.Color) (game.Move, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines, m.duration)
	ctx, cancel := context.WithTimeout(ctx, m.duration)
	defer cancel()

	s := m.newSearch(color, m.rng)
	root := s.expand(board, color, true)
	if len(root) == 0 {
		log.Debug().Stringer("color", color).Msg("no legal move, conceding")
		return game.Forfeit(color), m.metrics.Complete()
	}

	best := root[0]
	for depth := m.startDepth; depth <= m.maxDepth; depth++ {
		values, ok := m.searchRoot(ctx, root, color, depth)
		if !ok {
			m.metrics.AbandonDepth()
			break
		}
		for i := range root {
			root[i].value = values[i]
		}
		// Stable, so equal values keep the previous order and the pick does not depend on
		// which worker finished first.
		slices.SortStableFunc(root, descending[V])
		best = root[0]
		m.metrics.CompleteDepth(depth)
		log.Debug().Int("depth", depth).Stringer("move", best.move).Msgf("completed depth with value %v", best.value)

		if best.value.Compare(m.heuristic.Max()) == 0 {
			break
		}
	}
	return best.move, m.metrics.Complete()
}

// searchRoot runs one full pass of the given depth over the root's replies. ok is false when the
// budget ran out before every reply was searched.
func (m *MinMax[V]) searchRoot(ctx context.Context, root []child[V], color game.Color, depth int) (values []V, ok bool) {
	seeds := make([]uint64, len(root))
	for i := range seeds {
		seeds[i] = m.rng.Uint64()
	}

	values = make([]V, len(root))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.goroutines)
	for i, c := range root {
		g.Go(func() error {
			s := m.newSearch(color, rand.New(rand.NewSource(seeds[i])))
			value, err := s.minimax(ctx, c.board, false, depth-1, m.heuristic.Min(), m.heuristic.Max())
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false
	}
	return values, true
}

func (m *MinMax[V]) newSearch(color game.Color, rng *rand.Rand) *search[V] {
	return &search[V]{
		heuristic: m.heuristic,
		color:     color,
		maxWidth:  m.maxWidth,
		rng:       rng,
		metrics:   m.metrics,
	}
}

// search is the state of one goroutine walking one subtree, always scoring for color.
type search[V heuristic.Value[V]] struct {
	heuristic heuristic.Heuristic[V]
	color     game.Color
	maxWidth  int
	rng       *rand.Rand
	metrics   metrics.Collector
}

type child[V heuristic.Value[V]] struct {
	move  game.Move
	board game.Board
	value V
}

func descending[V heuristic.Value[V]](a, b child[V]) int {
	return b.value.Compare(a.value)
}

func ascending[V heuristic.Value[V]](a, b child[V]) int {
	return a.value.Compare(b.value)
}

// expand plays every legal move of side, shuffles the results and orders them by their static
// value, best first for the maximizing side.
func (s *search[V]) expand(board game.Board, side game.Color, maximizing bool) []child[V] {
	var children []child[V]
	for move := range board.Moves(side) {
		children = append(children, child[V]{move: move, board: board.Apply(move)})
	}
	s.rng.Shuffle(len(children), func(i, j int) {
		children[i], children[j] = children[j], children[i]
	})
	for i := range children {
		children[i].value = s.heuristic.Evaluate(children[i].board, s.color)
	}
	if maximizing {
		slices.SortStableFunc(children, descending[V])
	} else {
		slices.SortStableFunc(children, ascending[V])
	}
	return children
}

func (s *search[V]) minimax(ctx context.Context, board game.Board, maximizing bool, depth int, alpha, beta V) (V, error) {
	var zero V
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.metrics.AddNode()

	if value, ok := heuristic.Terminal(s.heuristic, board, s.color); ok {
		return value, nil
	}
	if depth <= 0 {
		return s.heuristic.Evaluate(board, s.color), nil
	}

	side := s.color
	if !maximizing {
		side = s.color.Opponent()
	}
	children := s.expand(board, side, maximizing)
	if len(children) == 0 { // The side to move has to concede
		if maximizing {
			return s.heuristic.Min(), nil
		}
		return s.heuristic.Max(), nil
	}
	if s.maxWidth > 0 && len(children) > s.maxWidth {
		children = children[:s.maxWidth]
	}

	var best V
	if maximizing {
		best = s.heuristic.Min()
	} else {
		best = s.heuristic.Max()
	}
	for _, c := range children {
		value, err := s.minimax(ctx, c.board, !maximizing, depth-1, alpha, beta)
		if err != nil {
			return zero, err
		}
		if maximizing {
			best = heuristic.Better(best, value)
			if best.Compare(beta) > 0 {
				break
			}
			alpha = heuristic.Better(alpha, best)
		} else {
			best = heuristic.Worse(best, value)
			if best.Compare(alpha) < 0 {
				break
			}
			beta = heuristic.Worse(beta, best)
		}
	}
	return best, nil
}
