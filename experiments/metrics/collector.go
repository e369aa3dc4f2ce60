package metrics

import (
	"sync/atomic"
	"time"

	"baz/game"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Goroutines int
	Budget     time.Duration
	Duration   time.Duration
	Depth      int // last fully completed depth, 0 if only the move ordering finished
	Nodes      int
	Abandoned  int // depths started but discarded when the budget ran out
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer game.Color
	Winner         game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Adjudicated    bool // stopped at the turn limit and decided on points
}

type Collector interface {
	Start(goroutines int, budget time.Duration)
	AddNode()
	CompleteDepth(depth int)
	AbandonDepth()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	budget     time.Duration
	startTime  time.Time
	nodes      atomic.Int64
	depth      atomic.Int32
	abandoned  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, budget time.Duration) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.budget = budget
	m.nodes.Store(0)
	m.depth.Store(0)
	m.abandoned.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) AbandonDepth() {
	m.abandoned.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Budget:     m.budget,
		Duration:   time.Since(m.startTime),
		Depth:      int(m.depth.Load()),
		Nodes:      int(m.nodes.Load()),
		Abandoned:  int(m.abandoned.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, budget time.Duration) {}
func (m *dummyCollector) AddNode()                                   {}
func (m *dummyCollector) CompleteDepth(depth int)                    {}
func (m *dummyCollector) AbandonDepth()                              {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
