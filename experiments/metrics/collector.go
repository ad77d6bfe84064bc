package metrics

import (
	"quarto/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Action     game.Action
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int
	Cutoffs    int
	BestScore  int
	IsCacheHit bool
}

type MatchMetric struct {
	StartingPlayer game.Seat
	Status         game.Status
	Winner         string // "" unless Status is game.Win
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	Places         int
	Retries        int // rejected player decisions
}

type Collector interface {
	Start(action game.Action, depth, goroutines int)
	AddNode()
	AddCutoff()
	Complete(bestScore int) SearchMetric
}

type collector struct {
	action     game.Action
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(action game.Action, depth, goroutines int) {
	m.startTime = time.Now()
	m.action = action
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(bestScore int) SearchMetric {
	return SearchMetric{
		Action:     m.action,
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		BestScore:  bestScore,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(action game.Action, depth, goroutines int) {}
func (m *dummyCollector) AddNode()                                       {}
func (m *dummyCollector) AddCutoff()                                     {}
func (m *dummyCollector) Complete(bestScore int) SearchMetric            { return SearchMetric{} }
