package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration           time.Duration
	Episodes           int
	CPuct              float64
	MaxDepth           int
	Expansions         int
	TerminalHits       int
	Cutoffs            int
	DegeneratePolicies int
}

type MoveMetric struct {
	Step   int
	Player int // 1 for black, -1 for white
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // 0 when the move cap was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(cpuct float64, maxDepth int)
	AddEpisode()
	AddExpansion()
	AddTerminalHit()
	AddCutoff()
	AddDegeneratePolicy()
	Complete() SearchMetric
}

type collector struct {
	cpuct              float64
	maxDepth           int
	startTime          time.Time
	episodes           atomic.Int32
	expansions         atomic.Int32
	terminalHits       atomic.Int32
	cutoffs            atomic.Int32
	degeneratePolicies atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(cpuct float64, maxDepth int) {
	m.startTime = time.Now()
	m.cpuct = cpuct
	m.maxDepth = maxDepth
	m.episodes.Store(0)
	m.expansions.Store(0)
	m.terminalHits.Store(0)
	m.cutoffs.Store(0)
	m.degeneratePolicies.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddTerminalHit() {
	m.terminalHits.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddDegeneratePolicy() {
	m.degeneratePolicies.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:           time.Since(m.startTime),
		Episodes:           int(m.episodes.Load()),
		CPuct:              m.cpuct,
		MaxDepth:           m.maxDepth,
		Expansions:         int(m.expansions.Load()),
		TerminalHits:       int(m.terminalHits.Load()),
		Cutoffs:            int(m.cutoffs.Load()),
		DegeneratePolicies: int(m.degeneratePolicies.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cpuct float64, maxDepth int) {}
func (m *dummyCollector) AddEpisode()                       {}
func (m *dummyCollector) AddExpansion()                     {}
func (m *dummyCollector) AddTerminalHit()                   {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) AddDegeneratePolicy()              {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
