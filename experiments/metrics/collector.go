package metrics

import (
	"time"
)

// SearchMetric summarises a single move search.
type SearchMetric struct {
	DepthLimit int
	Duration   time.Duration
	Nodes      int // Nodes built, one per transition applied
	Leaves     int // Paths that reached the depth limit
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, -1 when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig identifies the settings an agent played a game with.
type AgentConfig struct {
	ID         int
	DepthLimit int
	Seed       uint64
}

type Collector interface {
	Start(depthLimit int)
	AddNode()
	AddLeaf()
	Complete() SearchMetric
}

type collector struct {
	depthLimit int
	startTime  time.Time
	nodes      int
	leaves     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depthLimit int) {
	m.startTime = time.Now()
	m.depthLimit = depthLimit
	m.nodes = 0
	m.leaves = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		DepthLimit: m.depthLimit,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes,
		Leaves:     m.leaves,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depthLimit int)   {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
