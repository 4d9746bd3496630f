// Package obs collects lightweight runtime counters for the pipeline.
package obs

import (
	"sync/atomic"
)

// Stage identifies one pipeline record family.
type Stage int

const (
	StageQuote Stage = iota
	StageBook
	StageExecution
	StageStream
	StageTrade
	StagePosition
	StageRisk
	StageInquiry
	stageCount
)

var stageNames = [stageCount]string{
	"quote", "book", "execution", "stream",
	"trade", "position", "risk", "inquiry",
}

func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return "unknown"
	}
	return stageNames[s]
}

// Metrics counts records processed per pipeline stage.
type Metrics struct {
	counts [stageCount]uint64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Inc bumps a stage counter.
func (m *Metrics) Inc(s Stage) {
	if m == nil || s < 0 || s >= stageCount {
		return
	}
	atomic.AddUint64(&m.counts[s], 1)
}

// Count returns a single stage counter.
func (m *Metrics) Count(s Stage) uint64 {
	if m == nil || s < 0 || s >= stageCount {
		return 0
	}
	return atomic.LoadUint64(&m.counts[s])
}

// Stages returns every stage in pipeline order.
func Stages() []Stage {
	out := make([]Stage, 0, stageCount)
	for s := Stage(0); s < stageCount; s++ {
		out = append(out, s)
	}
	return out
}

// Snapshot captures all counters keyed by stage name.
func (m *Metrics) Snapshot() map[string]uint64 {
	out := make(map[string]uint64, stageCount)
	for s := Stage(0); s < stageCount; s++ {
		out[s.String()] = m.Count(s)
	}
	return out
}
