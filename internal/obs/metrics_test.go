package obs

import "testing"

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.Inc(StageQuote)
	m.Inc(StageQuote)
	m.Inc(StageTrade)

	if got := m.Count(StageQuote); got != 2 {
		t.Fatalf("quote count mismatch! should be 2 but got %d", got)
	}
	if got := m.Count(StageTrade); got != 1 {
		t.Fatalf("trade count mismatch! should be 1 but got %d", got)
	}

	snap := m.Snapshot()
	if snap["quote"] != 2 || snap["trade"] != 1 || snap["risk"] != 0 {
		t.Fatalf("snapshot mismatch: %+v", snap)
	}
}

func TestStagesOrdered(t *testing.T) {
	stages := Stages()
	if len(stages) != int(stageCount) {
		t.Fatalf("stage count mismatch! should be %d but got %d", stageCount, len(stages))
	}
	for i, s := range stages {
		if s != Stage(i) {
			t.Fatalf("order mismatch at %d! got %s", i, s)
		}
	}
	if stages[0] != StageQuote || stages[len(stages)-1] != StageInquiry {
		t.Fatalf("bounds mismatch: %s .. %s", stages[0], stages[len(stages)-1])
	}
}

func TestNilMetricsSafe(t *testing.T) {
	var m *Metrics
	m.Inc(StageQuote)
	if got := m.Count(StageQuote); got != 0 {
		t.Fatalf("nil metrics should read 0, got %d", got)
	}
}
