package metrics

import "time"

type testRecorder struct {
	durations int
	outcomes  map[OutcomeLabel]int
	stats     TreeStats
}

func newTestRecorder() *testRecorder {
	return &testRecorder{outcomes: map[OutcomeLabel]int{}}
}

func (t *testRecorder) ObserveGeneration(time.Duration)    { t.durations++ }
func (t *testRecorder) IncGeneration(outcome OutcomeLabel) { t.outcomes[outcome]++ }
func (t *testRecorder) SetTreeStats(stats TreeStats)       { t.stats = stats }

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = newTestRecorder()
)
