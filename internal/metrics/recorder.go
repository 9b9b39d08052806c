package metrics

import "time"

// OutcomeLabel enumerates generation results for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeInvalid OutcomeLabel = "invalid"
	OutcomeFailed  OutcomeLabel = "failed"
)

// TreeStats is the navigation shape observed for one generation run.
type TreeStats struct {
	Groups       int
	NavLinks     int
	SidebarLinks int
	SidebarDepth int
	Deferred     int
}

// Recorder defines observability hooks for generation runs.
type Recorder interface {
	ObserveGeneration(d time.Duration)
	IncGeneration(outcome OutcomeLabel)
	SetTreeStats(stats TreeStats)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGeneration(time.Duration) {}
func (NoopRecorder) IncGeneration(OutcomeLabel)      {}
func (NoopRecorder) SetTreeStats(TreeStats)          {}
