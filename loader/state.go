package loader

import (
	"fmt"

	"github.com/plotstream/plotstream/series"
	"github.com/plotstream/plotstream/trace"
)

const (
	PhaseReady    = "Ready"
	PhaseComplete = "Complete"
	PhaseError    = "Error"
)

func loadingPhase(name string) string {
	return fmt.Sprintf("Loading %s...", name)
}

// State is the externally visible loading state. Progress runs 0..100 and
// is monotonically non-decreasing within one pass.
type State struct {
	Progress     float64
	Phase        string
	Generating   bool
	PointsLoaded int
	Complete     bool
}

// Snapshot is one wholesale publication: the trace set built so far plus
// the state it was built under. Consumers never observe partial mutation;
// every publish replaces the previous snapshot in full.
type Snapshot struct {
	State  State
	Traces []trace.Trace
	Stats  *series.Stats
}

type ProgressFunc func(progress float64, phase string, pointsLoaded int)

type CompleteFunc func(totalPoints int, stats series.Stats)

type PublishFunc func(snapshot Snapshot)
