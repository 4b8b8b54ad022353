package sat

import "time"

// Stats holds the search statistics reported by the solver, including
// counters for each of the inprocessing passes.
type Stats struct {
	Conflicts  int64
	Decisions  int64
	Propagations int64
	Restarts   int64
	Switches   int64
	Rephases   int64
	Reduces    int64
	Eliminated int64
	Subsumed   int64
	Strengthened int64
	Vivified   int64
	Learned    int64
	Ticks      uint64

	StartTime time.Time
}
