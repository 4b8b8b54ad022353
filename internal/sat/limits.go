package sat

// limits bundles every conflict- and ticks-based scheduling threshold.
// All fields are monotonically non-decreasing between triggers.
type limits struct {
	restart int64 // conflicts threshold for the next restart, in either mode

	reduce struct {
		conflicts int64
	}

	rephase struct {
		conflicts int64
	}

	mode struct {
		conflicts int64 // nonzero only before the first switch
		ticks     tickLimit
	}

	eliminate struct {
		ticks tickLimit
	}

	subsume struct {
		ticks tickLimit
	}

	vivify struct {
		ticks tickLimit
	}
}
