package sat

// ema is an exponential moving average with bias correction (the scheme
// from the ADAM optimizer paper): a freshly-seeded average is biased towards
// zero for its first few updates, so the reported value divides by 1-beta^n.
type ema struct {
	decay float64
	value float64
	exp   float64 // beta^n; starts at 1 and decays towards 0
}

func newEMA(decay float64) ema {
	return ema{decay: decay, exp: 1}
}

// add folds in a new sample.
func (e *ema) add(x float64) {
	alpha := 1 - e.decay
	e.value += alpha * (x - e.value)
	if e.exp != 0 {
		e.exp *= e.decay
	}
}

// unbiased returns the bias-corrected value of the average.
func (e *ema) unbiased() float64 {
	div := 1 - e.exp
	switch {
	case div == 0:
		return 0
	case div == 1:
		return e.value
	default:
		return e.value / div
	}
}

// averages holds every exponential moving average tracked for one search
// mode: slow/fast glue for restart scheduling, plus conflict level, trail
// fill and decision rate, which are updated but read by no scheduling
// decision.
type averages struct {
	slowGlue       ema
	fastGlue       ema
	conflictLevel  ema
	trailFilled    ema
	decisionRate   ema
	savedDecisions int64
}

func newAverages(slowDecay, fastDecay float64) averages {
	return averages{
		slowGlue:      newEMA(slowDecay),
		fastGlue:      newEMA(fastDecay),
		conflictLevel: newEMA(slowDecay),
		trailFilled:   newEMA(slowDecay),
		decisionRate:  newEMA(slowDecay),
	}
}

// updateOnConflict folds in the statistics gathered for one conflict.
func (a *averages) updateOnConflict(glue uint32, level, numVars, numAssigned int, decisions int64) {
	a.slowGlue.add(float64(glue))
	a.fastGlue.add(float64(glue))
	a.conflictLevel.add(float64(level))
	if numVars > 0 {
		a.trailFilled.add(float64(numAssigned) / float64(numVars))
	}
	if d := decisions - a.savedDecisions; d >= 0 {
		a.decisionRate.add(float64(d))
	}
}
