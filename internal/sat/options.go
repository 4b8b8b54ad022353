package sat

import "time"

// Options configures a Solver. Every optional subsystem can be switched off
// at construction; the core contract (soundness of SAT/UNSAT answers) never
// depends on any of them being enabled.
type Options struct {
	// Decision heuristics.
	VarDecay    float64 // VSIDS growth factor (>1), stable mode
	ClauseDecay float64 // learnt-clause activity decay, in (0,1]
	PhaseSaving bool

	// Restart control.
	EnableRestart          bool
	RestartMargin          float64 // focused-mode fast/slow glue ratio trigger
	StableRestartInterval  uint64  // base interval for reluctant doubling
	FocusedRestartInterval uint64  // base interval for the conflict-count scheme

	// Mode switching & rephase.
	EnableStableMode       bool
	InitialModeConflicts   int64
	InitialModeTicksBudget uint64
	RephaseInterval        uint64

	// Chronological backtracking.
	EnableChronological bool
	ChronoThreshold     int // max (currentLevel - assertingLevel) for a normal jump

	// Clause DB reduction.
	EnableReduce  bool
	Tier1Glue     uint32
	Tier2Glue     uint32
	ReduceFraction float64

	// Bounded variable elimination.
	EnableEliminate bool
	ElimOccLimit    int
	ElimTicksFraction float64

	// Subsumption & strengthening.
	EnableSubsume      bool
	SubsumeTicksFraction float64
	MaxSubsumeClauseSize int

	// Vivification.
	EnableVivify      bool
	VivifyTicksFraction float64

	// Stop conditions.
	MaxConflicts int64
	Timeout      time.Duration

	// Proof logging: when non-nil every learned/resolvent/strengthened
	// clause addition and every clause deletion is reported.
	Proof ProofWriter

	// Verbosity in [0,4], gating the leveled logger.
	Verbosity int
	Logger    *Logger
}

// DefaultOptions mirrors common CDCL solver defaults (ClauseDecay 0.999,
// and a variable activity decay of 0.95, stored as its inverse VarDecay
// 1/0.95) with every optional subsystem enabled.
var DefaultOptions = Options{
	VarDecay:    1.0 / 0.95,
	ClauseDecay: 0.999,
	PhaseSaving: true,

	EnableRestart:          true,
	RestartMargin:          1.25,
	StableRestartInterval:  500,
	FocusedRestartInterval: 50,

	EnableStableMode:       true,
	InitialModeConflicts:   1000,
	InitialModeTicksBudget: 1_000_000,
	RephaseInterval:        1000,

	EnableChronological: true,
	ChronoThreshold:     100,

	EnableReduce:   true,
	Tier1Glue:      3,
	Tier2Glue:      6,
	ReduceFraction: 0.5,

	EnableEliminate:   true,
	ElimOccLimit:      100,
	ElimTicksFraction: 0.02,

	EnableSubsume:        true,
	SubsumeTicksFraction: 0.02,
	MaxSubsumeClauseSize: 1000,

	EnableVivify:        true,
	VivifyTicksFraction: 0.02,

	MaxConflicts: -1,
	Timeout:      -1,

	Verbosity: 0,
}
