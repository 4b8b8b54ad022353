// Command satkit reads a CNF instance in DIMACS format and reports its
// satisfiability, optionally emitting a DRAT proof on UNSAT.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/satkit/satkit/internal/dimacsio"
	"github.com/satkit/satkit/internal/profile"
	"github.com/satkit/satkit/internal/proofio"
	"github.com/satkit/satkit/internal/sat"
)

const (
	exitSAT   = 10
	exitUNSAT = 20
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile to cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile to memprof")

	flagVerbosity = flag.Int("verbosity", 0, "logger verbosity, 0-4")
	flagConflicts = flag.Int64("conflicts", -1, "stop after this many conflicts (-1: unbounded)")
	flagTimeout   = flag.Duration("timeout", -1, "stop after this duration (-1: unbounded)")

	flagRestart       = flag.Bool("restart", true, "enable restarts")
	flagStable        = flag.Bool("stable", true, "enable focused/stable mode switching")
	flagChronological = flag.Bool("chronological", true, "enable chronological backtracking")
	flagReduce        = flag.Bool("reduce", true, "enable learnt clause database reduction")
	flagEliminate     = flag.Bool("eliminate", true, "enable bounded variable elimination")
	flagSubsume       = flag.Bool("subsume", true, "enable backward subsumption and strengthening")
	flagVivify        = flag.Bool("vivify", true, "enable vivification")
	flagPhaseSaving   = flag.Bool("phasesaving", true, "enable phase saving")

	flagProof      = flag.String("proof", "", "write a DRAT proof to this path")
	flagProofASCII = flag.Bool("proof-ascii", false, "use the ASCII DRAT encoding instead of binary")
)

func parseOptions() sat.Options {
	ops := sat.DefaultOptions
	ops.Verbosity = *flagVerbosity
	ops.MaxConflicts = *flagConflicts
	ops.Timeout = *flagTimeout
	ops.EnableRestart = *flagRestart
	ops.EnableStableMode = *flagStable
	ops.EnableChronological = *flagChronological
	ops.EnableReduce = *flagReduce
	ops.EnableEliminate = *flagEliminate
	ops.EnableSubsume = *flagSubsume
	ops.EnableVivify = *flagVivify
	ops.PhaseSaving = *flagPhaseSaving
	ops.Logger = sat.Stderr(ops.Verbosity)
	return ops
}

func openProof(path string) (*proofio.Writer, *os.File, error) {
	if path == "" {
		return nil, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating proof file %q: %w", path, err)
	}
	if *flagProofASCII {
		return proofio.NewASCII(f), f, nil
	}
	return proofio.NewBinary(f), f, nil
}

func run(filename string) (sat.Status, error) {
	ops := parseOptions()

	proof, proofFile, err := openProof(*flagProof)
	if err != nil {
		return sat.StatusUnknown, err
	}
	if proofFile != nil {
		defer proofFile.Close()
		ops.Proof = proof
	}

	prof := profile.NewSet()

	solver := sat.NewSolver(ops)
	prof.Start("parse")
	err = dimacsio.Load(filename, solver)
	prof.Stop("parse")
	if err != nil {
		return sat.StatusUnknown, err
	}

	prof.Start("solve")
	status := solver.Solve()
	prof.Stop("solve")

	fmt.Fprintf(os.Stderr, "c conflicts:  %d (%.2f /sec)\n",
		solver.Stats.Conflicts, float64(solver.Stats.Conflicts)/prof.Elapsed("solve").Seconds())
	prof.Report(os.Stderr, *flagVerbosity > 0)

	if err := dimacsio.WriteResult(os.Stdout, status, solver); err != nil {
		return status, err
	}
	if proof != nil {
		if err := proof.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "c proof I/O error: %s\n", err)
		}
	}
	return status, nil
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: satkit [flags] <instance.cnf[.gz]>")
		os.Exit(1)
	}

	if *flagCPUProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	status, err := run(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if *flagMemProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	switch status {
	case sat.StatusSatisfiable:
		os.Exit(exitSAT)
	case sat.StatusUnsatisfiable:
		os.Exit(exitUNSAT)
	default:
		os.Exit(1)
	}
}
