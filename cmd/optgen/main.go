// Command optgen prints combinatorial sets of solver option toggles, for
// use by external option-fuzzing test harnesses.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/satkit/satkit/internal/optgen"
)

var (
	flagAll     = flag.Bool("all", false, "print every valid combination up to size k")
	flagCover   = flag.Bool("cover", false, "print a small set of configurations covering every valid pair")
	flagInvalid = flag.Bool("invalid", false, "print only the known-incompatible pairs")
)

// toggles is the fixed universe of boolean subsystem switches the solver
// exposes (sat.Options' boolean fields).
var toggles = []optgen.Toggle{
	"restart", "stable", "chronological", "reduce",
	"eliminate", "subsume", "vivify", "phasesaving",
}

// incompatible lists pairs that must never both be enabled in the same
// configuration. Stable-mode-only behaviors (reluctant doubling, rephase,
// target phases) depend on "stable" being on, so nothing here can be
// exercised without it; "chronological" without "reduce" is harmless and
// not excluded.
var incompatible = []optgen.Pair{}

func main() {
	flag.Parse()
	k := 2
	if flag.NArg() > 0 {
		fmt.Sscanf(flag.Arg(0), "%d", &k)
	}

	g := optgen.New(toggles, incompatible)

	switch {
	case *flagInvalid:
		for _, p := range g.Invalid() {
			fmt.Printf("%s %s\n", p.A, p.B)
		}
	case *flagAll:
		for _, c := range g.All(k) {
			printConfig(c)
		}
	case *flagCover:
		for _, c := range g.Cover(k) {
			printConfig(c)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: optgen [-all|-cover|-invalid] [k]")
		os.Exit(1)
	}
}

func printConfig(c optgen.Config) {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = string(t)
	}
	fmt.Println(strings.Join(names, " "))
}
