package sat

import (
	"fmt"
	"io"
	"os"
)

// Logger is a small leveled logger gating search-progress and inprocessing
// reports by verbosity, using the SAT-competition "c " comment-line
// convention. Built on the standard library (see DESIGN.md).
type Logger struct {
	out       io.Writer
	verbosity int
}

// NewLogger returns a Logger writing to w, reporting messages up to and
// including the given verbosity level.
func NewLogger(w io.Writer, verbosity int) *Logger {
	return &Logger{out: w, verbosity: verbosity}
}

// Report prints msg (SAT-competition "c " prefixed) if level is within the
// configured verbosity.
func (l *Logger) Report(level int, format string, args ...any) {
	if l == nil || level > l.verbosity {
		return
	}
	fmt.Fprintf(l.out, "c "+format+"\n", args...)
}

// Separator prints a horizontal rule, used to frame the search statistics
// table.
func (l *Logger) Separator() {
	l.Report(1, "---------------------------------------------------------------------------")
}

// Stderr returns a Logger writing to os.Stderr at the given verbosity, used
// by the CLI driver.
func Stderr(verbosity int) *Logger {
	return NewLogger(os.Stderr, verbosity)
}
