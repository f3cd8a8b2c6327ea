// Package argio routes parser output (usage, help, errors and debug traces)
// to configurable writers and decides whether ANSI styling is applied.
package argio

import (
	"fmt"
	stdio "io"
	"os"
	"strconv"
	"strings"
)

// ColorMode selects how the manager decides on ANSI styling
type ColorMode int

const (
	ColorAuto ColorMode = iota // environment and terminal detection
	ColorAlways
	ColorNever
)

// terminal is implemented per OS in term_unix.go, term_windows.go and term_other.go
type terminal interface {
	isTerminal(fd uintptr) bool
	width(fd uintptr) (int, bool)
	enableVirtualTerminal(fd uintptr) bool
}

// IOManager bundles the streams a parser writes to
type IOManager struct {
	in   stdio.Reader
	out  stdio.Writer
	err  stdio.Writer
	mode ColorMode
	term terminal
}

// New returns a manager bound to the process stdio
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr, term: newTerminal()}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the writer used for help and usage text.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the writer used for errors and warnings.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// WithColor overrides color detection.
func (m *IOManager) WithColor(mode ColorMode) *IOManager { m.mode = mode; return m }

func (m *IOManager) In() stdio.Reader  { return m.in }
func (m *IOManager) Out() stdio.Writer { return m.out }
func (m *IOManager) Err() stdio.Writer { return m.err }

// Printf writes to the output stream
func (m *IOManager) Printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// Eprintf writes to the error stream
func (m *IOManager) Eprintf(format string, args ...any) {
	fmt.Fprintf(m.err, format, args...)
}

// IsTTY reports whether the output writer is a terminal. Writers that are
// not *os.File (buffers, pipes wrapped in other writers) never are.
func (m *IOManager) IsTTY() bool {
	f, ok := m.out.(*os.File)
	return ok && m.term.isTerminal(f.Fd())
}

// SupportsColor reports whether ANSI sequences should be emitted.
// NO_COLOR wins over FORCE_COLOR; both lose to an explicit WithColor.
func (m *IOManager) SupportsColor() bool {
	switch m.mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	term := os.Getenv("TERM")
	return term != "dumb"
}

// ColorLevel returns 0 for none, 1 for 16 colors, 2 for 256 colors and 3 for truecolor.
func (m *IOManager) ColorLevel() int {
	if !m.SupportsColor() {
		return 0
	}
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return 3
	}
	term := os.Getenv("TERM")
	switch {
	case strings.Contains(term, "truecolor"), strings.Contains(term, "24bit"):
		return 3
	case strings.Contains(term, "256color"):
		return 2
	default:
		return 1
	}
}

// Width returns the output terminal width, then $COLUMNS, then 80.
func (m *IOManager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, ok := m.term.width(f.Fd()); ok && w > 0 {
			return w
		}
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return 80
}

// EnableVirtualTerminal turns on ANSI processing for Windows consoles; it is
// a no-op returning true elsewhere.
func (m *IOManager) EnableVirtualTerminal() bool {
	f, ok := m.out.(*os.File)
	if !ok {
		return false
	}
	return m.term.enableVirtualTerminal(f.Fd())
}
