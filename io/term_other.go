//go:build !unix && !windows

package argio

// Platforms without a terminal API (js, wasip1, plan9) never report a TTY.
type noTerminal struct{}

func newTerminal() terminal { return noTerminal{} }

func (noTerminal) isTerminal(uintptr) bool            { return false }
func (noTerminal) width(uintptr) (int, bool)          { return 0, false }
func (noTerminal) enableVirtualTerminal(uintptr) bool { return false }
