//go:build unix

package argio

import "golang.org/x/sys/unix"

type unixTerminal struct{}

func newTerminal() terminal { return unixTerminal{} }

func (unixTerminal) isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	return err == nil
}

func (unixTerminal) width(fd uintptr) (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}
	return int(ws.Col), true
}

// ANSI is always processed by unix terminals
func (unixTerminal) enableVirtualTerminal(uintptr) bool { return true }
