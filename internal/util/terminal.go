package util

import (
	"io"

	"golang.org/x/term"
)

// Terminal abstracts the terminal checks so they can be replaced in tests
type Terminal interface {
	IsTerminal(fd int) bool
}

type realTerminal struct{}

func (realTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// DefaultTerminal is the Terminal used by IsInteractive
var DefaultTerminal Terminal = realTerminal{}

// IsInteractive reports whether r is attached to a terminal. Readers that are
// not file descriptors (pipes handed over as io.Reader, buffers) never are.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return DefaultTerminal.IsTerminal(int(f.Fd()))
}
