// Package terminal reports terminal capabilities for the renderer.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the current terminal dimensions, falling back to the 80x24
// defaults when stdout is not a terminal.
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the current terminal width.
func Width() int {
	width, _ := Size()
	return width
}

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
