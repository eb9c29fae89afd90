// Package terminal detects terminal dimensions.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when stdout is not a terminal.
const DefaultWidth = 80

// Width returns the terminal width in columns, or DefaultWidth when stdout
// is not a TTY.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}
