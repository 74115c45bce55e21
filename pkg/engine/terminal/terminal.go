// Package terminal answers questions about the controlling terminal.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// ErrTooSmall is returned when the terminal cannot hold the requested area.
var ErrTooSmall = errors.New("terminal too small")

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// CheckFits reports an error unless stdout is a terminal at least cols by
// rows cells.
func CheckFits(cols, rows int) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	return fits(w, h, cols, rows)
}

func fits(w, h, cols, rows int) error {
	if w < cols || h < rows {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrTooSmall, w, h, cols, rows)
	}
	return nil
}
