// Package clipboard reads text from the host clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Reader returns the current clipboard text
type Reader interface {
	ReadText() (string, error)
}

// System reads the operating system clipboard
type System struct{}

// ReadText reads the clipboard via the platform's clipboard utility
func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// Func adapts a function to Reader
type Func func() (string, error)

// ReadText calls f
func (f Func) ReadText() (string, error) { return f() }
