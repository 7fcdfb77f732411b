package document

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the separator discipline applied by Write.
type Mode int

const (
	// ModeLine separates writes with a blank line.
	ModeLine Mode = iota
	// ModeSpan appends writes with no separator.
	ModeSpan
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("unknown mode")

// String returns "line" or "span".
func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeSpan:
		return "span"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeLine {
		return ModeSpan
	}
	return ModeLine
}

// ParseMode returns the Mode named by s, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return ModeLine, nil
	case "span":
		return ModeSpan, nil
	default:
		return ModeLine, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
