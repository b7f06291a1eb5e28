// Package tui provides raw ANSI escape sequences for terminal styling and
// cursor control. The constants can be embedded in output directly; the
// Terminal type writes the corresponding control sequences to an io.Writer.
// No terminal capability detection is performed.
package tui

import (
	"fmt"
	"io"
)

// Text attributes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Underline = "\x1b[4m"
	Blink     = "\x1b[5m"
	Reverse   = "\x1b[7m"
	Hidden    = "\x1b[8m"
)

// Foreground colors.
const (
	FgBlack   = "\x1b[30m"
	FgRed     = "\x1b[31m"
	FgGreen   = "\x1b[32m"
	FgYellow  = "\x1b[33m"
	FgBlue    = "\x1b[34m"
	FgMagenta = "\x1b[35m"
	FgCyan    = "\x1b[36m"
	FgWhite   = "\x1b[37m"

	FgBrightBlack   = "\x1b[90m"
	FgBrightRed     = "\x1b[91m"
	FgBrightGreen   = "\x1b[92m"
	FgBrightYellow  = "\x1b[93m"
	FgBrightBlue    = "\x1b[94m"
	FgBrightMagenta = "\x1b[95m"
	FgBrightCyan    = "\x1b[96m"
	FgBrightWhite   = "\x1b[97m"
)

// Background colors.
const (
	BgBlack   = "\x1b[40m"
	BgRed     = "\x1b[41m"
	BgGreen   = "\x1b[42m"
	BgYellow  = "\x1b[43m"
	BgBlue    = "\x1b[44m"
	BgMagenta = "\x1b[45m"
	BgCyan    = "\x1b[46m"
	BgWhite   = "\x1b[47m"

	BgBrightBlack   = "\x1b[100m"
	BgBrightRed     = "\x1b[101m"
	BgBrightGreen   = "\x1b[102m"
	BgBrightYellow  = "\x1b[103m"
	BgBrightBlue    = "\x1b[104m"
	BgBrightMagenta = "\x1b[105m"
	BgBrightCyan    = "\x1b[106m"
	BgBrightWhite   = "\x1b[107m"
)

// Terminal emits ANSI control sequences to the given writer.
type Terminal struct {
	w io.Writer
}

// New creates a Terminal writing to w.
func New(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// SetColor emits the given foreground and/or background color sequences.
// An empty string skips the respective part.
func (t *Terminal) SetColor(foreground, background string) error {
	if foreground != "" {
		if _, err := io.WriteString(t.w, foreground); err != nil {
			return err
		}
	}
	if background != "" {
		if _, err := io.WriteString(t.w, background); err != nil {
			return err
		}
	}
	return nil
}

// Reset restores default text attributes and colors.
func (t *Terminal) Reset() error {
	_, err := io.WriteString(t.w, Reset)
	return err
}

// CursorUp moves the cursor up by n lines; n <= 0 emits nothing.
func (t *Terminal) CursorUp(n int) error {
	return t.move(n, 'A')
}

// CursorDown moves the cursor down by n lines; n <= 0 emits nothing.
func (t *Terminal) CursorDown(n int) error {
	return t.move(n, 'B')
}

// CursorRight moves the cursor right by n columns; n <= 0 emits nothing.
func (t *Terminal) CursorRight(n int) error {
	return t.move(n, 'C')
}

// CursorLeft moves the cursor left by n columns; n <= 0 emits nothing.
func (t *Terminal) CursorLeft(n int) error {
	return t.move(n, 'D')
}

// CursorPos moves the cursor to the absolute 1-based position (x, y).
func (t *Terminal) CursorPos(x, y int) error {
	_, err := fmt.Fprintf(t.w, "\x1b[%d;%dH", y, x)
	return err
}

// HideCursor hides the terminal cursor.
func (t *Terminal) HideCursor() error {
	_, err := io.WriteString(t.w, "\x1b[?25l")
	return err
}

// ShowCursor shows the terminal cursor.
func (t *Terminal) ShowCursor() error {
	_, err := io.WriteString(t.w, "\x1b[?25h")
	return err
}

// ClearScreen clears the screen and moves the cursor to the top-left corner.
func (t *Terminal) ClearScreen() error {
	_, err := io.WriteString(t.w, "\x1b[2J\x1b[H")
	return err
}

func (t *Terminal) move(n int, direction byte) error {
	if n <= 0 {
		return nil
	}
	_, err := fmt.Fprintf(t.w, "\x1b[%d%c", n, direction)
	return err
}
