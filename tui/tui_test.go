package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetColorEmitsRequestedSequences(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf)
	require.NoError(t, term.SetColor(FgRed, BgBlue))
	assert.Equal(t, "\x1b[31m\x1b[44m", buf.String())

	buf.Reset()
	require.NoError(t, term.SetColor(FgGreen, ""))
	assert.Equal(t, "\x1b[32m", buf.String())

	buf.Reset()
	require.NoError(t, term.SetColor("", ""))
	assert.Empty(t, buf.String())
}

func TestResetEmitsResetSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Reset())
	assert.Equal(t, "\x1b[0m", buf.String())
}

func TestCursorMovement(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf)
	require.NoError(t, term.CursorUp(3))
	require.NoError(t, term.CursorDown(1))
	require.NoError(t, term.CursorRight(12))
	require.NoError(t, term.CursorLeft(2))
	assert.Equal(t, "\x1b[3A\x1b[1B\x1b[12C\x1b[2D", buf.String())
}

func TestCursorMovementIgnoresNonPositiveCounts(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf)
	require.NoError(t, term.CursorUp(0))
	require.NoError(t, term.CursorDown(-4))
	assert.Empty(t, buf.String())
}

func TestCursorPosUsesRowColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).CursorPos(10, 5))
	assert.Equal(t, "\x1b[5;10H", buf.String())
}

func TestCursorVisibilityAndClear(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf)
	require.NoError(t, term.HideCursor())
	require.NoError(t, term.ShowCursor())
	require.NoError(t, term.ClearScreen())
	assert.Equal(t, "\x1b[?25l\x1b[?25h\x1b[2J\x1b[H", buf.String())
}
