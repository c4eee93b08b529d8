// Package terminal provides the interactive collaborators for a timer
// session: a redraw-in-place screen and a raw-mode keyboard.
package terminal

import (
	"io"
	"strings"

	"github.com/alexanderramin/worktimer/internal/cli/formatter"
)

const (
	cursorUpClear = "\r\x1b[1A\x1b[J"
	lineBreak     = "\r\n"
)

// Screen redraws the two timer lines in place on w. Write errors are
// ignored; a broken display must not stop the timer.
type Screen struct {
	w     io.Writer
	drawn bool
}

// NewScreen creates a Screen writing to w.
func NewScreen(w io.Writer) *Screen {
	return &Screen{w: w}
}

func (s *Screen) Draw(work, pause uint64, paused bool) {
	workLine, playLine := formatter.TimerLines(work, pause, paused)

	var b strings.Builder
	if s.drawn {
		b.WriteString(cursorUpClear)
	} else {
		b.WriteString("\r")
	}
	b.WriteString(workLine)
	b.WriteString(lineBreak)
	b.WriteString(playLine)

	_, _ = io.WriteString(s.w, b.String())
	s.drawn = true
}

// Close moves the cursor below the display.
func (s *Screen) Close() error {
	if s.drawn {
		_, _ = io.WriteString(s.w, lineBreak)
	}
	return nil
}
