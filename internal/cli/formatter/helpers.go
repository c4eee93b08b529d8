package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatClock renders seconds as zero-padded HH:MM:SS. Hours grow past two
// digits rather than wrapping.
func FormatClock(seconds uint64) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// DayLabel returns the date with its short weekday, e.g. "2024-06-10 Mon".
func DayLabel(d domain.Date) string {
	return d.String() + " " + d.Weekday().String()[:3]
}

// RelativeDay names a day relative to today for the first two offsets.
func RelativeDay(offset int) string {
	switch offset {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%dd ago", offset)
	}
}
