package formatter

import (
	"strings"

	"github.com/alexanderramin/worktimer/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	focusBarWidth = 10
)

// FocusShare is the fraction of tracked time spent working, in [0, 1].
// Zero tracked time yields zero.
func FocusShare(t domain.Totals) float64 {
	total := t.Work + t.Pause
	if total == 0 {
		return 0
	}
	return float64(t.Work) / float64(total)
}

// RenderFocusBar renders the work share as a compact bar like ██████░░░░.
// The bar is green above 66%, yellow from 33% and red below. Days with no
// tracked time render a dimmed empty bar.
func RenderFocusBar(t domain.Totals, width int) string {
	if width < 2 {
		width = 2
	}
	if t.Work+t.Pause == 0 {
		return StyleDim.Render(strings.Repeat(emptyBlock, width))
	}

	pct := FocusShare(t)
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return style.Render(bar)
}
