package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worktimer/internal/domain"
)

// FormatTotals renders a totals pair on one line.
func FormatTotals(t domain.Totals) string {
	return fmt.Sprintf("%s %s  %s %s\n",
		Bold("Work:"), FormatClock(t.Work),
		Bold("Play:"), FormatClock(t.Pause))
}

// FormatLastDays renders a per-day breakdown, today first.
func FormatLastDays(buckets []domain.DayBucket) string {
	headers := []string{"DAY", "DATE", "WORK", "PLAY", "FOCUS"}
	rows := make([][]string, 0, len(buckets))
	for i, b := range buckets {
		rows = append(rows, []string{
			RelativeDay(i),
			DayLabel(b.Date),
			FormatClock(b.Work),
			FormatClock(b.Pause),
			RenderFocusBar(b.Totals, focusBarWidth),
		})
	}
	return RenderTable(headers, rows)
}

// FormatRange renders an inclusive range breakdown followed by its total.
// Days with no sessions are omitted.
func FormatRange(start, end domain.Date, days []domain.DayBucket, total domain.Totals) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s to %s", start, end)))
	b.WriteString("\n")
	if len(days) == 0 {
		b.WriteString(Dim("No sessions in range."))
		b.WriteString("\n")
	} else {
		headers := []string{"DATE", "WORK", "PLAY", "FOCUS"}
		rows := make([][]string, 0, len(days))
		for _, d := range days {
			rows = append(rows, []string{
				DayLabel(d.Date),
				FormatClock(d.Work),
				FormatClock(d.Pause),
				RenderFocusBar(d.Totals, focusBarWidth),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}
	b.WriteString(FormatTotals(total))
	return b.String()
}

// FormatRecords renders raw history rows with their end time in local form.
func FormatRecords(records []domain.Record) string {
	headers := []string{"#", "ENDED", "WORK", "PLAY"}
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			r.EndTime().Format("2006-01-02 15:04:05"),
			FormatClock(r.Work),
			FormatClock(r.Pause),
		})
	}
	return RenderTable(headers, rows)
}
