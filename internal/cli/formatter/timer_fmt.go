package formatter

// TimerLines returns the two display lines of a running session. The label
// of the inactive bucket is dimmed.
func TimerLines(work, pause uint64, paused bool) (string, string) {
	workLabel, playLabel := StyleWorkLabel, StyleIdleLabel
	if paused {
		workLabel, playLabel = StyleIdleLabel, StylePlayLabel
	}
	return workLabel.Render("Work:") + " " + StyleClock.Render(FormatClock(work)),
		playLabel.Render("Play:") + " " + StyleClock.Render(FormatClock(pause))
}
