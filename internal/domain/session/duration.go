package session

import "time"

// Total sums the tracked time across the given sessions. Per-session lengths
// are exact in minutes, so the sum carries no rounding error regardless of
// how many sessions it spans.
func Total(sessions []Session) time.Duration {
	var minutes int
	for _, s := range sessions {
		minutes += s.Minutes()
	}
	return time.Duration(minutes) * time.Minute
}
