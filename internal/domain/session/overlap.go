package session

// Overlaps reports whether two sessions on the same date intersect.
// Intervals are half-open, so a session may start exactly when another ends.
func Overlaps(a, b Session) bool {
	if a.Date != b.Date {
		return false
	}
	return a.StartTime < b.EndTime && b.StartTime < a.EndTime
}

// findConflict returns the first stored session that overlaps the candidate,
// skipping the session with skipID (zero skips none).
func findConflict(existing []Session, candidate Session, skipID int64) *Session {
	for i := range existing {
		if skipID != 0 && existing[i].ID == skipID {
			continue
		}
		if Overlaps(existing[i], candidate) {
			return &existing[i]
		}
	}
	return nil
}
