package view

import (
	"sort"
	"strings"

	"github.com/Timzz-T/learnerhours/internal/domain/session"
)

// Entry is one rendered session row. The raw fields carry the stored values
// for form prefill; the Display fields are what the list shows.
type Entry struct {
	ID           int64
	Date         string
	StartTime    string
	EndTime      string
	DisplayDate  string
	DisplayStart string
	DisplayEnd   string
}

// List is the rendered session list with its running total.
type List struct {
	Entries []Entry
	Total   string
	Empty   bool
}

// BuildList filters sessions by substring match of the sanitized search term
// against the stored date field, orders them newest date first, and totals
// the filtered set. Search never touches storage; it shapes the read path
// only.
func BuildList(sessions []session.Session, search, dateLayout string) List {
	term := session.Sanitize(search)

	var filtered []session.Session
	for _, s := range sessions {
		if strings.Contains(s.Date, term) {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return List{Empty: true}
	}

	// Stored dates are zero-padded ISO values, so lexicographic order is
	// chronological order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	entries := make([]Entry, 0, len(filtered))
	for _, s := range filtered {
		entries = append(entries, Entry{
			ID:           s.ID,
			Date:         s.Date,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			DisplayDate:  FormatDate(s.Date, dateLayout),
			DisplayStart: FormatTime(s.StartTime),
			DisplayEnd:   FormatTime(s.EndTime),
		})
	}

	return List{
		Entries: entries,
		Total:   FormatTotal(session.Total(filtered)),
	}
}
