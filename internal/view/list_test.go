package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Timzz-T/learnerhours/internal/domain/session"
)

const layout = "1/2/2006"

func testSessions() []session.Session {
	return []session.Session{
		{ID: 1, Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, Date: "2024-03-15", StartTime: "13:00", EndTime: "14:30"},
		{ID: 3, Date: "2024-02-10", StartTime: "08:00", EndTime: "08:45"},
	}
}

func TestBuildList_SortsNewestFirst(t *testing.T) {
	list := BuildList(testSessions(), "", layout)
	require.False(t, list.Empty)
	require.Len(t, list.Entries, 3)
	require.Equal(t, []int64{2, 3, 1}, []int64{list.Entries[0].ID, list.Entries[1].ID, list.Entries[2].ID})
}

func TestBuildList_TotalCoversFilteredOnly(t *testing.T) {
	list := BuildList(testSessions(), "", layout)
	require.Equal(t, "3hr 15 min", list.Total)

	filtered := BuildList(testSessions(), "2024-01", layout)
	require.Len(t, filtered.Entries, 1)
	require.Equal(t, "1hr 0 min", filtered.Total)
}

func TestBuildList_SearchIsSubstringMatch(t *testing.T) {
	// "-1" hits the day parts of 2024-03-15 and 2024-02-10 only.
	list := BuildList(testSessions(), "-1", layout)
	require.Len(t, list.Entries, 2)

	list = BuildList(testSessions(), "2024", layout)
	require.Len(t, list.Entries, 3)
}

func TestBuildList_NoMatches(t *testing.T) {
	list := BuildList(testSessions(), "1999", layout)
	require.True(t, list.Empty)
	require.Empty(t, list.Entries)
	require.Empty(t, list.Total)
}

func TestBuildList_EmptyInput(t *testing.T) {
	list := BuildList(nil, "", layout)
	require.True(t, list.Empty)
}

func TestBuildList_DisplayFields(t *testing.T) {
	list := BuildList([]session.Session{
		{ID: 7, Date: "2024-01-02", StartTime: "13:00", EndTime: "14:00"},
	}, "", layout)

	entry := list.Entries[0]
	require.Equal(t, "1/2/2024", entry.DisplayDate)
	require.Equal(t, "1:00 PM", entry.DisplayStart)
	require.Equal(t, "2:00 PM", entry.DisplayEnd)
	// Raw stored values ride along for form prefill.
	require.Equal(t, "2024-01-02", entry.Date)
	require.Equal(t, "13:00", entry.StartTime)
}

func TestBuildList_SearchTermIsSanitized(t *testing.T) {
	sessions := []session.Session{
		{ID: 1, Date: "&lt;2024&gt;", StartTime: "09:00", EndTime: "10:00"},
	}
	// The raw term escapes to the stored form before matching.
	list := BuildList(sessions, "<2024>", layout)
	require.Len(t, list.Entries, 1)
}
