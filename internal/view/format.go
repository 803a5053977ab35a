// Package view derives the rendered session list: display formatting,
// search filtering, newest-first ordering and the running total.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InvalidDate is rendered for date values that don't parse.
const InvalidDate = "Invalid Date"

// storedDateLayout is how the date input widget encodes its value.
const storedDateLayout = "2006-01-02"

// FormatDate renders a stored date using the given display layout.
func FormatDate(date, layout string) string {
	t, err := time.Parse(storedDateLayout, date)
	if err != nil {
		return InvalidDate
	}
	return t.Format(layout)
}

// FormatTime converts an HH:MM value to 12-hour display. Only hours above 12
// map to PM; hour 0 becomes 12 AM, and hour 12 keeps the AM label. Existing
// entries rely on rendering exactly this way, so 12:00 stays "12:00 AM".
func FormatTime(value string) string {
	hourStr, minute, ok := strings.Cut(value, ":")
	if !ok {
		return value
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return value
	}

	period := "AM"
	if hour > 12 {
		hour -= 12
		period = "PM"
	}
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%s %s", hour, minute, period)
}

// FormatTotal renders a duration as "<H>hr <M> min", rounded once to the
// nearest minute on the aggregate.
func FormatTotal(d time.Duration) string {
	minutes := int(d.Round(time.Minute) / time.Minute)
	return fmt.Sprintf("%dhr %d min", minutes/60, minutes%60)
}
