// Package session holds the tracked-session model and the store that
// persists the session list in a key-value slot.
package session

import (
	"strconv"
	"strings"
	"time"
)

// Session represents one recorded learning interval.
type Session struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Minutes returns the session length in whole minutes. Sessions with
// unparsable time fields count as zero.
func (s Session) Minutes() int {
	start, ok := parseClock(s.StartTime)
	if !ok {
		return 0
	}
	end, ok := parseClock(s.EndTime)
	if !ok {
		return 0
	}
	return end - start
}

// Duration returns the session length as a time.Duration.
func (s Session) Duration() time.Duration {
	return time.Duration(s.Minutes()) * time.Minute
}

// parseClock converts an HH:MM value to minutes since midnight.
func parseClock(value string) (int, bool) {
	hourStr, minuteStr, ok := strings.Cut(value, ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}
