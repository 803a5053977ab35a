package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTotal_Empty(t *testing.T) {
	require.Equal(t, time.Duration(0), Total(nil))
	require.Equal(t, time.Duration(0), Total([]Session{}))
}

func TestTotal_SingleSession(t *testing.T) {
	sessions := []Session{
		{Date: "2024-01-01", StartTime: "08:00", EndTime: "09:30"},
	}
	require.Equal(t, 90*time.Minute, Total(sessions))
}

func TestTotal_SumsAcrossSessions(t *testing.T) {
	sessions := []Session{
		{Date: "2024-01-01", StartTime: "08:00", EndTime: "09:30"},
		{Date: "2024-01-02", StartTime: "12:15", EndTime: "13:00"},
		{Date: "2024-01-03", StartTime: "22:00", EndTime: "23:59"},
	}
	require.Equal(t, 90*time.Minute+45*time.Minute+119*time.Minute, Total(sessions))
}

func TestSession_Minutes_Unparsable(t *testing.T) {
	require.Zero(t, Session{StartTime: "morning", EndTime: "10:00"}.Minutes())
	require.Zero(t, Session{StartTime: "09:00", EndTime: ""}.Minutes())
}
