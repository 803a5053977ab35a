package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	require.ErrorIs(t, ValidateDate(""), ErrMissingDate)
	require.NoError(t, ValidateDate("2024-01-01"))
	require.NoError(t, ValidateDate("whenever"))
}

func TestValidateTimes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "ordered", start: "09:00", end: "10:30"},
		{name: "empty start", start: "", end: "10:00", wantErr: true},
		{name: "empty end", start: "09:00", end: "", wantErr: true},
		{name: "reversed", start: "11:00", end: "09:00", wantErr: true},
		{name: "equal", start: "09:00", end: "09:00", wantErr: true},
		{name: "one minute", start: "09:00", end: "09:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimes(tt.start, tt.end)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimes)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "2024-01-01", Sanitize("2024-01-01"))
	require.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", Sanitize("<b>bold</b>"))
}
