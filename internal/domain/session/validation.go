package session

import "html"

// ValidateDate checks the date field. Only presence is required; the value
// itself is free-form.
func ValidateDate(date string) error {
	if date == "" {
		return ErrMissingDate
	}
	return nil
}

// ValidateTimes checks presence and ordering of the time fields. HH:MM values
// are zero-padded fixed width, so lexicographic comparison matches
// chronological order.
func ValidateTimes(startTime, endTime string) error {
	if startTime == "" || endTime == "" || startTime >= endTime {
		return ErrInvalidTimes
	}
	return nil
}

// Sanitize HTML-escapes a field value so stored content is inert when later
// rendered as markup.
func Sanitize(value string) string {
	return html.EscapeString(value)
}
