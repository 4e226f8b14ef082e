package retrograde

import "time"

// RequestDateLayout is the layout of the date query parameter.
const RequestDateLayout = "2006-01-02"

// DateProvider returns the current instant in the caller's local zone.
type DateProvider func() time.Time

// SystemDate is the default DateProvider backed by the wall clock.
func SystemDate() time.Time {
	return time.Now()
}

// FixedDate returns a DateProvider that always reports t.
func FixedDate(t time.Time) DateProvider {
	return func() time.Time { return t }
}

// RequestDate formats the local calendar date of t as YYYY-MM-DD.
func RequestDate(t time.Time) string {
	return t.Format(RequestDateLayout)
}
