// Package dateutil formats report date and time values for document output.
package dateutil

import "time"

// NotSpecified is rendered when a date or time input is missing or unusable.
const NotSpecified = "Not specified"

// Input layouts accepted from report fields.
const (
	dateLayout        = "2006-01-02"
	clockLayout       = "15:04"
	clockLayoutSecond = "15:04:05"
)

// Output layouts for the assembled document.
const (
	longDateLayout     = "January 2, 2006"
	longDateTimeLayout = "January 2, 2006 3:04 PM"
)

// FormatDate renders a YYYY-MM-DD value as "January 2, 2006".
// Empty or unparsable input renders as NotSpecified; missing data is a
// placeholder concern, never an error.
func FormatDate(value string) string {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return NotSpecified
	}
	return t.Format(longDateLayout)
}

// FormatDateTime renders a date plus a HH:MM clock value as
// "January 2, 2006 3:04 PM". A missing or unusable clock degrades to the
// date-only form; a missing date renders as NotSpecified regardless of the
// clock.
func FormatDateTime(date, clock string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return NotSpecified
	}

	c, err := parseClock(clock)
	if err != nil {
		return d.Format(longDateLayout)
	}

	combined := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.UTC)
	return combined.Format(longDateTimeLayout)
}

// parseClock accepts HH:MM and HH:MM:SS clock values.
func parseClock(clock string) (time.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err == nil {
		return t, nil
	}
	return time.Parse(clockLayoutSecond, clock)
}
