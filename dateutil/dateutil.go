// Package dateutil works with calendar dates written as YYYY-MM-DD strings.
// Dates carry no time of day and are interpreted in UTC.
package dateutil

import (
	"fmt"
	"time"

	"github.com/amp-labs/daily-dev-lab/errors"
)

const (
	// DateLayout is the layout every function expects unless told otherwise.
	DateLayout = "2006-01-02"

	// LongLayout renders dates as "January 02, 2006".
	LongLayout = "January 02, 2006"

	secondsPerDay = 24 * 60 * 60
)

// Parse reads a date in layout.
func Parse(date, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", errors.ErrInvalidDate, date, err)
	}

	return t, nil
}

// DaysBetween returns the absolute number of days between two dates.
func DaysBetween(a, b string) (int, error) {
	ta, err := Parse(a, DateLayout)
	if err != nil {
		return 0, err
	}

	tb, err := Parse(b, DateLayout)
	if err != nil {
		return 0, err
	}

	// time.Duration tops out near 292 years, so count in seconds. Both
	// values are UTC midnights.
	diff := tb.Unix() - ta.Unix()
	if diff < 0 {
		diff = -diff
	}

	return int(diff / secondsPerDay), nil
}

// AddDays shifts date by n days, which may be negative.
func AddDays(date string, n int) (string, error) {
	t, err := Parse(date, DateLayout)
	if err != nil {
		return "", err
	}

	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// IsWeekend reports whether date falls on a Saturday or Sunday.
func IsWeekend(date string) (bool, error) {
	t, err := Parse(date, DateLayout)
	if err != nil {
		return false, err
	}

	wd := t.Weekday()

	return wd == time.Saturday || wd == time.Sunday, nil
}

// Format re-renders date from one Go time layout into another.
func Format(date, from, to string) (string, error) {
	t, err := Parse(date, from)
	if err != nil {
		return "", err
	}

	return t.Format(to), nil
}
