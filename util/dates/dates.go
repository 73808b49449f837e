// Package dates parses and formats the calendar dates exchanged at the API
// boundary. The wire format is dd-mm-yyyy with no time component.
package dates

import (
	"errors"
	"time"
)

const Layout = "02-01-2006"

var ErrBadFormat = errors.New("invalid date, expected dd-mm-yyyy")

// Parse accepts only strings that round-trip exactly through Layout.
// time.Parse alone is not enough: it tolerates unpadded day/month, so
// "1-02-2024" would slip through without the re-serialization check.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrBadFormat
	}
	if t.Format(Layout) != s {
		return time.Time{}, ErrBadFormat
	}
	return t, nil
}

func Format(t time.Time) string { return t.Format(Layout) }
