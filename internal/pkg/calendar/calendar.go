// Package calendar provides a timezone-free civil date. HR semantics
// such as leave periods and holidays are defined on wall-clock dates,
// so carrying a time.Time with a location around invites off-by-one
// bugs at zone boundaries.
package calendar

import (
	"fmt"
	"time"
)

// Layout is the wire format for dates.
const Layout = "2006-01-02"

// Date is a civil calendar date with no time-of-day and no location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// MustParse is ParseDate for fixtures and constants known to be valid.
func MustParse(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime extracts the civil date from a time.Time. Timestamps at
// exactly UTC midnight are treated as date-only values (the way date
// columns come back from the database) and read in UTC; anything else
// is read in its own location. This heuristic lives only here, at the
// time.Time boundary.
func FromTime(t time.Time) Date {
	utc := t.UTC()
	if utc.Hour() == 0 && utc.Minute() == 0 && utc.Second() == 0 && utc.Nanosecond() == 0 {
		t = utc
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today is the current civil date in local time.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// Key renders the date as YYYY-MM-DD.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date as UTC midnight, for handing to date columns.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// AddDays returns the date n days later, n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysBetween counts the days of [start, end] inclusive; a same-day
// range is 1. Returns 0 when end precedes start.
func DaysBetween(start, end Date) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Time().Sub(start.Time())/(24*time.Hour)) + 1
}

// InRange reports whether d falls within [start, end] inclusive.
func (d Date) InRange(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// MarshalJSON renders the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected quoted YYYY-MM-DD string", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
