package model

import (
	"fmt"
	"time"
)

// Month is a calendar (year, month) cursor.
//
// Month values are compared lexicographically: first by Year, then by Month.
// Month is always in the range 1-12.
type Month struct {
	Year  int
	Month int
}

// MonthOf returns the Month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: int(t.Month())}
}

// Next returns the following month, wrapping December to January of the next year.
func (m Month) Next() Month {
	if m.Month >= 12 {
		return Month{Year: m.Year + 1, Month: 1}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Before reports whether m is strictly earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Count returns the number of months from m up to, but not including, end.
// It returns 0 when end is not after m.
func (m Month) Count(end Month) int {
	n := (end.Year-m.Year)*12 + (end.Month - m.Month)
	if n < 0 {
		return 0
	}
	return n
}

// String formats the month as "YYYY/MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d/%02d", m.Year, m.Month)
}
