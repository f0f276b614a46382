// Package streak decides whether two sessions count as consecutive.
package streak

import "time"

// Policy reports whether a session at current continues a streak whose last
// session was at previous. A zero previous never continues a streak.
type Policy func(previous, current time.Time) bool

// NextCalendarDay continues a streak when current falls on the calendar day
// right after previous in loc. Two sessions on the same day reset the streak.
func NextCalendarDay(loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	return func(previous, current time.Time) bool {
		if previous.IsZero() {
			return false
		}
		p := previous.In(loc)
		next := time.Date(p.Year(), p.Month(), p.Day()+1, 0, 0, 0, 0, loc)
		c := current.In(loc)
		return c.Year() == next.Year() && c.YearDay() == next.YearDay()
	}
}

// NextWorkday is NextCalendarDay except that Friday continues into Monday
func NextWorkday(loc *time.Location) Policy {
	nextDay := NextCalendarDay(loc)
	if loc == nil {
		loc = time.UTC
	}
	return func(previous, current time.Time) bool {
		if nextDay(previous, current) {
			return true
		}
		if previous.IsZero() || previous.In(loc).Weekday() != time.Friday {
			return false
		}
		p := previous.In(loc)
		monday := time.Date(p.Year(), p.Month(), p.Day()+3, 0, 0, 0, 0, loc)
		c := current.In(loc)
		return c.Year() == monday.Year() && c.YearDay() == monday.YearDay()
	}
}

// Never treats every session as the start of a new streak
func Never(time.Time, time.Time) bool {
	return false
}
