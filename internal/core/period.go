package core

import "time"

// Period identifies a single calendar month used as the unit of reporting.
// It is a derived value, never persisted.
type Period struct {
	Year  int
	Month int
}

// PeriodOf returns the period containing the given date.
func PeriodOf(d Date) Period {
	return Period{Year: d.Year(), Month: d.Month()}
}

// FirstDay returns the first day of the period.
func (p Period) FirstDay() Date {
	return NewDate(p.Year, p.Month, 1)
}

// LastDay returns the last day of the period. Day zero of the next month
// normalizes to it, which also handles leap Februaries.
func (p Period) LastDay() Date {
	return Date{Time: time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC)}
}

// Days returns the number of days in the period's month.
func (p Period) Days() int {
	return p.LastDay().Day()
}

// Previous returns the calendar month before this one.
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Contains reports whether the date falls inside the period's month,
// comparing year and month exactly and ignoring the day.
func (p Period) Contains(d Date) bool {
	return d.Year() == p.Year && d.Month() == p.Month
}
