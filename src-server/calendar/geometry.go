package calendar

import "time"

// MonthGeometry returns the number of days in the month and the weekday
// index of its first day (0=Sunday..6=Saturday), both Gregorian. Month
// must be within January..December; this is not re-checked here.
func MonthGeometry(month time.Month, year int) (daysInMonth int, startDay int) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth = first.AddDate(0, 1, -1).Day()
	startDay = int(first.Weekday())
	return daysInMonth, startDay
}

// MonthBounds returns the first instant of the month and 23:59:59 of its
// last day, in the given location.
func MonthBounds(month time.Month, year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
