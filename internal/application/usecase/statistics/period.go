// Package statistics contains the read-side use cases that aggregate the
// transaction log into daily, monthly and yearly views.
package statistics

import "time"

// DayBounds returns the closed epoch-millisecond interval covering the
// calendar day containing t in the given location.
func DayBounds(t time.Time, loc *time.Location) (int64, int64) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).UnixMilli() - 1
	return start.UnixMilli(), end
}

// MonthBounds returns the closed epoch-millisecond interval covering the
// calendar month (year, month) in the given location.
func MonthBounds(year, month int, loc *time.Location) (int64, int64) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).UnixMilli() - 1
	return start.UnixMilli(), end
}

// YearBounds returns the closed epoch-millisecond interval covering the
// calendar year in the given location.
func YearBounds(year int, loc *time.Location) (int64, int64) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(1, 0, 0).UnixMilli() - 1
	return start.UnixMilli(), end
}

// DaysInMonth returns the number of calendar days in (year, month).
// time.Date normalizes day 0 of the next month to this month's last day.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
