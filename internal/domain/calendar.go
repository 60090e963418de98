package domain

import "time"

// Calendar policy: weeks start on Monday and Sundays are not bookable,
// so Sundays never appear in the generated grid.

// WeekStart returns the Monday of the week containing date (midnight, same location)
func WeekStart(date time.Time) time.Time {
	d := truncateToDay(date)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday of the week containing date (midnight, same location)
func WeekEnd(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, 6)
}

// BookableDays returns the days of [start, end] the grid is generated for,
// in ascending order, with Sundays excluded
func BookableDays(start, end time.Time) []time.Time {
	start = truncateToDay(start)
	end = truncateToDay(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}

// MonthWeeks returns the Mondays of every week intersecting the given month,
// for the professional's management view
func MonthWeeks(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var weeks []time.Time
	for w := WeekStart(first); !w.After(last); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
	}
	return weeks
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
