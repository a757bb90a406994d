package season

import "time"

// DaysPerWeek is the width of every generated planning window.
const DaysPerWeek = 7

// WeekDescriptor is a derived 7-day planning window. Descriptors are a pure
// projection of the season's date range and are never persisted.
type WeekDescriptor struct {
	Index      int
	StartDate  time.Time
	EndDate    time.Time
	MonthLabel string
}

// WeekStart returns the Monday on or before the given date.
// PRE: date is a valid time
// POST: returned date is a Monday and at most 6 days before date
func WeekStart(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return d.AddDate(0, 0, -offset)
}

// Weeks generates the ordered, zero-indexed week windows covering the range.
// The first window starts on the Monday on or before start; windows are
// contiguous 7-day spans and the last one may extend past end (windows are
// never truncated).
// PRE: none
// POST: empty slice when end is before start; otherwise each week starts
// exactly 7 days after the previous and the last week's start is <= end
func Weeks(start, end time.Time) []WeekDescriptor {
	if end.Before(start) {
		return nil
	}

	var weeks []WeekDescriptor
	cursor := WeekStart(start)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; !cursor.After(endDay); i++ {
		weeks = append(weeks, WeekDescriptor{
			Index:      i,
			StartDate:  cursor,
			EndDate:    cursor.AddDate(0, 0, DaysPerWeek-1),
			MonthLabel: cursor.Format("January 2006"),
		})
		cursor = cursor.AddDate(0, 0, DaysPerWeek)
	}
	return weeks
}

// SeasonWeeks generates the week windows for a season's date range.
func SeasonWeeks(s Season) []WeekDescriptor {
	return Weeks(s.StartDate, s.EndDate)
}
