package calendar

import "time"

// Unit is the granularity of a Shift.
type Unit int

const (
	UnitDay Unit = iota
	UnitMonth
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	default:
		return "day"
	}
}

// Shift moves d by offset units. With snapToFirst a month or year move lands
// on day 1 of the target month. Without it the day is kept, clamped to the
// length of the target month so that Jan 31 + 1 month is the last day of
// February rather than a day in March. Shift never looks at disabled ranges.
func Shift(d Date, offset int, unit Unit, snapToFirst bool) Date {
	switch unit {
	case UnitMonth:
		month, yearOffset := WrapMonth(d.Month, offset)
		return landOn(d.Year+yearOffset, month, d.Day, snapToFirst)
	case UnitYear:
		return landOn(d.Year+offset, d.Month, d.Day, snapToFirst)
	default:
		return d.AddDays(offset)
	}
}

func landOn(year int, month time.Month, day int, snapToFirst bool) Date {
	if snapToFirst {
		day = 1
	}
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}
