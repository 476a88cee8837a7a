package calendar

import "time"

// Grid sizes in cells: five or six full weeks.
const (
	ShortGridSize = 35
	LongGridSize  = 42
)

// DayCell is one slot of a month grid.
type DayCell struct {
	Date     Date
	InMonth  bool
	Disabled bool
}

// Grid is a Sunday-first, row-major month matrix of 35 or 42 cells.
type Grid []DayCell

// BuildGrid lays out month of year with the tail of the previous month
// before day 1 and the head of the next month after the last day.
func BuildGrid(year int, month time.Month, r DisabledRange) Grid {
	month, offset := WrapMonth(month, 0)
	year += offset

	first := Date{Year: year, Month: month, Day: 1}
	lead := int(first.Weekday())
	days := DaysInMonth(year, month)

	size := ShortGridSize
	if lead+days > ShortGridSize {
		size = LongGridSize
	}
	grid := make(Grid, 0, size)

	prevMonth, prevOffset := WrapMonth(month, -1)
	prevYear := year + prevOffset
	prevDays := DaysInMonth(prevYear, prevMonth)
	for i := lead; i > 0; i-- {
		grid = append(grid, newCell(Date{Year: prevYear, Month: prevMonth, Day: prevDays - i + 1}, false, r))
	}

	for d := 1; d <= days; d++ {
		grid = append(grid, newCell(Date{Year: year, Month: month, Day: d}, true, r))
	}

	nextMonth, nextOffset := WrapMonth(month, 1)
	nextYear := year + nextOffset
	for d := 1; len(grid) < size; d++ {
		grid = append(grid, newCell(Date{Year: nextYear, Month: nextMonth, Day: d}, false, r))
	}
	return grid
}

func newCell(d Date, inMonth bool, r DisabledRange) DayCell {
	return DayCell{Date: d, InMonth: inMonth, Disabled: r.IsDisabled(d)}
}

// Weeks splits the grid into rows of seven days.
func (g Grid) Weeks() [][]DayCell {
	weeks := make([][]DayCell, 0, len(g)/7)
	for i := 0; i+7 <= len(g); i += 7 {
		weeks = append(weeks, g[i:i+7])
	}
	return weeks
}

// Index returns the position of d in the grid, or -1.
func (g Grid) Index(d Date) int {
	for i, cell := range g {
		if cell.Date == d {
			return i
		}
	}
	return -1
}
