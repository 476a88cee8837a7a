package picker

import (
	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/locale"
)

// NavControl is a previous/next month button: Title is its tooltip and
// Label names the month it leads to.
type NavControl struct {
	Title string
	Label string
}

// View is everything a renderer needs to draw the picker.
type View struct {
	State    State
	Grid     calendar.Grid
	Title    string
	WeekDays []locale.WeekDay
	Prev     NavControl
	Next     NavControl
}

// Grid builds the grid for the frame's month.
func (c *Controller) Grid() calendar.Grid {
	return calendar.BuildGrid(c.state.Frame.Year, c.state.Frame.Month, c.disabled)
}

// MonthTitle localizes "<month> <year>" for the month containing d.
func (c *Controller) MonthTitle(d calendar.Date) string {
	return c.locales.Message(c.lang, locale.MsgMonthTitle, map[string]any{
		"Month": locale.MonthName(c.locales, c.lang, d.Month),
		"Year":  d.Year,
	})
}

// View snapshots the controller for rendering.
func (c *Controller) View() View {
	frame := c.state.Frame
	prev := calendar.Shift(frame, -1, calendar.UnitMonth, true)
	next := calendar.Shift(frame, 1, calendar.UnitMonth, true)
	return View{
		State:    c.State(),
		Grid:     c.Grid(),
		Title:    c.MonthTitle(frame),
		WeekDays: c.locales.WeekDays(c.lang),
		Prev:     NavControl{Title: c.prevTitle, Label: c.MonthTitle(prev)},
		Next:     NavControl{Title: c.nextTitle, Label: c.MonthTitle(next)},
	}
}
