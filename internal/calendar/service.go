package calendar

import (
	"errors"
	"time"

	calendarlib "github.com/Lofanmi/chinese-calendar-golang/calendar"

	"github.com/lululau/datepick/internal/holidays"
)

// Lunar annotations are only available inside the range supported by the
// upstream library.
const (
	MinLunarYear = 1900
	MaxLunarYear = 3000
)

// ViewMode indicates whether we display a single month or an entire year.
type ViewMode int

const (
	ModeMonth ViewMode = iota
	ModeYear
)

// Request captures the year/month/mode that should be rendered.
type Request struct {
	Year  int
	Month int
	Mode  ViewMode
}

// Normalize keeps the month within 1..12 by rolling the year value.
func (r Request) Normalize() Request {
	m, offset := WrapMonth(time.Month(r.Month), 0)
	r.Month = int(m)
	r.Year += offset
	return r
}

// ErrInvalidMonth indicates the month is not in the 1..12 range.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Day is a grid cell decorated for display.
type Day struct {
	DayCell
	IsToday         bool
	LunarDayAlias   string
	LunarMonthAlias string
	SolarTerm       string
	HolidayInfo     *holidays.HolidayInfo
	hasLunarData    bool
}

// SecondaryLabel selects the string rendered beneath the day number. Solar
// terms win, then the lunar month name on the first day of a lunar month.
func (d Day) SecondaryLabel() string {
	if d.SolarTerm != "" {
		return d.SolarTerm
	}
	if d.LunarDayAlias == "初一" && d.LunarMonthAlias != "" {
		return d.LunarMonthAlias
	}
	return d.LunarDayAlias
}

// HasLunarData reports whether lunar metadata was calculated.
func (d Day) HasLunarData() bool {
	return d.hasLunarData
}

// MonthView is a month grid split into weeks of decorated days.
type MonthView struct {
	Year  int
	Month time.Month
	Weeks [][]Day
}

// Service materialises month views from BuildGrid.
type Service struct {
	now         func() time.Time
	lunar       bool
	holidayData holidays.Table
}

// Option configures the Service.
type Option func(*Service)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLunar toggles lunar day labels and solar terms.
func WithLunar(enabled bool) Option {
	return func(s *Service) {
		s.lunar = enabled
	}
}

// WithHolidays sets the holiday data for the service.
func WithHolidays(data holidays.Table) Option {
	return func(s *Service) {
		s.holidayData = data
	}
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasHolidayData reports whether holiday annotations are available.
func (s *Service) HasHolidayData() bool {
	return len(s.holidayData) > 0
}

// Today returns the service clock's calendar date.
func (s *Service) Today() Date {
	return Today(s.now)
}

// Month builds a MonthView for year/month with cells outside r disabled.
func (s *Service) Month(year, month int, r DisabledRange) (MonthView, error) {
	if month < 1 || month > 12 {
		return MonthView{}, ErrInvalidMonth
	}
	grid := BuildGrid(year, time.Month(month), r)
	today := s.Today()

	weeks := make([][]Day, 0, len(grid)/7)
	for _, row := range grid.Weeks() {
		week := make([]Day, len(row))
		for i, cell := range row {
			week[i] = s.buildDay(cell, today)
		}
		weeks = append(weeks, week)
	}
	return MonthView{
		Year:  year,
		Month: time.Month(month),
		Weeks: weeks,
	}, nil
}

// Year returns the MonthView list for an entire year.
func (s *Service) Year(year int, r DisabledRange) ([]MonthView, error) {
	months := make([]MonthView, 0, 12)
	for m := 1; m <= 12; m++ {
		view, err := s.Month(year, m, r)
		if err != nil {
			return nil, err
		}
		months = append(months, view)
	}
	return months, nil
}

func (s *Service) buildDay(cell DayCell, today Date) Day {
	day := Day{
		DayCell: cell,
		IsToday: cell.Date == today,
	}
	if s.holidayData != nil {
		day.HolidayInfo = holidays.GetHolidayForDate(s.holidayData, cell.Date.Year, int(cell.Date.Month), cell.Date.Day)
	}
	if !s.lunar || cell.Date.Year < MinLunarYear || cell.Date.Year > MaxLunarYear {
		return day
	}

	cal := calendarlib.BySolar(
		int64(cell.Date.Year),
		int64(cell.Date.Month),
		int64(cell.Date.Day),
		12, 0, 0,
	)
	day.LunarDayAlias = cal.Lunar.DayAlias()
	day.LunarMonthAlias = cal.Lunar.MonthAlias()
	day.hasLunarData = true
	if solarterm := cal.Solar.CurrentSolarterm; solarterm != nil {
		noon := time.Date(cell.Date.Year, cell.Date.Month, cell.Date.Day, 12, 0, 0, 0, time.Local)
		if solarterm.IsInDay(&noon) {
			day.SolarTerm = solarterm.Alias()
		}
	}
	return day
}
