package calendar

import (
	"testing"
	"time"

	"github.com/lululau/datepick/internal/holidays"
)

func TestMonthGeneratesCompleteWeeks(t *testing.T) {
	now := time.Date(2025, 11, 18, 10, 0, 0, 0, time.Local)
	svc := NewService(WithNow(func() time.Time { return now }))
	view, err := svc.Month(2025, 11, DisabledRange{})
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}
	if view.Month != time.November {
		t.Fatalf("expected November, got %v", view.Month)
	}
	if len(view.Weeks) != 6 {
		t.Fatalf("November 2025 starts on Saturday, expected 6 weeks, got %d", len(view.Weeks))
	}
	if view.Weeks[0][0].Date.Weekday() != time.Sunday {
		t.Fatalf("calendar should start on Sunday, got %v", view.Weeks[0][0].Date.Weekday())
	}
	foundToday := false
	for _, week := range view.Weeks {
		if len(week) != 7 {
			t.Fatalf("week should have 7 days, got %d", len(week))
		}
		for _, day := range week {
			if day.IsToday {
				foundToday = true
				if day.Date.Day != 18 {
					t.Fatalf("expected IsToday on 18th, got %d", day.Date.Day)
				}
			}
		}
	}
	if !foundToday {
		t.Fatalf("expected to flag current day")
	}
}

func TestMonthMarksDisabledDays(t *testing.T) {
	before := NewDate(2019, time.July, 21)
	view, err := NewService().Month(2019, 7, DisabledRange{Before: &before})
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}
	for _, week := range view.Weeks {
		for _, day := range week {
			want := day.Date.Before(before)
			if day.Disabled != want {
				t.Fatalf("%s disabled=%v want %v", day.Date, day.Disabled, want)
			}
		}
	}
}

func TestMonthLunarLabels(t *testing.T) {
	view, err := NewService(WithLunar(true)).Month(2025, 11, DisabledRange{})
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}
	day := view.Weeks[1][0]
	if !day.HasLunarData() {
		t.Fatalf("expected lunar data for %s", day.Date)
	}
	if day.SecondaryLabel() == "" {
		t.Fatalf("expected a secondary label for %s", day.Date)
	}

	plain, _ := NewService().Month(2025, 11, DisabledRange{})
	if plain.Weeks[1][0].HasLunarData() {
		t.Fatalf("lunar data should be off by default")
	}
}

func TestMonthHolidayInfo(t *testing.T) {
	table := holidays.Table{
		"2025": {"10-01": {Holiday: true, Name: "国庆节"}},
	}
	view, err := NewService(WithHolidays(table)).Month(2025, 10, DisabledRange{})
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}
	found := false
	for _, week := range view.Weeks {
		for _, day := range week {
			if day.Date == NewDate(2025, time.October, 1) {
				found = day.HolidayInfo != nil && day.HolidayInfo.IsHoliday
			}
		}
	}
	if !found {
		t.Fatalf("expected holiday info on 2025-10-01")
	}
}

func TestYearLoadsAllMonths(t *testing.T) {
	months, err := NewService().Year(2024, DisabledRange{})
	if err != nil {
		t.Fatalf("Year returned error: %v", err)
	}
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
}

func TestInvalidMonth(t *testing.T) {
	if _, err := NewService().Month(2024, 13, DisabledRange{}); err == nil {
		t.Fatalf("expected error for invalid month")
	}
}

func TestRequestNormalize(t *testing.T) {
	got := Request{Year: 2024, Month: 13}.Normalize()
	if got.Year != 2025 || got.Month != 1 {
		t.Fatalf("Normalize(2024-13)=%d-%d want 2025-1", got.Year, got.Month)
	}
	got = Request{Year: 2024, Month: 0}.Normalize()
	if got.Year != 2023 || got.Month != 12 {
		t.Fatalf("Normalize(2024-0)=%d-%d want 2023-12", got.Year, got.Month)
	}
}
