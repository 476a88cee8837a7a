package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2019, time.January, 31},
		{2019, time.February, 28},
		{2020, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.April, 30},
		{2023, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Fatalf("DaysInMonth(%d, %v)=%d want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestWrapMonth(t *testing.T) {
	tests := []struct {
		name       string
		month      time.Month
		delta      int
		wantMonth  time.Month
		wantOffset int
	}{
		{"identity", time.June, 0, time.June, 0},
		{"forward", time.June, 1, time.July, 0},
		{"december forward", time.December, 1, time.January, 1},
		{"january back", time.January, -1, time.December, -1},
		{"whole year back", time.January, -12, time.January, -1},
		{"thirteen back", time.January, -13, time.December, -2},
		{"two years forward", time.March, 25, time.April, 2},
		{"many back", time.March, -27, time.December, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, off := WrapMonth(tt.month, tt.delta)
			if m != tt.wantMonth || off != tt.wantOffset {
				t.Fatalf("WrapMonth(%v, %d)=(%v, %d) want (%v, %d)", tt.month, tt.delta, m, off, tt.wantMonth, tt.wantOffset)
			}
		})
	}
}

func TestWrapMonthMatchesTimeArithmetic(t *testing.T) {
	base := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)
	for delta := -40; delta <= 40; delta++ {
		want := base.AddDate(0, delta, 0)
		m, off := WrapMonth(base.Month(), delta)
		if m != want.Month() || base.Year()+off != want.Year() {
			t.Fatalf("delta %d: got %d-%v want %d-%v", delta, base.Year()+off, m, want.Year(), want.Month())
		}
	}
}

func TestIsDisabled(t *testing.T) {
	before := NewDate(2019, time.July, 21)
	after := NewDate(2019, time.August, 10)

	tests := []struct {
		name string
		r    DisabledRange
		d    Date
		want bool
	}{
		{"no bounds", DisabledRange{}, NewDate(1, time.January, 1), false},
		{"before bound excluded", DisabledRange{Before: &before}, NewDate(2019, time.July, 20), true},
		{"before bound itself allowed", DisabledRange{Before: &before}, before, false},
		{"after bound itself allowed", DisabledRange{After: &after}, after, false},
		{"after bound excluded", DisabledRange{After: &after}, NewDate(2019, time.August, 11), true},
		{"inside closed range", DisabledRange{Before: &before, After: &after}, NewDate(2019, time.August, 1), false},
		{"inverted range disables all", DisabledRange{Before: &after, After: &before}, NewDate(2019, time.August, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDisabled(tt.d, tt.r); got != tt.want {
				t.Fatalf("IsDisabled(%s)=%v want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2019, time.December, 31)
	b := NewDate(2020, time.January, 1)
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Fatalf("unexpected ordering between %s and %s", a, b)
	}
	if (Date{Year: 2019, Month: time.February, Day: 29}).Valid() {
		t.Fatalf("2019-02-29 should be invalid")
	}
}
