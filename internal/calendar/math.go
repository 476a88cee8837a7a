package calendar

import "time"

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule: every fourth year, except
// centuries that are not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month in year. Months outside
// January..December are wrapped first.
func DaysInMonth(year int, month time.Month) int {
	m, offset := WrapMonth(month, 0)
	year += offset
	if m == time.February && IsLeapYear(year) {
		return 29
	}
	return monthDays[m-1]
}

// WrapMonth adds delta months to month and keeps the result inside
// January..December. yearOffset is how many years the move crossed, which is
// negative when moving backwards past January.
func WrapMonth(month time.Month, delta int) (time.Month, int) {
	idx := int(month) - 1 + delta
	yearOffset := idx / 12
	idx %= 12
	if idx < 0 {
		idx += 12
		yearOffset--
	}
	return time.Month(idx + 1), yearOffset
}

// DisabledRange bounds the selectable dates. A nil bound leaves that side
// open. When Before is later than After no date is selectable.
type DisabledRange struct {
	Before *Date
	After  *Date
}

// IsDisabled reports whether d lies strictly before r.Before or strictly
// after r.After.
func (r DisabledRange) IsDisabled(d Date) bool {
	if r.Before != nil && d.Before(*r.Before) {
		return true
	}
	if r.After != nil && d.After(*r.After) {
		return true
	}
	return false
}

// IsZero reports whether neither bound is set.
func (r DisabledRange) IsZero() bool {
	return r.Before == nil && r.After == nil
}

// IsDisabled is the free-function form of DisabledRange.IsDisabled.
func IsDisabled(d Date, r DisabledRange) bool {
	return r.IsDisabled(d)
}
