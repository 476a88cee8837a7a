package holidays

import (
	"encoding/json"
)

// HolidayEntry is a single day in the holiday JSON data. Other fields in
// the file are ignored.
type HolidayEntry struct {
	Holiday bool   `json:"holiday"`
	Name    string `json:"name"`
}

// UnmarshalJSON accepts "holiday" as either a boolean or a string; some
// published files carry the holiday name in that field.
func (h *HolidayEntry) UnmarshalJSON(data []byte) error {
	type alias HolidayEntry
	aux := &struct {
		Holiday any `json:"holiday"`
		*alias
	}{
		alias: (*alias)(h),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	switch v := aux.Holiday.(type) {
	case bool:
		h.Holiday = v
	case string:
		h.Holiday = v != ""
	default:
		h.Holiday = false
	}
	return nil
}

// HolidayData is the on-disk layout: one element per year, each mapping
// "MM-DD" to its entry.
type HolidayData []struct {
	Year    string                   `json:"year"`
	Holiday map[string]*HolidayEntry `json:"holiday"`
}

// Table indexes entries by year string, then by "MM-DD".
type Table map[string]map[string]*HolidayEntry

// HolidayInfo is what a calendar cell needs to know about a day.
type HolidayInfo struct {
	IsHoliday bool // false marks a make-up workday
	Name      string
}
