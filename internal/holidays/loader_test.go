package holidays

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleJSON = `[
  {"year": "2025", "holiday": {
    "10-01": {"holiday": true, "name": "国庆节", "wage": 3, "date": "2025-10-01"},
    "09-28": {"holiday": false, "name": "国庆节后补班", "wage": 1, "date": "2025-09-28"},
    "01-01": {"holiday": "元旦", "name": "元旦", "wage": 3, "date": "2025-01-01"}
  }},
  {"year": "bogus", "holiday": {}}
]`

func TestDecodeAndLookup(t *testing.T) {
	table, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, ok := table["bogus"]; ok {
		t.Fatalf("non-numeric years should be skipped")
	}

	tests := []struct {
		name        string
		month, day  int
		wantNil     bool
		wantHoliday bool
	}{
		{"holiday", 10, 1, false, true},
		{"make-up workday", 9, 28, false, false},
		{"string holiday flag", 1, 1, false, true},
		{"ordinary day", 3, 3, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetHolidayForDate(table, 2025, tt.month, tt.day)
			if tt.wantNil {
				if info != nil {
					t.Fatalf("expected no holiday info, got %+v", info)
				}
				return
			}
			if info == nil || info.IsHoliday != tt.wantHoliday {
				t.Fatalf("unexpected info %+v", info)
			}
		})
	}
	if GetHolidayForDate(table, 1999, 10, 1) != nil {
		t.Fatalf("unknown year should yield nil")
	}
	if GetHolidayForDate(nil, 2025, 10, 1) != nil {
		t.Fatalf("nil table should yield nil")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader("[]")); !errors.Is(err, ErrNoYears) {
		t.Fatalf("expected ErrNoYears, got %v", err)
	}
	if _, err := Decode(strings.NewReader("{")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadFromFileAndCacheValidity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	now := time.Now()
	valid, err := IsCacheValid(path, now)
	if err != nil || !valid {
		t.Fatalf("fresh file should be valid, got %v, %v", valid, err)
	}
	valid, err = IsCacheValid(path, now.Add(2*MaxCacheAge))
	if err != nil || valid {
		t.Fatalf("old file should be stale, got %v, %v", valid, err)
	}
	valid, err = IsCacheValid(filepath.Join(t.TempDir(), "missing.json"), now)
	if err != nil || valid {
		t.Fatalf("missing file should be invalid without error, got %v, %v", valid, err)
	}
}
