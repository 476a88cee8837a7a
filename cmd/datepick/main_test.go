package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lululau/datepick/internal/calendar"
)

func TestParseRequest(t *testing.T) {
	base := calendar.NewDate(2019, time.July, 15)
	tests := []struct {
		name     string
		showYear bool
		args     []int
		want     calendar.Request
	}{
		{"defaults", false, nil, calendar.Request{Year: 2019, Month: 7, Mode: calendar.ModeMonth}},
		{"month only", false, []int{9}, calendar.Request{Year: 2019, Month: 9, Mode: calendar.ModeMonth}},
		{"bare year", false, []int{1983}, calendar.Request{Year: 1983, Month: 7, Mode: calendar.ModeYear}},
		{"year and month", false, []int{2012, 12}, calendar.Request{Year: 2012, Month: 12, Mode: calendar.ModeMonth}},
		{"year flag", true, []int{9}, calendar.Request{Year: 9, Month: 7, Mode: calendar.ModeYear}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRequest(base, tt.showYear, tt.args)
			if err != nil {
				t.Fatalf("parseRequest failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRequestErrors(t *testing.T) {
	base := calendar.NewDate(2019, time.July, 15)
	if _, err := parseRequest(base, false, []int{2012, 13}); !errors.Is(err, calendar.ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
	if _, err := parseRequest(base, true, []int{2012, 1}); err == nil {
		t.Fatal("expected error for two arguments with --year")
	}
	if _, err := parseRequest(base, false, []int{1, 2, 3}); err == nil {
		t.Fatal("expected error for too many arguments")
	}
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datepick.yaml")
	data := []byte(`date_format: YYYY-MM-DD
lang: fr
lunar: true
disabled_days:
  before: "2019-06-01"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := resolveConfig(&CLI{Config: path, Lang: "zh", After: "2019-12-31", AutoPop: true})
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}
	if cfg.DateFormat != "YYYY-MM-DD" || cfg.Lang != "ZH" {
		t.Fatalf("unexpected format/lang %q/%q", cfg.DateFormat, cfg.Lang)
	}
	if !cfg.Lunar || !cfg.AutoPop {
		t.Fatalf("expected lunar from the file and auto pop from the flag")
	}
	r, err := cfg.Range()
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if r.Before == nil || *r.Before != calendar.NewDate(2019, time.June, 1) {
		t.Fatalf("unexpected before %v", r.Before)
	}
	if r.After == nil || *r.After != calendar.NewDate(2019, time.December, 31) {
		t.Fatalf("unexpected after %v", r.After)
	}
}

func TestResolveConfigMissingFile(t *testing.T) {
	if _, err := resolveConfig(&CLI{Config: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
