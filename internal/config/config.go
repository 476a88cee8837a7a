package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/dateformat"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/picker"
)

// ErrInvalidDate is returned when a date in the file does not match
// DateFormat.
var ErrInvalidDate = errors.New("invalid date in config")

// DisabledDays bounds the selectable range. Dates use Config.DateFormat.
type DisabledDays struct {
	Before string `yaml:"before,omitempty"`
	After  string `yaml:"after,omitempty"`
}

// Config is the on-disk picker configuration.
type Config struct {
	// DateFormat is the moment-style pattern for parsing and display.
	DateFormat string `yaml:"date_format"`
	// DefaultValue seeds the picker; empty means today with no selection.
	DefaultValue string       `yaml:"default_value,omitempty"`
	DisabledDays DisabledDays `yaml:"disabled_days,omitempty"`
	AutoPop      bool         `yaml:"auto_pop"`
	Lang         string       `yaml:"lang"`

	NextMonthTitle string `yaml:"next_month_title,omitempty"`
	PrevMonthTitle string `yaml:"prev_month_title,omitempty"`

	// Lunar adds Chinese lunar day labels beneath day numbers.
	Lunar bool `yaml:"lunar"`
	// HolidaysFile points at holiday JSON data; empty uses the user cache.
	HolidaysFile string `yaml:"holidays_file,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DateFormat: dateformat.DefaultPattern,
		Lang:       locale.DefaultLang,
	}
}

// Normalize fills in missing values so that partial files behave.
func (c *Config) Normalize() {
	if c.DateFormat == "" {
		c.DateFormat = dateformat.DefaultPattern
	}
	c.Lang = strings.ToUpper(strings.TrimSpace(c.Lang))
	if c.Lang == "" {
		c.Lang = locale.DefaultLang
	}
	c.DisabledDays.Before = strings.TrimSpace(c.DisabledDays.Before)
	c.DisabledDays.After = strings.TrimSpace(c.DisabledDays.After)
}

// Decode reads YAML from r on top of DefaultConfig.
func Decode(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Load reads the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Range parses DisabledDays with DateFormat.
func (c *Config) Range() (calendar.DisabledRange, error) {
	format, err := dateformat.New(c.DateFormat)
	if err != nil {
		return calendar.DisabledRange{}, err
	}
	var r calendar.DisabledRange
	if c.DisabledDays.Before != "" {
		d, err := format.Parse(c.DisabledDays.Before)
		if err != nil {
			return calendar.DisabledRange{}, fmt.Errorf("%w: disabled_days.before: %w", ErrInvalidDate, err)
		}
		r.Before = &d
	}
	if c.DisabledDays.After != "" {
		d, err := format.Parse(c.DisabledDays.After)
		if err != nil {
			return calendar.DisabledRange{}, fmt.Errorf("%w: disabled_days.after: %w", ErrInvalidDate, err)
		}
		r.After = &d
	}
	return r, nil
}

// PickerOptions translates the file into controller options.
func (c *Config) PickerOptions() ([]picker.Option, error) {
	r, err := c.Range()
	if err != nil {
		return nil, err
	}
	opts := []picker.Option{
		picker.WithDateFormat(c.DateFormat),
		picker.WithDisabledDays(r),
		picker.WithAutoPop(c.AutoPop),
		picker.WithLang(c.Lang),
	}
	if c.DefaultValue != "" {
		opts = append(opts, picker.WithDefaultValue(c.DefaultValue))
	}
	if c.NextMonthTitle != "" {
		opts = append(opts, picker.WithNextMonthTitle(c.NextMonthTitle))
	}
	if c.PrevMonthTitle != "" {
		opts = append(opts, picker.WithPrevMonthTitle(c.PrevMonthTitle))
	}
	return opts, nil
}
