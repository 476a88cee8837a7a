package picker

import (
	"log/slog"
	"time"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/locale"
)

// Option configures a Controller.
type Option func(*Controller)

// WithDateFormat sets the pattern used to parse and format the text value.
func WithDateFormat(pattern string) Option {
	return func(c *Controller) {
		c.pattern = pattern
	}
}

// WithDefaultValue seeds the picker from formatted text.
func WithDefaultValue(text string) Option {
	return func(c *Controller) {
		c.defaultValue = text
	}
}

// WithDefaultDate seeds the picker from a concrete date. It wins over
// WithDefaultValue.
func WithDefaultDate(d calendar.Date) Option {
	return func(c *Controller) {
		c.defaultDate = &d
	}
}

// WithDisabledDays restricts navigation and selection to r.
func WithDisabledDays(r calendar.DisabledRange) Option {
	return func(c *Controller) {
		c.disabled = r
	}
}

// WithAutoPop opens the picker on construction.
func WithAutoPop(open bool) Option {
	return func(c *Controller) {
		c.autoPop = open
	}
}

// WithLang selects the month and weekday tables.
func WithLang(lang string) Option {
	return func(c *Controller) {
		c.lang = lang
	}
}

// WithNextMonthTitle overrides the next-month control label.
func WithNextMonthTitle(title string) Option {
	return func(c *Controller) {
		c.nextTitle = title
	}
}

// WithPrevMonthTitle overrides the previous-month control label.
func WithPrevMonthTitle(title string) Option {
	return func(c *Controller) {
		c.prevTitle = title
	}
}

// WithOnChange registers the callback fired with the formatted text on every
// selection and with "" on every clear.
func WithOnChange(fn func(string)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithOnError registers the callback fired with the raw text of every blur
// value that cannot be parsed.
func WithOnError(fn func(string)) Option {
	return func(c *Controller) {
		c.onError = fn
	}
}

// WithLocales replaces the embedded locale bundle.
func WithLocales(p locale.Provider) Option {
	return func(c *Controller) {
		c.locales = p
	}
}

// WithNow overrides the clock used to pick the initial frame.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLogger sets the logger for transition traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}
