// Package picker holds the date picker state machine. A Controller is
// driven by one owner at a time and is not safe for concurrent use.
package picker

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/dateformat"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/logfields"
)

// Key is a navigation key delivered to the open grid.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// BlurResult tells the caller what a Blur did.
type BlurResult int

const (
	BlurUnchanged BlurResult = iota
	BlurSelected
	BlurCleared
	BlurInvalid
)

// State is a snapshot of the picker. Frame is the date focused in the grid
// and moves independently of Selected.
type State struct {
	Frame    calendar.Date
	Open     bool
	Text     string
	Selected *calendar.Date
}

// Controller owns a picker's State and applies every user event to it.
type Controller struct {
	pattern      string
	defaultValue string
	defaultDate  *calendar.Date
	autoPop      bool
	lang         string
	nextTitle    string
	prevTitle    string
	disabled     calendar.DisabledRange
	locales      locale.Provider
	onChange     func(string)
	onError      func(string)
	now          func() time.Time
	logger       *slog.Logger

	format         dateformat.Format
	state          State
	focusRequested bool
}

// New builds a Controller. It fails only when the date pattern is unusable.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		lang: locale.DefaultLang,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.logger = c.logger.With(logfields.Component("picker"))
	if c.onChange == nil {
		c.onChange = func(string) {}
	}
	if c.onError == nil {
		c.onError = func(string) {}
	}
	if c.locales == nil {
		bundle, err := locale.NewBundle()
		if err != nil {
			return nil, err
		}
		c.locales = bundle
	}
	if err := locale.Check(c.locales, c.lang); err != nil {
		return nil, err
	}
	if c.nextTitle == "" {
		c.nextTitle = c.locales.Message(c.lang, locale.MsgNextMonth, nil)
	}
	if c.prevTitle == "" {
		c.prevTitle = c.locales.Message(c.lang, locale.MsgPrevMonth, nil)
	}

	format, err := dateformat.New(c.pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}
	c.format = format
	c.initState()
	return c, nil
}

func (c *Controller) initState() {
	c.state = State{
		Frame: calendar.Today(c.now),
		Open:  c.autoPop,
	}
	switch {
	case c.defaultDate != nil:
		d := *c.defaultDate
		c.state.Frame = d
		c.state.Selected = &d
		c.state.Text = c.format.Format(d)
	case c.defaultValue != "":
		d, err := c.format.Parse(c.defaultValue)
		if err != nil {
			c.logger.Warn("ignoring unparsable default value",
				logfields.Text(c.defaultValue),
				logfields.Pattern(c.format.Pattern()),
				logfields.Error(err),
			)
			return
		}
		c.state.Frame = d
		c.state.Selected = &d
		c.state.Text = c.defaultValue
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	if s.Selected != nil {
		d := *s.Selected
		s.Selected = &d
	}
	return s
}

// Frame returns the date focused in the grid.
func (c *Controller) Frame() calendar.Date { return c.state.Frame }

// Text returns the committed text value.
func (c *Controller) Text() string { return c.state.Text }

// IsOpen reports whether the grid is shown.
func (c *Controller) IsOpen() bool { return c.state.Open }

// Lang returns the configured language key.
func (c *Controller) Lang() string { return c.lang }

// Pattern returns the configured date pattern.
func (c *Controller) Pattern() string { return c.format.Pattern() }

// DisabledDays returns the configured range.
func (c *Controller) DisabledDays() calendar.DisabledRange { return c.disabled }

// Format renders d with the configured pattern.
func (c *Controller) Format(d calendar.Date) string { return c.format.Format(d) }

// Open shows the grid.
func (c *Controller) Open() {
	c.state.Open = true
	c.logger.Debug("open", logfields.Frame(c.state.Frame.String()))
}

// Close hides the grid without selecting.
func (c *Controller) Close() {
	c.state.Open = false
	c.logger.Debug("close", logfields.Frame(c.state.Frame.String()))
}

// Toggle flips the grid visibility, as a click on the text field does.
func (c *Controller) Toggle() {
	if c.state.Open {
		c.Close()
		return
	}
	c.Open()
}

// Key handles a key pressed while the grid has focus. It returns false when
// the key had no effect.
func (c *Controller) Key(k Key) bool {
	if !c.state.Open {
		return false
	}
	switch k {
	case KeyLeft:
		return c.moveTo(calendar.Shift(c.state.Frame, -1, calendar.UnitDay, false), k.String())
	case KeyRight:
		return c.moveTo(calendar.Shift(c.state.Frame, 1, calendar.UnitDay, false), k.String())
	case KeyUp:
		return c.moveTo(calendar.Shift(c.state.Frame, -7, calendar.UnitDay, false), k.String())
	case KeyDown:
		return c.moveTo(calendar.Shift(c.state.Frame, 7, calendar.UnitDay, false), k.String())
	case KeyEnter:
		c.Select(c.state.Frame)
		return true
	}
	return false
}

// PrevMonth moves the frame to the first day of the previous month.
func (c *Controller) PrevMonth() bool { return c.jump(-1, calendar.UnitMonth) }

// NextMonth moves the frame to the first day of the next month.
func (c *Controller) NextMonth() bool { return c.jump(1, calendar.UnitMonth) }

// PrevYear moves the frame to the first day of the same month a year back.
func (c *Controller) PrevYear() bool { return c.jump(-1, calendar.UnitYear) }

// NextYear moves the frame to the first day of the same month a year on.
func (c *Controller) NextYear() bool { return c.jump(1, calendar.UnitYear) }

func (c *Controller) jump(offset int, unit calendar.Unit) bool {
	if !c.state.Open {
		return false
	}
	event := fmt.Sprintf("%+d %s", offset, unit)
	return c.moveTo(calendar.Shift(c.state.Frame, offset, unit, true), event)
}

// moveTo commits candidate as the new frame unless it is disabled.
func (c *Controller) moveTo(candidate calendar.Date, event string) bool {
	if c.disabled.IsDisabled(candidate) {
		c.logger.Debug("navigation blocked",
			logfields.Event(event),
			logfields.Frame(c.state.Frame.String()),
			logfields.Date(candidate.String()),
		)
		return false
	}
	if candidate == c.state.Frame {
		return false
	}
	c.state.Frame = candidate
	c.logger.Debug("navigate", logfields.Event(event), logfields.Frame(candidate.String()))
	return true
}

// ClickCell selects d when the grid is open and d is not disabled.
func (c *Controller) ClickCell(d calendar.Date) bool {
	if !c.state.Open || c.disabled.IsDisabled(d) {
		return false
	}
	c.Select(d)
	return true
}

// Blur commits text typed into the field when it loses focus.
func (c *Controller) Blur(text string) BlurResult {
	if text == c.state.Text {
		return BlurUnchanged
	}
	if text == "" {
		c.Deselect()
		return BlurCleared
	}
	d, err := c.format.Parse(text)
	if err != nil {
		c.logger.Debug("blur rejected", logfields.Text(text), logfields.Error(err))
		c.onError(text)
		return BlurInvalid
	}
	c.Select(d)
	return BlurSelected
}

// Select makes d the chosen date, closes the grid and asks for the text
// field to regain focus.
func (c *Controller) Select(d calendar.Date) {
	c.state.Selected = &d
	c.state.Frame = d
	c.state.Text = c.format.Format(d)
	c.state.Open = false
	c.focusRequested = true
	c.logger.Debug("select", logfields.Date(d.String()), logfields.Text(c.state.Text))
	c.onChange(c.state.Text)
}

// Deselect clears the text value and the selection. The frame stays.
func (c *Controller) Deselect() {
	c.state.Text = ""
	c.state.Selected = nil
	c.logger.Debug("deselect", logfields.Frame(c.state.Frame.String()))
	c.onChange("")
}

// TakeFocusRequest reports whether a selection asked for the text field to
// be focused, and clears the request.
func (c *Controller) TakeFocusRequest() bool {
	requested := c.focusRequested
	c.focusRequested = false
	return requested
}
