package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/locale"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer   io.Writer
	Service  *calendar.Service
	Locales  locale.Provider
	Lang     string
	Request  calendar.Request
	Disabled calendar.DisabledRange
	// Selected is highlighted when it falls on a rendered month.
	Selected *calendar.Date
	Width    int
}

// RunPlain renders the requested view exactly once.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Service == nil {
		opts.Service = calendar.NewService()
	}
	if opts.Locales == nil {
		bundle, err := locale.NewBundle()
		if err != nil {
			return err
		}
		opts.Locales = bundle
	}
	if opts.Lang == "" {
		opts.Lang = locale.DefaultLang
	}

	req := opts.Request.Normalize()
	views, err := fetchViews(opts.Service, req, opts.Disabled)
	if err != nil {
		return err
	}
	frames := make([]Frame, len(views))
	for i, view := range views {
		frames[i] = NewFrame(opts.Locales, opts.Lang, view)
		frames[i].Selected = opts.Selected
	}
	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	output := Layout(BuildBlocks(frames), width)
	if output == "" {
		return nil
	}
	if _, err := fmt.Fprintln(opts.Writer, output); err != nil {
		return err
	}
	if opts.Service.HasHolidayData() {
		_, err = fmt.Fprintln(opts.Writer, "\n"+ColorLegend())
	}
	return err
}

// NewFrame titles view with localized names.
func NewFrame(locales locale.Provider, lang string, view calendar.MonthView) Frame {
	return Frame{
		Title: locales.Message(lang, locale.MsgMonthTitle, map[string]any{
			"Month": locale.MonthName(locales, lang, view.Month),
			"Year":  view.Year,
		}),
		WeekDays: locales.WeekDays(lang),
		Month:    view,
	}
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}

func fetchViews(svc *calendar.Service, req calendar.Request, r calendar.DisabledRange) ([]calendar.MonthView, error) {
	if req.Mode == calendar.ModeYear {
		return svc.Year(req.Year, r)
	}
	view, err := svc.Month(req.Year, req.Month, r)
	if err != nil {
		return nil, err
	}
	return []calendar.MonthView{view}, nil
}
