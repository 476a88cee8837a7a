package main

import (
	"errors"
	"fmt"

	"github.com/lululau/datepick/internal/calendar"
)

// parseRequest turns positional arguments into a render request. base
// supplies the defaults; a single number outside 1..12 is a year.
func parseRequest(base calendar.Date, showYear bool, args []int) (calendar.Request, error) {
	year := base.Year
	month := int(base.Month)

	switch len(args) {
	case 0:
		// defaults
	case 1:
		switch {
		case showYear:
			year = args[0]
		case args[0] >= 1 && args[0] <= 12:
			month = args[0]
		default:
			year = args[0]
			showYear = true
		}
	case 2:
		if showYear {
			return calendar.Request{}, errors.New("--year takes at most one year argument")
		}
		if args[1] < 1 || args[1] > 12 {
			return calendar.Request{}, fmt.Errorf("%w (got %d)", calendar.ErrInvalidMonth, args[1])
		}
		year, month = args[0], args[1]
	default:
		return calendar.Request{}, errors.New("too many arguments, see --help")
	}

	req := calendar.Request{
		Year:  year,
		Month: month,
		Mode:  calendar.ModeMonth,
	}
	if showYear {
		req.Mode = calendar.ModeYear
	}
	return req.Normalize(), nil
}
