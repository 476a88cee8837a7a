// Package dateformat parses and formats calendar dates with moment-style
// patterns such as "DD-MM-YYYY".
//
// Supported tokens:
//
//	YYYY  four-digit year        YY    two-digit year (69..99 -> 19xx)
//	MMMM  January                MMM   Jan
//	MM    01..12                 M     1..12
//	DD    01..31                 D     1..31
//	dddd  Monday                 ddd   Mon
//
// Any other character is matched literally.
package dateformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lululau/datepick/internal/calendar"
)

// DefaultPattern is used when no pattern is configured.
const DefaultPattern = "DD-MM-YYYY"

var (
	// ErrUnparsable is returned when text does not match the pattern or names
	// a day that does not exist.
	ErrUnparsable = errors.New("unparsable date")
	// ErrEmptyPattern is returned by New for a pattern without any date token.
	ErrEmptyPattern = errors.New("date pattern has no date tokens")
)

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokYear4
	tokYear2
	tokMonthLong
	tokMonthShort
	tokMonth2
	tokMonth
	tokDay2
	tokDay
	tokWeekdayLong
	tokWeekdayShort
)

// Longest tokens first so that "MMMM" is not read as "MM" "MM".
var tokenTable = []struct {
	text string
	kind tokenKind
}{
	{"YYYY", tokYear4},
	{"YY", tokYear2},
	{"MMMM", tokMonthLong},
	{"MMM", tokMonthShort},
	{"MM", tokMonth2},
	{"M", tokMonth},
	{"DD", tokDay2},
	{"D", tokDay},
	{"dddd", tokWeekdayLong},
	{"ddd", tokWeekdayShort},
}

type token struct {
	kind    tokenKind
	literal string
}

// Format is a compiled pattern. The zero value is not usable; call New.
type Format struct {
	pattern string
	tokens  []token
}

// New compiles pattern. An empty pattern selects DefaultPattern.
func New(pattern string) (Format, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	tokens := tokenize(pattern)
	hasDate := false
	for _, tok := range tokens {
		if tok.kind != tokLiteral {
			hasDate = true
			break
		}
	}
	if !hasDate {
		return Format{}, fmt.Errorf("%w: %q", ErrEmptyPattern, pattern)
	}
	return Format{pattern: pattern, tokens: tokens}, nil
}

// MustNew is New for patterns known at compile time.
func MustNew(pattern string) Format {
	f, err := New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Pattern returns the source pattern.
func (f Format) Pattern() string { return f.pattern }

func tokenize(pattern string) []token {
	var tokens []token
	for i := 0; i < len(pattern); {
		matched := false
		for _, t := range tokenTable {
			if strings.HasPrefix(pattern[i:], t.text) {
				tokens = append(tokens, token{kind: t.kind})
				i += len(t.text)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		n := len(tokens)
		if n > 0 && tokens[n-1].kind == tokLiteral {
			tokens[n-1].literal += pattern[i : i+1]
		} else {
			tokens = append(tokens, token{kind: tokLiteral, literal: pattern[i : i+1]})
		}
		i++
	}
	return tokens
}

// Format renders d.
func (f Format) Format(d calendar.Date) string {
	var sb strings.Builder
	for _, tok := range f.tokens {
		switch tok.kind {
		case tokLiteral:
			sb.WriteString(tok.literal)
		case tokYear4:
			fmt.Fprintf(&sb, "%04d", d.Year)
		case tokYear2:
			fmt.Fprintf(&sb, "%02d", ((d.Year%100)+100)%100)
		case tokMonthLong:
			sb.WriteString(d.Month.String())
		case tokMonthShort:
			sb.WriteString(d.Month.String()[:3])
		case tokMonth2:
			fmt.Fprintf(&sb, "%02d", int(d.Month))
		case tokMonth:
			sb.WriteString(strconv.Itoa(int(d.Month)))
		case tokDay2:
			fmt.Fprintf(&sb, "%02d", d.Day)
		case tokDay:
			sb.WriteString(strconv.Itoa(d.Day))
		case tokWeekdayLong:
			sb.WriteString(d.Weekday().String())
		case tokWeekdayShort:
			sb.WriteString(d.Weekday().String()[:3])
		}
	}
	return sb.String()
}

// Parse reads text according to the pattern. Parsing is strict: the whole
// text must be consumed and the resulting day must exist.
func (f Format) Parse(text string) (calendar.Date, error) {
	p := parser{text: text}
	var (
		year, day  int
		month      time.Month
		hasWeekday bool
		weekday    time.Weekday
	)
	for _, tok := range f.tokens {
		var err error
		switch tok.kind {
		case tokLiteral:
			err = p.literal(tok.literal)
		case tokYear4:
			year, err = p.digits(4, 4)
		case tokYear2:
			var yy int
			yy, err = p.digits(2, 2)
			year = expandYear(yy)
		case tokMonthLong:
			month, err = p.monthName(false)
		case tokMonthShort:
			month, err = p.monthName(true)
		case tokMonth2, tokMonth:
			// Padded tokens still read an unpadded number.
			var m int
			m, err = p.digits(1, 2)
			month = time.Month(m)
		case tokDay2, tokDay:
			day, err = p.digits(1, 2)
		case tokWeekdayLong:
			weekday, err = p.weekdayName(false)
			hasWeekday = true
		case tokWeekdayShort:
			weekday, err = p.weekdayName(true)
			hasWeekday = true
		}
		if err != nil {
			return calendar.Date{}, fmt.Errorf("%w: %q does not match %q", ErrUnparsable, text, f.pattern)
		}
	}
	if p.pos != len(p.text) {
		return calendar.Date{}, fmt.Errorf("%w: trailing text in %q", ErrUnparsable, text)
	}
	if month == 0 {
		month = time.January
	}
	if day == 0 {
		day = 1
	}
	d := calendar.Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return calendar.Date{}, fmt.Errorf("%w: %q is not a calendar day", ErrUnparsable, text)
	}
	if hasWeekday && d.Weekday() != weekday {
		return calendar.Date{}, fmt.Errorf("%w: %q is not a %v", ErrUnparsable, text, weekday)
	}
	return d, nil
}

// expandYear follows the common two-digit pivot: 69..99 map to the 1900s.
func expandYear(yy int) int {
	if yy >= 69 {
		return 1900 + yy
	}
	return 2000 + yy
}

type parser struct {
	text string
	pos  int
}

var errMismatch = errors.New("mismatch")

func (p *parser) literal(lit string) error {
	if !strings.HasPrefix(p.text[p.pos:], lit) {
		return errMismatch
	}
	p.pos += len(lit)
	return nil
}

func (p *parser) digits(minLen, maxLen int) (int, error) {
	end := p.pos
	for end < len(p.text) && end-p.pos < maxLen && p.text[end] >= '0' && p.text[end] <= '9' {
		end++
	}
	if end-p.pos < minLen {
		return 0, errMismatch
	}
	n, err := strconv.Atoi(p.text[p.pos:end])
	if err != nil {
		return 0, err
	}
	p.pos = end
	return n, nil
}

func (p *parser) monthName(short bool) (time.Month, error) {
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if short {
			name = name[:3]
		}
		if p.word(name) {
			return m, nil
		}
	}
	return 0, errMismatch
}

func (p *parser) weekdayName(short bool) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		if short {
			name = name[:3]
		}
		if p.word(name) {
			return wd, nil
		}
	}
	return 0, errMismatch
}

func (p *parser) word(name string) bool {
	rest := p.text[p.pos:]
	if len(rest) < len(name) || !strings.EqualFold(rest[:len(name)], name) {
		return false
	}
	p.pos += len(name)
	return true
}
