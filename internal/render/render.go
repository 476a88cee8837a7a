package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/textwidth"
)

const (
	cellPadding = 1
	// Day numbers need 2 columns, lunar labels up to 6 ("十一月").
	plainCellWidth = 2 + 2*cellPadding
	lunarCellWidth = 6 + 2*cellPadding
	// Lines above the first week: title, top border, header, header rule.
	weekRowOffset = 4
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	navStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	cellStyle      = lipgloss.NewStyle().Padding(0, cellPadding).Align(lipgloss.Right)
	dimCellStyle   = cellStyle.Foreground(lipgloss.Color("#6B7280"))
	disabledStyle  = cellStyle.Foreground(lipgloss.Color("#4B5563")).Strikethrough(true)
	todayCellStyle = cellStyle.Foreground(lipgloss.Color("#34D399"))
	holidayStyle   = cellStyle.Foreground(lipgloss.Color("#3B82F6"))
	workdayStyle   = cellStyle.Foreground(lipgloss.Color("#F97316"))
	selectedStyle  = cellStyle.Bold(true).Underline(true)
	cursorStyle    = cellStyle.Reverse(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569"))
)

// Frame is one month as it should be drawn.
type Frame struct {
	Title    string
	WeekDays []locale.WeekDay
	Month    calendar.MonthView
	// Cursor is highlighted when set; it is the picker's frame date.
	Cursor *calendar.Date
	// Selected is the committed value, if any.
	Selected *calendar.Date
	// PrevLabel and NextLabel are drawn either side of the title.
	PrevLabel string
	NextLabel string
}

// MonthBlock packages rendered lines with their visual width/height.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// BuildBlocks converts frames into renderable blocks.
func BuildBlocks(frames []Frame) []MonthBlock {
	blocks := make([]MonthBlock, len(frames))
	for i, f := range frames {
		blocks[i] = BuildBlock(f)
	}
	return blocks
}

// Layout places blocks left to right, wrapping when the next block would
// exceed width.
func Layout(blocks []MonthBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	const gap = 2
	var out []string
	for start := 0; start < len(blocks); {
		end := start + 1
		used := blocks[start].Width
		for end < len(blocks) && used+gap+blocks[end].Width <= width {
			used += gap + blocks[end].Width
			end++
		}
		out = append(out, joinRow(blocks[start:end], gap)...)
		start = end
		if start < len(blocks) {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

func joinRow(row []MonthBlock, gap int) []string {
	height := 0
	for _, b := range row {
		height = max(height, b.Height)
	}
	lines := make([]string, height)
	for i := range lines {
		var sb strings.Builder
		for j, b := range row {
			line := ""
			if i < len(b.Lines) {
				line = b.Lines[i]
			}
			if j < len(row)-1 {
				line = textwidth.PadRight(line, b.Width) + strings.Repeat(" ", gap)
			}
			sb.WriteString(line)
		}
		lines[i] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

// BuildBlock draws a title line, the weekday header and the weeks of f.
func BuildBlock(f Frame) MonthBlock {
	lunar := hasLunar(f.Month)
	rowsPerWeek, w := weekGeometry(lunar)

	headers := make([]string, 7)
	for i := range headers {
		if i < len(f.WeekDays) {
			headers[i] = f.WeekDays[i].Abbr
		}
	}

	rows := make([][]string, 0, len(f.Month.Weeks)*rowsPerWeek)
	for _, week := range f.Month.Weeks {
		numbers := make([]string, len(week))
		labels := make([]string, len(week))
		for i, day := range week {
			numbers[i] = fmt.Sprintf("%2d", day.Date.Day)
			labels[i] = day.SecondaryLabel()
		}
		rows = append(rows, numbers)
		if lunar {
			rows = append(rows, labels)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderRow(false).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if noColorMode {
					return lipgloss.NewStyle().Padding(0, cellPadding).Width(w).Align(lipgloss.Right)
				}
				return headerStyle.Padding(0, cellPadding).Width(w).Align(lipgloss.Right)
			}
			week := row / rowsPerWeek
			if week >= len(f.Month.Weeks) || col >= len(f.Month.Weeks[week]) {
				return cellStyle.Width(w)
			}
			return styleDay(f.Month.Weeks[week][col], f.Cursor, f.Selected).Width(w)
		})
	if noColorMode {
		t = t.Border(lipgloss.HiddenBorder())
	} else {
		t = t.BorderStyle(borderStyle)
	}
	tableView := strings.TrimRight(t.String(), "\n")

	lines := append([]string{titleLine(f)}, strings.Split(tableView, "\n")...)
	width := 0
	for _, line := range lines {
		width = max(width, textwidth.StringWidth(line))
	}
	return MonthBlock{
		Lines:  lines,
		Width:  width,
		Height: len(lines),
	}
}

func weekGeometry(lunar bool) (rowsPerWeek, cellWidth int) {
	if lunar {
		return 2, lunarCellWidth
	}
	return 1, plainCellWidth
}

// CellAt maps a position inside the block built from f to the day drawn
// there. y counts lines from the title line and x columns from the block's
// left edge.
func CellAt(f Frame, x, y int) (calendar.Day, bool) {
	rowsPerWeek, w := weekGeometry(hasLunar(f.Month))
	row := y - weekRowOffset
	col := (x - 1) / w
	if row < 0 || x < 1 || col > 6 {
		return calendar.Day{}, false
	}
	week := row / rowsPerWeek
	if week >= len(f.Month.Weeks) || col >= len(f.Month.Weeks[week]) {
		return calendar.Day{}, false
	}
	return f.Month.Weeks[week][col], true
}

func titleLine(f Frame) string {
	title := f.Title
	if !noColorMode {
		title = titleStyle.Render(title)
	}
	if f.PrevLabel == "" && f.NextLabel == "" {
		return title
	}
	prev, next := "< "+f.PrevLabel, f.NextLabel+" >"
	if !noColorMode {
		prev, next = navStyle.Render(prev), navStyle.Render(next)
	}
	return prev + "   " + title + "   " + next
}

func hasLunar(view calendar.MonthView) bool {
	for _, week := range view.Weeks {
		for _, day := range week {
			if day.HasLunarData() {
				return true
			}
		}
	}
	return false
}

// styleDay picks the cell style. Cursor beats selection, which beats
// holiday/workday colors, which beat today's green.
func styleDay(day calendar.Day, cursor, selected *calendar.Date) lipgloss.Style {
	if noColorMode {
		switch {
		case cursor != nil && day.Date == *cursor:
			return cellStyle.Reverse(true)
		case selected != nil && day.Date == *selected:
			return cellStyle.Underline(true)
		case day.Disabled:
			return cellStyle.Strikethrough(true)
		case !day.InMonth:
			return cellStyle.Faint(true)
		}
		return cellStyle
	}
	switch {
	case cursor != nil && day.Date == *cursor:
		return cursorStyle
	case selected != nil && day.Date == *selected:
		return selectedStyle
	case day.Disabled:
		return disabledStyle
	case !day.InMonth:
		return dimCellStyle
	case day.HolidayInfo != nil && day.HolidayInfo.IsHoliday:
		return holidayStyle
	case day.HolidayInfo != nil:
		return workdayStyle
	case day.IsToday:
		return todayCellStyle
	}
	return cellStyle
}

// DayNote names the holiday or make-up workday under the cursor, if any.
func DayNote(f Frame) string {
	if f.Cursor == nil {
		return ""
	}
	for _, week := range f.Month.Weeks {
		for _, day := range week {
			if day.Date == *f.Cursor && day.HolidayInfo != nil {
				return day.HolidayInfo.Name
			}
		}
	}
	return ""
}

// HelpLine styles a key binding summary.
func HelpLine(text string) string {
	if noColorMode {
		return text
	}
	return helpStyle.Render(text)
}

// ColorLegend explains the holiday colors.
func ColorLegend() string {
	legend := "blue=holiday  orange=make-up workday"
	if noColorMode {
		return legend
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Render(legend)
}
