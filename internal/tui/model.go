package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/picker"
	"github.com/lululau/datepick/internal/render"
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

// pickerTop is the line of the picker's title: label, input and a blank
// line come first.
const pickerTop = 3

type focusArea int

const (
	focusInput focusArea = iota
	focusGrid
)

// Options wires the program to its collaborators.
type Options struct {
	Controller *picker.Controller
	Service    *calendar.Service
	Locales    locale.Provider
	Label      string
}

// Run starts the interactive Bubble Tea UI and returns the picker state at
// exit.
func Run(opts Options) (picker.State, error) {
	m := newModel(opts)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := prog.Run()
	if err != nil {
		return picker.State{}, err
	}
	return final.(model).ctrl.State(), nil
}

type model struct {
	ctrl    *picker.Controller
	svc     *calendar.Service
	locales locale.Provider
	label   string
	input   textinput.Model
	focus   focusArea
	width   int
	status  string
}

func newModel(opts Options) model {
	if opts.Service == nil {
		opts.Service = calendar.NewService()
	}
	if opts.Locales == nil {
		opts.Locales = locale.MustBundle()
	}
	if opts.Label == "" {
		opts.Label = "Date"
	}
	ti := textinput.New()
	ti.Placeholder = opts.Controller.Pattern()
	ti.CharLimit = 32
	ti.Prompt = "> "
	ti.SetValue(opts.Controller.Text())
	ti.CursorEnd()

	m := model{
		ctrl:    opts.Controller,
		svc:     opts.Service,
		locales: opts.Locales,
		label:   opts.Label,
		input:   ti,
	}
	if m.ctrl.IsOpen() {
		m.focus = focusGrid
	} else {
		m.input.Focus()
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.focus == focusInput {
		return textinput.Blink
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if m.focus == focusGrid {
			m, cmd = m.handleGridKey(msg)
		} else {
			m, cmd = m.handleInputKey(msg)
		}
		return m.syncFocus(cmd)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.handleClick(msg.X, msg.Y)
		return m.syncFocus(nil)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleInputKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.ctrl.Open()
		m.blurInput()
		if m.ctrl.IsOpen() {
			m.focus = focusGrid
		}
		return m, nil
	case tea.KeyTab:
		m.blurInput()
		if m.ctrl.IsOpen() {
			m.focus = focusGrid
		}
		return m, nil
	case tea.KeyEsc:
		if m.ctrl.IsOpen() {
			m.ctrl.Close()
			return m, nil
		}
		m.blurInput()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// blurInput hands the edited text to the controller, like a field losing
// focus.
func (m *model) blurInput() picker.BlurResult {
	text := m.input.Value()
	result := m.ctrl.Blur(text)
	switch result {
	case picker.BlurSelected:
		m.status = m.message(locale.MsgSelected, m.ctrl.Text())
	case picker.BlurCleared:
		m.status = m.message(locale.MsgCleared, "")
	case picker.BlurInvalid:
		m.status = m.message(locale.MsgInvalid, text)
	}
	return result
}

func (m model) handleGridKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.ctrl.Key(picker.KeyLeft)
	case "right", "l":
		m.ctrl.Key(picker.KeyRight)
	case "up", "k":
		m.ctrl.Key(picker.KeyUp)
	case "down", "j":
		m.ctrl.Key(picker.KeyDown)
	case "enter", " ":
		if m.ctrl.Key(picker.KeyEnter) {
			m.status = m.message(locale.MsgSelected, m.ctrl.Text())
		}
	case "[", "pgup":
		m.ctrl.PrevMonth()
	case "]", "pgdown":
		m.ctrl.NextMonth()
	case "{":
		m.ctrl.PrevYear()
	case "}":
		m.ctrl.NextYear()
	case "esc":
		m.ctrl.Close()
	case "tab":
		m.focus = focusInput
	}
	return m, nil
}

// handleClick toggles the grid from the text field line and selects a day
// clicked inside the grid. Either click takes focus from the text field, so
// pending text is committed first; a committed date closes the grid and ends
// the click.
func (m *model) handleClick(x, y int) {
	if m.focus == focusInput && m.blurInput() == picker.BlurSelected {
		return
	}
	if y == 1 {
		m.ctrl.Toggle()
		if m.ctrl.IsOpen() {
			m.focus = focusGrid
		}
		return
	}
	if !m.ctrl.IsOpen() {
		return
	}
	f, err := m.frame()
	if err != nil {
		return
	}
	day, ok := render.CellAt(f, x, y-pickerTop)
	if ok && m.ctrl.ClickCell(day.Date) {
		m.status = m.message(locale.MsgSelected, m.ctrl.Text())
	}
}

// syncFocus moves focus back to the text field when a selection asked for
// it or when the grid closed under the cursor.
func (m model) syncFocus(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.ctrl.TakeFocusRequest() {
		m.input.SetValue(m.ctrl.Text())
		m.input.CursorEnd()
		m.focus = focusInput
	}
	if !m.ctrl.IsOpen() {
		m.focus = focusInput
	}
	if m.focus == focusInput && !m.input.Focused() {
		return m, tea.Batch(cmd, m.input.Focus())
	}
	if m.focus == focusGrid && m.input.Focused() {
		m.input.Blur()
	}
	return m, cmd
}

func (m model) message(id, text string) string {
	return m.locales.Message(m.ctrl.Lang(), id, map[string]any{"Text": text})
}

func (m model) View() string {
	sb := strings.Builder{}
	label := m.label
	if !noColorMode {
		label = labelStyle.Render(label)
	}
	sb.WriteString(label)
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	helpID := locale.MsgHelpClosed
	if m.ctrl.IsOpen() {
		sb.WriteString("\n")
		sb.WriteString(m.renderPicker())
		sb.WriteString("\n")
		helpID = locale.MsgHelpOpen
	}

	sb.WriteString("\n")
	sb.WriteString(render.HelpLine(m.locales.Message(m.ctrl.Lang(), helpID, nil)))
	if m.status != "" {
		sb.WriteString("\n")
		if noColorMode {
			sb.WriteString(m.status)
		} else {
			sb.WriteString(statusStyle.Render(m.status))
		}
	}
	return sb.String()
}

// frame merges the controller's view with the lunar and holiday data of
// the service.
func (m model) frame() (render.Frame, error) {
	v := m.ctrl.View()
	cursor := v.State.Frame
	month, err := m.svc.Month(cursor.Year, int(cursor.Month), m.ctrl.DisabledDays())
	if err != nil {
		return render.Frame{}, err
	}
	f := render.NewFrame(m.locales, m.ctrl.Lang(), month)
	f.Title = v.Title
	f.WeekDays = v.WeekDays
	f.Cursor = &cursor
	f.Selected = v.State.Selected
	f.PrevLabel = v.Prev.Label
	f.NextLabel = v.Next.Label
	return f, nil
}

func (m model) renderPicker() string {
	f, err := m.frame()
	if err != nil {
		return err.Error()
	}
	v := m.ctrl.View()

	width := m.width
	if width <= 0 {
		width = 100
	}
	out := render.Layout([]render.MonthBlock{render.BuildBlock(f)}, width)
	if note := render.DayNote(f); note != "" {
		out += "\n" + note
	}
	nav := "[ " + v.Prev.Title + "    ] " + v.Next.Title
	return out + "\n" + render.HelpLine(nav)
}
