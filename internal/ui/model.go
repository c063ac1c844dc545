package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/deck"
	"github.com/averill/deckd/internal/state"
)

// refreshInterval redraws the grid so toggles flipped by background
// commands or remote triggers show up without a keypress.
const refreshInterval = time.Second

type tickMsg time.Time

type pressDoneMsg struct{}

// keyMap defines the deck view key bindings.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Press, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Back, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the deck view: a grid of cells with a cursor, driven by the
// navigator that also serves remote triggers.
type Model struct {
	nav   *deck.Navigator
	store *state.Store
	rows  int
	cols  int

	cursorRow int
	cursorCol int
	pressing  bool

	width  int
	height int

	help help.Model
	keys keyMap
}

// NewModel creates the deck view over an existing navigator and store.
func NewModel(nav *deck.Navigator, store *state.Store, rows, cols int) Model {
	width, height := GetTerminalSize()
	return Model{
		nav:    nav,
		store:  store,
		rows:   rows,
		cols:   cols,
		width:  width,
		height: height,
		help:   help.New(),
		keys:   defaultKeyMap(),
	}
}

// Init starts the periodic refresh.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses and refresh ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case pressDoneMsg:
		m.pressing = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursorRow > 0 {
				m.cursorRow--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursorRow < m.rows-1 {
				m.cursorRow++
			}
		case key.Matches(msg, m.keys.Left):
			if m.cursorCol > 0 {
				m.cursorCol--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursorCol < m.cols-1 {
				m.cursorCol++
			}

		case key.Matches(msg, m.keys.Press):
			if !m.pressing {
				m.pressing = true
				return m, m.press(m.cursorRow, m.cursorCol)
			}

		case key.Matches(msg, m.keys.Back):
			if row, col, ok := m.backCell(); ok && !m.pressing {
				m.pressing = true
				return m, m.press(row, col)
			}
		}
	}

	return m, nil
}

// press runs the navigator press off the update loop; toggle presses block
// on their probe and command.
func (m Model) press(row, col int) tea.Cmd {
	nav := m.nav
	return func() tea.Msg {
		nav.Press(context.Background(), row, col)
		return pressDoneMsg{}
	}
}

// backCell locates the back cell of the current grid, if any.
func (m Model) backCell() (int, int, bool) {
	g := m.nav.Grid()
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if g.At(row, col).Kind == deck.CellBack {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// View renders the menu path, the grid, and a footer describing the
// selected cell.
func (m Model) View() string {
	g := m.nav.Grid()

	var b strings.Builder
	b.WriteString(TitleStyle.Render(strings.Join(m.nav.Path(), " > ")))
	b.WriteString("\n\n")

	for row := 0; row < m.rows; row++ {
		cells := make([]string, 0, m.cols)
		for col := 0; col < m.cols; col++ {
			cells = append(cells, m.renderCell(g.At(row, col), row == m.cursorRow && col == m.cursorCol))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer(g.At(m.cursorRow, m.cursorCol)))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) renderCell(cell deck.Cell, selected bool) string {
	if cell.Kind == deck.CellEmpty {
		return EmptyCellStyle(selected).Render("")
	}

	content := cell.Label
	if cell.HasGlyph {
		content = fmt.Sprintf("%c\n%s", cell.Glyph.Rune, cell.Label)
	}
	return CellStyle(m.cellColor(cell), selected).Render(content)
}

// cellColor picks the border color by what the cell does; toggles take
// their color from current state.
func (m Model) cellColor(cell deck.Cell) lipgloss.Color {
	switch cell.Kind {
	case deck.CellMenu:
		return PrimaryColor
	case deck.CellBack:
		return MutedColor
	case deck.CellToggle:
		if t, ok := cell.Button.(*button.Toggle); ok {
			switch m.store.Get(t.Name) {
			case state.On:
				return SuccessColor
			case state.Off:
				return MutedColor
			default:
				return WarningColor
			}
		}
		return WarningColor
	default:
		return TextColor
	}
}

func (m Model) footer(cell deck.Cell) string {
	if m.pressing {
		return StatusStyle.Render("Running...")
	}

	switch cell.Kind {
	case deck.CellEmpty:
		return StatusStyle.Render("Empty")
	case deck.CellToggle:
		if t, ok := cell.Button.(*button.Toggle); ok {
			return StatusStyle.Render(fmt.Sprintf("%s  -  %s", t.Name, m.store.Get(t.Name).Description()))
		}
	case deck.CellMenu:
		return StatusStyle.Render(fmt.Sprintf("%s  -  open menu", cell.Label))
	case deck.CellBack:
		return StatusStyle.Render("Return to the previous menu")
	}
	return StatusStyle.Render(cell.Label)
}
