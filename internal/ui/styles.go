package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the deck view
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - menus, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - toggles that are on
	ErrorColor   = lipgloss.Color("#FF5555") // Red - failures
	WarningColor = lipgloss.Color("#FFA500") // Orange - unknown toggle state
	MutedColor   = lipgloss.Color("#626262") // Gray - empty cells, back
	TextColor    = lipgloss.Color("#FFFFFF") // White - labels
)

// Layout constants
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 120

	// CellWidth is the inner width of one deck cell.
	CellWidth  = 14
	CellHeight = 3
)

var (
	// TitleStyle renders the menu path above the grid.
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			PaddingLeft(1)

	// StatusStyle renders the footer line under the grid.
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// ErrorStyle renders press failures in the footer.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(1)

	// HelpStyle renders the key hints.
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)
)

// CellStyle returns the box style for one cell, colored by its border and
// emphasized when the cursor is on it.
func CellStyle(borderColor lipgloss.Color, selected bool) lipgloss.Style {
	border := lipgloss.RoundedBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Foreground(TextColor).
		Width(CellWidth).
		Height(CellHeight).
		Align(lipgloss.Center, lipgloss.Center)
}

// EmptyCellStyle renders a cell with nothing behind it.
func EmptyCellStyle(selected bool) lipgloss.Style {
	return CellStyle(MutedColor, selected).Foreground(MutedColor)
}

// GetTerminalSize returns the terminal dimensions with a sane fallback.
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}
