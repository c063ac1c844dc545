package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/deck"
	"github.com/averill/deckd/internal/probe"
	"github.com/averill/deckd/internal/state"
	"github.com/averill/deckd/internal/toggle"
)

func testModel(t *testing.T) Model {
	t.Helper()
	root := &button.Menu{
		Name: "Main Menu",
		Buttons: []button.Button{
			&button.Command{Name: "Disk", Command: "df", Icon: "storage"},
			&button.Toggle{Name: "WiFi", Mode: &button.SingleMode{Command: "true"}},
			&button.Menu{
				Name: "Tools",
				Buttons: []button.Button{
					&button.Command{Name: "Uptime", Command: "uptime"},
				},
			},
		},
	}
	store := state.NewStore()
	orch := toggle.NewOrchestrator(store, probe.DefaultConfig())
	nav := deck.NewNavigator(root, 2, 3, store, orch)
	return NewModel(nav, store, 2, 3)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestCursorMovementStaysInGrid(t *testing.T) {
	m := testModel(t)

	for i := 0; i < 10; i++ {
		updated, _ := m.Update(keyMsg("right"))
		m = updated.(Model)
	}
	if m.cursorCol != 2 {
		t.Errorf("cursor col = %d, want clamped at 2", m.cursorCol)
	}

	for i := 0; i < 10; i++ {
		updated, _ := m.Update(keyMsg("down"))
		m = updated.(Model)
	}
	if m.cursorRow != 1 {
		t.Errorf("cursor row = %d, want clamped at 1", m.cursorRow)
	}

	updated, _ := m.Update(keyMsg("h"))
	m = updated.(Model)
	if m.cursorCol != 1 {
		t.Errorf("cursor col after h = %d, want 1", m.cursorCol)
	}
}

func TestViewShowsPathAndLabels(t *testing.T) {
	m := testModel(t)
	view := m.View()

	for _, want := range []string{"Main Menu", "Disk", "WiFi", "Tools"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestUnknownToggleLabelSuffix(t *testing.T) {
	m := testModel(t)
	if !strings.Contains(m.View(), "WiFi ?") {
		t.Error("unprobed toggle should render with unknown suffix")
	}

	m.store.Set("WiFi", state.On)
	if !strings.Contains(m.View(), "WiFi ●") {
		t.Error("toggle set on should render with on suffix")
	}
}

func TestPressEnterOnMenuDescends(t *testing.T) {
	m := testModel(t)
	m.cursorCol = 2 // Tools

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("enter should produce a press command")
	}
	if msg := cmd(); msg != (pressDoneMsg{}) {
		t.Fatalf("press command returned %T", msg)
	}

	path := strings.Join(m.nav.Path(), " > ")
	if path != "Main Menu > Tools" {
		t.Errorf("path after descend = %q", path)
	}
}

func TestEscPressesBackCell(t *testing.T) {
	m := testModel(t)

	// Descend into Tools first.
	m.cursorCol = 2
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)
	cmd()
	updated, _ = m.Update(pressDoneMsg{})
	m = updated.(Model)

	updated, cmd = m.Update(keyMsg("esc"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("esc in a submenu should produce a back press")
	}
	cmd()

	if len(m.nav.Path()) != 1 {
		t.Errorf("path after back = %v, want root only", m.nav.Path())
	}
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(keyMsg("esc"))
	if cmd != nil {
		t.Error("esc at root should not produce a command")
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("q produced %T, want tea.QuitMsg", msg)
	}
}
