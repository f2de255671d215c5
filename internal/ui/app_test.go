package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"tally/internal/theme"
)

func newTestApp() (*AppModel, *appModelAdapter) {
	a := NewAppModel(theme.Default())
	return a, &appModelAdapter{AppModel: a}
}

// press sends key messages and runs any resulting commands, feeding their
// messages back into Update the way tea.Program would.
func (a *appModelAdapter) press(keys ...string) {
	for _, k := range keys {
		_, cmd := a.Update(keyMsg(k))
		for cmd != nil {
			msg := cmd()
			if msg == nil {
				break
			}
			_, cmd = a.Update(msg)
		}
	}
}

func TestApp_CalculationEndToEnd(t *testing.T) {
	a, adapter := newTestApp()
	adapter.press("5", "+", "3", "enter")

	if got := a.Calculator.surface.Display(); got != 8 {
		t.Errorf("display = %g, want 8", got)
	}
	// '+' and '=' committed onto the tape.
	if a.Tape.Len() != 2 {
		t.Errorf("tape entries = %d, want 2", a.Tape.Len())
	}
}

func TestApp_HistoryToggle(t *testing.T) {
	a, adapter := newTestApp()
	adapter.press("5", "+", "3", "enter")

	// SPC h -> history
	adapter.press(" ", "h")
	if a.Mode != ModeHistory {
		t.Fatalf("mode = %v, want History", a.Mode)
	}
	if !strings.Contains(adapter.View(), "History (2)") {
		t.Error("history view should show the entry count")
	}

	// esc -> back to calculator
	adapter.press("esc")
	if a.Mode != ModeCalculator {
		t.Errorf("mode after esc = %v, want Calculator", a.Mode)
	}
}

func TestApp_HistoryToggleRoundTrip(t *testing.T) {
	a, adapter := newTestApp()
	adapter.press(" ", "h", " ", "h")
	if a.Mode != ModeCalculator {
		t.Errorf("SPC h twice should land back on the calculator, got %v", a.Mode)
	}
}

func TestApp_LeaderModeShieldsCalculator(t *testing.T) {
	a, adapter := newTestApp()
	// SPC then an unbound digit: swallowed by the keybind system.
	adapter.press("5", " ", "7")
	if got := a.Calculator.surface.Display(); got != 5 {
		t.Errorf("display = %g, want 5 (leader-mode digit must not reach the engine)", got)
	}
}

func TestApp_LeaderHelpBarRendered(t *testing.T) {
	a, adapter := newTestApp()
	adapter.press(" ")
	if !a.KeyHandler.LeaderWaiting {
		t.Fatal("expected leader waiting after SPC")
	}
	view := adapter.View()
	if !strings.Contains(view, "History") || !strings.Contains(view, "Quit") {
		t.Error("leader help bar should list SPC bindings")
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	a, adapter := newTestApp()
	adapter.press("?")

	if a.Overlays.Len() != 1 {
		t.Fatalf("expected 1 overlay after '?', got %d", a.Overlays.Len())
	}
	top, _ := a.Overlays.Peek()
	if _, ok := top.View.(*HelpModal); !ok {
		t.Errorf("expected HelpModal on overlay, got %T", top.View)
	}
	if !strings.Contains(adapter.View(), "Help") {
		t.Error("overlay view should render the help modal")
	}

	adapter.press("esc")
	if a.Overlays.Len() != 0 {
		t.Errorf("expected 0 overlays after esc, got %d", a.Overlays.Len())
	}
}

func TestApp_HelpOverlayViaLeader(t *testing.T) {
	a, adapter := newTestApp()
	adapter.press(" ", "?")
	if a.Overlays.Len() != 1 {
		t.Errorf("expected 1 overlay after SPC ?, got %d", a.Overlays.Len())
	}
}

func TestApp_HelpOverlayCapturesTokens(t *testing.T) {
	a, adapter := newTestApp()
	adapter.press("?", "5")
	if got := a.Calculator.surface.Display(); got != 0 {
		t.Errorf("display = %g, want 0 (keys must not reach the engine while help is open)", got)
	}
	adapter.press("esc", "5")
	if got := a.Calculator.surface.Display(); got != 5 {
		t.Errorf("display after dismiss = %g, want 5", got)
	}
}

func TestApp_ThemeReload(t *testing.T) {
	a, adapter := newTestApp()
	th := theme.Default()
	th.Accent = "99"
	adapter.Update(ThemeReloadedMsg{Theme: th})

	if got := a.Styles.Title.GetForeground(); got != lipgloss.Color("99") {
		t.Errorf("title foreground = %v, want 99 after theme reload", got)
	}
}

func TestApp_QuitBindings(t *testing.T) {
	_, adapter := newTestApp()
	// SPC q resolves to tea.Quit.
	adapter.press(" ")
	_, cmd := adapter.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("SPC q should produce a command")
	}
}
