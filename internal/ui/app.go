package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/calc"
	"tally/internal/history"
	"tally/internal/theme"
)

// ToggleHistoryMsg is sent when the user toggles the history tape (SPC h).
type ToggleHistoryMsg struct{}

// ShowHelpMsg is sent when the user opens the help overlay ('?').
type ShowHelpMsg struct{}

// ThemeReloadedMsg is sent when the theme file changes on disk.
type ThemeReloadedMsg struct {
	Theme theme.Theme
}

// AppModel is the root model. It owns the engine wiring and switches
// between the calculator and the history tape.
type AppModel struct {
	Mode       AppMode
	Calculator *CalculatorView
	History    *HistoryView
	KeyHandler *KeyHandler
	Tape       *history.Tape
	Overlays   OverlayStack
	Styles     StyleSet
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model and wires the engine: accumulator,
// presenter, tape, and any extra observers (telemetry).
func NewAppModel(th theme.Theme, observers ...calc.Observer) *AppModel {
	styles := NewStyleSet(th)
	tape := history.NewTape()
	calcView := NewCalculatorView(styles)

	acc := calc.NewAccumulator()
	all := append([]calc.Observer{tape}, observers...)
	calc.NewPresenter(acc, calcView.Surface(), all...)

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC h", func() tea.Msg { return ToggleHistoryMsg{} }, "History")
	reg.BindWithDesc("SPC ?", func() tea.Msg { return ShowHelpMsg{} }, "Help")

	return &AppModel{
		Mode:       ModeCalculator,
		Calculator: calcView,
		History:    NewHistoryView(tape, styles),
		KeyHandler: NewKeyHandler(reg),
		Tape:       tape,
		Styles:     styles,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ThemeReloadedMsg:
		a.Styles = NewStyleSet(msg.Theme)
		a.Calculator.SetStyles(a.Styles)
		a.History.SetStyles(a.Styles)
		return a, nil
	case ToggleHistoryMsg:
		if a.Mode == ModeHistory {
			a.Mode = ModeCalculator
			return a, nil
		}
		a.Mode = ModeHistory
		return a, a.History.Init()
	case ShowHelpMsg:
		a.Overlays.Push(Overlay{View: NewHelpModal(a.Styles), Dismiss: "esc"})
		return a, nil
	case tea.KeyMsg:
		// An open overlay captures all keys: dismiss or forward to its View.
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		// Keybind system (leader key, SPC-prefixed commands)
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if a.Mode == ModeHistory && msg.String() == "esc" {
			a.Mode = ModeCalculator
			return a, nil
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return top.View.View()
	}
	base := a.currentView().View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Styles)
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeHistory {
		return a.History
	}
	return a.Calculator
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeCalculator:
		if c, ok := v.(*CalculatorView); ok {
			a.Calculator = c
		}
	case ModeHistory:
		if h, ok := v.(*HistoryView); ok {
			a.History = h
		}
	}
}
