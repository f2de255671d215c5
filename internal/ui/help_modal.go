package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// helpLine is one key/description row in the help modal.
type helpLine struct {
	keys string
	desc string
}

var helpLines = []helpLine{
	{"0-9", "Type a number"},
	{"+ - * /", "Operator (applies the previous one)"},
	{"= / enter", "Equals"},
	{"c", "Clear"},
	{"SPC h", "History tape"},
	{"SPC q, ctrl+c", "Quit"},
	{"?", "This help"},
	{"esc", "Close"},
}

// HelpModal is the '?' overlay: a static key reference.
type HelpModal struct {
	styles StyleSet
}

var _ View = (*HelpModal)(nil)

// NewHelpModal creates the help overlay.
func NewHelpModal(styles StyleSet) *HelpModal {
	return &HelpModal{styles: styles}
}

// Init implements View.
func (m *HelpModal) Init() tea.Cmd {
	return nil
}

// Update implements View. Dismissal is handled by the overlay stack.
func (m *HelpModal) Update(msg tea.Msg) (View, tea.Cmd) {
	return m, nil
}

// View implements View.
func (m *HelpModal) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Help") + "\n\n")
	for _, l := range helpLines {
		b.WriteString(m.styles.Pending.Render(padKeys(l.keys)) + " " + m.styles.Normal.Render(l.desc) + "\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render("esc to close"))
	return m.styles.Box.Render(b.String())
}

// padKeys right-pads the key column so descriptions line up.
func padKeys(s string) string {
	const col = 14
	if len(s) >= col {
		return s
	}
	return s + strings.Repeat(" ", col-len(s))
}
