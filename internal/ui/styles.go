package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/theme"
)

// StyleSet contains the shared style definitions used across views. It is
// rebuilt whenever the theme file changes.
type StyleSet struct {
	Title    lipgloss.Style // Bold accent - view titles
	Display  lipgloss.Style // The big display box (accent border)
	Value    lipgloss.Style // The displayed number
	Pending  lipgloss.Style // Pending operator indicator
	Key      lipgloss.Style // Keypad key caps
	Muted    lipgloss.Style // Hints, dimmed text
	Normal   lipgloss.Style // Normal text
	Box      lipgloss.Style // Standard rounded box (highlight border)
	Empty    lipgloss.Style // Empty state text (muted, italic)
	HelpBox  lipgloss.Style // Leader help bar box
	HelpKey  lipgloss.Style // Keys inside the help bar
	HelpDesc lipgloss.Style // Descriptions inside the help bar
}

// NewStyleSet builds the style table from a theme palette.
func NewStyleSet(t theme.Theme) StyleSet {
	return StyleSet{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)),
		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 2).
			Align(lipgloss.Right).
			Width(24),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Highlight)).
			Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Highlight)).
			Padding(1, 2).
			Margin(1),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 1).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Highlight)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// NewCompactListDelegate returns a list delegate with zero spacing and
// theme colors, shared by the history view.
func NewCompactListDelegate(s StyleSet) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = s.Pending
	d.Styles.SelectedDesc = s.Pending
	d.Styles.NormalTitle = s.Muted
	d.Styles.NormalDesc = s.Muted
	return d
}
