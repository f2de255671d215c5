package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/calc"
)

// keypadRows is the legend rendered under the display.
var keypadRows = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"C", "0", "=", "+"},
}

// CalculatorView renders the display and keypad legend, and feeds key
// presses to the engine through its tokenSurface.
type CalculatorView struct {
	surface   *tokenSurface
	styles    StyleSet
	pendingOp calc.Operator
	width     int
	height    int
}

var _ View = (*CalculatorView)(nil)

// NewCalculatorView creates the view. The caller wires the presenter to
// Surface() before the first token arrives.
func NewCalculatorView(styles StyleSet) *CalculatorView {
	return &CalculatorView{
		surface: &tokenSurface{},
		styles:  styles,
	}
}

// Surface exposes the calc.Surface for presenter construction.
func (v *CalculatorView) Surface() calc.Surface {
	return v.surface
}

// SetStyles swaps the style table (theme reload).
func (v *CalculatorView) SetStyles(s StyleSet) {
	v.styles = s
}

// Init implements View.
func (v *CalculatorView) Init() tea.Cmd {
	return nil
}

// Update implements View. Key presses that map to tokens are delivered to
// the presenter synchronously; everything else is ignored.
func (v *CalculatorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil
	case tea.KeyMsg:
		if t, ok := tokenForKey(msg); ok {
			v.deliver(t)
		}
		return v, nil
	}
	return v, nil
}

func (v *CalculatorView) deliver(t calc.Token) {
	if t.IsOperator() {
		v.pendingOp = calc.OperatorFor(t)
	}
	v.surface.Deliver(t)
}

// tokenForKey maps a key press to a calculator token. Shape validation
// lives here: anything that is not a token never reaches the engine.
func tokenForKey(msg tea.KeyMsg) (calc.Token, bool) {
	switch s := msg.String(); s {
	case "enter":
		return calc.TokEq, true
	case "c", "C":
		return calc.TokClear, true
	default:
		if len(s) != 1 {
			return 0, false
		}
		t := calc.Token(s[0])
		if t.IsDigit() || t.IsOperator() {
			return t, true
		}
		return 0, false
	}
}

// View implements View.
func (v *CalculatorView) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("tally") + "\n")
	b.WriteString(v.styles.Muted.Render("Press [SPC] for commands") + "\n\n")

	value := v.styles.Value.Render(formatValue(v.surface.Display()))
	op := " "
	if v.pendingOp != calc.OpNone {
		op = v.pendingOp.String()
	}
	row := v.styles.Pending.Render(op) + " " + value
	b.WriteString(v.styles.Display.Render(row) + "\n")

	for _, keys := range keypadRows {
		caps := make([]string, len(keys))
		for i, k := range keys {
			caps[i] = v.styles.Key.Render(k)
		}
		b.WriteString(" " + strings.Join(caps, " ") + "\n")
	}
	b.WriteString("\n" + v.styles.Muted.Render("enter = equals, c = clear"))

	// Center in the terminal once the size is known.
	if v.width > 0 && v.height > 0 {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

// formatValue renders whole numbers without a decimal point.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}
