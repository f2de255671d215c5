package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/history"
)

// tapeItem implements list.Item for a history entry.
type tapeItem struct {
	history.Entry
}

func (i tapeItem) FilterValue() string { return i.Entry.String() }
func (i tapeItem) Title() string       { return i.Entry.String() }
func (i tapeItem) Description() string { return "" }

// HistoryView lists committed operations, newest at the bottom.
type HistoryView struct {
	list   list.Model
	tape   *history.Tape
	styles StyleSet
}

var _ View = (*HistoryView)(nil)

// NewHistoryView creates a history view over the shared tape.
func NewHistoryView(tape *history.Tape, styles StyleSet) *HistoryView {
	l := list.New(nil, NewCompactListDelegate(styles), 0, 0)
	l.Title = "History"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.Title

	return &HistoryView{
		list:   l,
		tape:   tape,
		styles: styles,
	}
}

// SetStyles swaps the style table (theme reload).
func (v *HistoryView) SetStyles(s StyleSet) {
	v.styles = s
	v.list.SetDelegate(NewCompactListDelegate(s))
	v.list.Styles.Title = s.Title
}

// Init implements View.
func (v *HistoryView) Init() tea.Cmd {
	v.refresh()
	return nil
}

// Update implements View.
func (v *HistoryView) Update(msg tea.Msg) (View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.list.SetWidth(size.Width)
		v.list.SetHeight(size.Height - 4)
		return v, nil
	}
	// list.Model handles j/k/g/G navigation natively.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *HistoryView) View() string {
	if v.list.Width() == 0 {
		v.list.SetWidth(80)
	}
	if v.list.Height() == 0 {
		v.list.SetHeight(20)
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("History (%d)", v.tape.Len())) + "\n")
	b.WriteString(v.styles.Muted.Render("esc back") + "\n\n")
	if v.tape.Len() == 0 {
		b.WriteString(v.styles.Empty.Render("No operations yet"))
		return b.String()
	}
	b.WriteString(v.list.View())
	return b.String()
}

// refresh rebuilds list items from the tape.
func (v *HistoryView) refresh() {
	entries := v.tape.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = tapeItem{Entry: e}
	}
	v.list.SetItems(items)
	if len(items) > 0 {
		v.list.Select(len(items) - 1)
	}
}
