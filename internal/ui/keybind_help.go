package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler is mid-sequence (e.g. "SPC h"), next-level hints show.
func RenderKeybindHelp(keyHandler *KeyHandler, styles StyleSet) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(keyHandler.Buffer, " ")
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	helpModel := help.New()
	helpModel.Styles.ShortKey = styles.HelpKey
	helpModel.Styles.ShortDesc = styles.HelpDesc
	helpModel.Styles.ShortSeparator = styles.HelpDesc

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	content := styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
	return styles.HelpBox.Render(content)
}
