// Package theme loads the optional color theme file and watches it for
// changes so a running session picks up edits immediately.
package theme

import (
	"os"
	"path/filepath"

	"tally/internal/jsonutil"
)

// Theme holds the ANSI color palette used by the UI styles. All fields are
// 256-color codes as strings, matching lipgloss.Color.
type Theme struct {
	Accent    string // titles, the display value
	Highlight string // borders, the pending operator
	Danger    string // reserved for warnings
	Muted     string // hints, dimmed text
	Text      string // normal text
}

// Default is the built-in palette used when no theme file exists.
func Default() Theme {
	return Theme{
		Accent:    "86",
		Highlight: "205",
		Danger:    "196",
		Muted:     "241",
		Text:      "252",
	}
}

// Dir returns the tally configuration directory, honoring XDG_CONFIG_HOME.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tally")
}

// File returns the path to theme.json.
func File() string {
	return filepath.Join(Dir(), "theme.json")
}

// Load reads the theme file at path. A missing file yields the default
// theme with no error; a malformed file is an error. Missing fields fall
// back to the default palette individually.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), err
	}

	var raw map[string]interface{}
	if err := jsonutil.UnmarshalWithContext(data, &raw, "parsing "+path); err != nil {
		return Default(), err
	}

	d := Default()
	return Theme{
		Accent:    jsonutil.GetStringOr(raw, "accent", d.Accent),
		Highlight: jsonutil.GetStringOr(raw, "highlight", d.Highlight),
		Danger:    jsonutil.GetStringOr(raw, "danger", d.Danger),
		Muted:     jsonutil.GetStringOr(raw, "muted", d.Muted),
		Text:      jsonutil.GetStringOr(raw, "text", d.Text),
	}, nil
}
