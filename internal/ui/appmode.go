package ui

// AppMode is the top-level application mode.
type AppMode int

const (
	ModeCalculator AppMode = iota
	ModeHistory
)

func (m AppMode) String() string {
	switch m {
	case ModeCalculator:
		return "Calculator"
	case ModeHistory:
		return "History"
	default:
		return "Unknown"
	}
}
