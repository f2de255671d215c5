package ui

import "tally/internal/calc"

// tokenSurface is the calc.Surface the TUI presents to the engine: it
// retains the last displayed value for rendering and forwards tokens to
// the subscribed presenter synchronously.
type tokenSurface struct {
	display  float64
	listener func(calc.Token)
}

var _ calc.Surface = (*tokenSurface)(nil)

// SetDisplay implements calc.Surface.
func (s *tokenSurface) SetDisplay(v float64) {
	s.display = v
}

// Subscribe implements calc.Surface.
func (s *tokenSurface) Subscribe(fn func(calc.Token)) {
	s.listener = fn
}

// Deliver hands one token to the presenter. Tokens arrive one at a time
// from Update, so the engine's single-threaded contract holds.
func (s *tokenSurface) Deliver(t calc.Token) {
	if s.listener != nil {
		s.listener(t)
	}
}

// Display returns the value the presenter last asked to show.
func (s *tokenSurface) Display() float64 {
	return s.display
}
