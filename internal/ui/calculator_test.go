package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/calc"
	"tally/internal/theme"
)

func newTestCalculator() *CalculatorView {
	v := NewCalculatorView(NewStyleSet(theme.Default()))
	acc := calc.NewAccumulator()
	calc.NewPresenter(acc, v.Surface())
	return v
}

func TestTokenForKey(t *testing.T) {
	tests := []struct {
		key   string
		want  calc.Token
		token bool
	}{
		{"5", '5', true},
		{"0", '0', true},
		{"+", '+', true},
		{"-", '-', true},
		{"*", '*', true},
		{"/", '/', true},
		{"=", '=', true},
		{"enter", '=', true},
		{"c", 'C', true},
		{"C", 'C', true},
		{"x", 0, false},
		{".", 0, false},
		{"left", 0, false},
		{"ctrl+a", 0, false},
	}
	for _, tt := range tests {
		got, ok := tokenForKey(keyMsg(tt.key))
		if ok != tt.token {
			t.Errorf("tokenForKey(%q): ok=%v, want %v", tt.key, ok, tt.token)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("tokenForKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestCalculatorView_TypingDrivesEngine(t *testing.T) {
	v := newTestCalculator()
	for _, k := range []string{"5", "+", "3", "enter"} {
		v.Update(keyMsg(k))
	}
	if got := v.surface.Display(); got != 8 {
		t.Errorf("display = %g, want 8", got)
	}
	if !strings.Contains(v.View(), "8") {
		t.Error("rendered view should contain the result")
	}
}

func TestCalculatorView_ClearKey(t *testing.T) {
	v := newTestCalculator()
	for _, k := range []string{"4", "2", "c"} {
		v.Update(keyMsg(k))
	}
	if got := v.surface.Display(); got != 0 {
		t.Errorf("display after clear = %g, want 0", got)
	}
}

func TestCalculatorView_IgnoresNonTokenKeys(t *testing.T) {
	v := newTestCalculator()
	for _, k := range []string{"7", "x", "?", "left"} {
		v.Update(keyMsg(k))
	}
	if got := v.surface.Display(); got != 7 {
		t.Errorf("display = %g, want 7 (non-token keys must be ignored)", got)
	}
}

func TestCalculatorView_PendingOperatorIndicator(t *testing.T) {
	v := newTestCalculator()
	v.Update(keyMsg("5"))
	if v.pendingOp != calc.OpNone {
		t.Errorf("pendingOp after digit = %v, want OpNone", v.pendingOp)
	}
	v.Update(keyMsg("*"))
	if v.pendingOp != calc.OpMul {
		t.Errorf("pendingOp after '*' = %v, want OpMul", v.pendingOp)
	}
	if !strings.Contains(v.View(), "*") {
		t.Error("rendered view should show the pending operator")
	}
	v.Update(keyMsg("enter"))
	if v.pendingOp != calc.OpNone {
		t.Errorf("pendingOp after '=' = %v, want OpNone", v.pendingOp)
	}
}

func TestCalculatorView_CentersOnceSized(t *testing.T) {
	v := newTestCalculator()
	v.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	lines := strings.Split(v.View(), "\n")
	if len(lines) != 20 {
		t.Errorf("sized view has %d lines, want 20", len(lines))
	}
	if !strings.Contains(v.View(), "tally") {
		t.Error("sized view should still contain the content")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{8, "8"},
		{-3, "-3"},
		{7.5, "7.5"},
		{1000000, "1000000"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
