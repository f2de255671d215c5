// Package calc implements the calculator engine: a single-value accumulator
// and a presenter that folds a stream of key tokens into accumulator updates.
// The engine has no rendering dependencies; the UI layer plugs in through the
// Surface interface.
package calc

// Accumulator holds the running result. All operations are total: none of
// them can fail, and the value is only ever changed through these methods.
type Accumulator struct {
	value float64
}

// NewAccumulator creates an accumulator holding zero.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Clear resets the value to zero.
func (a *Accumulator) Clear() {
	a.value = 0
}

// Add adds x to the value.
func (a *Accumulator) Add(x float64) {
	a.value += x
}

// Multiply multiplies the value by x.
func (a *Accumulator) Multiply(x float64) {
	a.value *= x
}

// Divide divides the value by x. Dividing by exactly zero is a no-op: the
// value is left unchanged rather than becoming Inf/NaN or signaling an
// error. Callers rely on this being silent.
func (a *Accumulator) Divide(x float64) {
	if x == 0.0 {
		return
	}
	a.value /= x
}

// SetValue replaces the value with x. No validation.
func (a *Accumulator) SetValue(x float64) {
	a.value = x
}

// Value returns the current value.
func (a *Accumulator) Value() float64 {
	return a.value
}
