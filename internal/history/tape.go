// Package history keeps an in-memory tape of committed calculator
// operations for the history pane. Nothing is persisted.
package history

import (
	"fmt"
	"time"

	"tally/internal/calc"
)

// DefaultCap bounds the tape; the oldest entry is evicted first.
const DefaultCap = 100

// Entry is one committed operation.
type Entry struct {
	Op      calc.Operator
	Operand float64
	Result  float64
	At      time.Time
}

// String formats the entry for the history list, e.g. "+ 3 → 8".
// Seeding entries (OpNone) show only the result.
func (e Entry) String() string {
	if e.Op == calc.OpNone {
		return fmt.Sprintf("= %g", e.Result)
	}
	return fmt.Sprintf("%s %g → %g", e.Op, e.Operand, e.Result)
}

// Tape is a bounded list of entries, newest last.
type Tape struct {
	entries []Entry
	cap     int
}

// NewTape creates a tape with DefaultCap.
func NewTape() *Tape {
	return &Tape{cap: DefaultCap}
}

// TokenProcessed implements calc.Observer. Digit events are display-only
// and are not recorded.
func (t *Tape) TokenProcessed(ev calc.Event) {
	if !ev.Committed {
		return
	}
	t.append(Entry{
		Op:      ev.Applied,
		Operand: ev.Operand,
		Result:  ev.Result,
		At:      time.Now(),
	})
}

func (t *Tape) append(e Entry) {
	t.entries = append(t.entries, e)
	if len(t.entries) > t.cap {
		t.entries = t.entries[len(t.entries)-t.cap:]
	}
}

// Entries returns the recorded entries, oldest first.
func (t *Tape) Entries() []Entry {
	return t.entries
}

// Len returns the number of recorded entries.
func (t *Tape) Len() int {
	return len(t.entries)
}
