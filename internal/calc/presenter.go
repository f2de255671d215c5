package calc

// Surface is the view contract the presenter needs: somewhere to show a
// value and a token stream to consume. Implementations must deliver tokens
// one at a time; the presenter is a synchronous reducer with no locking.
type Surface interface {
	// SetDisplay shows v. Idempotent, callable at any time.
	SetDisplay(v float64)
	// Subscribe registers the single token listener. A later call replaces
	// the previous listener.
	Subscribe(fn func(Token))
}

// Event describes one processed token, for observers (history tape,
// telemetry). Committed is true when an operator token applied the pending
// operation; digit tokens only update the display.
type Event struct {
	Token     Token
	Applied   Operator
	Operand   float64
	Result    float64
	Committed bool
}

// Observer receives an Event after each token is fully processed.
type Observer interface {
	TokenProcessed(ev Event)
}

// Presenter folds the token stream into accumulator updates and display
// values. It owns two pieces of state: the entry being typed and the
// operator waiting to be applied.
type Presenter struct {
	acc       *Accumulator
	surface   Surface
	observers []Observer

	pending float64  // digits typed since the last operator
	op      Operator // operator waiting for its right-hand operand
}

// NewPresenter wires a presenter to its accumulator and surface. It shows
// zero and subscribes immediately; after construction the presenter is
// self-driving.
func NewPresenter(acc *Accumulator, s Surface, observers ...Observer) *Presenter {
	p := &Presenter{
		acc:       acc,
		surface:   s,
		observers: observers,
	}
	s.SetDisplay(0)
	s.Subscribe(p.handle)
	return p
}

// handle processes one token to completion.
func (p *Presenter) handle(t Token) {
	switch {
	case t.IsDigit():
		p.pending = p.pending*10 + t.Digit()
		p.surface.SetDisplay(p.pending)
		p.notify(Event{Token: t, Result: p.pending})
	case t.IsOperator():
		applied := p.op
		operand := p.pending
		p.apply(applied, operand)
		// '=' is implicit: it stores OpNone like any other token, and its
		// "execute" effect is the apply step above. Pressing '=' twice
		// therefore re-seeds the accumulator with a zero operand.
		p.op = OperatorFor(t)
		p.pending = 0
		if t == TokClear {
			p.acc.Clear()
		}
		p.surface.SetDisplay(p.acc.Value())
		p.notify(Event{
			Token:     t,
			Applied:   applied,
			Operand:   operand,
			Result:    p.acc.Value(),
			Committed: true,
		})
	}
	// Strays outside the token alphabet are dropped.
}

// apply commits the pending operator with the given operand.
func (p *Presenter) apply(op Operator, operand float64) {
	switch op {
	case OpNone:
		p.acc.SetValue(operand)
	case OpAdd:
		p.acc.Add(operand)
	case OpSub:
		p.acc.Add(-operand)
	case OpMul:
		p.acc.Multiply(operand)
	case OpDiv:
		p.acc.Divide(operand)
	}
}

func (p *Presenter) notify(ev Event) {
	for _, o := range p.observers {
		o.TokenProcessed(ev)
	}
}
