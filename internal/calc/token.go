package calc

// Token is one unit of user input: a digit '0'-'9' or an operator among
// '+', '-', '*', '/', '=', 'C'. Anything else is not a token; the Surface
// is expected to filter, and the Presenter ignores strays as a backstop.
type Token rune

// The operator tokens.
const (
	TokAdd   Token = '+'
	TokSub   Token = '-'
	TokMul   Token = '*'
	TokDiv   Token = '/'
	TokEq    Token = '='
	TokClear Token = 'C'
)

// IsDigit reports whether t is a digit token.
func (t Token) IsDigit() bool {
	return t >= '0' && t <= '9'
}

// Digit returns the numeric value of a digit token. Zero for non-digits.
func (t Token) Digit() float64 {
	if !t.IsDigit() {
		return 0
	}
	return float64(t - '0')
}

// IsOperator reports whether t is one of the six operator tokens.
func (t Token) IsOperator() bool {
	switch t {
	case TokAdd, TokSub, TokMul, TokDiv, TokEq, TokClear:
		return true
	}
	return false
}

// Operator is the deferred operation stored between operator tokens.
// The zero value OpNone means "seed the accumulator directly".
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return ""
	}
}

// OperatorFor maps an operator token to the Operator it leaves pending.
// '=' and 'C' both leave OpNone pending; '=' has no operation of its own
// (its effect is the apply step that runs when it arrives), and 'C' clears.
func OperatorFor(t Token) Operator {
	switch t {
	case TokAdd:
		return OpAdd
	case TokSub:
		return OpSub
	case TokMul:
		return OpMul
	case TokDiv:
		return OpDiv
	default:
		return OpNone
	}
}
