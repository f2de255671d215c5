package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_Classification(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		assert.True(t, Token(r).IsDigit(), "%c", r)
		assert.False(t, Token(r).IsOperator(), "%c", r)
		assert.Equal(t, float64(r-'0'), Token(r).Digit())
	}
	for _, r := range "+-*/=C" {
		assert.True(t, Token(r).IsOperator(), "%c", r)
		assert.False(t, Token(r).IsDigit(), "%c", r)
	}
	for _, r := range "x. c%\t" {
		assert.False(t, Token(r).IsOperator(), "%q", r)
		assert.False(t, Token(r).IsDigit(), "%q", r)
	}
}

func TestOperatorFor(t *testing.T) {
	assert.Equal(t, OpAdd, OperatorFor(TokAdd))
	assert.Equal(t, OpSub, OperatorFor(TokSub))
	assert.Equal(t, OpMul, OperatorFor(TokMul))
	assert.Equal(t, OpDiv, OperatorFor(TokDiv))
	// '=' and 'C' both leave nothing pending.
	assert.Equal(t, OpNone, OperatorFor(TokEq))
	assert.Equal(t, OpNone, OperatorFor(TokClear))
}
