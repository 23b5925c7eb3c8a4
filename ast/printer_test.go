package ast

import (
	"testing"

	"github.com/Facosao/lox/token"
	"github.com/stretchr/testify/assert"
)

func TestPrint_BinaryAndUnaryAndGrouping(t *testing.T) {
	// -123 * (45.67)
	expr := &Binary{
		Left: &Unary{
			Operator: token.New(token.MINUS, "-", nil, 1),
			Right:    &Literal{Value: 123.0},
		},
		Operator: token.New(token.STAR, "*", nil, 1),
		Right: &Grouping{
			Expression: &Literal{Value: 45.67},
		},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", Print(expr))
}

func TestPrint_LiteralNil(t *testing.T) {
	assert.Equal(t, "nil", Print(&Literal{Value: nil}))
}

func TestPrint_VariableAndAssign(t *testing.T) {
	name := token.New(token.IDENTIFIER, "a", nil, 1)
	assert.Equal(t, "a", Print(&Variable{Name: name}))
	assert.Equal(t, "(= a 3)", Print(&Assign{Name: name, Value: &Literal{Value: 3.0}}))
}
