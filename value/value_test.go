package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestTruthy_IsIdempotentUnderBoolRoundTrip(t *testing.T) {
	for _, v := range []Value{Nil{}, Bool(true), Bool(false), Number(0), Number(5), String(""), String("x")} {
		assert.Equal(t, Truthy(v), Truthy(Bool(Truthy(v))))
	}
}

func TestEqual_NilOnlyEqualsNil(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.False(t, Equal(Nil{}, Bool(false)))
	assert.False(t, Equal(Bool(false), Nil{}))
}

func TestEqual_CrossTagIsFalse(t *testing.T) {
	assert.False(t, Equal(Number(0), String("0")))
	assert.False(t, Equal(Bool(true), Number(1)))
}

func TestEqual_StructuralWithinTag(t *testing.T) {
	assert.True(t, Equal(Number(3), Number(3)))
	assert.False(t, Equal(Number(3), Number(4)))
	assert.True(t, Equal(String("a"), String("a")))
}

func TestEqual_NaNIsNeverEqual(t *testing.T) {
	nan := Number(math.NaN())
	assert.False(t, Equal(nan, nan))
}

func TestEqual_IsTotal(t *testing.T) {
	pairs := [][2]Value{
		{Nil{}, Nil{}}, {Nil{}, Bool(true)}, {Number(1), Number(1)},
		{Number(1), Number(2)}, {String("a"), String("b")}, {Bool(true), Bool(true)},
	}
	for _, p := range pairs {
		assert.NotPanics(t, func() { Equal(p[0], p[1]) })
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", Stringify(Nil{}))
	assert.Equal(t, "true", Stringify(Bool(true)))
	assert.Equal(t, "false", Stringify(Bool(false)))
	assert.Equal(t, "hi there", Stringify(String("hi there")))
}

func TestStringify_IntegralNumberHasNoTrailingDecimal(t *testing.T) {
	assert.Equal(t, "3", Stringify(Number(3)))
	assert.Equal(t, "-2", Stringify(Number(-2)))
	assert.Equal(t, "0", Stringify(Number(0)))
}

func TestStringify_NonIntegralNumber(t *testing.T) {
	assert.Equal(t, "3.14", Stringify(Number(3.14)))
}
