package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_WholeAndFractionalAmounts(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"2.50", 250},
		{"2,50", 250},
		{"15", 1500},
		{"15.0", 1500},
		{"0.05", 5},
		{"0.5", 50},
		{".5", 50},
		{" 3.25 ", 325},
		{"+2.50", 250},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		assert.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestParse_RejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "2.5.0", "1,2,3", "R$2.50", "."} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestParse_RejectsInteriorSigns(t *testing.T) {
	// signs are only allowed in leading position; strconv on the split
	// parts must not smuggle these through
	for _, in := range []string{"2.-5", "2.+5", "--1", "+-1", "1-", "2.5-"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestParse_NegativeAmounts(t *testing.T) {
	got, err := Parse("-1.25")
	assert.NoError(t, err)
	assert.Equal(t, Cents(-125), got)
}

func TestMul_ScalesExactly(t *testing.T) {
	assert.Equal(t, Cents(750), Cents(250).Mul(3))
	assert.Equal(t, Cents(0), Cents(250).Mul(0))
}

func TestString_TwoDecimalPlaces(t *testing.T) {
	assert.Equal(t, "7.50", Cents(750).String())
	assert.Equal(t, "0.07", Cents(7).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "-1.05", Cents(-105).String())
}
