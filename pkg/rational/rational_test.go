package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalises(t *testing.T) {
	tests := []struct {
		name     string
		p, q     int64
		expected string
	}{
		{name: "already_lowest", p: 3, q: 4, expected: "3/4"},
		{name: "reducible", p: 6, q: 8, expected: "3/4"},
		{name: "negative_denominator", p: 1, q: -2, expected: "-1/2"},
		{name: "both_negative", p: -2, q: -4, expected: "1/2"},
		{name: "integer", p: 8, q: 4, expected: "2"},
		{name: "zero", p: 0, q: 5, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.p, tt.q)
			assert.Equal(t, tt.expected, r.String())
			assert.Positive(t, r.Den())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Rational
		wantErr  bool
	}{
		{name: "fraction", input: "2/3", expected: New(2, 3)},
		{name: "integer", input: "5", expected: FromInt(5)},
		{name: "spaces", input: " 4 / 8 ", expected: New(1, 2)},
		{name: "zero_denominator", input: "1/0", wantErr: true},
		{name: "garbage", input: "x/2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestArithmetic(t *testing.T) {
	half := New(1, 2)
	third := New(1, 3)

	assert.Equal(t, New(5, 6), half.Add(third))
	assert.Equal(t, New(1, 6), half.Sub(third))
	assert.Equal(t, New(1, 6), half.Mul(third))
	q, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, New(3, 2), q)
	_, err = half.Div(Zero)
	require.Error(t, err)
	assert.Equal(t, New(-1, 2), half.Neg())
}

func TestOrdering(t *testing.T) {
	assert.True(t, New(1, 3).Less(New(1, 2)))
	assert.Equal(t, 0, New(2, 4).Cmp(New(1, 2)))
	assert.Equal(t, 1, New(-1, 4).Cmp(New(-1, 2)))
	assert.True(t, New(4, 2).IsInt())
	assert.Equal(t, int64(-1), New(-1, 2).Floor())
	assert.Equal(t, int64(2), New(5, 2).Floor())
}

func TestZeroValueIsCanonical(t *testing.T) {
	var r Rational
	assert.Equal(t, Zero, r)
	assert.Equal(t, Zero, New(0, 7))
	assert.Equal(t, One, New(3, 3))
	assert.Equal(t, "0", r.String())

	seen := map[Rational]int{}
	seen[New(1, 2)]++
	seen[New(2, 4)]++
	assert.Equal(t, 2, seen[New(3, 6)])
}
