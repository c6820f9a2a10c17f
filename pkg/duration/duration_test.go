package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/golily/pkg/rational"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		printed  string
		expected Duration
		wantErr  bool
	}{
		{name: "quarter", input: "4", expected: New(2, 0)},
		{name: "whole", input: "1", expected: New(0, 0)},
		{name: "dotted", input: "8..", expected: New(3, 2)},
		{name: "breve", input: `\breve`, expected: New(-1, 0)},
		{name: "longa_dotted", input: `\longa.`, expected: New(-2, 1)},
		{name: "scaled", input: "2*3/4", expected: Duration{Log: 1, Factor: rational.New(3, 4)}},
		{name: "scaled_twice", input: "1*2*3", printed: "1*6", expected: Duration{Log: 0, Factor: rational.FromInt(6)}},
		{name: "not_power_of_two", input: "3", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "garbage", input: "4x", wantErr: true},
		{name: "zero_factor", input: "4*0", wantErr: true},
		{name: "zero_fraction", input: "4*0/3", wantErr: true},
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
			want := tt.input
			if tt.printed != "" {
				want = tt.printed
			}
			assert.Equal(t, want, got.String())
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("4"))
	assert.True(t, Valid(`\breve.`))
	assert.True(t, Valid("4*0"))
	assert.False(t, Valid("3"))
	assert.False(t, Valid("4x"))
}

func TestDoubleHalve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		doubled string
		halved  string
	}{
		{name: "quarter", input: "4", doubled: "2", halved: "8"},
		{name: "dotted", input: "8.", doubled: "4.", halved: "16."},
		{name: "whole", input: "1", doubled: `\breve`, halved: "2"},
		{name: "longa_clamps", input: `\longa`, doubled: `\longa*2`, halved: `\breve`},
		{name: "shortest_clamps", input: "256", doubled: "128", halved: "256*1/2"},
		{name: "scaled", input: "4*2/3", doubled: "2*2/3", halved: "8*2/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustParse(tt.input)
			assert.Equal(t, tt.doubled, d.Double().String())
			assert.Equal(t, tt.halved, d.Halve().String())
			assert.Equal(t, d, d.Double().Halve(), "halve undoes double")
			assert.Equal(t, d, d.Halve().Double(), "double undoes halve")
		})
	}
}

func TestDots(t *testing.T) {
	d := MustParse("4")
	assert.Equal(t, "4.", d.Dot().String())
	assert.Equal(t, "4..", d.Dot().Dot().String())
	assert.Equal(t, d, d.Dot().Undot())
	assert.Equal(t, d, d.Undot(), "never below zero dots")
	assert.Equal(t, "4", MustParse("4*3").RemoveScaling().String())
}

func TestLength(t *testing.T) {
	tests := []struct {
		input    string
		expected rational.Rational
	}{
		{"4", rational.New(1, 4)},
		{"4.", rational.New(3, 8)},
		{"2..", rational.New(7, 8)},
		{`\breve`, rational.FromInt(2)},
		{`\longa`, rational.FromInt(4)},
		{"1*3/4", rational.New(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MustParse(tt.input).Length())
		})
	}
}
