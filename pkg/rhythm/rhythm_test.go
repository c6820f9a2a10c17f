package rhythm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/diff"
	"github.com/walteh/golily/pkg/rhythm"
)

type op func(ctx context.Context, text string, opts ...rhythm.Option) (*changes.List, error)

func run(t *testing.T, f op, text string, opts ...rhythm.Option) string {
	t.Helper()
	l, err := f(context.Background(), text, opts...)
	require.NoError(t, err)
	return l.Apply()
}

func TestDurationEdits(t *testing.T) {
	tests := []struct {
		name     string
		op       op
		input    string
		opts     []rhythm.Option
		expected string
	}{
		{
			name:     "halve",
			op:       rhythm.Halve,
			input:    "c4 d8 e16",
			expected: "c8 d16 e32",
		},
		{
			name:     "double",
			op:       rhythm.Double,
			input:    "{ c4 <e g>8 r2 }",
			expected: "{ c2 <e g>4 r1 }",
		},
		{
			name:     "double breve",
			op:       rhythm.Double,
			input:    "{ c1 d\\breve }",
			expected: "{ c\\breve d\\longa }",
		},
		{
			name:     "skip and partial follow",
			op:       rhythm.Double,
			input:    "{ \\partial 8 c8 \\skip 4 }",
			expected: "{ \\partial 4 c4 \\skip 2 }",
		},
		{
			name:     "tempo is left alone",
			op:       rhythm.Halve,
			input:    "{ \\tempo 4 = 60 c4 }",
			expected: "{ \\tempo 4 = 60 c8 }",
		},
		{
			name:     "dot",
			op:       rhythm.Dot,
			input:    "{ c4 d8. }",
			expected: "{ c4. d8.. }",
		},
		{
			name:     "undot",
			op:       rhythm.Undot,
			input:    "{ c4 d8. }",
			expected: "{ c4 d8 }",
		},
		{
			name:     "remove scaling",
			op:       rhythm.RemoveScaling,
			input:    "{ R1*4 c2*2/3 }",
			expected: "{ R1 c2 }",
		},
		{
			name:     "remove durations",
			op:       rhythm.RemoveDurations,
			input:    "{ c4 d8 <e g>2 r \\skip 4 }",
			expected: "{ c d <e g> r \\skip 4 }",
		},
		{
			name:     "make implicit",
			op:       rhythm.MakeImplicit,
			input:    "{ c4 d4 e8 f8 g4 }",
			expected: "{ c4 d e8 f g4 }",
		},
		{
			name:     "make implicit per line",
			op:       rhythm.MakeImplicitPerLine,
			input:    "{ c4 d4\ne4 f4 }",
			expected: "{ c4 d\ne4 f }",
		},
		{
			name:     "make explicit",
			op:       rhythm.MakeExplicit,
			input:    "{ c4 d e8 f }",
			expected: "{ c4 d4 e8 f8 }",
		},
		{
			name:     "make explicit in chord mode",
			op:       rhythm.MakeExplicit,
			input:    "\\chordmode { c4:m g/b }",
			expected: "\\chordmode { c4:m g4/b }",
		},
		{
			name:     "make explicit in lyrics",
			op:       rhythm.MakeExplicit,
			input:    "\\lyricmode { Ly4 -- rics }",
			expected: "\\lyricmode { Ly4 -- rics4 }",
		},
		{
			name:     "selection",
			op:       rhythm.Halve,
			input:    "c4 d4",
			opts:     []rhythm.Option{rhythm.WithSelection(3, 5)},
			expected: "c4 d8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.op, tt.input, tt.opts...)
			assert.Equal(t, tt.expected, got, diff.DiffText(tt.expected, got))
		})
	}
}

func TestDoubleHalveLaws(t *testing.T) {
	input := "c4 d8 e16"
	once := run(t, rhythm.Halve, input)
	twice := run(t, rhythm.Halve, once)
	assert.Equal(t, "c16 d32 e64", twice)

	back := run(t, rhythm.Double, run(t, rhythm.Double, twice))
	assert.Equal(t, input, back)

	dotted := run(t, rhythm.Dot, input)
	assert.Equal(t, input, run(t, rhythm.Undot, dotted))
}

func TestZeroScalingIsRejected(t *testing.T) {
	_, err := rhythm.Double(context.Background(), "{ c4*0 d }")
	require.Error(t, err)
}

func TestImplicitExplicitLaw(t *testing.T) {
	input := "{ c4 d4 e8 f8 <g b>8 r2 s2 }"
	implicit := run(t, rhythm.MakeImplicit, input)
	assert.Equal(t, "{ c4 d e8 f <g b> r2 s }", implicit)
	assert.Equal(t, input, run(t, rhythm.MakeExplicit, implicit))
}

func TestExtract(t *testing.T) {
	assert.Equal(t, []string{"4", "8.", "16", "4"}, rhythm.Extract("{ c4 d8. <e g>16 r4 }"))
	assert.Equal(t, []string{"16"}, rhythm.Extract("{ c4 d16 }", rhythm.WithSelection(5, 9)))
	assert.Empty(t, rhythm.Extract("{ c d }"))
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		input    string
		rhythm   []string
		expected string
	}{
		{
			name:     "repeats the rhythm",
			input:    "{ c d e f }",
			rhythm:   []string{"8.", "16"},
			expected: "{ c8. d16 e8. f16 }",
		},
		{
			name:     "replaces durations",
			input:    "{ c4 <d f>4 r2 }",
			rhythm:   []string{"8"},
			expected: "{ c8 <d f>8 r8 }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := rhythm.Apply(ctx, tt.input, tt.rhythm)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.Apply())
		})
	}

	_, err := rhythm.Apply(ctx, "{ c }", nil)
	assert.True(t, errors.Is(err, rhythm.ErrEmptyRhythm))
}

func TestExtractApplyRoundTrip(t *testing.T) {
	input := "{ c8. d16 e4 <f a>2 }"
	r := rhythm.Extract(input)
	stripped := run(t, rhythm.RemoveDurations, input)
	assert.Equal(t, "{ c d e <f a> }", stripped)

	l, err := rhythm.Apply(context.Background(), stripped, r)
	require.NoError(t, err)
	assert.Equal(t, input, l.Apply())
}

func TestParseRhythm(t *testing.T) {
	r, err := rhythm.ParseRhythm(" 8. 16  8 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"8.", "16", "8"}, r)

	_, err = rhythm.ParseRhythm("")
	assert.True(t, errors.Is(err, rhythm.ErrEmptyRhythm))

	_, err = rhythm.ParseRhythm("4 3")
	require.Error(t, err)
}
