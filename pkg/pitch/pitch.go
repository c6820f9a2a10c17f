// Package pitch implements pitch arithmetic and the pitch-name tables of the
// LilyPond input languages.
package pitch

import (
	"strings"

	"github.com/walteh/golily/pkg/rational"
)

// Pitch is a note in absolute or relative terms.
//
// Octave counts octave marks: 0 is the unmarked octave (c), 1 is c', -1 is c,.
// Step is 0..6 for c..b. Alter is measured in whole tones, so a sharp is 1/2
// and a quarter-tone sharp is 1/4.
type Pitch struct {
	Octave int
	Step   int
	Alter  rational.Rational
}

// scale is the whole-tone position of every step in the major scale.
var scale = [7]rational.Rational{
	rational.FromInt(0),
	rational.FromInt(1),
	rational.FromInt(2),
	rational.New(5, 2),
	rational.New(7, 2),
	rational.New(9, 2),
	rational.New(11, 2),
}

var octaveWholeTones = rational.FromInt(6)

// C1 is c', the usual reference pitch of \relative.
func C1() Pitch {
	return Pitch{Octave: 1}
}

// Diatonic returns the scalar Octave*7+Step.
func (p Pitch) Diatonic() int {
	return p.Octave*7 + p.Step
}

// WholeTones returns the chromatic height of the pitch in whole tones.
func (p Pitch) WholeTones() rational.Rational {
	return rational.FromInt(p.Octave).Mul(octaveWholeTones).Add(scale[p.Step]).Add(p.Alter)
}

// Compare orders pitches by diatonic scalar first and alteration second.
func (p Pitch) Compare(o Pitch) int {
	switch a, b := p.Diatonic(), o.Diatonic(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return p.Alter.Cmp(o.Alter)
}

// Absolute interprets p as written in relative mode after last and returns
// the absolute pitch. The octave of p is taken as its explicit octave marks.
func (p Pitch) Absolute(last Pitch) Pitch {
	p.Octave += last.Octave - floorDiv(p.Step-last.Step+3, 7)
	return p
}

// Relative is the inverse of Absolute: it returns p with Octave set to the
// octave marks needed after last.
func (p Pitch) Relative(last Pitch) Pitch {
	p.Octave += floorDiv(p.Step-last.Step+3, 7) - last.Octave
	return p
}

// OctaveString renders octave marks.
func OctaveString(n int) string {
	switch {
	case n > 0:
		return strings.Repeat("'", n)
	case n < 0:
		return strings.Repeat(",", -n)
	}
	return ""
}

// OctaveFromString counts octave marks; commas count negative.
func OctaveFromString(s string) int {
	return strings.Count(s, "'") - strings.Count(s, ",")
}

// Transposer moves pitches by the interval between two pitches.
type Transposer struct {
	Steps int
	Alter rational.Rational
}

func NewTransposer(from, to Pitch) Transposer {
	return Transposer{
		Steps: to.Diatonic() - from.Diatonic(),
		Alter: to.WholeTones().Sub(from.WholeTones()),
	}
}

// Inverse returns the transposer that undoes t.
func (t Transposer) Inverse() Transposer {
	return Transposer{Steps: -t.Steps, Alter: t.Alter.Neg()}
}

// Transpose returns p moved by the diatonic and chromatic delta of t.
func (t Transposer) Transpose(p Pitch) Pitch {
	total := p.Diatonic() + t.Steps
	n := Pitch{Octave: floorDiv(total, 7), Step: mod(total, 7)}
	n.Alter = p.WholeTones().Add(t.Alter).Sub(n.WholeTones())
	return n
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
