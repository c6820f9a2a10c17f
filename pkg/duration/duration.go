// Package duration models LilyPond note durations.
package duration

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/walteh/golily/pkg/rational"
	"gitlab.com/tozd/go/errors"
)

const (
	MinLog = -2 // \longa
	MaxLog = 8  // 256
)

// Duration is 1/2^Log with Dots augmentation dots, scaled by Factor.
// Log -3, -2 and -1 are written \maxima, \longa and \breve.
type Duration struct {
	Log    int
	Dots   int
	Factor rational.Rational
}

// New returns an unscaled duration.
func New(log, dots int) Duration {
	return Duration{Log: log, Dots: dots, Factor: rational.One}
}

var durationRx = regexp.MustCompile(`^(\\maxima|\\longa|\\breve|\d+)\s*(\.*)((?:\s*\*\s*\d+(?:/\d+)?)*)$`)
var scaleRx = regexp.MustCompile(`\*\s*(\d+(?:/\d+)?)`)

var named = map[string]int{`\maxima`: -3, `\longa`: -2, `\breve`: -1}

// Parse reads duration text such as "4", "8.." or "2*3/4".
func Parse(text string) (Duration, error) {
	m := durationRx.FindStringSubmatch(text)
	if m == nil {
		return Duration{}, errors.Errorf("invalid duration %q", text)
	}
	d := New(0, len(m[2]))
	if l, ok := named[m[1]]; ok {
		d.Log = l
	} else {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Duration{}, errors.Errorf("invalid duration %q: %w", text, err)
		}
		log, ok := log2(n)
		if !ok {
			return Duration{}, errors.Errorf("invalid duration %q: %d is not a power of two", text, n)
		}
		d.Log = log
	}
	for _, sm := range scaleRx.FindAllStringSubmatch(m[3], -1) {
		f, err := rational.Parse(sm[1])
		if err != nil {
			return Duration{}, errors.Errorf("invalid scaling in %q: %w", text, err)
		}
		if !rational.FromInt(0).Less(f) {
			return Duration{}, errors.Errorf("invalid scaling in %q: factor %s is not positive", text, f)
		}
		d.Factor = d.Factor.Mul(f)
	}
	return d, nil
}

// Valid reports whether text is written like a duration. Scaling factors
// are not checked, Parse rejects the ones that are not positive.
func Valid(text string) bool {
	m := durationRx.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	if _, ok := named[m[1]]; ok {
		return true
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	_, ok := log2(n)
	return ok
}

// MustParse is Parse for constants.
func MustParse(text string) Duration {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

func log2(n int) (int, bool) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, false
	}
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l, true
}

func (d Duration) factor() rational.Rational {
	if d.Factor.IsZero() {
		return rational.One
	}
	return d.Factor
}

// Scaled reports whether the duration carries a *p/q factor.
func (d Duration) Scaled() bool {
	return d.factor() != rational.One
}

// Base renders the note value without dots and scaling.
func (d Duration) Base() string {
	switch d.Log {
	case -3:
		return `\maxima`
	case -2:
		return `\longa`
	case -1:
		return `\breve`
	}
	return strconv.Itoa(1 << d.Log)
}

func (d Duration) String() string {
	var sb strings.Builder
	sb.WriteString(d.Base())
	sb.WriteString(strings.Repeat(".", d.Dots))
	if f := d.factor(); f != rational.One {
		sb.WriteString("*")
		sb.WriteString(f.String())
	}
	return sb.String()
}

// Length returns the duration in whole notes.
func (d Duration) Length() rational.Rational {
	var base rational.Rational
	if d.Log >= 0 {
		base = rational.New(1, 1<<d.Log)
	} else {
		base = rational.FromInt(1 << -d.Log)
	}
	// dots add base/2 + base/4 + ...
	dotted := rational.FromInt(2).Sub(rational.New(1, 1<<d.Dots))
	return base.Mul(dotted).Mul(d.factor())
}

func (d Duration) withFactor(f rational.Rational) Duration {
	d.Factor = f
	return d
}

// Double doubles the length. Outside the representable note values the
// change goes into the scaling factor.
func (d Duration) Double() Duration {
	f := d.factor()
	switch {
	case d.Log == MaxLog && f != rational.One:
		return d.withFactor(f.Mul(rational.FromInt(2)))
	case d.Log > MinLog:
		d.Log--
		return d.withFactor(f)
	}
	return d.withFactor(f.Mul(rational.FromInt(2)))
}

// Halve halves the length, the inverse of Double.
func (d Duration) Halve() Duration {
	f := d.factor()
	half := f.Mul(rational.New(1, 2))
	switch {
	case d.Log == MinLog && f != rational.One:
		return d.withFactor(half)
	case d.Log < MaxLog:
		d.Log++
		return d.withFactor(f)
	}
	return d.withFactor(half)
}

func (d Duration) Dot() Duration {
	d.Dots++
	return d.withFactor(d.factor())
}

// Undot removes one dot; a duration without dots is returned unchanged.
func (d Duration) Undot() Duration {
	if d.Dots > 0 {
		d.Dots--
	}
	return d.withFactor(d.factor())
}

func (d Duration) RemoveScaling() Duration {
	return d.withFactor(rational.One)
}
