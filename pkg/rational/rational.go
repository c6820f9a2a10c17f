// Package rational implements exact fractions used for durations and pitch
// alterations.
package rational

import (
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Rational is a normalised fraction. The zero value is 0.
//
// The denominator is stored minus one so that the zero value is canonical:
// two Rationals are equal exactly when == says so, and a Rational can be a
// map key.
type Rational struct {
	num int64
	dm1 int64
}

var (
	Zero = Rational{}
	One  = Rational{num: 1}
)

// New returns p/q in lowest terms. It panics if q is zero.
func New(p, q int64) Rational {
	if q == 0 {
		panic("rational: zero denominator")
	}
	if q < 0 {
		p, q = -p, -q
	}
	if g := gcd(abs(p), q); g > 1 {
		p, q = p/g, q/g
	}
	return Rational{num: p, dm1: q - 1}
}

func FromInt(n int) Rational {
	return Rational{num: int64(n)}
}

// Parse reads "p/q" or "p".
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	ps, qs, found := strings.Cut(s, "/")
	p, err := strconv.ParseInt(strings.TrimSpace(ps), 10, 64)
	if err != nil {
		return Zero, errors.Errorf("parsing numerator of %q: %w", s, err)
	}
	q := int64(1)
	if found {
		q, err = strconv.ParseInt(strings.TrimSpace(qs), 10, 64)
		if err != nil {
			return Zero, errors.Errorf("parsing denominator of %q: %w", s, err)
		}
		if q == 0 {
			return Zero, errors.Errorf("parsing %q: zero denominator", s)
		}
	}
	return New(p, q), nil
}

// MustParse is like Parse but panics on malformed input. Use it for constants.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rational) Num() int64 { return r.num }
func (r Rational) Den() int64 { return r.dm1 + 1 }

func (r Rational) Add(o Rational) Rational {
	return New(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

func (r Rational) Mul(o Rational) Rational {
	return New(r.num*o.num, r.Den()*o.Den())
}

// Div returns r/o. Dividing by zero is an error.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.num == 0 {
		return Zero, errors.Errorf("dividing %s by zero", r)
	}
	return New(r.num*o.Den(), r.Den()*o.num), nil
}

func (r Rational) Neg() Rational {
	return Rational{num: -r.num, dm1: r.dm1}
}

// Cmp returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	a, b := r.num*o.Den(), o.num*r.Den()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (r Rational) Less(o Rational) bool  { return r.Cmp(o) < 0 }
func (r Rational) Equal(o Rational) bool { return r == o }
func (r Rational) IsZero() bool          { return r.num == 0 }
func (r Rational) IsInt() bool           { return r.dm1 == 0 }
func (r Rational) Sign() int             { return r.Cmp(Zero) }

// Floor returns the largest integer not greater than r.
func (r Rational) Floor() int64 {
	d := r.Den()
	q := r.num / d
	if r.num%d != 0 && r.num < 0 {
		q--
	}
	return q
}

func (r Rational) String() string {
	if r.dm1 == 0 {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
