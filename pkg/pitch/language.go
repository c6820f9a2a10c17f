package pitch

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/walteh/golily/pkg/lyerr"
	"github.com/walteh/golily/pkg/rational"
	"gitlab.com/tozd/go/errors"
)

// Language is one LilyPond pitch-name table.
//
// Accidentals is indexed by alter*4+4, from double flat (0) to double sharp (8).
// An empty entry other than index 4 means the alteration has no spelling.
// Replacements rewrite a written prefix, e.g. ees to es.
type Language struct {
	Name         string
	Names        [7]string
	Accidentals  [9]string
	Replacements [][2]string

	aliases map[string]string

	once    sync.Once
	reverse map[string]spelling
}

type spelling struct {
	step  int
	alter rational.Rational
}

var (
	dutchAccidentals   = [9]string{"eses", "eseh", "es", "eh", "", "ih", "is", "isih", "isis"}
	latinNames         = [7]string{"do", "re", "mi", "fa", "sol", "la", "si"}
	germanNames        = [7]string{"c", "d", "e", "f", "g", "a", "h"}
	englishNames       = [7]string{"c", "d", "e", "f", "g", "a", "b"}
	italianAccidentals = [9]string{"bb", "bsb", "b", "sb", "", "sd", "d", "dsd", "dd"}
)

var languages = map[string]*Language{}

func register(l *Language, names ...string) {
	for _, n := range names {
		languages[n] = l
	}
}

func init() {
	register(&Language{
		Name:         "nederlands",
		Names:        englishNames,
		Accidentals:  dutchAccidentals,
		Replacements: [][2]string{{"ees", "es"}, {"aes", "as"}},
	}, "nederlands")
	register(&Language{
		Name:        "english",
		Names:       englishNames,
		Accidentals: [9]string{"ff", "tqf", "f", "qf", "", "qs", "s", "tqs", "ss"},
		aliases: map[string]string{
			"flatflat":   "ff",
			"sharpsharp": "ss",
			"flat":       "f",
			"sharp":      "s",
			"x":          "ss",
		},
	}, "english")
	deutsch := &Language{
		Name:         "deutsch",
		Names:        germanNames,
		Accidentals:  dutchAccidentals,
		Replacements: [][2]string{{"ees", "es"}, {"aes", "as"}, {"hes", "b"}},
	}
	register(deutsch, "deutsch")
	register(&Language{Name: "norsk", Names: deutsch.Names, Accidentals: deutsch.Accidentals, Replacements: deutsch.Replacements}, "norsk")
	register(&Language{Name: "suomi", Names: deutsch.Names, Accidentals: deutsch.Accidentals, Replacements: deutsch.Replacements}, "suomi")
	register(&Language{
		Name:         "svenska",
		Names:        germanNames,
		Accidentals:  [9]string{"essess", "", "ess", "", "", "", "iss", "", "ississ"},
		Replacements: [][2]string{{"ees", "es"}, {"aes", "as"}, {"hess", "b"}},
	}, "svenska")
	register(&Language{Name: "italiano", Names: latinNames, Accidentals: italianAccidentals}, "italiano")
	register(&Language{Name: "catalan", Names: latinNames, Accidentals: italianAccidentals}, "catalan")
	register(&Language{
		Name:        "espanol",
		Names:       latinNames,
		Accidentals: [9]string{"bb", "", "b", "", "", "", "s", "", "ss"},
	}, "espanol")
	register(&Language{
		Name:        "portuges",
		Names:       latinNames,
		Accidentals: [9]string{"bb", "btqt", "b", "bqt", "", "sqt", "s", "stqt", "ss"},
	}, "portuges", "portugues")
	register(&Language{
		Name:        "vlaams",
		Names:       latinNames,
		Accidentals: [9]string{"bb", "", "b", "", "", "", "k", "", "kk"},
	}, "vlaams")
}

// Lookup finds a language by its LilyPond file name.
func Lookup(name string) (*Language, bool) {
	l, ok := languages[name]
	return l, ok
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) *Language {
	l, ok := Lookup(name)
	if !ok {
		panic("pitch: unknown language " + name)
	}
	return l
}

// Default is the language LilyPond assumes without an include.
func Default() *Language {
	return languages["nederlands"]
}

// Languages returns the canonical language names in sorted order.
func Languages() []string {
	var out []string
	for name, l := range languages {
		if l.Name == name {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func accidentalIndex(alter rational.Rational) (int, bool) {
	idx := alter.Mul(rational.FromInt(4)).Add(rational.FromInt(4))
	if !idx.IsInt() || idx.Num() < 0 || idx.Num() > 8 {
		return 0, false
	}
	return int(idx.Num()), true
}

// Write spells step and alter in this language.
func (l *Language) Write(step int, alter rational.Rational) (string, error) {
	name := l.Names[step]
	if !alter.IsZero() {
		idx, ok := accidentalIndex(alter)
		if !ok {
			return "", errors.Errorf("alteration %s of %s is out of range", alter, name)
		}
		acc := l.Accidentals[idx]
		if acc == "" {
			return "", errors.Errorf("%w: alteration %s of %s in %s", lyerr.ErrQuarterToneAlterationNotAvailable, alter, name, l.Name)
		}
		name += acc
	}
	for _, r := range l.Replacements {
		if strings.HasPrefix(name, r[0]) {
			name = r[1] + name[len(r[0]):]
			break
		}
	}
	return name, nil
}

// Format writes a full pitch including octave marks.
func (l *Language) Format(p Pitch) (string, error) {
	name, err := l.Write(p.Step, p.Alter)
	if err != nil {
		return "", err
	}
	return name + OctaveString(p.Octave), nil
}

func (l *Language) build() {
	l.reverse = map[string]spelling{}
	for step, base := range l.Names {
		for idx, acc := range l.Accidentals {
			if acc == "" && idx != 4 {
				continue
			}
			alter := rational.New(int64(idx-4), 4)
			l.reverse[base+acc] = spelling{step, alter}
			if w, err := l.Write(step, alter); err == nil {
				l.reverse[w] = spelling{step, alter}
			}
			for long, short := range l.aliases {
				if short == acc {
					l.reverse[base+long] = spelling{step, alter}
				}
			}
		}
	}
}

// Read parses a note name without octave marks.
func (l *Language) Read(name string) (step int, alter rational.Rational, ok bool) {
	l.once.Do(l.build)
	s, ok := l.reverse[name]
	return s.step, s.alter, ok
}

// Spellings returns every note name this language accepts, sorted.
func (l *Language) Spellings() []string {
	l.once.Do(l.build)
	out := make([]string, 0, len(l.reverse))
	for k := range l.reverse {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

var (
	noteNamesOnce sync.Once
	noteNames     map[string]bool
)

// IsNoteName reports whether word is a note name in any language.
func IsNoteName(word string) bool {
	noteNamesOnce.Do(func() {
		noteNames = map[string]bool{}
		for _, l := range languages {
			for _, s := range l.Spellings() {
				noteNames[s] = true
			}
		}
	})
	return noteNames[word]
}
