// Package tokenize splits LilyPond source into typed tokens.
//
// The tokenizer is a stack of parsers. The parser on top of the stack selects
// the lexical rules in effect; rules can enter a new parser, leave the current
// one, or change its nesting level. Text no rule matches becomes an Unparsed
// token, so the tokens of a document always reproduce it byte for byte.
//
//	\relative c' { c d-\markup { Hi } }
//	    |        |      |
//	    |        |      +-- Markup parser, left after its argument
//	    |        +--------- level 1 of Toplevel: words are notes
//	    +------------------ Command; c' is a Pitch argument
package tokenize

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Tokenizer holds the compiled rule tables. It is immutable once built and
// safe for concurrent use.
type Tokenizer struct {
	tables      [numParsers]*table
	figureGroup *table
}

type table struct {
	rules []Rule
	rx    *regexp.Regexp
	group []int
}

func compile(rules []Rule) *table {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = fmt.Sprintf("(?P<r%d>%s)", i, r.Pattern)
	}
	rx := regexp.MustCompile(strings.Join(parts, "|"))
	t := &table{rules: rules, rx: rx, group: make([]int, len(rules))}
	for i := range rules {
		t.group[i] = rx.SubexpIndex(fmt.Sprintf("r%d", i))
	}
	return t
}

// match finds the leftmost rule match in text. It returns the rule index and
// the match bounds, or -1 when nothing matches.
func (t *table) match(text string) (int, int, int) {
	loc := t.rx.FindStringSubmatchIndex(text)
	if loc == nil {
		return -1, 0, 0
	}
	for i, g := range t.group {
		if loc[2*g] >= 0 {
			return i, loc[2*g], loc[2*g+1]
		}
	}
	return -1, 0, 0
}

// Option customises a Tokenizer.
type Option func(*config)

type config struct {
	extra    map[ParserName][]Rule
	relative bool
}

// WithRules prepends rules to a parser's table.
func WithRules(p ParserName, rules ...Rule) Option {
	return func(c *config) {
		c.extra[p] = append(c.extra[p], rules...)
	}
}

// WithRelative makes \relative enter a dedicated Relative parser that
// expects a pitch and a music expression.
func WithRelative() Option {
	return func(c *config) {
		c.relative = true
	}
}

// New compiles a tokenizer.
func New(opts ...Option) *Tokenizer {
	c := &config{extra: map[ParserName][]Rule{}}
	for _, o := range opts {
		o(c)
	}
	tz := &Tokenizer{}
	for p := ParserName(0); p < numParsers; p++ {
		rules := append([]Rule{}, c.extra[p]...)
		if c.relative {
			if _, ok := NewParser(p).musicLevel(); ok {
				rules = append(rules, relativeRule())
			}
		}
		tz.tables[p] = compile(append(rules, defaultRules(p)...))
	}
	tz.figureGroup = compile(figureGroupRules())
	return tz
}

var (
	defaultOnce sync.Once
	defaultTz   *Tokenizer
	relativeTz  *Tokenizer
)

func defaults() {
	defaultTz = New()
	relativeTz = New(WithRelative())
}

// Default returns the shared plain tokenizer.
func Default() *Tokenizer {
	defaultOnce.Do(defaults)
	return defaultTz
}

// DefaultRelative returns the shared tokenizer built WithRelative.
func DefaultRelative() *Tokenizer {
	defaultOnce.Do(defaults)
	return relativeTz
}

// Lex starts lexing text. Without initial parsers the text is lexed as the
// start of a document.
func (tz *Tokenizer) Lex(text string, initial ...Parser) *Lexer {
	return tz.Resume(text, State{Stack: initial})
}

// Resume starts lexing text in a previously captured state.
func (tz *Tokenizer) Resume(text string, st State) *Lexer {
	stack := append([]Parser{}, st.Stack...)
	if len(stack) == 0 {
		stack = []Parser{NewParser(Toplevel)}
	}
	return &Lexer{
		tz:    tz,
		text:  text,
		stack: stack,
	}
}

// Tokens lexes the whole of text with the default tokenizer.
func Tokens(text string) []Token {
	return Default().Lex(text).Collect()
}
