package tokenize

// ParserName identifies one entry type of the tokenizer stack.
type ParserName uint8

const (
	Toplevel ParserName = iota
	SchemeParser
	SchemeList
	SchemeString
	StringParser
	BlockCommentParser
	LineComment
	Markup
	Chordmode
	Lyricmode
	Figuremode
	Drummode
	Notemode
	Relative
	With
	Context
	Header
	Paper
	Layout
	Midi
	Score
	Book
	numParsers
)

var parserNames = [...]string{
	Toplevel:           "Toplevel",
	SchemeParser:       "Scheme",
	SchemeList:         "SchemeList",
	SchemeString:       "SchemeString",
	StringParser:       "String",
	BlockCommentParser: "BlockComment",
	LineComment:        "LineComment",
	Markup:             "Markup",
	Chordmode:          "Chordmode",
	Lyricmode:          "Lyricmode",
	Figuremode:         "Figuremode",
	Drummode:           "Drummode",
	Notemode:           "Notemode",
	Relative:           "Relative",
	With:               "With",
	Context:            "Context",
	Header:             "Header",
	Paper:              "Paper",
	Layout:             "Layout",
	Midi:               "Midi",
	Score:              "Score",
	Book:               "Book",
}

func (p ParserName) String() string {
	if p < numParsers {
		return parserNames[p]
	}
	return "Parser(?)"
}

// IsMode reports whether the parser is one of the input-mode parsers.
func (p ParserName) IsMode() bool {
	switch p {
	case Chordmode, Lyricmode, Figuremode, Drummode, Notemode:
		return true
	}
	return false
}

// IsScheme reports whether the parser lexes Scheme.
func (p ParserName) IsScheme() bool {
	return p == SchemeParser || p == SchemeList || p == SchemeString
}

// IsSection reports whether the parser lexes a settings block without music.
func (p ParserName) IsSection() bool {
	switch p {
	case With, Context, Header, Paper, Layout, Midi:
		return true
	}
	return false
}

// Parser is one entry on the tokenizer stack.
//
// ArgCount is the number of arguments still expected before the parser is
// left; zero means the parser is only left by a closing delimiter. Level
// counts nested braces opened while this parser is on top.
type Parser struct {
	Name     ParserName
	ArgCount int
	Level    int
	// Embedded marks a Toplevel entered from Scheme with #{.
	Embedded bool
}

// NewParser returns a parser with its default argument count.
func NewParser(name ParserName) Parser {
	p := Parser{Name: name}
	switch name {
	case Relative:
		p.ArgCount = 2
	case SchemeParser, Markup, Chordmode, Lyricmode, Figuremode, Drummode, Notemode,
		With, Context, Header, Paper, Layout, Midi, Score, Book:
		p.ArgCount = 1
	}
	return p
}

// musicLevel is the nesting level from which bare words are music.
func (p Parser) musicLevel() (int, bool) {
	switch p.Name {
	case Score:
		return 1, true
	case Book:
		return 2, true
	case Toplevel, Relative, Chordmode, Notemode, Drummode, Figuremode:
		return 0, true
	}
	return 0, false
}

func (p Parser) mode() (Mode, bool) {
	switch p.Name {
	case Chordmode:
		return ChordMode, true
	case Lyricmode:
		return LyricMode, true
	case Figuremode:
		return FigureMode, true
	case Drummode:
		return DrumMode, true
	case Notemode:
		return MusicMode, true
	}
	return MusicMode, false
}

// Depth is the nesting reported by the tokenizer.
type Depth struct {
	Paren   int
	Bracket int
}

// State is a resumable snapshot of the tokenizer.
type State struct {
	Stack []Parser
	Depth Depth
}

// InitialState is the state at the start of a document.
func InitialState() State {
	return State{Stack: []Parser{NewParser(Toplevel)}}
}
