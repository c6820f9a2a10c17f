package tokenize

// Action is what the lexer does when a rule matches.
type Action uint8

const (
	// ActToken emits Kind and leaves the state alone.
	ActToken Action = iota
	// ActItem emits Kind and ends an argument of the current parser.
	ActItem
	// ActPush emits Kind and enters Push.
	ActPush
	// ActPop emits Kind and leaves the current parser.
	ActPop
	ActOpen
	ActClose
	ActChordStart
	ActChordEnd
	ActCommand
	ActWord
	ActNumber
	ActStringStart
	ActStringEnd
	ActBlockCommentStart
	ActScheme
	ActSchemeOpen
	ActSchemeClose
	ActSchemeWord
	ActSchemeLilyStart
	ActSchemeLilyEnd
	// ActLeave leaves the current parser without consuming text.
	ActLeave
	ActMarkupCommand
	ActLyricWord
	ActFigure
	ActRelative
)

// Rule is one lexical rule of a parser. Rules earlier in a parser's list win
// when several match at the same position.
type Rule struct {
	Pattern string
	Action  Action
	Kind    Kind
	Push    ParserName
}

func tok(pattern string, k Kind) Rule {
	return Rule{Pattern: pattern, Action: ActToken, Kind: k}
}

func item(pattern string, k Kind) Rule {
	return Rule{Pattern: pattern, Action: ActItem, Kind: k}
}

func act(pattern string, a Action, k Kind) Rule {
	return Rule{Pattern: pattern, Action: a, Kind: k}
}

const (
	commandPattern = `\\[A-Za-z]+(?:-[A-Za-z]+)*`
	numberPattern  = `\d+\.*(?:\*\d+(?:/\d+)?)*`
	dynamicPattern = `\\(?:[<>!]|(?:f{1,5}|p{1,5}|mf|mp|fp|spp?|sff?|sfz|rfz|fz)\b)`
	lyricPattern   = `\pL[\pL\pM'’!?.,;:]*(?:-\pL[\pL\pM'’!?.,;:]*)*`
)

// lilyBase is shared by every parser that reads LilyPond input.
func lilyBase() []Rule {
	return []Rule{
		act(`%\{`, ActBlockCommentStart, BlockCommentStart),
		tok(`%[^\n]*`, Comment),
		act(`"`, ActStringStart, StringStart),
		act(`#\{`, ActSchemeLilyStart, SchemeLilyStart),
		act(`#\}`, ActSchemeLilyEnd, SchemeLilyEnd),
		act(`#`, ActScheme, Scheme),
		tok(`\\\\`, VoiceSeparator),
		item(dynamicPattern, Dynamic),
		tok(`\\[()\[\]]`, Slur),
		act(commandPattern, ActCommand, Command),
	}
}

func musicRules() []Rule {
	rules := lilyBase()
	return append(rules,
		act(`<<`, ActOpen, OpenSimultaneous),
		act(`>>`, ActClose, CloseSimultaneous),
		act(`\{`, ActOpen, OpenBracket),
		act(`\}`, ActClose, CloseBracket),
		act(`<`, ActChordStart, ChordStart),
		act(`>`, ActChordEnd, ChordEnd),
		tok(`[-_^][-_.>|+^!]`, ArticulationShorthand),
		tok(`[-_^]\d`, Fingering),
		tok(`[-_^]`, Direction),
		tok(`~`, Tie),
		tok(`[()]`, Slur),
		tok(`[\[\]]`, Beam),
		tok(`\|`, BarCheck),
		tok(`=`, Equals),
		tok(`:\d*`, Tremolo),
		tok(`\d+/\d+`, Number),
		act(numberPattern, ActNumber, Number),
		act(`[A-Za-z]+`, ActWord, Identifier),
		tok(`\s+`, Space),
	)
}

func chordRules() []Rule {
	return append([]Rule{
		tok(`:[0-9A-Za-z.+^-]*|/\+?`, ChordModifier),
	}, musicRules()...)
}

func lyricRules() []Rule {
	rules := lilyBase()
	return append(rules,
		act(`<<`, ActOpen, OpenSimultaneous),
		act(`>>`, ActClose, CloseSimultaneous),
		act(`\{`, ActOpen, OpenBracket),
		act(`\}`, ActClose, CloseBracket),
		tok(`--`, LyricHyphen),
		tok(`__`, LyricExtender),
		act(`_`, ActLyricWord, Skip),
		tok(`~`, Tie),
		tok(`=`, Equals),
		act(numberPattern, ActNumber, Number),
		act(lyricPattern, ActLyricWord, LyricWord),
		tok(`\s+`, Space),
	)
}

func figureGroupRules() []Rule {
	return []Rule{
		act(`%\{`, ActBlockCommentStart, BlockCommentStart),
		tok(`%[^\n]*`, Comment),
		act(`>`, ActChordEnd, FigureEnd),
		act(`\d+|_`, ActFigure, Figure),
		tok(`\\[+!\\]|[-+!]`, FigureAccidental),
		tok(`[\[\]]`, Beam),
		tok(`\s+`, Space),
	}
}

func markupRules() []Rule {
	rules := lilyBase()
	// commands inside markup are markup commands
	rules[len(rules)-1] = act(commandPattern, ActMarkupCommand, MarkupCommand)
	return append(rules,
		act(`\{`, ActOpen, OpenBracket),
		act(`\}`, ActClose, CloseBracket),
		item(`[^{}"\\\s#%]+`, MarkupWord),
		tok(`\s+`, Space),
	)
}

func sectionRules() []Rule {
	rules := lilyBase()
	return append(rules,
		act(`\{`, ActOpen, OpenBracket),
		act(`\}`, ActClose, CloseBracket),
		tok(`=`, Equals),
		item(`-?\d+(?:\.\d+)?(?:/\d+)?`, Number),
		item(`[A-Za-z]+(?:[-_.][A-Za-z0-9]+)*`, Identifier),
		tok(`\s+`, Space),
	)
}

func schemeRules(list bool) []Rule {
	rules := []Rule{
		act(`"`, ActStringStart, StringStart),
		tok(`;[^\n]*|#!(?s:.*?)!#`, SchemeComment),
		act(`#\{`, ActSchemeLilyStart, SchemeLilyStart),
		item(`#\\(?:[A-Za-z]+|.)`, SchemeChar),
		act(`\(`, ActSchemeOpen, SchemeOpenParen),
		act(`\)`, ActSchemeClose, SchemeCloseParen),
		tok("'|`|,@?", SchemeQuote),
	}
	if !list {
		rules = append(rules, act(`\}|>>`, ActLeave, Unparsed))
	}
	return append(rules,
		act(`[^()"{}\s;']+`, ActSchemeWord, SchemeWord),
		tok(`\s+`, Space),
	)
}

func stringRules() []Rule {
	return []Rule{
		tok(`\\[\s\S]`, StringEscape),
		act(`"`, ActStringEnd, StringEnd),
		tok(`[^"\\]+`, String),
	}
}

func blockCommentRules() []Rule {
	return []Rule{
		act(`%\}`, ActPop, BlockCommentEnd),
		tok(`[^%]+|%`, BlockComment),
	}
}

func lineCommentRules() []Rule {
	return []Rule{
		act(`[^\n]+`, ActPop, Comment),
		act(`\s+`, ActPop, Space),
	}
}

func defaultRules(p ParserName) []Rule {
	switch p {
	case Toplevel, Notemode, Relative, Score, Book, Drummode, Figuremode:
		return musicRules()
	case Chordmode:
		return chordRules()
	case Lyricmode:
		return lyricRules()
	case Markup:
		return markupRules()
	case With, Context, Header, Paper, Layout, Midi:
		return sectionRules()
	case SchemeParser:
		return schemeRules(false)
	case SchemeList:
		return schemeRules(true)
	case StringParser, SchemeString:
		return stringRules()
	case BlockCommentParser:
		return blockCommentRules()
	case LineComment:
		return lineCommentRules()
	}
	return nil
}

// relativeRule makes \relative enter the Relative parser.
func relativeRule() Rule {
	return Rule{Pattern: `\\relative\b`, Action: ActRelative, Kind: Command, Push: Relative}
}
