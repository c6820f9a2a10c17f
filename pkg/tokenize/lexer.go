package tokenize

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/duration"
	"github.com/walteh/golily/pkg/lyerr"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/position"
)

var (
	pitchTail    = regexp.MustCompile(`^(?:'+|,+)?[!?]?(?:=(?:'+|,+)?)?`)
	rootTail     = regexp.MustCompile(`^(?:'+|,+)?`)
	durationTail = regexp.MustCompile(`^\.*(?:\*\d+(?:/\d+)?)*`)
	identTail    = regexp.MustCompile(`^(?:\.[A-Za-z]+)*`)
	digits       = regexp.MustCompile(`^\d+`)
	schemeNumber = regexp.MustCompile(`^[-+]?(?:\d+\.?\d*|\.\d+)(?:/\d+)?$`)
	assignment   = regexp.MustCompile(`^\s*=\s*[^\s',]`)
)

// prefixCommands take arguments of their own, so they do not complete an
// argument of the enclosing parser.
var prefixCommands = map[string]bool{
	"new": true, "context": true, "relative": true, "fixed": true,
	"transpose": true, "transposition": true, "key": true, "octaveCheck": true,
	"skip": true, "partial": true, "tempo": true, "repeat": true,
	"times": true, "tuplet": true, "grace": true, "acciaccatura": true,
	"appoggiatura": true, "slashedGrace": true, "afterGrace": true,
	"override": true, "revert": true, "set": true, "unset": true,
	"once": true, "tweak": true, "include": true, "language": true,
	"version": true, "clef": true, "time": true, "bar": true, "mark": true,
}

// markupArgs lists markup commands that do not take exactly one argument.
var markupArgs = map[string]int{
	"combine": 2, "fontsize": 2, "with-color": 2, "override": 2,
	"translate": 2, "raise": 2, "lower": 2, "pad-markup": 2,
	"magnify": 2, "abs-fontsize": 2, "note": 2, "rotate": 2, "scale": 2,

	"null": 0, "strut": 0, "flat": 0, "sharp": 0, "natural": 0,
	"doubleflat": 0, "doublesharp": 0, "semiflat": 0, "semisharp": 0,
	"sesquiflat": 0, "sesquisharp": 0,
}

// Lexer walks a text with a Tokenizer. It is not safe for concurrent use.
type Lexer struct {
	tz    *Tokenizer
	text  string
	pos   int
	cur   position.Cursor
	stack []Parser

	chord       int
	inFigure    bool
	afterNote   bool
	durationArg bool
	pitchArgs   int
	skipItems   int
	afterNew    int
	lastCommand string
	stringStart int
	language    *pitch.Language
}

// Next returns the next token, or false at the end of the text.
func (lx *Lexer) Next() (Token, bool) {
	for lx.pos < len(lx.text) {
		if t, ok := lx.step(); ok {
			return t, true
		}
	}
	return Token{}, false
}

// All yields the remaining tokens.
func (lx *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			t, ok := lx.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// Collect returns the remaining tokens.
func (lx *Lexer) Collect() []Token {
	var out []Token
	for t := range lx.All() {
		out = append(out, t)
	}
	return out
}

// Stack returns a copy of the parser stack, bottom first.
func (lx *Lexer) Stack() []Parser {
	return append([]Parser{}, lx.stack...)
}

// Depth returns the current Scheme paren and music bracket nesting.
func (lx *Lexer) Depth() Depth {
	var d Depth
	for _, p := range lx.stack {
		d.Bracket += p.Level
		if p.Name == SchemeList {
			d.Paren++
		}
	}
	return d
}

// State captures the lexer so that lexing can resume with Tokenizer.Resume.
func (lx *Lexer) State() State {
	return State{Stack: lx.Stack(), Depth: lx.Depth()}
}

// Mode returns the innermost input mode on the stack.
func (lx *Lexer) Mode() Mode {
	for i := len(lx.stack) - 1; i >= 0; i-- {
		if m, ok := lx.stack[i].mode(); ok {
			return m
		}
	}
	return MusicMode
}

// Language returns the pitch language selected by the text lexed so far, or
// nil when the text did not select one.
func (lx *Lexer) Language() *pitch.Language {
	return lx.language
}

// Offset is the byte offset of the next token.
func (lx *Lexer) Offset() int {
	return lx.pos
}

func (lx *Lexer) top() *Parser {
	return &lx.stack[len(lx.stack)-1]
}

func (lx *Lexer) push(p Parser) {
	lx.stack = append(lx.stack, p)
}

func (lx *Lexer) pop() {
	if len(lx.stack) > 1 {
		if lx.top().Name == Figuremode {
			lx.inFigure = false
		}
		lx.stack = lx.stack[:len(lx.stack)-1]
	}
}

func (lx *Lexer) table() *table {
	top := lx.top()
	if lx.inFigure && top.Name == Figuremode {
		return lx.tz.figureGroup
	}
	return lx.tz.tables[top.Name]
}

func (lx *Lexer) token(k Kind, text string) Token {
	top := lx.top()
	return Token{
		Kind:   k,
		Text:   text,
		Offset: lx.pos,
		Line:   lx.cur.Line,
		Column: lx.cur.Column,
		Depth:  lx.Depth(),
		Parser: top.Name,
		Level:  top.Level,
	}
}

// emit consumes the token text and updates the state every token affects.
func (lx *Lexer) emit(t Token) Token {
	lx.pos += len(t.Text)
	lx.cur.Walk(t.Text)
	t.EndLine, t.EndColumn = lx.cur.Line, lx.cur.Column

	if t.Kind.IsSpaceOrComment() {
		return t
	}
	lx.afterNote = noteLike(t)
	if lx.pitchArgs > 0 && !(t.Kind == Pitch && t.Arg) {
		lx.pitchArgs = 0
	}
	if !t.Kind.IsStringPart() {
		lx.durationArg = false
		lx.lastCommand = ""
	}
	switch {
	case t.Kind == Equals && lx.afterNew == 2:
		lx.skipItems = 1
		lx.afterNew = 0
	case t.Kind != Identifier:
		lx.afterNew = 0
	}
	return t
}

func noteLike(t Token) bool {
	switch t.Kind {
	case Pitch:
		return !t.Arg
	case Rest, Skip, ChordRepeat, ChordEnd, ChordRoot, LyricWord, DrumNote, FigureEnd:
		return true
	}
	return false
}

func (lx *Lexer) problem(err error) Token {
	t := lx.token(Error, lx.text[lx.pos:])
	t.Problem = errors.Errorf("%w at %d:%d", err, lx.cur.Line, lx.cur.Column)
	return lx.emit(t)
}

func (lx *Lexer) step() (Token, bool) {
	rest := lx.text[lx.pos:]
	tbl := lx.table()
	i, start, end := tbl.match(rest)
	switch {
	case i < 0:
		return lx.emit(lx.token(Unparsed, rest)), true
	case start > 0:
		return lx.emit(lx.token(Unparsed, rest[:start])), true
	case end == start && tbl.rules[i].Action != ActLeave:
		_, n := utf8.DecodeRuneInString(rest)
		return lx.emit(lx.token(Unparsed, rest[:n])), true
	}
	return lx.apply(tbl.rules[i], rest[:end])
}

func (lx *Lexer) apply(r Rule, text string) (Token, bool) {
	switch r.Action {
	case ActToken:
		return lx.emit(lx.token(r.Kind, text)), true
	case ActItem:
		t := lx.emit(lx.token(r.Kind, text))
		lx.item()
		return t, true
	case ActPush:
		t := lx.emit(lx.token(r.Kind, text))
		lx.push(NewParser(r.Push))
		return t, true
	case ActPop:
		t := lx.emit(lx.token(r.Kind, text))
		lx.pop()
		return t, true
	case ActOpen:
		t := lx.emit(lx.token(r.Kind, text))
		top := lx.top()
		if top.Name == Relative && top.Level == 0 && top.ArgCount == 2 {
			// \relative without a pitch
			top.ArgCount = 1
		}
		top.Level++
		return t, true
	case ActClose:
		return lx.close(r.Kind, text), true
	case ActChordStart:
		if lx.top().Name == Figuremode {
			t := lx.emit(lx.token(FigureStart, text))
			lx.inFigure = true
			return t, true
		}
		t := lx.emit(lx.token(ChordStart, text))
		lx.chord++
		return t, true
	case ActChordEnd:
		if lx.inFigure {
			t := lx.emit(lx.token(FigureEnd, text))
			lx.inFigure = false
			lx.item()
			return t, true
		}
		if lx.chord == 0 {
			return lx.emit(lx.token(Unparsed, text)), true
		}
		t := lx.emit(lx.token(ChordEnd, text))
		lx.chord--
		lx.item()
		return t, true
	case ActCommand:
		return lx.command(text), true
	case ActMarkupCommand:
		return lx.markupCommand(text), true
	case ActWord:
		return lx.word(text), true
	case ActNumber:
		return lx.number(text), true
	case ActStringStart:
		if !hasStringEnd(lx.text[lx.pos+len(text):]) {
			return lx.problem(lyerr.ErrUnterminatedString), true
		}
		scheme := lx.top().Name.IsScheme()
		t := lx.emit(lx.token(StringStart, text))
		lx.stringStart = lx.pos
		if scheme {
			lx.push(NewParser(SchemeString))
		} else {
			lx.push(NewParser(StringParser))
		}
		return t, true
	case ActStringEnd:
		content := lx.text[lx.stringStart:lx.pos]
		command := lx.lastCommand
		t := lx.emit(lx.token(StringEnd, text))
		lx.pop()
		lx.selectLanguage(command, content)
		lx.item()
		return t, true
	case ActBlockCommentStart:
		if !strings.Contains(lx.text[lx.pos+len(text):], "%}") {
			return lx.problem(lyerr.ErrUnterminatedBlockComment), true
		}
		t := lx.emit(lx.token(BlockCommentStart, text))
		lx.push(NewParser(BlockCommentParser))
		return t, true
	case ActScheme:
		t := lx.emit(lx.token(Scheme, text))
		lx.push(NewParser(SchemeParser))
		return t, true
	case ActSchemeOpen:
		t := lx.emit(lx.token(SchemeOpenParen, text))
		lx.push(NewParser(SchemeList))
		return t, true
	case ActSchemeClose:
		if lx.top().Name != SchemeList {
			return lx.emit(lx.token(Unparsed, text)), true
		}
		t := lx.emit(lx.token(SchemeCloseParen, text))
		lx.pop()
		lx.item()
		return t, true
	case ActSchemeWord:
		k := SchemeWord
		if schemeNumber.MatchString(text) {
			k = Number
		}
		t := lx.emit(lx.token(k, text))
		lx.item()
		return t, true
	case ActSchemeLilyStart:
		t := lx.emit(lx.token(SchemeLilyStart, text))
		lx.push(Parser{Name: Toplevel, Embedded: true})
		return t, true
	case ActSchemeLilyEnd:
		if !lx.embedded() {
			return lx.apply(act(`#`, ActScheme, Scheme), "#")
		}
		t := lx.emit(lx.token(SchemeLilyEnd, text))
		for {
			embedded := lx.top().Embedded
			lx.pop()
			if embedded {
				break
			}
		}
		lx.item()
		return t, true
	case ActLeave:
		if len(lx.stack) == 1 {
			return lx.emit(lx.token(Unparsed, text)), true
		}
		lx.pop()
		return Token{}, false
	case ActLyricWord:
		t := lx.emit(lx.token(r.Kind, text))
		lx.item()
		return t, true
	case ActFigure:
		return lx.emit(lx.token(Figure, text)), true
	case ActRelative:
		t := lx.emit(lx.token(Command, text))
		lx.push(NewParser(Relative))
		lx.pitchArgs = 1
		return t, true
	}
	return lx.emit(lx.token(r.Kind, text)), true
}

func hasStringEnd(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return true
		}
	}
	return false
}

func (lx *Lexer) embedded() bool {
	for _, p := range lx.stack {
		if p.Embedded {
			return true
		}
	}
	return false
}

// canClose reports whether a closing bracket has a matching opener that is
// not hidden behind Scheme or an embedded block.
func (lx *Lexer) canClose() bool {
	for i := len(lx.stack) - 1; i >= 0; i-- {
		p := lx.stack[i]
		if p.Level > 0 {
			return true
		}
		if p.Embedded || p.Name.IsScheme() {
			return false
		}
	}
	return false
}

func (lx *Lexer) close(k Kind, text string) Token {
	if !lx.canClose() {
		t := lx.token(Error, text)
		t.Problem = errors.Errorf("%w: %q at %d:%d", lyerr.ErrUnbalancedBrackets, text, lx.cur.Line, lx.cur.Column)
		return lx.emit(t)
	}
	t := lx.emit(lx.token(k, text))
	for lx.top().Level == 0 {
		lx.pop()
	}
	lx.top().Level--
	lx.endArgument()
	return t
}

// item records that a complete argument was lexed.
func (lx *Lexer) item() {
	if lx.skipItems > 0 {
		lx.skipItems--
		return
	}
	lx.endArgument()
}

// endArgument leaves every parser whose last expected argument is complete.
func (lx *Lexer) endArgument() {
	for len(lx.stack) > 1 {
		top := lx.top()
		if top.Level > 0 {
			return
		}
		switch {
		case top.ArgCount > 1:
			top.ArgCount--
			return
		case top.ArgCount == 0:
			return
		}
		lx.pop()
	}
}

func (lx *Lexer) selectLanguage(command, content string) {
	switch command {
	case "include":
		if name, ok := strings.CutSuffix(content, ".ly"); ok {
			if l, ok := pitch.Lookup(name); ok {
				lx.language = l
			}
		}
	case "language":
		if l, ok := pitch.Lookup(content); ok {
			lx.language = l
		}
	}
}

func (lx *Lexer) isNote(word string) bool {
	if lx.language != nil {
		_, _, ok := lx.language.Read(word)
		return ok
	}
	return pitch.IsNoteName(word)
}

func (lx *Lexer) inMusic() bool {
	if lx.chord > 0 {
		return true
	}
	top := lx.top()
	level, ok := top.musicLevel()
	return ok && top.Level >= level
}

func (lx *Lexer) command(text string) Token {
	name := text[1:]
	switch name {
	case "breve", "longa", "maxima":
		if lx.afterNote || lx.durationArg {
			t := lx.token(Duration, text+durationTail.FindString(lx.text[lx.pos+len(text):]))
			t.Arg = !lx.afterNote
			return lx.emit(t)
		}
	}

	inSection := lx.top().Name.IsSection()
	t := lx.emit(lx.token(Command, text))
	lx.lastCommand = name

	switch name {
	case "chordmode", "chords":
		lx.push(NewParser(Chordmode))
	case "lyricmode", "lyrics", "addlyrics", "oldaddlyrics":
		lx.push(NewParser(Lyricmode))
	case "lyricsto":
		p := NewParser(Lyricmode)
		p.ArgCount = 2
		lx.push(p)
	case "figuremode", "figures":
		lx.push(NewParser(Figuremode))
	case "drummode", "drums":
		lx.push(NewParser(Drummode))
	case "notemode":
		lx.push(NewParser(Notemode))
	case "markup", "markuplist", "markuplines":
		lx.push(NewParser(Markup))
	case "header":
		lx.push(NewParser(Header))
	case "paper":
		lx.push(NewParser(Paper))
	case "layout":
		lx.push(NewParser(Layout))
	case "midi":
		lx.push(NewParser(Midi))
	case "with":
		lx.push(NewParser(With))
	case "score":
		lx.push(NewParser(Score))
	case "book", "bookpart":
		lx.push(NewParser(Book))
	case "context":
		if inSection {
			lx.push(NewParser(Context))
		} else {
			lx.afterNew = 1
		}
	case "new":
		lx.afterNew = 1
	case "relative", "fixed", "key", "transposition", "octaveCheck":
		lx.pitchArgs = 1
	case "transpose":
		lx.pitchArgs = 2
	case "skip":
		lx.afterNote = true
	case "partial", "tempo":
		lx.durationArg = true
	default:
		if !prefixCommands[name] {
			lx.item()
		}
	}
	return t
}

func (lx *Lexer) markupCommand(text string) Token {
	name := text[1:]
	t := lx.emit(lx.token(MarkupCommand, text))
	if name == "score" {
		lx.push(NewParser(Score))
		return t
	}
	n, ok := markupArgs[name]
	if !ok {
		n = 1
	}
	if n == 0 {
		lx.item()
		return t
	}
	p := NewParser(Markup)
	p.ArgCount = n
	lx.push(p)
	return t
}

func (lx *Lexer) word(text string) Token {
	after := lx.text[lx.pos+len(text):]
	top := lx.top()

	if lx.pitchArgs > 0 && lx.isNote(text) {
		relative := top.Name == Relative && top.Level == 0
		t := lx.token(Pitch, text+pitchTail.FindString(after))
		t.Arg = true
		lx.pitchArgs--
		t = lx.emit(t)
		if relative {
			lx.endArgument()
		}
		return t
	}
	if lx.afterNew == 1 {
		t := lx.emit(lx.token(Identifier, text+identTail.FindString(after)))
		lx.afterNew = 2
		return t
	}
	if !lx.inMusic() || (lx.chord == 0 && top.Level == 0 && assignment.MatchString(after)) {
		return lx.identifier(text, after)
	}

	var k Kind
	tail := ""
	switch {
	case text == "r" || text == "R":
		k = Rest
	case text == "s":
		k = Skip
	}
	if k == Unparsed {
		switch lx.Mode() {
		case ChordMode:
			switch {
			case text == "q":
				k = ChordRepeat
			case lx.isNote(text):
				k, tail = ChordRoot, rootTail.FindString(after)
			}
		case DrumMode:
			if IsDrumName(text) {
				k = DrumNote
			}
		case FigureMode:
		default:
			switch {
			case text == "q":
				k = ChordRepeat
			case lx.isNote(text):
				k, tail = Pitch, pitchTail.FindString(after)
			}
		}
	}
	if k == Unparsed {
		return lx.identifier(text, after)
	}
	t := lx.emit(lx.token(k, text+tail))
	lx.item()
	return t
}

func (lx *Lexer) identifier(text, after string) Token {
	t := lx.emit(lx.token(Identifier, text+identTail.FindString(after)))
	lx.item()
	return t
}

func (lx *Lexer) number(text string) Token {
	if lx.afterNote || lx.durationArg {
		if duration.Valid(text) {
			t := lx.token(Duration, text)
			t.Arg = !lx.afterNote
			return lx.emit(t)
		}
	}
	return lx.emit(lx.token(Number, digits.FindString(text)))
}
