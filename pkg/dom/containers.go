package dom

// Body is a plain list of top-level statements, one per line.
type Body struct{ branch }

func NewBody(children ...Node) *Body {
	n := &Body{}
	n.Multiline = true
	n.init(n, children)
	return n
}

// Seq is sequential music: { }.
type Seq struct{ branch }

func NewSeq(children ...Node) *Seq {
	n := &Seq{}
	n.init(n, children)
	return n
}

// Sim is simultaneous music: << >>.
type Sim struct{ branch }

func NewSim(children ...Node) *Sim {
	n := &Sim{}
	n.init(n, children)
	return n
}

// Seqr is a Seq that drops its braces around a single simple child.
type Seqr struct{ branch }

func NewSeqr(children ...Node) *Seqr {
	n := &Seqr{}
	n.init(n, children)
	return n
}

// Simr is a Sim that drops its brackets around a single simple child.
type Simr struct{ branch }

func NewSimr(children ...Node) *Simr {
	n := &Simr{}
	n.init(n, children)
	return n
}

// SimPoly is simultaneous music with the children separated by \\.
type SimPoly struct{ branch }

func NewSimPoly(children ...Node) *SimPoly {
	n := &SimPoly{}
	n.init(n, children)
	return n
}

// Assignment is name = value. The value is the first child.
type Assignment struct {
	branch
	Name string
}

func NewAssignment(name string, value Node) *Assignment {
	n := &Assignment{Name: name}
	n.init(n, []Node{value})
	return n
}

// Value returns the assigned node, or nil.
func (n *Assignment) Value() Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// SetValue replaces the assigned node.
func (n *Assignment) SetValue(v Node) {
	if old := n.Value(); old != nil {
		n.Replace(old, v)
		return
	}
	n.Append(v)
}

type Score struct{ branch }

func NewScore(children ...Node) *Score {
	n := &Score{}
	n.Multiline = true
	n.init(n, children)
	return n
}

type Book struct{ branch }

func NewBook(children ...Node) *Book {
	n := &Book{}
	n.Multiline = true
	n.init(n, children)
	return n
}

// section is a block whose assignments are looked up by name.
type section struct{ branch }

// Set assigns value to name, updating an existing assignment in place.
func (s *section) Set(name string, value Node) *Assignment {
	if a := s.assignment(name); a != nil {
		a.SetValue(value)
		return a
	}
	a := NewAssignment(name, value)
	s.Append(a)
	return a
}

// SetString assigns a quoted string.
func (s *section) SetString(name, value string) *Assignment {
	return s.Set(name, NewQuotedString(value))
}

// Get returns the value assigned to name.
func (s *section) Get(name string) (Node, bool) {
	if a := s.assignment(name); a != nil {
		return a.Value(), true
	}
	return nil, false
}

// Unset removes the assignment to name.
func (s *section) Unset(name string) bool {
	if a := s.assignment(name); a != nil {
		return s.Remove(a)
	}
	return false
}

func (s *section) assignment(name string) *Assignment {
	for _, c := range s.children {
		if a, ok := c.(*Assignment); ok && a.Name == name {
			return a
		}
	}
	return nil
}

func newSection[T Container](n T, s *section, children []Node) T {
	s.Multiline = true
	s.init(n, children)
	return n
}

type Header struct{ section }

func NewHeader(children ...Node) *Header {
	n := &Header{}
	return newSection(n, &n.section, children)
}

type Paper struct{ section }

func NewPaper(children ...Node) *Paper {
	n := &Paper{}
	return newSection(n, &n.section, children)
}

type Layout struct{ section }

func NewLayout(children ...Node) *Layout {
	n := &Layout{}
	return newSection(n, &n.section, children)
}

type Midi struct{ section }

func NewMidi(children ...Node) *Midi {
	n := &Midi{}
	return newSection(n, &n.section, children)
}

// With holds context modifications: \with { }.
type With struct{ section }

func NewWith(children ...Node) *With {
	n := &With{}
	return newSection(n, &n.section, children)
}

// ContextDef modifies a context inside \layout or \midi:
// \context { \Staff ... }.
type ContextDef struct {
	section
	Kind string
}

func NewContextDef(kind string, children ...Node) *ContextDef {
	n := &ContextDef{Kind: kind}
	return newSection(n, &n.section, children)
}

// Context creates a context: \new Kind = "Name" \with { } music.
type Context struct {
	branch
	Kind string
	Name string
}

func NewContext(kind, name string, children ...Node) *Context {
	n := &Context{Kind: kind, Name: name}
	n.init(n, children)
	return n
}

// With returns the \with block of the context, adding one if needed.
func (n *Context) With() *With {
	for _, c := range n.children {
		if w, ok := c.(*With); ok {
			return w
		}
	}
	w := NewWith()
	n.Insert(0, w)
	return w
}

func Staff(children ...Node) *Context         { return NewContext("Staff", "", children...) }
func PianoStaff(children ...Node) *Context    { return NewContext("PianoStaff", "", children...) }
func ChoirStaff(children ...Node) *Context    { return NewContext("ChoirStaff", "", children...) }
func GrandStaff(children ...Node) *Context    { return NewContext("GrandStaff", "", children...) }
func StaffGroup(children ...Node) *Context    { return NewContext("StaffGroup", "", children...) }
func Lyrics(children ...Node) *Context        { return NewContext("Lyrics", "", children...) }
func Voice(children ...Node) *Context         { return NewContext("Voice", "", children...) }
func DrumStaff(children ...Node) *Context     { return NewContext("DrumStaff", "", children...) }
func ChordNames(children ...Node) *Context    { return NewContext("ChordNames", "", children...) }
func FiguredBass(children ...Node) *Context   { return NewContext("FiguredBass", "", children...) }
func RhythmicStaff(children ...Node) *Context { return NewContext("RhythmicStaff", "", children...) }
func TabStaff(children ...Node) *Context      { return NewContext("TabStaff", "", children...) }

// Relative is \relative followed by its children, usually a Pitch and a Seq.
type Relative struct{ branch }

func NewRelative(children ...Node) *Relative {
	n := &Relative{}
	n.init(n, children)
	return n
}

// Transposition is \transposition followed by a Pitch.
type Transposition struct{ branch }

func NewTransposition(p *Pitch) *Transposition {
	n := &Transposition{}
	n.init(n, []Node{p})
	return n
}

// InputMode switches the input mode: \chordmode, \lyricmode, \drummode ...
type InputMode struct {
	branch
	Mode string
}

func NewInputMode(mode string, children ...Node) *InputMode {
	n := &InputMode{Mode: mode}
	n.init(n, children)
	return n
}

// LyricsTo is \lyricsto "Voice" followed by the lyrics.
type LyricsTo struct {
	branch
	Voice string
}

func NewLyricsTo(voice string, children ...Node) *LyricsTo {
	n := &LyricsTo{Voice: voice}
	n.init(n, children)
	return n
}

// Markup is \markup followed by its children.
type Markup struct{ branch }

func NewMarkup(children ...Node) *Markup {
	n := &Markup{}
	n.init(n, children)
	return n
}

// MarkupCmd is a markup command applied to its children: \bold "text".
type MarkupCmd struct {
	branch
	Name string
}

func NewMarkupCmd(name string, children ...Node) *MarkupCmd {
	n := &MarkupCmd{Name: name}
	n.init(n, children)
	return n
}

// MarkupEncl is a markup command with its children in braces:
// \column { ... }.
type MarkupEncl struct {
	branch
	Name string
}

func NewMarkupEncl(name string, children ...Node) *MarkupEncl {
	n := &MarkupEncl{Name: name}
	n.init(n, children)
	return n
}

func (n *Body) clone() Node          { c := *n; return &c }
func (n *Seq) clone() Node           { c := *n; return &c }
func (n *Sim) clone() Node           { c := *n; return &c }
func (n *Seqr) clone() Node          { c := *n; return &c }
func (n *Simr) clone() Node          { c := *n; return &c }
func (n *SimPoly) clone() Node       { c := *n; return &c }
func (n *Assignment) clone() Node    { c := *n; return &c }
func (n *Score) clone() Node         { c := *n; return &c }
func (n *Book) clone() Node          { c := *n; return &c }
func (n *Header) clone() Node        { c := *n; return &c }
func (n *Paper) clone() Node         { c := *n; return &c }
func (n *Layout) clone() Node        { c := *n; return &c }
func (n *Midi) clone() Node          { c := *n; return &c }
func (n *With) clone() Node          { c := *n; return &c }
func (n *ContextDef) clone() Node    { c := *n; return &c }
func (n *Context) clone() Node       { c := *n; return &c }
func (n *Relative) clone() Node      { c := *n; return &c }
func (n *Transposition) clone() Node { c := *n; return &c }
func (n *InputMode) clone() Node     { c := *n; return &c }
func (n *LyricsTo) clone() Node      { c := *n; return &c }
func (n *Markup) clone() Node        { c := *n; return &c }
func (n *MarkupCmd) clone() Node     { c := *n; return &c }
func (n *MarkupEncl) clone() Node    { c := *n; return &c }
