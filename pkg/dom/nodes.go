package dom

import (
	"github.com/walteh/golily/pkg/duration"
	"github.com/walteh/golily/pkg/pitch"
)

// Text is a piece of LilyPond source printed as is.
type Text struct {
	nodeBase
	Text string
}

func NewText(text string) *Text { return &Text{Text: text} }

// Line is source text that sits on a line of its own.
type Line struct {
	nodeBase
	Text string
}

func NewLine(text string) *Line { return &Line{Text: text} }

// Comment is printed as one % comment per line of Text.
type Comment struct {
	nodeBase
	Text string
}

func NewComment(text string) *Comment { return &Comment{Text: text} }

// BlockComment is a %{ %} comment. Text must not contain %}.
type BlockComment struct {
	nodeBase
	Text string
}

func NewBlockComment(text string) *BlockComment { return &BlockComment{Text: text} }

// QuotedString is printed between double quotes, with typographical quotes
// substituted inside when the printer asks for them.
type QuotedString struct {
	nodeBase
	Text string
}

func NewQuotedString(text string) *QuotedString { return &QuotedString{Text: text} }

// Scheme is a Scheme expression, printed after a #.
type Scheme struct {
	nodeBase
	Expr string
}

func NewScheme(expr string) *Scheme { return &Scheme{Expr: expr} }

type Version struct {
	nodeBase
	Version string
}

func NewVersion(version string) *Version { return &Version{Version: version} }

type Include struct {
	nodeBase
	File string
}

func NewInclude(file string) *Include { return &Include{File: file} }

// Newline ends the current line.
type Newline struct {
	nodeBase
}

func NewNewline() *Newline { return &Newline{} }

// BlankLine puts an empty line between its neighbours.
type BlankLine struct {
	nodeBase
}

func NewBlankLine() *BlankLine { return &BlankLine{} }

// Identifier references an assignment: \name.
type Identifier struct {
	nodeBase
	Name string
}

func NewIdentifier(name string) *Identifier { return &Identifier{Name: name} }

// Pitch is printed in the printer's language.
type Pitch struct {
	nodeBase
	Pitch pitch.Pitch
}

func NewPitch(p pitch.Pitch) *Pitch { return &Pitch{Pitch: p} }

type Duration struct {
	nodeBase
	Duration duration.Duration
}

func NewDuration(d duration.Duration) *Duration { return &Duration{Duration: d} }

// KeySignature is \key with the tonic's octave ignored.
type KeySignature struct {
	nodeBase
	Tonic pitch.Pitch
	Mode  string
}

func NewKeySignature(tonic pitch.Pitch, mode string) *KeySignature {
	return &KeySignature{Tonic: tonic, Mode: mode}
}

type TimeSignature struct {
	nodeBase
	Num, Beat int
}

func NewTimeSignature(num, beat int) *TimeSignature {
	return &TimeSignature{Num: num, Beat: beat}
}

type Partial struct {
	nodeBase
	Duration duration.Duration
}

func NewPartial(d duration.Duration) *Partial { return &Partial{Duration: d} }

// Tempo is a \tempo mark. Text, Value or both may be empty.
type Tempo struct {
	nodeBase
	Text     string
	Duration duration.Duration
	Value    string
}

func NewTempo(text string, d duration.Duration, value string) *Tempo {
	return &Tempo{Text: text, Duration: d, Value: value}
}

type Clef struct {
	nodeBase
	Name string
}

func NewClef(name string) *Clef { return &Clef{Name: name} }

// VoiceSeparator is the \\ between simultaneous voices.
type VoiceSeparator struct {
	nodeBase
}

func NewVoiceSeparator() *VoiceSeparator { return &VoiceSeparator{} }

func (n *Text) clone() Node           { c := *n; return &c }
func (n *Line) clone() Node           { c := *n; return &c }
func (n *Comment) clone() Node        { c := *n; return &c }
func (n *BlockComment) clone() Node   { c := *n; return &c }
func (n *QuotedString) clone() Node   { c := *n; return &c }
func (n *Scheme) clone() Node         { c := *n; return &c }
func (n *Version) clone() Node        { c := *n; return &c }
func (n *Include) clone() Node        { c := *n; return &c }
func (n *Newline) clone() Node        { c := *n; return &c }
func (n *BlankLine) clone() Node      { c := *n; return &c }
func (n *Identifier) clone() Node     { c := *n; return &c }
func (n *Pitch) clone() Node          { c := *n; return &c }
func (n *Duration) clone() Node       { c := *n; return &c }
func (n *KeySignature) clone() Node   { c := *n; return &c }
func (n *TimeSignature) clone() Node  { c := *n; return &c }
func (n *Partial) clone() Node        { c := *n; return &c }
func (n *Tempo) clone() Node          { c := *n; return &c }
func (n *Clef) clone() Node           { c := *n; return &c }
func (n *VoiceSeparator) clone() Node { c := *n; return &c }
