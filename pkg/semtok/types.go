package semtok

import (
	"github.com/walteh/golily/pkg/position"
)

// TokenType is the highlighting category of a token. The names are the
// semantic token types editors know.
type TokenType uint32

const (
	// TokenVariable is a user variable: \melody, or the name in melody = ...
	TokenVariable TokenType = iota + 1

	// TokenFunction is a built-in music or markup command (\clef, \bold).
	TokenFunction

	// TokenKeyword is a LilyPond keyword (\score, \header, \with).
	TokenKeyword

	// TokenOperator is =, |, ~, \\ and the like.
	TokenOperator

	TokenString
	TokenComment

	// TokenNumber is a number, a duration, a fingering or a figure.
	TokenNumber

	// TokenNote is a pitch, rest, skip, chord root or drum note.
	TokenNote

	// TokenDecorator is an articulation, dynamic, slur or beam.
	TokenDecorator

	// TokenMacro is Scheme code.
	TokenMacro

	// TokenContext is a context name.
	TokenContext
)

// TokenModifier is a bit set of token characteristics.
type TokenModifier uint32

const (
	ModifierNone TokenModifier = 0

	// ModifierDeclaration marks the name of an assignment.
	ModifierDeclaration TokenModifier = 1 << (iota - 1)

	// ModifierReadonly marks pitches and durations that are command
	// arguments, like the pitch of \relative.
	ModifierReadonly

	// ModifierDefaultLibrary marks commands LilyPond defines.
	ModifierDefaultLibrary
)

// Token is one highlighted piece of a single line.
type Token struct {
	Type     TokenType
	Modifier TokenModifier

	// Position is the text and byte offset of the token.
	Position position.RawPosition
	Range    position.Range
}

var typeNames = [...]string{
	TokenVariable:  "variable",
	TokenFunction:  "function",
	TokenKeyword:   "keyword",
	TokenOperator:  "operator",
	TokenString:    "string",
	TokenComment:   "comment",
	TokenNumber:    "number",
	TokenNote:      "enumMember",
	TokenDecorator: "decorator",
	TokenMacro:     "macro",
	TokenContext:   "type",
}

func (t TokenType) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

var modifierNames = []string{"declaration", "readonly", "defaultLibrary"}

func (m TokenModifier) String() string {
	switch m {
	case ModifierNone:
		return "none"
	case ModifierDeclaration:
		return "declaration"
	case ModifierReadonly:
		return "readonly"
	case ModifierDefaultLibrary:
		return "defaultLibrary"
	default:
		return "unknown"
	}
}

// Legend returns the token type and modifier names in the order Encode
// refers to them.
func Legend() (types, modifiers []string) {
	return append([]string(nil), typeNames[1:]...), append([]string(nil), modifierNames...)
}
