package tokenize

// Kind is the lexical category of a token.
type Kind uint8

const (
	Unparsed Kind = iota
	Space
	Comment
	BlockCommentStart
	BlockComment
	BlockCommentEnd
	StringStart
	String
	StringEscape
	StringEnd
	Scheme
	SchemeOpenParen
	SchemeCloseParen
	SchemeWord
	SchemeChar
	SchemeComment
	SchemeQuote
	SchemeLilyStart
	SchemeLilyEnd
	Number
	Command
	MarkupCommand
	MarkupWord
	OpenBracket
	CloseBracket
	OpenSimultaneous
	CloseSimultaneous
	ChordStart
	ChordEnd
	ArticulationShorthand
	Fingering
	Direction
	Dynamic
	Slur
	Beam
	Tie
	BarCheck
	Tremolo
	Equals
	VoiceSeparator
	Pitch
	Rest
	Skip
	ChordRepeat
	Duration
	LyricWord
	LyricHyphen
	LyricExtender
	ChordRoot
	ChordModifier
	FigureStart
	FigureEnd
	Figure
	FigureAccidental
	DrumNote
	Identifier
	Error
)

var kindNames = [...]string{
	Unparsed:              "Unparsed",
	Space:                 "Space",
	Comment:               "Comment",
	BlockCommentStart:     "BlockCommentStart",
	BlockComment:          "BlockComment",
	BlockCommentEnd:       "BlockCommentEnd",
	StringStart:           "StringStart",
	String:                "String",
	StringEscape:          "StringEscape",
	StringEnd:             "StringEnd",
	Scheme:                "Scheme",
	SchemeOpenParen:       "SchemeOpenParen",
	SchemeCloseParen:      "SchemeCloseParen",
	SchemeWord:            "SchemeWord",
	SchemeChar:            "SchemeChar",
	SchemeComment:         "SchemeComment",
	SchemeQuote:           "SchemeQuote",
	SchemeLilyStart:       "SchemeLilyStart",
	SchemeLilyEnd:         "SchemeLilyEnd",
	Number:                "Number",
	Command:               "Command",
	MarkupCommand:         "MarkupCommand",
	MarkupWord:            "MarkupWord",
	OpenBracket:           "OpenBracket",
	CloseBracket:          "CloseBracket",
	OpenSimultaneous:      "OpenSimultaneous",
	CloseSimultaneous:     "CloseSimultaneous",
	ChordStart:            "ChordStart",
	ChordEnd:              "ChordEnd",
	ArticulationShorthand: "ArticulationShorthand",
	Fingering:             "Fingering",
	Direction:             "Direction",
	Dynamic:               "Dynamic",
	Slur:                  "Slur",
	Beam:                  "Beam",
	Tie:                   "Tie",
	BarCheck:              "BarCheck",
	Tremolo:               "Tremolo",
	Equals:                "Equals",
	VoiceSeparator:        "VoiceSeparator",
	Pitch:                 "Pitch",
	Rest:                  "Rest",
	Skip:                  "Skip",
	ChordRepeat:           "ChordRepeat",
	Duration:              "Duration",
	LyricWord:             "LyricWord",
	LyricHyphen:           "LyricHyphen",
	LyricExtender:         "LyricExtender",
	ChordRoot:             "ChordRoot",
	ChordModifier:         "ChordModifier",
	FigureStart:           "FigureStart",
	FigureEnd:             "FigureEnd",
	Figure:                "Figure",
	FigureAccidental:      "FigureAccidental",
	DrumNote:              "DrumNote",
	Identifier:            "Identifier",
	Error:                 "Error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsSpaceOrComment reports whether tokens of this kind carry no music.
func (k Kind) IsSpaceOrComment() bool {
	switch k {
	case Space, Comment, BlockCommentStart, BlockComment, BlockCommentEnd, SchemeComment:
		return true
	}
	return false
}

// IsOpen reports whether the kind opens a music expression.
func (k Kind) IsOpen() bool {
	return k == OpenBracket || k == OpenSimultaneous
}

// IsClose reports whether the kind closes a music expression.
func (k Kind) IsClose() bool {
	return k == CloseBracket || k == CloseSimultaneous
}

// IsStringPart reports whether the kind is a piece of a quoted string.
func (k Kind) IsStringPart() bool {
	switch k {
	case StringStart, String, StringEscape, StringEnd:
		return true
	}
	return false
}

// Mode is the input mode a piece of music is written in.
type Mode uint8

const (
	MusicMode Mode = iota
	ChordMode
	LyricMode
	FigureMode
	DrumMode
)

var modeNames = [...]string{"music", "chord", "lyric", "figure", "drum"}

func (m Mode) String() string {
	return modeNames[m]
}

// ParseMode reads a mode name as returned by String.
func ParseMode(s string) (Mode, bool) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), true
		}
	}
	return MusicMode, false
}

// Command returns the LilyPond command that enters the mode, or "" for music.
func (m Mode) Command() string {
	switch m {
	case ChordMode:
		return `\chordmode`
	case LyricMode:
		return `\lyricmode`
	case FigureMode:
		return `\figuremode`
	case DrumMode:
		return `\drummode`
	}
	return ""
}
