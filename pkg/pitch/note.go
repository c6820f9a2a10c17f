package pitch

import (
	"regexp"
)

// NoteText is the written form of a note token split into its parts.
//
//	cis''!=''
//	 |  | | |
//	 |  | | +-- OctaveCheck "=''"
//	 |  | +---- Cautionary "!"
//	 |  +------ Octave "''"
//	 +--------- Name "cis"
type NoteText struct {
	Name        string
	Cautionary  string
	Octave      string
	OctaveCheck string
}

var noteTextRx = regexp.MustCompile(`^([a-z]+)('*|,*)([!?]?)(\s*=(?:'*|,*))?$`)

// SplitNote splits the text of a pitch token. It reports false when text is
// not shaped like a note.
func SplitNote(text string) (NoteText, bool) {
	m := noteTextRx.FindStringSubmatch(text)
	if m == nil {
		return NoteText{}, false
	}
	return NoteText{Name: m[1], Octave: m[2], Cautionary: m[3], OctaveCheck: m[4]}, true
}

func (n NoteText) String() string {
	return n.Name + n.Octave + n.Cautionary + n.OctaveCheck
}

// HasOctaveCheck reports whether the note carries an =octave check.
func (n NoteText) HasOctaveCheck() bool {
	return n.OctaveCheck != ""
}

// CheckOctave returns the octave of the =octave check.
func (n NoteText) CheckOctave() int {
	return OctaveFromString(n.OctaveCheck)
}

// Note is a pitch read from a token together with its written form.
type Note struct {
	Pitch
	Text NoteText
}

// ReadNote parses token text in language l. The Octave of the returned pitch
// holds the written octave marks.
func (l *Language) ReadNote(text string) (Note, bool) {
	nt, ok := SplitNote(text)
	if !ok {
		return Note{}, false
	}
	step, alter, ok := l.Read(nt.Name)
	if !ok {
		return Note{}, false
	}
	return Note{
		Pitch: Pitch{Octave: OctaveFromString(nt.Octave), Step: step, Alter: alter},
		Text:  nt,
	}, true
}

// WriteNote renders p keeping the cautionary mark of n, replacing name and
// octave. When the note had an octave check it is rewritten to check.
func (l *Language) WriteNote(n NoteText, p Pitch, check *int) (string, error) {
	name, err := l.Write(p.Step, p.Alter)
	if err != nil {
		return "", err
	}
	out := NoteText{Name: name, Cautionary: n.Cautionary, Octave: OctaveString(p.Octave)}
	if n.HasOctaveCheck() {
		out.OctaveCheck = "="
		if check != nil {
			out.OctaveCheck += OctaveString(*check)
		} else {
			out.OctaveCheck = n.OctaveCheck
		}
	}
	return out.String(), nil
}
