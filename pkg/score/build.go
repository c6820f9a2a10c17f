package score

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/walteh/golily/pkg/config"
	"github.com/walteh/golily/pkg/dom"
	"github.com/walteh/golily/pkg/duration"
	"github.com/walteh/golily/pkg/pitch"
)

// LilyPond identifiers in plain form are letters only.
var identifierRx = regexp.MustCompile(`^[A-Za-z]+$`)

// Build validates def and returns the document for it: version, header, a
// global variable, one stub variable per music expression and a \score
// combining them.
func Build(ctx context.Context, def *Definition) (*dom.Document, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	b := &builder{def: def, lang: def.language(), names: map[string]int{}}

	doc := dom.NewDocument()
	doc.Language = b.lang

	version := def.Version
	if version == "" {
		version = config.DefaultVersion
	}
	doc.Append(dom.NewVersion(version))
	if def.Language != "" && b.lang != pitch.Default() {
		doc.Append(dom.NewLine(`\language "` + def.Language + `"`))
	}

	if header := b.header(); header != nil {
		doc.Append(dom.NewBlankLine(), header)
	}
	doc.Append(dom.NewBlankLine(), dom.NewAssignment("global", b.global()))

	staves := make([]dom.Node, 0, len(def.Parts))
	for _, p := range def.Parts {
		staves = append(staves, b.part(p))
	}
	for _, a := range b.assignments {
		doc.Append(dom.NewBlankLine(), a)
	}

	music := dom.NewSimr(staves...)
	music.Multiline = len(staves) > 1
	sc := dom.NewScore(music, dom.NewLayout())
	if def.Midi {
		sc.Append(dom.NewMidi())
	}
	doc.Append(dom.NewBlankLine(), sc)

	zerolog.Ctx(ctx).Debug().Int("parts", len(def.Parts)).Int("variables", len(b.assignments)).Msg("built score")
	return doc, nil
}

type builder struct {
	def         *Definition
	lang        *pitch.Language
	names       map[string]int
	assignments []*dom.Assignment
}

func (b *builder) header() *dom.Header {
	h := dom.NewHeader()
	fields := []struct {
		name  string
		value *string
	}{
		{"title", b.def.Title},
		{"subtitle", b.def.Subtitle},
		{"composer", b.def.Composer},
		{"poet", b.def.Poet},
	}
	for _, f := range fields {
		if f.value != nil && *f.value != "" {
			h.SetString(f.name, *f.value)
		}
	}
	switch {
	case b.def.Tagline == nil:
	case *b.def.Tagline == "":
		h.Set("tagline", dom.NewScheme("#f"))
	default:
		h.SetString("tagline", *b.def.Tagline)
	}
	if h.Len() == 0 {
		return nil
	}
	return h
}

// global holds the key, time, upbeat and tempo. Errors were reported by
// Validate.
func (b *builder) global() *dom.Seq {
	seq := dom.NewSeq()
	if b.def.Key != "" {
		tonic, mode, _ := b.def.key()
		seq.Append(dom.NewKeySignature(tonic, mode))
	}
	if b.def.Time != "" {
		num, beat, _ := b.def.time()
		seq.Append(dom.NewTimeSignature(num, beat))
	}
	if b.def.Partial != "" {
		seq.Append(dom.NewPartial(duration.MustParse(b.def.Partial)))
	}
	if b.def.Tempo != "" || b.def.Metronome != "" {
		var (
			d     duration.Duration
			value string
		)
		if b.def.Metronome != "" {
			d, value, _ = b.def.metronome()
		}
		seq.Append(dom.NewTempo(b.def.Tempo, d, value))
	}
	return seq
}

// name returns base, or base with a roman numeral when base is taken.
func (b *builder) name(base string) string {
	b.names[base]++
	if n := b.names[base]; n > 1 {
		return base + roman(n)
	}
	return base
}

func (b *builder) assign(name string, value dom.Node) *dom.Identifier {
	b.assignments = append(b.assignments, dom.NewAssignment(name, value))
	return dom.NewIdentifier(name)
}

// music adds a \relative stub starting with \global and returns the
// reference to it.
func (b *builder) music(name string, octave int, transposition *pitch.Pitch) *dom.Identifier {
	global := dom.NewIdentifier("global")
	global.After = 1
	seq := dom.NewSeq(global)
	if transposition != nil {
		t := dom.NewTransposition(dom.NewPitch(*transposition))
		t.After = 1
		seq.Append(t)
	}
	seq.Append(dom.NewComment("Music follows here."), dom.NewBlankLine())
	return b.assign(name, dom.NewRelative(dom.NewPitch(pitch.Pitch{Octave: octave}), seq))
}

func (b *builder) modeMusic(name, mode, comment string, global bool) *dom.Identifier {
	seq := dom.NewSeq()
	if global {
		g := dom.NewIdentifier("global")
		g.After = 1
		seq.Append(g)
	}
	seq.Append(dom.NewComment(comment), dom.NewBlankLine())
	return b.assign(name, dom.NewInputMode(mode, seq))
}

func (b *builder) lyrics(name string) *dom.Identifier {
	return b.modeMusic(name, "lyricmode", "Lyrics follow here.", false)
}

func (b *builder) part(p *Part) dom.Node {
	switch p.Kind {
	case PianoPart:
		return b.piano(p)
	case ChoirPart:
		return b.choir(p)
	case DrumsPart:
		name := "drum"
		if p.Name != "" {
			name = p.Name
		}
		ds := dom.DrumStaff(b.modeMusic(b.name(name), "drummode", "Drums follow here.", true))
		b.instrumentNames(ds, p)
		return ds
	case ChordsPart:
		return dom.ChordNames(b.modeMusic(b.name(p.baseName("chordNames")), "chordmode", "Chords follow here.", true))
	case LyricsPart:
		return dom.Lyrics(b.lyrics(b.name(p.baseName("verse"))))
	}
	return b.staff(p)
}

func (b *builder) staff(p *Part) dom.Node {
	var transposition *pitch.Pitch
	if p.Transposition != "" {
		t, _ := p.transposition(b.lang)
		transposition = &t
	}
	ref := b.music(b.name(p.baseName("melody")), p.octave(1), transposition)
	music := dom.NewSeqr()
	if p.Clef != "" {
		music.Append(dom.NewClef(p.Clef))
	}
	music.Append(ref)
	st := dom.Staff(music)
	b.instrumentNames(st, p)
	return st
}

func (b *builder) piano(p *Part) dom.Node {
	prefix := p.Name
	if prefix == "" {
		prefix = camel(p.Instrument)
	}
	rightName := b.name(join(prefix, "right"))
	right := b.music(rightName, p.octave(2), nil)
	leftName := b.name(join(prefix, "left"))
	left := b.music(leftName, p.octave(2)-2, nil)

	staves := dom.NewSim(
		dom.NewContext("Staff", rightName, right),
		dom.NewContext("Staff", leftName, dom.NewSeqr(dom.NewClef("bass"), left)),
	)
	staves.Multiline = true
	ps := dom.PianoStaff(staves)
	if p.Instrument == "" {
		p = withInstrument(p, "Piano")
	}
	b.instrumentNames(ps, p)
	return ps
}

type choirVoice struct {
	name, clef string
	octave     int
}

var choirVoices = map[rune]choirVoice{
	'S': {"soprano", "", 2},
	'A': {"alto", "", 1},
	'T': {"tenor", "treble_8", 1},
	'B': {"bass", "bass", 0},
}

func (b *builder) choir(p *Part) dom.Node {
	letters := strings.ToUpper(p.Voices)
	if letters == "" {
		letters = "SATB"
	}
	stanzas := max(p.Stanzas, 1)

	staves := dom.NewSim()
	staves.Multiline = true
	for _, letter := range letters {
		v := choirVoices[letter]
		name := b.name(v.name)
		ref := b.music(name, v.octave, nil)

		var music dom.Node = ref
		if v.clef != "" {
			music = dom.NewSeqr(dom.NewClef(v.clef), ref)
		}
		st := dom.Staff(dom.NewContext("Voice", name, music))
		st.With().SetString("instrumentName", titleCase(v.name))
		staves.Append(st)

		for i := 1; i <= stanzas; i++ {
			verse := name + "Verse"
			if stanzas > 1 {
				verse += roman(i)
			}
			staves.Append(dom.Lyrics(dom.NewLyricsTo(name, b.lyrics(verse))))
		}
	}
	cs := dom.ChoirStaff(staves)
	b.instrumentNames(cs, p)
	return cs
}

func (b *builder) instrumentNames(ctx *dom.Context, p *Part) {
	if p.Instrument != "" {
		ctx.With().SetString("instrumentName", p.Instrument)
	}
	if p.Short != "" {
		ctx.With().SetString("shortInstrumentName", p.Short)
	}
	if b.def.Midi && p.MidiInstrument != "" {
		ctx.With().SetString("midiInstrument", p.MidiInstrument)
	}
}

func (p *Part) octave(def int) int {
	if p.Octave != nil {
		return *p.Octave
	}
	return def
}

// baseName is the variable name for the part's music before numbering.
func (p *Part) baseName(fallback string) string {
	if p.Name != "" {
		return p.Name
	}
	if c := camel(p.Instrument); c != "" {
		return c
	}
	return fallback
}

func withInstrument(p *Part, name string) *Part {
	c := *p
	c.Instrument = name
	return &c
}

// camel turns "Violin 1" into "violin", keeping letters only.
func camel(s string) string {
	var sb strings.Builder
	for i, word := range strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) || r > unicode.MaxASCII }) {
		if i == 0 {
			sb.WriteString(strings.ToLower(word))
		} else {
			sb.WriteString(titleCase(strings.ToLower(word)))
		}
	}
	return sb.String()
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + titleCase(name)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	var sb strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String()
}
