// Package score builds the skeleton of a LilyPond score from a short
// definition: titles, key, time, tempo and a list of parts.
package score

import (
	"bytes"
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/walteh/golily/pkg/docinfo"
	"github.com/walteh/golily/pkg/duration"
	"github.com/walteh/golily/pkg/pitch"
)

var ErrInvalidDefinition = errors.Base("invalid score definition")

// Definition describes a score to build.
type Definition struct {
	Title    *string `hcl:"title,optional" yaml:"title,omitempty"`
	Subtitle *string `hcl:"subtitle,optional" yaml:"subtitle,omitempty"`
	Composer *string `hcl:"composer,optional" yaml:"composer,omitempty"`
	Poet     *string `hcl:"poet,optional" yaml:"poet,omitempty"`
	// Tagline nil keeps LilyPond's tagline, "" removes it.
	Tagline *string `hcl:"tagline,optional" yaml:"tagline,omitempty"`

	Version  string `hcl:"version,optional" yaml:"version,omitempty"`
	Language string `hcl:"language,optional" yaml:"language,omitempty"`
	// Key is a tonic and an optional mode: "bes major", "fis minor".
	Key  string `hcl:"key,optional" yaml:"key,omitempty"`
	Time string `hcl:"time,optional" yaml:"time,omitempty"`
	// Partial is the duration of the upbeat.
	Partial string `hcl:"partial,optional" yaml:"partial,omitempty"`
	// Tempo is a tempo text, Metronome a mark like "4=96".
	Tempo     string `hcl:"tempo,optional" yaml:"tempo,omitempty"`
	Metronome string `hcl:"metronome,optional" yaml:"metronome,omitempty"`
	Midi      bool   `hcl:"midi,optional" yaml:"midi,omitempty"`

	// Parts are part blocks in HCL, see decodeHCL.
	Parts []*Part `yaml:"parts"`
}

// Part is one instrument or group of staves.
type Part struct {
	// Kind is the label of a part block in HCL.
	Kind PartKind `yaml:"kind"`
	// Name is the identifier of the music. Defaults to the instrument or
	// the kind.
	Name       string `hcl:"name,optional" yaml:"name,omitempty"`
	Instrument string `hcl:"instrument,optional" yaml:"instrument,omitempty"`
	Short      string `hcl:"short,optional" yaml:"short,omitempty"`
	Clef       string `hcl:"clef,optional" yaml:"clef,omitempty"`
	// Octave is the octave of the \relative pitch, in octave marks.
	Octave         *int   `hcl:"octave,optional" yaml:"octave,omitempty"`
	Transposition  string `hcl:"transposition,optional" yaml:"transposition,omitempty"`
	MidiInstrument string `hcl:"midi_instrument,optional" yaml:"midi_instrument,omitempty"`
	// Voices are the choir voices as letters from SATB.
	Voices  string `hcl:"voices,optional" yaml:"voices,omitempty"`
	Stanzas int    `hcl:"stanzas,optional" yaml:"stanzas,omitempty"`
}

type PartKind string

const (
	StaffPart  PartKind = "staff"
	PianoPart  PartKind = "piano"
	ChoirPart  PartKind = "choir"
	DrumsPart  PartKind = "drums"
	ChordsPart PartKind = "chords"
	LyricsPart PartKind = "lyrics"
)

func (k PartKind) valid() bool {
	switch k {
	case StaffPart, PianoPart, ChoirPart, DrumsPart, ChordsPart, LyricsPart:
		return true
	}
	return false
}

// LoadDefinition reads a definition from a YAML or HCL file.
func LoadDefinition(ctx context.Context, fs afero.Fs, path string) (*Definition, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading score definition: %w", err)
	}
	var def Definition
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&def); err != nil {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
	} else {
		file, diags := hclparse.NewParser().ParseHCL(data, path)
		if diags.HasErrors() {
			return nil, errors.Errorf("parsing HCL: %s", diags.Error())
		}
		if err := decodeHCL(file.Body, &def); err != nil {
			return nil, err
		}
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("parts", len(def.Parts)).Msg("loaded score definition")
	return &def, nil
}

// hclDefinition splits the part blocks off a definition body. gohcl sets
// block labels only into plain strings, so the kind is read here and each
// part body is decoded on its own.
type hclDefinition struct {
	Parts []*hclPart `hcl:"part,block"`
	Body  hcl.Body   `hcl:",remain"`
}

type hclPart struct {
	Kind string   `hcl:"kind,label"`
	Body hcl.Body `hcl:",remain"`
}

func decodeHCL(body hcl.Body, def *Definition) error {
	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	var wire hclDefinition
	if diags := gohcl.DecodeBody(body, evalCtx, &wire); diags.HasErrors() {
		return errors.Errorf("decoding HCL: %s", diags.Error())
	}
	if diags := gohcl.DecodeBody(wire.Body, evalCtx, def); diags.HasErrors() {
		return errors.Errorf("decoding HCL: %s", diags.Error())
	}
	def.Parts = nil
	for _, wp := range wire.Parts {
		p := &Part{Kind: PartKind(wp.Kind)}
		if diags := gohcl.DecodeBody(wp.Body, evalCtx, p); diags.HasErrors() {
			return errors.Errorf("decoding HCL part %q: %s", wp.Kind, diags.Error())
		}
		def.Parts = append(def.Parts, p)
	}
	return nil
}

var (
	timeRx      = regexp.MustCompile(`^\s*(\d+)\s*/\s*(\d+)\s*$`)
	metronomeRx = regexp.MustCompile(`^\s*(\S+?)\s*=\s*(\d+(?:\s*-\s*\d+)?)\s*$`)
	modes       = map[string]bool{
		"major": true, "minor": true, "ionian": true, "dorian": true, "phrygian": true,
		"lydian": true, "mixolydian": true, "aeolian": true, "locrian": true,
	}
)

func (d *Definition) language() *pitch.Language {
	if l, ok := pitch.Lookup(d.Language); ok {
		return l
	}
	return pitch.Default()
}

func (d *Definition) key() (pitch.Pitch, string, error) {
	fields := strings.Fields(d.Key)
	if len(fields) == 0 || len(fields) > 2 {
		return pitch.Pitch{}, "", errors.Errorf("%w: key %q", ErrInvalidDefinition, d.Key)
	}
	n, ok := d.language().ReadNote(fields[0])
	if !ok {
		return pitch.Pitch{}, "", errors.Errorf("%w: key %q: unknown note %q", ErrInvalidDefinition, d.Key, fields[0])
	}
	mode := "major"
	if len(fields) == 2 {
		mode = strings.TrimPrefix(fields[1], `\`)
	}
	if !modes[mode] {
		return pitch.Pitch{}, "", errors.Errorf("%w: key %q: unknown mode %q", ErrInvalidDefinition, d.Key, mode)
	}
	return n.Pitch, mode, nil
}

func (d *Definition) time() (int, int, error) {
	m := timeRx.FindStringSubmatch(d.Time)
	if m == nil {
		return 0, 0, errors.Errorf("%w: time %q", ErrInvalidDefinition, d.Time)
	}
	num, _ := strconv.Atoi(m[1])
	beat, _ := strconv.Atoi(m[2])
	if num == 0 || beat == 0 {
		return 0, 0, errors.Errorf("%w: time %q", ErrInvalidDefinition, d.Time)
	}
	return num, beat, nil
}

func (d *Definition) metronome() (duration.Duration, string, error) {
	m := metronomeRx.FindStringSubmatch(d.Metronome)
	if m == nil {
		return duration.Duration{}, "", errors.Errorf("%w: metronome %q", ErrInvalidDefinition, d.Metronome)
	}
	dur, err := duration.Parse(m[1])
	if err != nil {
		return duration.Duration{}, "", errors.Errorf("%w: metronome %q: %s", ErrInvalidDefinition, d.Metronome, err.Error())
	}
	return dur, strings.ReplaceAll(m[2], " ", ""), nil
}

func (p *Part) transposition(lang *pitch.Language) (pitch.Pitch, error) {
	n, ok := lang.ReadNote(p.Transposition)
	if !ok {
		return pitch.Pitch{}, errors.Errorf("%w: transposition %q", ErrInvalidDefinition, p.Transposition)
	}
	return n.Pitch, nil
}

// Validate reports every problem of the definition.
func (d *Definition) Validate() error {
	var err error
	add := func(e error) { err = multierr.Append(err, e) }

	if d.Version != "" {
		if _, verr := docinfo.ParseVersion(d.Version); verr != nil {
			add(errors.Errorf("%w: %s", ErrInvalidDefinition, verr.Error()))
		}
	}
	if d.Language != "" {
		if _, ok := pitch.Lookup(d.Language); !ok {
			add(errors.Errorf("%w: unknown language %q", ErrInvalidDefinition, d.Language))
		}
	}
	if d.Key != "" {
		if _, _, kerr := d.key(); kerr != nil {
			add(kerr)
		}
	}
	if d.Time != "" {
		if _, _, terr := d.time(); terr != nil {
			add(terr)
		}
	}
	if d.Partial != "" {
		if _, perr := duration.Parse(d.Partial); perr != nil {
			add(errors.Errorf("%w: partial %q", ErrInvalidDefinition, d.Partial))
		}
	}
	if d.Metronome != "" {
		if _, _, merr := d.metronome(); merr != nil {
			add(merr)
		}
	}
	if len(d.Parts) == 0 {
		add(errors.Errorf("%w: no parts", ErrInvalidDefinition))
	}
	for i, p := range d.Parts {
		if !p.Kind.valid() {
			add(errors.Errorf("%w: part %d: unknown kind %q", ErrInvalidDefinition, i, p.Kind))
		}
		if p.Name != "" && !identifierRx.MatchString(p.Name) {
			add(errors.Errorf("%w: part %d: %q is not a valid identifier", ErrInvalidDefinition, i, p.Name))
		}
		if p.Transposition != "" {
			if _, terr := p.transposition(d.language()); terr != nil {
				add(errors.Errorf("part %d: %w", i, terr))
			}
		}
		if strings.Trim(strings.ToUpper(p.Voices), "SATB") != "" {
			add(errors.Errorf("%w: part %d: voices %q must be letters from SATB", ErrInvalidDefinition, i, p.Voices))
		}
		if p.Stanzas < 0 || p.Stanzas > 20 {
			add(errors.Errorf("%w: part %d: %d stanzas", ErrInvalidDefinition, i, p.Stanzas))
		}
	}
	return err
}
