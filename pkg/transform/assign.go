package transform

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/tokenize"
)

var identifierRx = regexp.MustCompile(`^[A-Za-z]+(?:[-_][A-Za-z]+)*$`)

var modeNames = map[tokenize.Mode]string{
	tokenize.MusicMode:  "music",
	tokenize.LyricMode:  "lyrics",
	tokenize.ChordMode:  "harmony",
	tokenize.FigureMode: "figures",
	tokenize.DrumMode:   "drums",
}

// CutAndAssign moves text[start:end] into a new toplevel assignment and
// puts a reference to it in its place. The music is wrapped in the command of
// the input mode at start. The assignment goes on the last toplevel blank
// line above the selection, or below \version, or at the top.
//
// An empty name picks a free one from the input mode, like lyrics or
// lyricsA. The chosen name is returned. Only WithInputMode is honoured.
func CutAndAssign(ctx context.Context, text string, start, end int, name string, opts ...Option) (*changes.List, string, error) {
	if start > end {
		return nil, "", errors.Errorf("selection starts at %d after its end %d", start, end)
	}
	if start < 0 || end > len(text) || strings.TrimSpace(text[start:end]) == "" {
		return nil, "", errors.Errorf("nothing selected at %d-%d", start, end)
	}
	if name != "" && !identifierRx.MatchString(name) {
		return nil, "", errors.Errorf("%q is not a valid identifier", name)
	}

	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	var (
		mode    tokenize.Mode
		seen    = map[string]bool{}
		blank   = -1
		version = -1
		prev    tokenize.Token
	)
	lx := tokenize.Default().Lex(text)
	for t := range lx.All() {
		if t.Offset < start {
			mode = lx.Mode()
		}
		switch {
		case t.Kind == tokenize.Identifier:
			seen[t.Text] = true
		case t.Kind == tokenize.Command:
			seen[t.Text[1:]] = true
		case t.End() > lineStart:
		case t.IsToplevelBlankLine():
			blank = t.Offset + strings.IndexByte(t.Text, '\n') + 1
		case t.Kind == tokenize.StringEnd && prev.Is(tokenize.Command, `\version`) && version < 0:
			version = t.End()
		}
		if t.Kind == tokenize.Command || (!t.Kind.IsSpaceOrComment() && !t.Kind.IsStringPart()) {
			prev = t
		}
	}
	if o := newOptions(text, opts); o.mode != nil {
		mode = *o.mode
	}
	if name == "" {
		name = freeName(modeNames[mode], seen)
	}

	def := name + " = "
	if cmd := mode.Command(); cmd != "" {
		def += cmd + " "
	}
	def += "{ " + strings.TrimSpace(text[start:end]) + " }"

	l := changes.New(text)
	var err error
	switch {
	case blank >= 0:
		err = l.Insert(blank, "\n"+def+"\n")
	case version >= 0 && version < start:
		if nl := strings.IndexByte(text[version:], '\n'); nl >= 0 {
			err = l.Insert(version+nl+1, "\n"+def+"\n\n")
		} else {
			err = l.Insert(version, "\n\n"+def+"\n")
		}
	default:
		err = l.Insert(0, def+"\n\n")
	}
	if err == nil {
		err = l.Add(start, end, `\`+name)
	}
	if err != nil {
		return nil, "", errors.Errorf("cut and assign: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("name", name).Str("mode", mode.String()).Msg("assigned selection to a new identifier")
	return l, name, nil
}

// freeName returns base, or base with the first unused letter suffix.
func freeName(base string, seen map[string]bool) string {
	if !seen[base] {
		return base
	}
	for suffix := 'A'; suffix <= 'Z'; suffix++ {
		if name := base + string(suffix); !seen[name] {
			return name
		}
	}
	for i := 2; ; i++ {
		if name := base + strconv.Itoa(i); !seen[name] {
			return name
		}
	}
}
