package transform

import (
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
)

// LanguageAndKey returns the pitch language the document selects and the
// pitch of its last \key statement in octave 1. Without a \key the pitch is c'.
func LanguageAndKey(text string) (*pitch.Language, pitch.Pitch) {
	lx := tokenize.Default().Lex(text)
	key := pitch.C1()
	afterKey := false
	for t := range lx.All() {
		if t.Kind.IsSpaceOrComment() {
			continue
		}
		if afterKey && t.Kind == tokenize.Pitch {
			lang := lx.Language()
			if lang == nil {
				lang = pitch.Default()
			}
			if n, ok := lang.ReadNote(t.Text); ok {
				key = n.Pitch
				key.Octave = 1
			}
		}
		afterKey = t.Is(tokenize.Command, `\key`)
	}
	lang := lx.Language()
	if lang == nil {
		lang = pitch.Default()
	}
	return lang, key
}
