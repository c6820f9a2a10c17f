package completion

import (
	"github.com/walteh/golily/pkg/tokenize"
	"github.com/walteh/golily/pkg/words"
)

// provider returns candidate items; Complete filters them by prefix.
type provider func(c *Context) []Item

var providers = []provider{
	modeProvider,
	markupProvider,
	sectionCommandProvider,
	commandProvider,
	userVariableProvider,
	argumentProvider,
	sectionVariableProvider,
	pitchProvider,
}

func commands(list []string, kind Kind) []Item {
	items := make([]Item, len(list))
	for i, w := range list {
		items[i] = Item{Label: `\` + w, Kind: kind}
	}
	return items
}

func bare(list []string, kind Kind) []Item {
	items := make([]Item, len(list))
	for i, w := range list {
		items[i] = Item{Label: w, Kind: kind}
	}
	return items
}

func isCommand(c *Context) bool {
	return len(c.Prefix) > 0 && c.Prefix[0] == '\\'
}

// afterKeyTonic reports whether the word follows \key and its pitch.
func afterKeyTonic(c *Context) bool {
	p, ok := c.Previous(1)
	if !ok || p.Kind != tokenize.Pitch {
		return false
	}
	k, ok := c.Previous(2)
	return ok && k.Is(tokenize.Command, `\key`)
}

func modeProvider(c *Context) []Item {
	if !isCommand(c) || !afterKeyTonic(c) {
		return nil
	}
	return commands(words.Modes, KindMode)
}

func markupProvider(c *Context) []Item {
	if !isCommand(c) || c.Top() != tokenize.Markup {
		return nil
	}
	return append(commands(words.MarkupCommands, KindMarkupCommand),
		commands(words.MarkupListCommands, KindMarkupCommand)...)
}

func sectionCommandProvider(c *Context) []Item {
	if !isCommand(c) || !c.Top().IsSection() {
		return nil
	}
	return append(commands(words.Contexts, KindContext), commands(words.Keywords, KindKeyword)...)
}

func plainMusic(c *Context) bool {
	top := c.Top()
	return !top.IsScheme() && !top.IsSection() && top != tokenize.Markup && !afterKeyTonic(c)
}

func commandProvider(c *Context) []Item {
	if !isCommand(c) || !plainMusic(c) {
		return nil
	}
	return append(commands(words.Keywords, KindKeyword), commands(words.MusicCommands, KindCommand)...)
}

func userVariableProvider(c *Context) []Item {
	if !isCommand(c) || !plainMusic(c) {
		return nil
	}
	items := commands(Definitions(c.Text), KindUserVariable)
	for i := range items {
		items[i].Detail = "defined in this document"
	}
	return items
}

// argumentProvider completes the bare word after a command that takes a
// name.
func argumentProvider(c *Context) []Item {
	if isCommand(c) {
		return nil
	}
	switch {
	case c.after(`\new`, `\context`):
		return bare(words.Contexts, KindContext)
	case c.after(`\clef`):
		return bare(words.Clefs, KindClef)
	case c.after(`\repeat`):
		return bare(words.RepeatTypes, KindRepeat)
	}
	return nil
}

func sectionVariableProvider(c *Context) []Item {
	if isCommand(c) {
		return nil
	}
	switch c.Top() {
	case tokenize.Header:
		return bare(words.HeaderVariables, KindVariable)
	case tokenize.Paper:
		return bare(words.PaperVariables, KindVariable)
	case tokenize.Layout:
		return bare(words.LayoutVariables, KindVariable)
	}
	return nil
}

// pitchProvider offers note names once a word is started inside music.
func pitchProvider(c *Context) []Item {
	if isCommand(c) || c.Prefix == "" || !c.InMusic() {
		return nil
	}
	if c.after(`\new`, `\context`, `\clef`, `\repeat`) {
		return nil
	}
	switch c.Mode {
	case tokenize.MusicMode, tokenize.ChordMode:
		items := bare(c.Language.Spellings(), KindPitch)
		for i := range items {
			items[i].Detail = c.Language.Name
		}
		return items
	case tokenize.DrumMode:
		return bare(tokenize.DrumNames(), KindDrum)
	}
	return nil
}

// Definitions returns the names assigned at the top level of text, in order
// of first assignment.
func Definitions(text string) []string {
	toks := tokenize.Default().Lex(text).Collect()
	var names []string
	seen := map[string]bool{}
	for i, t := range toks {
		if t.Kind != tokenize.Identifier || t.Depth.Bracket != 0 || seen[t.Text] {
			continue
		}
		for _, n := range toks[i+1:] {
			if n.Kind.IsSpaceOrComment() {
				continue
			}
			if n.Kind == tokenize.Equals {
				seen[t.Text] = true
				names = append(names, t.Text)
			}
			break
		}
	}
	return names
}
