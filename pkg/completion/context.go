package completion

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/lyerr"
	"github.com/walteh/golily/pkg/pitch"
	"github.com/walteh/golily/pkg/tokenize"
)

// Context describes the place completion was asked for.
type Context struct {
	Text   string
	Offset int
	// Start is the offset of the word being completed; Prefix is
	// Text[Start:Offset], including a leading backslash.
	Start  int
	Prefix string

	Stack    []tokenize.Parser
	Mode     tokenize.Mode
	Language *pitch.Language

	// tokens are the significant tokens before Start.
	tokens []tokenize.Token
	silent bool
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '-'
}

// NewContext lexes text up to the word that ends at offset.
func NewContext(text string, offset int) *Context {
	offset = min(max(offset, 0), len(text))
	start := offset
	for start > 0 && isWordByte(text[start-1]) {
		start--
	}
	if start > 0 && text[start-1] == '\\' {
		start--
	}

	c := &Context{Text: text, Offset: offset, Start: start, Prefix: text[start:offset]}
	lx := tokenize.Default().Lex(text[:start])
	var last tokenize.Token
	for t := range lx.All() {
		last = t
		if !t.Kind.IsSpaceOrComment() {
			c.tokens = append(c.tokens, t)
		}
	}
	c.Stack = lx.Stack()
	c.Mode = lx.Mode()
	c.Language = lx.Language()
	if c.Language == nil {
		c.Language = pitch.Default()
	}

	switch c.Top() {
	case tokenize.StringParser, tokenize.SchemeString, tokenize.BlockCommentParser:
		c.silent = true
	}
	switch {
	case last.Kind == tokenize.Comment && last.End() == start:
		c.silent = true
	case errors.Is(last.Problem, lyerr.ErrUnterminatedString),
		errors.Is(last.Problem, lyerr.ErrUnterminatedBlockComment):
		c.silent = true
	}
	return c
}

// Top is the innermost parser at the word.
func (c *Context) Top() tokenize.ParserName {
	if len(c.Stack) == 0 {
		return tokenize.Toplevel
	}
	return c.Stack[len(c.Stack)-1].Name
}

// Silent reports whether the word is inside a string or a comment.
func (c *Context) Silent() bool {
	return c.silent
}

// InMusic reports whether the word is inside a music expression.
func (c *Context) InMusic() bool {
	if len(c.Stack) == 0 {
		return false
	}
	top := c.Stack[len(c.Stack)-1]
	if top.Name.IsScheme() || top.Name.IsSection() || top.Name == tokenize.Markup {
		return false
	}
	return top.Level > 0 || top.Name == tokenize.Relative || top.Name.IsMode()
}

// Previous returns the n-th significant token before the word, 1 being the
// nearest.
func (c *Context) Previous(n int) (tokenize.Token, bool) {
	if n < 1 || n > len(c.tokens) {
		return tokenize.Token{}, false
	}
	return c.tokens[len(c.tokens)-n], true
}

// after reports whether the nearest significant token is one of the commands.
func (c *Context) after(commands ...string) bool {
	t, ok := c.Previous(1)
	return ok && t.Is(tokenize.Command, commands...)
}
