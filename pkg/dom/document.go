package dom

import (
	"context"
	"strings"

	"github.com/walteh/golily/pkg/indent"
	"github.com/walteh/golily/pkg/pitch"
)

// Document is the root of a tree together with the settings used to print it.
type Document struct {
	Body *Body
	// Language writes the pitches. Nil means nederlands.
	Language            *pitch.Language
	TypographicalQuotes bool
	Indent              indent.Options
}

func NewDocument(children ...Node) *Document {
	return &Document{
		Body:                NewBody(children...),
		TypographicalQuotes: true,
		Indent:              indent.DefaultOptions(),
	}
}

// Append adds top-level nodes.
func (d *Document) Append(nodes ...Node) {
	d.Body.Append(nodes...)
}

// Render prints the document, indents it and makes sure it ends with a
// newline. The error reports pitches that had to be written in nederlands.
func (d *Document) Render(ctx context.Context) (string, error) {
	p := &Printer{Language: d.Language, TypographicalQuotes: d.TypographicalQuotes}
	text := indent.Indent(ctx, p.Print(d.Body), d.Indent)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, p.Err()
}

func (d *Document) String() string {
	text, _ := d.Render(context.Background())
	return text
}
