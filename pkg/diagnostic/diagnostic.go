// Package diagnostic reads the messages the LilyPond compiler prints and
// links them back to cursors in the source text.
package diagnostic

import (
	"encoding/json"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/position"
)

// Severity is the word LilyPond puts after the location.
type Severity string

const (
	None               Severity = ""
	Error              Severity = "error"
	Warning            Severity = "warning"
	FatalError         Severity = "fatal error"
	ProgrammingError   Severity = "programming error"
	ProgrammingWarning Severity = "programming warning"
)

// IsError reports whether the severity stops compilation or marks a bug.
func (s Severity) IsError() bool {
	return s == Error || s == FatalError || s == ProgrammingError
}

// Diagnostic is one compiler message.
type Diagnostic struct {
	Path string
	// Line is 1-based, as printed.
	Line int
	// Column is a virtual column: a TAB advances to the next multiple of the
	// tab width.
	Column   int
	Severity Severity
	Message  string
}

// Cursor returns the position in the source the diagnostic points at.
// lineText is the text of line Line.
func (d Diagnostic) Cursor(lineText string, tabWidth int) position.Cursor {
	return position.Cursor{
		Line:   max(d.Line-1, 0),
		Column: position.ResolveVirtualColumn(lineText, d.Column, tabWidth),
	}
}

var (
	rules = lexer.Rules{
		"Root": {
			{Name: "Path", Pattern: `(?:[A-Za-z]:[\\/])?[^:\n]+`, Action: lexer.Push("Location")},
		},
		"Location": {
			{Name: "whitespace", Pattern: `[ \t]+`, Action: nil},
			{Name: "Number", Pattern: `\d+`, Action: nil},
			{Name: "Colon", Pattern: `:`, Action: nil},
			{Name: "Severity", Pattern: `(?:fatal |programming )?(?:error|warning)`, Action: lexer.Push("Message")},
			{Name: "Text", Pattern: `[^\n]+`, Action: nil},
		},
		"Message": {
			{Name: "Colon", Pattern: `:`, Action: nil},
			{Name: "whitespace", Pattern: `[ \t]+`, Action: nil},
			{Name: "Text", Pattern: `[^\n]+`, Action: nil},
		},
	}

	parser = participle.MustBuild[wireLine](
		participle.Lexer(lexer.MustStateful(rules)),
		participle.Elide("whitespace"),
		participle.UseLookahead(2),
	)
)

// wireLine is path:line:col: severity: message. The column and the severity
// are optional.
type wireLine struct {
	Path     string `parser:"@Path"`
	Line     int    `parser:"Colon @Number"`
	Column   *int   `parser:"(Colon @Number)?"`
	Severity string `parser:"Colon (@Severity Colon)?"`
	Message  string `parser:"@(Text | Number | Colon)*"`
}

// Parse reads one line of compiler output.
func Parse(line string) (Diagnostic, error) {
	w, err := parser.ParseString("", strings.TrimRight(line, "\r\n"))
	if err != nil {
		return Diagnostic{}, errors.Errorf("parsing diagnostic %q: %w", line, err)
	}
	d := Diagnostic{
		Path:     strings.TrimSpace(w.Path),
		Line:     w.Line,
		Severity: Severity(w.Severity),
		Message:  strings.TrimSpace(w.Message),
	}
	if w.Column != nil {
		d.Column = *w.Column
	}
	if d.Line < 1 {
		return Diagnostic{}, errors.Errorf("parsing diagnostic %q: line %d", line, d.Line)
	}
	return d, nil
}

// ParseAll returns the diagnostics in compiler output, skipping the lines
// that are not diagnostics.
func ParseAll(output string) []Diagnostic {
	var ds []Diagnostic
	for _, line := range strings.Split(output, "\n") {
		if d, err := Parse(line); err == nil {
			ds = append(ds, d)
		}
	}
	return ds
}

// Diagnostics sorts diagnostics by how serious they are.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Other    []Diagnostic
}

func Group(ds []Diagnostic) *Diagnostics {
	g := &Diagnostics{}
	for _, d := range ds {
		switch {
		case d.Severity.IsError():
			g.Errors = append(g.Errors, d)
		case d.Severity != None:
			g.Warnings = append(g.Warnings, d)
		default:
			g.Other = append(g.Other, d)
		}
	}
	return g
}

// Source returns the text of a 1-based line of a file, or false when it is
// not available.
type Source func(path string, line int) (string, bool)

// JSONFormatter writes diagnostics with zero-based line and character
// positions, the way editors expect them.
type JSONFormatter struct {
	TabWidth int
	Source   Source
}

type jsonPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type jsonDiagnostic struct {
	Path     string       `json:"path"`
	Severity int          `json:"severity"`
	Message  string       `json:"message"`
	Start    jsonPosition `json:"start"`
}

// Format implements the editor severity scale: 1 error, 2 warning, 3 info.
func (f *JSONFormatter) Format(diagnostics *Diagnostics) ([]byte, error) {
	if diagnostics == nil {
		return nil, errors.Errorf("diagnostics is nil")
	}
	result := []jsonDiagnostic{}
	add := func(ds []Diagnostic, severity int) {
		for _, d := range ds {
			c := position.Cursor{Line: d.Line - 1, Column: d.Column}
			if f.Source != nil {
				if text, ok := f.Source(d.Path, d.Line); ok {
					c = d.Cursor(text, f.TabWidth)
				}
			}
			result = append(result, jsonDiagnostic{
				Path:     d.Path,
				Severity: severity,
				Message:  d.Message,
				Start:    jsonPosition{Line: c.Line, Character: c.Column},
			})
		}
	}
	add(diagnostics.Errors, 1)
	add(diagnostics.Warnings, 2)
	add(diagnostics.Other, 3)
	return json.Marshal(result)
}
