// Package docinfo reads document level information from LilyPond source:
// %%name: value variables, the \version statement and included files.
package docinfo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/tokenize"
)

var (
	variableRx = regexp.MustCompile(`(?m)^%%([a-z]+(?:-[a-z]+)*):[ \t]*(.+?)[ \t]*$`)
	versionRx  = regexp.MustCompile(`\\version\s*"(\d+(?:\.\d+){0,2})`)
)

var ErrVersionExists = errors.Base("document already has a version statement")

// Variables returns the values of lines like "%%tab-width: 4". Later lines
// win over earlier ones.
func Variables(text string) map[string]string {
	vars := map[string]string{}
	for _, m := range variableRx.FindAllStringSubmatch(text, -1) {
		vars[m[1]] = strings.TrimRight(m[2], "\r")
	}
	return vars
}

// Version returns the version string of the first \version statement. It
// works on incomplete documents, so it does not use the tokenizer.
func Version(text string) (string, bool) {
	m := versionRx.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// VersionTuple is major, minor and patch. Missing parts are 0.
type VersionTuple [3]int

func ParseVersion(s string) (VersionTuple, error) {
	var v VersionTuple
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) > 3 {
		return v, errors.Errorf("invalid version %q", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, errors.Errorf("invalid version %q", s)
		}
		v[i] = n
	}
	return v, nil
}

// DocumentVersion is Version parsed into a tuple.
func DocumentVersion(text string) (VersionTuple, bool) {
	s, ok := Version(text)
	if !ok {
		return VersionTuple{}, false
	}
	v, err := ParseVersion(s)
	return v, err == nil
}

func (v VersionTuple) Compare(o VersionTuple) int {
	for i := range v {
		switch {
		case v[i] < o[i]:
			return -1
		case v[i] > o[i]:
			return 1
		}
	}
	return 0
}

func (v VersionTuple) Less(o VersionTuple) bool {
	return v.Compare(o) < 0
}

func (v VersionTuple) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// InsertVersion adds a \version statement on the first line.
func InsertVersion(text string, v VersionTuple) (*changes.List, error) {
	if _, ok := Version(text); ok {
		return nil, errors.WithStack(ErrVersionExists)
	}
	l := changes.New(text)
	if err := l.Insert(0, `\version "`+v.String()+`"`+"\n"); err != nil {
		return nil, err
	}
	return l, nil
}

// Includes returns the file names of the \include statements, skipping
// anything in comments, strings and Scheme.
func Includes(text string) []string {
	var (
		out     []string
		pending bool
		name    *strings.Builder
	)
	lx := tokenize.Default().Lex(text)
	for t := range lx.All() {
		switch {
		case t.Kind.IsSpaceOrComment():
		case t.Is(tokenize.Command, `\include`):
			pending = true
		case pending && t.Kind == tokenize.StringStart:
			name = &strings.Builder{}
		case name != nil && t.Kind == tokenize.String:
			name.WriteString(t.Text)
		case name != nil && t.Kind == tokenize.StringEscape:
			name.WriteString(t.Text[1:])
		case name != nil && t.Kind == tokenize.StringEnd:
			out = append(out, name.String())
			name, pending = nil, false
		default:
			name, pending = nil, false
		}
	}
	return out
}
