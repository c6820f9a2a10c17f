package indent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walteh/golily/pkg/indent"
)

func TestIndent(t *testing.T) {
	yes := true
	tests := []struct {
		name     string
		input    string
		opts     indent.Options
		expected string
	}{
		{
			name:     "nested braces",
			input:    "\\score {\n\\new Staff {\nc d\n}\n  }\n",
			opts:     indent.DefaultOptions(),
			expected: "\\score {\n  \\new Staff {\n    c d\n  }\n}\n",
		},
		{
			name:     "simultaneous music",
			input:    "<<\n{ c }\n      >>",
			opts:     indent.DefaultOptions(),
			expected: "<<\n  { c }\n>>",
		},
		{
			name:     "long comment goes to column zero",
			input:    "{\n  %%% big\n  c\n}",
			opts:     indent.DefaultOptions(),
			expected: "{\n%%% big\n  c\n}",
		},
		{
			name:     "whitespace only lines are emptied",
			input:    "{\n   \n c\n}",
			opts:     indent.DefaultOptions(),
			expected: "{\n\n  c\n}",
		},
		{
			name:     "scheme keyword body",
			input:    "#(define (f x)\n(display x))",
			opts:     indent.DefaultOptions(),
			expected: "#(define (f x)\n   (display x))",
		},
		{
			name:     "scheme arguments align",
			input:    "#(list 1\n2)",
			opts:     indent.DefaultOptions(),
			expected: "#(list 1\n       2)",
		},
		{
			name:     "block comment contents are kept",
			input:    "{\n%{\n   keep\n%}\nc\n}",
			opts:     indent.DefaultOptions(),
			expected: "{\n  %{\n   keep\n  %}\n  c\n}",
		},
		{
			name:     "string contents are kept",
			input:    "{\n\"a\nb\"\n}",
			opts:     indent.DefaultOptions(),
			expected: "{\n  \"a\nb\"\n}",
		},
		{
			name:     "tabs",
			input:    "{\n{\n{\nc\n}\n}\n}",
			opts:     indent.Options{IndentWidth: 4, TabWidth: 8, UseTabs: &yes},
			expected: "{\n    {\n\t{\n\t    c\n\t}\n    }\n}",
		},
		{
			name:     "tabs detected from document",
			input:    "{\n\tc\n{\nd\n}\n}",
			opts:     indent.Options{IndentWidth: 8, TabWidth: 8},
			expected: "{\n\tc\n\t{\n\t\td\n\t}\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indent.Indent(context.Background(), tt.input, tt.opts)
			assert.Equal(t, tt.expected, got)

			again := indent.Changes(context.Background(), got, tt.opts)
			assert.True(t, again.Empty(), "indenting twice changes %v", again.Changes())
		})
	}
}

func TestChangesAreMinimal(t *testing.T) {
	l := indent.Changes(context.Background(), "{\n  c\n d\n  e\n}", indent.DefaultOptions())
	cs := l.Changes()
	if assert.Len(t, cs, 1) {
		assert.Equal(t, 2, cs[0].Range.Start.Line)
		assert.Equal(t, "  ", cs[0].Text)
	}
}
