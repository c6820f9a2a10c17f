// Package diff renders readable differences for test failures.
package diff

import (
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/kylelemons/godebug/diff"
)

func DiffExportedOnly[T any](want T, got T) string {
	printer := pp.New()
	printer.SetExportedOnly(true)
	printer.SetColoringEnabled(false)
	return render(diff.Diff(printer.Sprint(got), printer.Sprint(want)))
}

// DiffText compares two source texts line by line. Tabs and trailing spaces
// are made visible so that whitespace-only differences can be read.
func DiffText(want, got string) string {
	if want == got {
		return ""
	}
	return render(diff.Diff(visible(got), visible(want)))
}

func visible(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		trimmed := strings.TrimRight(l, " ")
		l = trimmed + strings.Repeat("·", len(l)-len(trimmed))
		lines[i] = strings.ReplaceAll(l, "\t", "→")
	}
	return strings.Join(lines, "⏎\n")
}

func render(abc string) string {
	if abc == "" {
		return ""
	}
	str := "\n\n"
	str += "to convert ACTUAL ⏩️ EXPECTED:\n\n"
	str += "add:    ➕\n"
	str += "remove: ➖\n"
	str += strings.ReplaceAll(strings.ReplaceAll("\n"+abc, "\n-", "\n➖"), "\n+", "\n➕")

	return str
}
