package position

import (
	"unicode/utf8"
)

// VirtualColumn returns the display column of character charIndex in line,
// where a TAB advances to the next multiple of tabWidth.
func VirtualColumn(line string, charIndex, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	col, i := 0, 0
	for _, r := range line {
		if i >= charIndex {
			break
		}
		if r == '\t' {
			col = (col/tabWidth + 1) * tabWidth
		} else {
			col++
		}
		i++
	}
	if charIndex > i {
		col += charIndex - i
	}
	return col
}

// ResolveVirtualColumn maps a virtual column back to a character index in
// line. A column inside a TAB resolves to the character after it. The result
// never exceeds the length of the line.
func ResolveVirtualColumn(line string, virtualCol, tabWidth int) int {
	return min(ResolveWithTabs(TabStops(line), virtualCol, tabWidth), utf8.RuneCountInString(line))
}

// TabStops returns the character indexes of the TABs in line.
func TabStops(line string) []int {
	var tabs []int
	i := 0
	for _, r := range line {
		if r == '\t' {
			tabs = append(tabs, i)
		}
		i++
	}
	return tabs
}

// ResolveWithTabs resolves a virtual column against recorded TAB positions,
// without needing the line text itself.
func ResolveWithTabs(tabs []int, virtualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	pos, col := 0, 0
	for _, t := range tabs {
		if virtualCol <= col+(t-pos) {
			return pos + max(0, virtualCol-col)
		}
		col += t - pos
		pos = t + 1
		col = (col/tabWidth + 1) * tabWidth
	}
	return pos + max(0, virtualCol-col)
}
