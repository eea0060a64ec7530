package layout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Header builds a section heading of exactly width display columns: the
// title, flanked by the ornament on both sides, centered inside a run of the
// underline character. An empty ornament degrades to the bare spaced title.
// When the decorated title is already wider than width it is returned
// untouched; nothing is ever truncated.
func Header(title string, width int, underline, ornament string) string {
	title = strings.TrimSpace(title)
	var core string
	if ornament == "" {
		core = " " + title + " "
	} else {
		core = " " + ornament + " " + title + " " + ornament + " "
	}
	return centerIn(core, width, underline)
}

// CenterBlock centers every line of the block within width columns using
// space padding on both sides, mirroring the header geometry. Lines wider
// than width pass through unchanged.
func CenterBlock(lines []string, width int) string {
	centered := make([]string, len(lines))
	for i, line := range lines {
		centered[i] = centerIn(strings.TrimSpace(line), width, " ")
	}
	return strings.Join(centered, "\n")
}

// OrnamentalBreak renders a centered triple ornament on a blank line,
// used to frame the epigraph on the title page.
func OrnamentalBreak(width int, ornament string) string {
	return centerIn(strings.Repeat(ornament, 3), width, " ")
}

// Rule renders a full-width underline run with a centered triple ornament,
// the horizontal border of the title page.
func Rule(width int, underline, ornament string) string {
	return centerIn(" "+strings.Repeat(ornament, 3)+" ", width, underline)
}

// centerIn pads s on both sides with the fill string until the result spans
// width display columns, leaving the extra column on the right when the
// remainder is odd. The fill is assumed to occupy a single column. A value
// of s already at or beyond width is returned as is.
func centerIn(s string, width int, fill string) string {
	w := uniseg.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, right)
}
