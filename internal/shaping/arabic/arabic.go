// Package arabic implements the Arabic text shaping capability: contextual
// glyph joining followed by bidi reordering into visual order. Importing
// the package registers the shaper, so page renderers normally pull it in
// with a blank import.
package arabic

import (
	"strings"

	"github.com/abdullahdiaa/garabic"
	"golang.org/x/text/unicode/bidi"

	"github.com/warraqdev/warraq/internal/shaping"
)

func init() {
	shaping.Register(New())
}

// Shaper joins Arabic letters into their contextual presentation forms and
// reorders each line into visual order for left-to-right glyph output.
type Shaper struct{}

// New returns the Arabic shaper.
func New() *Shaper {
	return &Shaper{}
}

// Name reports the capability name used for registration.
func (*Shaper) Name() string {
	return shaping.CapabilityArabic
}

// Shape processes one laid-out line. Multi-line input is handled per line,
// since bidi ordering is a paragraph-level computation. Lines without
// right-to-left content pass through unchanged.
func (*Shaper) Shape(line string) string {
	if !strings.Contains(line, "\n") {
		return shapeLine(line)
	}
	lines := strings.Split(line, "\n")
	for i, l := range lines {
		lines[i] = shapeLine(l)
	}
	return strings.Join(lines, "\n")
}

func shapeLine(line string) string {
	if line == "" {
		return line
	}
	return visualOrder(garabic.Shape(line))
}

// visualOrder flattens the bidi runs of a logical-order line into the
// left-to-right sequence a naive glyph renderer must draw. The paragraph
// base is forced right to left, so the first logical run is drawn
// rightmost: runs are emitted in reverse, and right-to-left runs are
// mirrored rune by rune. ReverseString keeps modifiers attached and swaps
// brackets for their counterparts.
func visualOrder(line string) string {
	var p bidi.Paragraph
	if _, err := p.SetString(line, bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return line
	}
	ordering, err := p.Order()
	if err != nil {
		return line
	}
	n := ordering.NumRuns()
	if n == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	for i := n - 1; i >= 0; i-- {
		run := ordering.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = bidi.ReverseString(text)
		}
		b.WriteString(text)
	}
	return b.String()
}
