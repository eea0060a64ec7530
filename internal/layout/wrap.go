package layout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WrapParagraphs re-flows prose into lines no wider than width display
// columns. Paragraphs are blocks separated by blank lines; each is flattened
// to a single word sequence and refilled greedily, so wrapping already
// wrapped text at the same width is a no-op. Every emitted line starts with
// indent spaces and the wrap limit shrinks accordingly. With rightAlign set,
// lines are padded on the left until their right edge sits at column width,
// which is how right-to-left prose is presented in a monospace context.
// Words are never split or dropped: a word wider than the limit gets a line
// of its own and that line simply exceeds the width. Paragraph blocks are
// separated by spacing blank lines.
func WrapParagraphs(text string, width, indent int, rightAlign bool, spacing int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}
	if indent < 0 {
		indent = 0
	}
	if spacing < 1 {
		spacing = 1
	}
	limit := width - indent
	if limit < 1 {
		limit = 1
	}

	pad := strings.Repeat(" ", indent)
	blocks := SplitParagraphs(text)
	wrapped := make([]string, 0, len(blocks))
	for _, block := range blocks {
		lines := fillWords(strings.Fields(block), limit)
		for i, line := range lines {
			line = pad + line
			if rightAlign {
				if fill := width - uniseg.StringWidth(line); fill > 0 {
					line = strings.Repeat(" ", fill) + line
				}
			}
			lines[i] = line
		}
		wrapped = append(wrapped, strings.Join(lines, "\n"))
	}
	return strings.Join(wrapped, strings.Repeat("\n", spacing+1))
}

// SplitParagraphs splits normalized text into paragraph blocks on blank
// lines. Blocks that are empty after trimming are dropped.
func SplitParagraphs(text string) []string {
	var paras []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			paras = append(paras, block)
		}
	}
	return paras
}

// fillWords packs words greedily into lines of at most limit display
// columns. Width is measured in terminal columns, not bytes or runes, so
// combining marks such as tashkeel cost nothing and wide glyphs count
// double.
func fillWords(words []string, limit int) []string {
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	used := uniseg.StringWidth(current)
	for _, word := range words[1:] {
		w := uniseg.StringWidth(word)
		if used+1+w <= limit {
			current += " " + word
			used += 1 + w
			continue
		}
		lines = append(lines, current)
		current, used = word, w
	}
	return append(lines, current)
}
