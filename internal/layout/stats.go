package layout

import (
	"fmt"
	"strings"

	"github.com/warraqdev/warraq/internal/domain"
)

// WordCount reports the number of whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// StatisticsLines builds the word-count report block: one line per prose
// section in reading order, a separator, and a grand total. The total is
// computed from the same counts that are printed, so the two always agree.
func StatisticsLines(man *domain.Manuscript) []string {
	lines := []string{LabelStatistics, ""}
	total := 0

	n := WordCount(man.Introduction)
	total += n
	lines = append(lines, statLine(LabelIntroduction, n))

	for i, chapter := range man.Chapters {
		n = WordCount(chapter)
		total += n
		lines = append(lines, statLine(ChapterLabel(i+1), n))
	}

	n = WordCount(man.Conclusion)
	total += n
	lines = append(lines, statLine(LabelConclusion, n))

	lines = append(lines, "", statLine(LabelTotal, total))
	return lines
}

func statLine(label string, count int) string {
	return fmt.Sprintf("%s: %d %s", label, count, wordUnit)
}
