package layout

import (
	"regexp"
	"strings"

	"github.com/warraqdev/warraq/internal/domain"
)

var (
	trailingSpaceRe = regexp.MustCompile(`(?m)[ \t]+$`)
	multiBlankRe    = regexp.MustCompile(`\n{3,}`)
	preMarkSpaceRe  = regexp.MustCompile(`[ \t]+([،؛؟…»])`)
)

// asciiToArabic maps Latin punctuation to its Arabic counterpart. The
// ellipsis entry must run before the single-character ones so that "..."
// never decays into three localized periods.
var asciiToArabic = []struct {
	from string
	to   string
}{
	{"...", "…"},
	{",", "،"},
	{";", "؛"},
	{"?", "؟"},
}

// Normalize canonicalizes raw section text: line endings become \n, trailing
// spaces and tabs are stripped from every line, and runs of three or more
// newlines collapse to a single blank line. Leading and trailing blank lines
// are removed entirely. Interior single line breaks and blank lines survive,
// so paragraph boundaries are preserved.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = trailingSpaceRe.ReplaceAllString(text, "")
	text = multiBlankRe.ReplaceAllString(text, "\n\n")
	return strings.Trim(text, "\n")
}

// RefinePunctuation localizes Latin punctuation for Arabic prose: commas,
// semicolons and question marks become their Arabic forms, three dots become
// a single ellipsis, and straight double quotes alternate between opening «
// and closing ». Whitespace sitting before a localized mark is removed, which
// repairs the common "word ," typing habit. Text inside quotes is otherwise
// left alone.
func RefinePunctuation(text string) string {
	for _, sub := range asciiToArabic {
		text = strings.ReplaceAll(text, sub.from, sub.to)
	}
	text = localizeQuotes(text)
	return preMarkSpaceRe.ReplaceAllString(text, "$1")
}

// localizeQuotes walks the text once, replacing straight double quotes with
// guillemets in alternation. An unbalanced trailing quote becomes an opening
// « and stays that way; the refiner never guesses at intent.
func localizeQuotes(text string) string {
	if !strings.Contains(text, `"`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	open := false
	for _, r := range text {
		if r != '"' {
			b.WriteRune(r)
			continue
		}
		if open {
			b.WriteRune('»')
		} else {
			b.WriteRune('«')
		}
		open = !open
	}
	return b.String()
}

// Prepare validates and canonicalizes one section body. Empty or
// whitespace-only input yields a ValidationError carrying the section label,
// so callers can fail fast before any output is produced. When localize is
// set the punctuation refiner runs after normalization.
func Prepare(label, text string, localize bool) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError(label)
	}
	text = Normalize(text)
	if localize {
		text = RefinePunctuation(text)
	}
	return text, nil
}
