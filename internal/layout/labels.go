package layout

import "fmt"

// Fixed Arabic labels of the assembled document. The numbering scheme and
// wording follow the classical فهرس layout: the introduction is entry 1,
// chapters follow, the conclusion closes the list.
const (
	LabelContents     = "جدول المحتويات"
	LabelIntroduction = "المقدمة"
	LabelChapter      = "الفصل"
	LabelConclusion   = "الخاتمة"
	LabelEnding       = "النهاية"
	LabelClosing      = "تمت"
	LabelStatistics   = "إحصاء الكلمات"
	LabelTotal        = "المجموع"

	byAuthorPrefix = "بقلم"
	wordUnit       = "كلمة"
)

// Underline characters used by the section composer.
const (
	HeaderUnderline = "═"
	EndingUnderline = "─"
)

// ChapterLabel returns the header label of the 1-based chapter n.
func ChapterLabel(n int) string {
	return fmt.Sprintf("%s %d", LabelChapter, n)
}

// ByAuthor returns the author attribution line of the title page.
func ByAuthor(author string) string {
	return fmt.Sprintf("%s %s", byAuthorPrefix, author)
}
