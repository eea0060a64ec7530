package domain

// Manuscript is the full logical document before any layout work: identity,
// front matter, and the ordered chapter bodies. All texts are raw UTF-8 as
// read from disk; normalization and validation happen in the layout engine.
type Manuscript struct {
	Title        string
	Author       string
	Tagline      string // optional, shown under the title
	Epigraph     string // optional, framed quote on the title page
	Introduction string
	Chapters     []string
	Conclusion   string
}

// ChapterCount returns the number of chapters currently attached.
func (m *Manuscript) ChapterCount() int {
	return len(m.Chapters)
}

// SectionKind identifies a logical section of the assembled document.
type SectionKind int

const (
	KindTitle SectionKind = iota
	KindContents
	KindIntroduction
	KindStatistics
	KindChapter
	KindConclusion
	KindEnding
)

// String returns the kind name for logging.
func (k SectionKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindContents:
		return "contents"
	case KindIntroduction:
		return "introduction"
	case KindStatistics:
		return "statistics"
	case KindChapter:
		return "chapter"
	case KindConclusion:
		return "conclusion"
	case KindEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Section is one logical unit of the assembled document. Sections exist only
// as intermediate values between the layout engine and a renderer; they carry
// either prose (Body, wrapped by the renderer) or a preformatted line block
// (Lines, centered by the renderer), never both.
type Section struct {
	Kind   SectionKind
	Label  string   // header label, e.g. "المقدمة" or "الفصل 3"
	Body   string   // normalized prose for Introduction/Chapter/Conclusion
	Lines  []string // preformatted lines for Title/Contents/Statistics/Ending
	Number int      // 1-based chapter number, zero otherwise
}

// LayoutConfig carries the knobs of the flat text layout. It is constructed
// once at startup and passed by value into every layout operation.
type LayoutConfig struct {
	Width            int    // wrap width in display columns
	Indent           int    // leading spaces on every wrapped line
	Spacing          int    // blank lines between paragraphs, min 1
	RightToLeft      bool   // right-align lines and localize punctuation
	Ornament         string // decorative symbol framing headers and breaks
	IncludeStats     bool   // insert the word-count block after the introduction
	RequiredChapters int    // exact number of chapters a manuscript must have
}

// PageSize selects one of the supported paper formats.
type PageSize string

const (
	PageA4     PageSize = "a4"
	PageA5     PageSize = "a5"
	PageLetter PageSize = "letter"
)

// Valid reports whether the page size is one of the supported formats.
func (p PageSize) Valid() bool {
	switch p {
	case PageA4, PageA5, PageLetter:
		return true
	}
	return false
}

// PageConfig carries the knobs of the paginated rendering backend.
type PageConfig struct {
	Size              PageSize
	FontName          string  // named font resolved against known locations
	FontPath          string  // explicit font file, wins over FontName
	LineSpacing       float64 // body line height factor, 1.0 = single
	HeaderSpaceBefore float64 // mm above a section header
	HeaderSpaceAfter  float64 // mm below a section header
	FirstLineIndent   float64 // mm of first-line paragraph indent
	BreakPerChapter   bool    // start every chapter on a fresh page
}
