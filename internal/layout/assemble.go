package layout

import (
	"fmt"
	"strings"

	"github.com/warraqdev/warraq/internal/domain"
)

// PrepareManuscript validates and canonicalizes every section body of the
// manuscript, returning a cleaned copy. Validation is fail-fast in reading
// order: the chapter count is checked first, then the introduction, the
// chapters one by one, and finally the conclusion. The first empty section
// aborts with a ValidationError naming it, before any output exists. The
// optional tagline and epigraph are cleaned when present but are allowed to
// be absent.
func PrepareManuscript(man *domain.Manuscript, cfg domain.LayoutConfig) (*domain.Manuscript, error) {
	if cfg.RequiredChapters > 0 && len(man.Chapters) != cfg.RequiredChapters {
		return nil, domain.NewCountMismatchError(cfg.RequiredChapters, len(man.Chapters))
	}

	out := *man
	var err error
	if out.Introduction, err = Prepare(LabelIntroduction, man.Introduction, cfg.RightToLeft); err != nil {
		return nil, err
	}
	out.Chapters = make([]string, len(man.Chapters))
	for i, chapter := range man.Chapters {
		if out.Chapters[i], err = Prepare(ChapterLabel(i+1), chapter, cfg.RightToLeft); err != nil {
			return nil, err
		}
	}
	if out.Conclusion, err = Prepare(LabelConclusion, man.Conclusion, cfg.RightToLeft); err != nil {
		return nil, err
	}

	out.Title = strings.TrimSpace(man.Title)
	out.Tagline = strings.TrimSpace(man.Tagline)
	if strings.TrimSpace(man.Epigraph) == "" {
		out.Epigraph = ""
	} else {
		out.Epigraph = Normalize(man.Epigraph)
		if cfg.RightToLeft {
			out.Epigraph = RefinePunctuation(out.Epigraph)
		}
	}
	return &out, nil
}

// BuildSections turns a prepared manuscript into the fixed section sequence:
// title page, table of contents, introduction, the optional statistics
// block, every chapter in order, the conclusion, and the closing mark. The
// manuscript must already have passed PrepareManuscript; BuildSections does
// not validate.
func BuildSections(man *domain.Manuscript, cfg domain.LayoutConfig) []domain.Section {
	sections := make([]domain.Section, 0, len(man.Chapters)+6)

	sections = append(sections, domain.Section{
		Kind:  domain.KindTitle,
		Label: man.Title,
		Lines: titleLines(man),
		Body:  man.Epigraph,
	})
	sections = append(sections, domain.Section{
		Kind:  domain.KindContents,
		Label: LabelContents,
		Lines: ContentsLines(len(man.Chapters)),
	})
	sections = append(sections, domain.Section{
		Kind:  domain.KindIntroduction,
		Label: LabelIntroduction,
		Body:  man.Introduction,
	})
	if cfg.IncludeStats {
		sections = append(sections, domain.Section{
			Kind:  domain.KindStatistics,
			Label: LabelStatistics,
			Lines: StatisticsLines(man),
		})
	}
	for i, chapter := range man.Chapters {
		sections = append(sections, domain.Section{
			Kind:   domain.KindChapter,
			Label:  ChapterLabel(i + 1),
			Body:   chapter,
			Number: i + 1,
		})
	}
	sections = append(sections, domain.Section{
		Kind:  domain.KindConclusion,
		Label: LabelConclusion,
		Body:  man.Conclusion,
	})
	sections = append(sections, domain.Section{
		Kind:  domain.KindEnding,
		Label: LabelEnding,
		Lines: []string{LabelClosing},
	})
	return sections
}

// ContentsLines builds the table of contents as a flat line list: the
// contents label, a blank separator, then one numbered entry per listed
// section. The introduction is entry 1, chapters follow, and the conclusion
// closes the list, so the final entry number is chapters+2.
func ContentsLines(chapters int) []string {
	lines := make([]string, 0, chapters+4)
	lines = append(lines, LabelContents, "")
	lines = append(lines, fmt.Sprintf("1. %s", LabelIntroduction))
	for i := 1; i <= chapters; i++ {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, ChapterLabel(i)))
	}
	lines = append(lines, fmt.Sprintf("%d. %s", chapters+2, LabelConclusion))
	return lines
}

// RenderFlat renders the section sequence into the flat text document.
// Prose sections get an ornamented header followed by wrapped body text,
// list sections are centered, and the title page is framed by full-width
// rules. Sections are joined by a single blank line and the document ends
// with exactly one newline.
func RenderFlat(sections []domain.Section, cfg domain.LayoutConfig) string {
	parts := make([]string, 0, len(sections)*2)
	for _, s := range sections {
		switch s.Kind {
		case domain.KindTitle:
			parts = append(parts, titlePageParts(s, cfg)...)
		case domain.KindContents, domain.KindStatistics:
			parts = append(parts, CenterBlock(s.Lines, cfg.Width))
		case domain.KindEnding:
			parts = append(parts, Header(s.Label, cfg.Width, EndingUnderline, cfg.Ornament))
			parts = append(parts, CenterBlock(s.Lines, cfg.Width))
		default:
			parts = append(parts, Header(s.Label, cfg.Width, HeaderUnderline, cfg.Ornament))
			parts = append(parts, WrapParagraphs(s.Body, cfg.Width, cfg.Indent, cfg.RightToLeft, cfg.Spacing))
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// titleLines builds the centered identity block of the title page. The
// tagline line is omitted when the manuscript has none.
func titleLines(man *domain.Manuscript) []string {
	lines := []string{man.Title}
	if man.Tagline != "" {
		lines = append(lines, man.Tagline)
	}
	lines = append(lines, "", ByAuthor(man.Author))
	return lines
}

// titlePageParts frames the identity block with full-width rules and, when
// an epigraph is present, appends it centered between ornamental breaks.
func titlePageParts(s domain.Section, cfg domain.LayoutConfig) []string {
	parts := []string{
		Rule(cfg.Width, HeaderUnderline, cfg.Ornament),
		CenterBlock(s.Lines, cfg.Width),
		Rule(cfg.Width, HeaderUnderline, cfg.Ornament),
	}
	if s.Body != "" {
		parts = append(parts,
			OrnamentalBreak(cfg.Width, cfg.Ornament),
			CenterBlock(strings.Split(s.Body, "\n"), cfg.Width),
			OrnamentalBreak(cfg.Width, cfg.Ornament),
		)
	}
	return parts
}
