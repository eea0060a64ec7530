// Package fpdf implements the PDF page backend on jung-kurt/gofpdf.
// Importing the package registers the backend under the "pdf" capability,
// so command binaries pull it in with a blank import.
package fpdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/warraqdev/warraq/internal/domain"
	"github.com/warraqdev/warraq/internal/layout"
	"github.com/warraqdev/warraq/internal/pagedoc"
	"github.com/warraqdev/warraq/internal/shaping"
)

func init() {
	pagedoc.Register(New())
}

// Renderer draws the assembled book onto PDF pages.
type Renderer struct{}

// New returns the PDF renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the capability name used for registration.
func (*Renderer) Name() string {
	return pagedoc.CapabilityPDF
}

// Render lays the sections out on pages and returns the encoded PDF. A
// build without the Arabic shaper draws unshaped text, and an exhausted
// font search falls back to the built-in font; both degrade the output
// instead of failing. Only an explicit font path that does not exist is
// an error.
func (r *Renderer) Render(ctx context.Context, doc *pagedoc.Document) ([]byte, error) {
	shaper, _ := shaping.For(doc.Layout.RightToLeft)
	family, fontPath, err := pagedoc.ResolveFont(doc.Page)
	if err != nil {
		return nil, err
	}

	p := newPainter(doc, shaper, family, fontPath)
	if p.pdf.Err() {
		return nil, p.pdf.Error()
	}
	if err := p.paint(ctx); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// painter carries the drawing state across sections.
type painter struct {
	pdf    *gofpdf.Fpdf
	doc    *pagedoc.Document
	shaper shaping.Shaper
	geo    pagedoc.Geometry
	family string
	lineH  float64
	rtl    bool
}

func newPainter(doc *pagedoc.Document, shaper shaping.Shaper, family, fontPath string) *painter {
	geo := pagedoc.GeometryFor(doc.Page.Size)
	pdf := gofpdf.New("P", "mm", geo.Name, "")
	if fontPath != "" {
		pdf.AddUTF8Font(family, "", fontPath)
	} else {
		family = "Helvetica"
	}
	pdf.SetTitle(doc.Manuscript.Title, true)
	pdf.SetAuthor(doc.Manuscript.Author, true)
	pdf.SetCreator("warraq", true)
	pdf.SetMargins(geo.Margin, geo.Margin, geo.Margin)
	pdf.SetAutoPageBreak(true, geo.Margin)

	spacing := doc.Page.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	p := &painter{
		pdf:    pdf,
		doc:    doc,
		shaper: shaper,
		geo:    geo,
		family: family,
		lineH:  geo.LineHeight * spacing,
		rtl:    doc.Layout.RightToLeft,
	}

	// no folio on the title page
	pdf.SetFooterFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetY(-15)
		p.setFont(geo.FooterSize)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	return p
}

func (p *painter) paint(ctx context.Context) error {
	for _, section := range p.doc.Sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch section.Kind {
		case domain.KindTitle:
			p.titlePage(section)
		case domain.KindContents:
			p.listPage(section)
		case domain.KindStatistics:
			p.statisticsBlock(section)
		case domain.KindIntroduction:
			p.prosePage(section, true)
		case domain.KindChapter, domain.KindConclusion:
			p.prosePage(section, p.doc.Page.BreakPerChapter)
		case domain.KindEnding:
			p.ending(section)
		}
		if p.pdf.Err() {
			return p.pdf.Error()
		}
	}
	return nil
}

func (p *painter) setFont(size float64) {
	p.pdf.SetFont(p.family, "", size)
}

func (p *painter) centerLine(line string, h float64) {
	p.pdf.CellFormat(0, h, p.shaper.Shape(line), "", 1, "C", false, 0, "")
}

// header draws a centered section heading and restores the body font.
// spaceBefore only applies when the heading continues an existing page.
func (p *painter) header(label string, spaceBefore bool) {
	if spaceBefore && p.doc.Page.HeaderSpaceBefore > 0 {
		p.pdf.Ln(p.doc.Page.HeaderSpaceBefore)
	}
	p.setFont(p.geo.HeaderSize)
	p.centerLine(label, p.lineH*1.6)
	if p.doc.Page.HeaderSpaceAfter > 0 {
		p.pdf.Ln(p.doc.Page.HeaderSpaceAfter)
	}
	p.setFont(p.geo.BodySize)
}

func (p *painter) titlePage(s domain.Section) {
	p.pdf.AddPage()
	if len(s.Lines) == 0 {
		return
	}
	p.pdf.SetY(p.geo.Height / 4)
	p.setFont(p.geo.TitleSize)
	p.centerLine(s.Lines[0], p.lineH*2)
	p.setFont(p.geo.HeaderSize)
	for _, line := range s.Lines[1:] {
		if line == "" {
			p.pdf.Ln(p.lineH)
			continue
		}
		p.centerLine(line, p.lineH*1.5)
	}
	if s.Body != "" {
		p.pdf.SetY(p.geo.Height * 3 / 5)
		p.setFont(p.geo.BodySize)
		for _, line := range strings.Split(s.Body, "\n") {
			p.centerLine(line, p.lineH)
		}
	}
}

func (p *painter) listPage(s domain.Section) {
	p.pdf.AddPage()
	p.header(s.Label, false)
	for _, line := range entryLines(s) {
		if line == "" {
			p.pdf.Ln(p.lineH / 2)
			continue
		}
		p.centerLine(line, p.lineH)
	}
}

func (p *painter) statisticsBlock(s domain.Section) {
	p.pdf.Ln(p.lineH)
	p.setFont(p.geo.BodySize)
	p.centerLine(s.Label, p.lineH*1.2)
	p.pdf.Ln(p.lineH / 2)
	for _, line := range entryLines(s) {
		if line == "" {
			p.pdf.Ln(p.lineH / 2)
			continue
		}
		p.centerLine(line, p.lineH)
	}
}

func (p *painter) prosePage(s domain.Section, freshPage bool) {
	if freshPage {
		p.pdf.AddPage()
		p.header(s.Label, false)
	} else {
		p.header(s.Label, true)
	}
	p.prose(s.Body)
}

func (p *painter) ending(s domain.Section) {
	p.pdf.Ln(p.lineH * 2)
	p.header(s.Label, false)
	for _, line := range s.Lines {
		p.centerLine(line, p.lineH)
	}
}

// prose flows paragraph text into the printable column. Each paragraph is
// flattened to a single word sequence and wrapped by the measured glyph
// widths of the embedded font; the first line is inset by the configured
// indent, on the right edge for right-to-left text.
func (p *painter) prose(body string) {
	width := p.geo.BodyWidth()
	indent := p.doc.Page.FirstLineIndent
	align := "L"
	if p.rtl {
		align = "R"
	}

	paragraphs := layout.SplitParagraphs(body)
	for pi, paragraph := range paragraphs {
		text := strings.Join(strings.Fields(paragraph), " ")
		lines := p.splitIndented(text, width, indent)
		for i, line := range lines {
			w := width
			if i == 0 && indent > 0 && indent < width {
				w = width - indent
				if !p.rtl {
					p.pdf.SetX(p.geo.Margin + indent)
				}
			}
			p.pdf.CellFormat(w, p.lineH, p.shaper.Shape(line), "", 1, align, false, 0, "")
		}
		if pi < len(paragraphs)-1 {
			p.pdf.Ln(p.lineH / 2)
		}
	}
}

// splitIndented wraps text to the printable width, reserving indent
// millimeters on the first line. Measurement uses the current font.
func (p *painter) splitIndented(text string, width, indent float64) []string {
	if text == "" {
		return nil
	}
	if indent <= 0 || indent >= width {
		return p.pdf.SplitText(text, width)
	}
	first := p.pdf.SplitText(text, width-indent)
	if len(first) == 0 {
		return nil
	}
	lines := []string{first[0]}
	rest := strings.TrimSpace(strings.TrimPrefix(text, first[0]))
	if rest != "" {
		lines = append(lines, p.pdf.SplitText(rest, width)...)
	}
	return lines
}

// entryLines strips the leading label and blank separator that the flat
// renderer embeds in list sections.
func entryLines(s domain.Section) []string {
	lines := s.Lines
	if len(lines) > 0 && lines[0] == s.Label {
		lines = lines[1:]
		if len(lines) > 0 && lines[0] == "" {
			lines = lines[1:]
		}
	}
	return lines
}
