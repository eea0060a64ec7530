package pagedoc

import "github.com/warraqdev/warraq/internal/domain"

// Geometry describes a page format in millimeters together with the type
// scale used on it. LineHeight is the body baseline advance before the
// configured line-spacing factor is applied.
type Geometry struct {
	Name   string
	Width  float64
	Height float64
	Margin float64

	BodySize   float64
	HeaderSize float64
	TitleSize  float64
	FooterSize float64
	LineHeight float64
}

// BodyWidth reports the printable column width.
func (g Geometry) BodyWidth() float64 {
	return g.Width - 2*g.Margin
}

var geometries = map[domain.PageSize]Geometry{
	domain.PageA4: {
		Name:   "A4",
		Width:  210,
		Height: 297,
		Margin: 20,

		BodySize:   12,
		HeaderSize: 18,
		TitleSize:  26,
		FooterSize: 9,
		LineHeight: 6.5,
	},
	domain.PageA5: {
		Name:   "A5",
		Width:  148,
		Height: 210,
		Margin: 15,

		BodySize:   10.5,
		HeaderSize: 15,
		TitleSize:  21,
		FooterSize: 8,
		LineHeight: 5.6,
	},
	domain.PageLetter: {
		Name:   "Letter",
		Width:  215.9,
		Height: 279.4,
		Margin: 20,

		BodySize:   12,
		HeaderSize: 18,
		TitleSize:  26,
		FooterSize: 9,
		LineHeight: 6.5,
	},
}

// GeometryFor returns the geometry of the given page size, falling back to
// A4 for anything unknown. Size validation happens at config time.
func GeometryFor(size domain.PageSize) Geometry {
	if g, ok := geometries[size]; ok {
		return g
	}
	return geometries[domain.PageA4]
}
