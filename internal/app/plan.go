package app

import (
	"path/filepath"
	"strings"

	"github.com/warraqdev/warraq/internal/config"
	"github.com/warraqdev/warraq/internal/utils"
)

// Plan names the artifacts one run produces and where each one goes.
type Plan struct {
	TextPath    string
	PDFPath     string
	ReportPath  string
	WriteText   bool
	WritePDF    bool
	WriteReport bool
}

// PlanArtifacts maps the output configuration onto concrete artifact paths.
// The configured path names the primary artifact of the selected mode, and
// sibling artifacts swap its extension: --output book.pdf with --keep-text
// also yields book.md, and --report yields book.json.
func PlanArtifacts(out config.OutputConfig) Plan {
	base := out.Path
	if base == "" {
		base = config.DefaultOutputPath
	}

	plan := Plan{
		TextPath:    base,
		PDFPath:     utils.ReplaceExt(base, ".pdf"),
		ReportPath:  utils.ReplaceExt(base, ".json"),
		WriteText:   !out.PDF || out.KeepText,
		WritePDF:    out.PDF,
		WriteReport: out.Report,
	}
	if strings.EqualFold(filepath.Ext(base), ".pdf") {
		plan.TextPath = utils.ReplaceExt(base, ".md")
	}
	return plan
}

// Primary returns the path of the run's main artifact: the paginated document
// when one is produced, the flat document otherwise.
func (p Plan) Primary() string {
	if p.WritePDF {
		return p.PDFPath
	}
	return p.TextPath
}
