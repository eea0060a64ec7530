package pagedoc

import (
	"path/filepath"
	"strings"

	"github.com/warraqdev/warraq/internal/domain"
	"github.com/warraqdev/warraq/internal/utils"
)

// fontFiles lists Arabic-capable typefaces in preference order.
var fontFiles = []string{
	"Amiri-Regular.ttf",
	"NotoNaskhArabic-Regular.ttf",
	"Scheherazade-Regular.ttf",
	"ScheherazadeNew-Regular.ttf",
}

// fontDirs lists the places those files commonly live. Overridable for
// tests.
var fontDirs = []string{
	"fonts",
	"~/.fonts",
	"~/.local/share/fonts",
	"/usr/share/fonts/truetype/amiri",
	"/usr/share/fonts/truetype/noto",
	"/usr/share/fonts/truetype/scheherazade",
	"/usr/share/fonts/TTF",
	"/usr/local/share/fonts",
}

// ResolveFont decides which font the page backend embeds. An explicit path
// wins and must point at an existing file. Otherwise the known directories
// are searched, for files named after the configured font first, then for
// the capable typefaces above. An exhausted search is not an error: it
// returns an empty path and the backend draws with its built-in font. The
// returned family name is either the configured one or the file stem.
func ResolveFont(cfg domain.PageConfig) (family, path string, err error) {
	if cfg.FontPath != "" {
		expanded := utils.ExpandPath(cfg.FontPath)
		if !utils.IsRegularFile(expanded) {
			return "", "", domain.NewNotFoundError(cfg.FontPath, nil)
		}
		return familyName(cfg, expanded), expanded, nil
	}

	for _, dir := range fontDirs {
		for _, file := range candidates(cfg) {
			candidate := filepath.Join(utils.ExpandPath(dir), file)
			if utils.IsRegularFile(candidate) {
				return familyName(cfg, candidate), candidate, nil
			}
		}
	}
	return "", "", nil
}

func candidates(cfg domain.PageConfig) []string {
	if cfg.FontName == "" {
		return fontFiles
	}
	named := []string{cfg.FontName + "-Regular.ttf", cfg.FontName + ".ttf"}
	return append(named, fontFiles...)
}

func familyName(cfg domain.PageConfig, path string) string {
	if cfg.FontName != "" {
		return cfg.FontName
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" {
		return "Book"
	}
	return stem
}
