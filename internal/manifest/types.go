package manifest

import (
	"github.com/warraqdev/warraq/internal/domain"
	"github.com/warraqdev/warraq/internal/source"
)

// Config represents a complete book manifest
type Config struct {
	Title      string `yaml:"title" json:"title"`
	Author     string `yaml:"author" json:"author"`
	Tagline    string `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Epigraph   string `yaml:"epigraph,omitempty" json:"epigraph,omitempty"`
	Intro      string `yaml:"intro" json:"intro"`
	Conclusion string `yaml:"conclusion" json:"conclusion"`

	// exactly one of the two chapter sources must be set
	ChaptersDir string   `yaml:"chapters_dir,omitempty" json:"chapters_dir,omitempty"`
	Chapters    []string `yaml:"chapters,omitempty" json:"chapters,omitempty"`

	Options Options `yaml:"options" json:"options"`
}

// Options carries per-book layout overrides. Zero values mean "not set",
// so the command layer can tell a manifest choice from an absent one when
// merging with flags and the user config.
type Options struct {
	Width        int    `yaml:"width,omitempty" json:"width,omitempty"`
	ChapterCount int    `yaml:"chapter_count,omitempty" json:"chapter_count,omitempty"`
	Indent       int    `yaml:"indent,omitempty" json:"indent,omitempty"`
	Spacing      int    `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Ornament     string `yaml:"ornament,omitempty" json:"ornament,omitempty"`
	Stats        bool   `yaml:"stats,omitempty" json:"stats,omitempty"`
	Output       string `yaml:"output,omitempty" json:"output,omitempty"`
}

// Validate checks the manifest for completeness: identity fields, the two
// framing prose files, and exactly one chapter source.
func (c *Config) Validate() error {
	if c.Title == "" {
		return ErrNoTitle
	}
	if c.Author == "" {
		return ErrNoAuthor
	}
	if c.Intro == "" {
		return ErrNoIntroduction
	}
	if c.Conclusion == "" {
		return ErrNoConclusion
	}
	hasDir := c.ChaptersDir != ""
	hasList := len(c.Chapters) > 0
	switch {
	case hasDir && hasList:
		return domain.ErrAmbiguousChapterSource
	case !hasDir && !hasList:
		return domain.ErrNoChapterSource
	}
	return nil
}

// ChapterSource returns the chapter source the manifest designates.
func (c *Config) ChapterSource() source.ChapterSource {
	return source.ChapterSource{Dir: c.ChaptersDir, Files: c.Chapters}
}
