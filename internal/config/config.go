package config

import (
	"fmt"
	"strings"

	"github.com/warraqdev/warraq/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Layout  LayoutConfig  `mapstructure:"layout" yaml:"layout"`
	Page    PageConfig    `mapstructure:"page" yaml:"page"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LayoutConfig contains flat text layout settings
type LayoutConfig struct {
	Width       int    `mapstructure:"width" yaml:"width"`
	Indent      int    `mapstructure:"indent" yaml:"indent"`
	Spacing     int    `mapstructure:"spacing" yaml:"spacing"`
	RightToLeft bool   `mapstructure:"rtl" yaml:"rtl"`
	Ornament    string `mapstructure:"ornament" yaml:"ornament"`
	Stats       bool   `mapstructure:"stats" yaml:"stats"`
	Chapters    int    `mapstructure:"chapters" yaml:"chapters"`
}

// PageConfig contains page rendering settings
type PageConfig struct {
	Size              string  `mapstructure:"size" yaml:"size"`
	Font              string  `mapstructure:"font" yaml:"font"`
	FontFile          string  `mapstructure:"font_file" yaml:"font_file"`
	LineSpacing       float64 `mapstructure:"line_spacing" yaml:"line_spacing"`
	FirstLineIndent   float64 `mapstructure:"first_line_indent" yaml:"first_line_indent"`
	HeaderSpaceBefore float64 `mapstructure:"header_space_before" yaml:"header_space_before"`
	HeaderSpaceAfter  float64 `mapstructure:"header_space_after" yaml:"header_space_after"`
	ChapterBreaks     bool    `mapstructure:"chapter_breaks" yaml:"chapter_breaks"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Path     string `mapstructure:"path" yaml:"path"`
	PDF      bool   `mapstructure:"pdf" yaml:"pdf"`
	KeepText bool   `mapstructure:"keep_text" yaml:"keep_text"`
	Report   bool   `mapstructure:"report" yaml:"report"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, coercing out-of-range layout
// values back to their defaults. An unknown page size is an error rather
// than a silent fallback.
func (c *Config) Validate() error {
	if c.Layout.Width < 1 {
		c.Layout.Width = DefaultWidth
	}
	if c.Layout.Indent < 0 {
		c.Layout.Indent = 0
	}
	if c.Layout.Spacing < 1 {
		c.Layout.Spacing = DefaultSpacing
	}
	if c.Layout.Chapters < 0 {
		c.Layout.Chapters = 0
	}
	if c.Layout.Ornament == "" {
		c.Layout.Ornament = DefaultOrnament
	}
	if c.Page.Size == "" {
		c.Page.Size = string(DefaultPageSize)
	}
	if size := domain.PageSize(strings.ToLower(c.Page.Size)); !size.Valid() {
		return fmt.Errorf("invalid page.size %q (use a4, a5, or letter)", c.Page.Size)
	}
	if c.Page.LineSpacing <= 0 {
		c.Page.LineSpacing = DefaultLineSpacing
	}
	if c.Page.FirstLineIndent < 0 {
		c.Page.FirstLineIndent = DefaultFirstLineIndent
	}
	if c.Page.HeaderSpaceBefore < 0 {
		c.Page.HeaderSpaceBefore = DefaultHeaderSpaceBefore
	}
	if c.Page.HeaderSpaceAfter < 0 {
		c.Page.HeaderSpaceAfter = DefaultHeaderSpaceAfter
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	return nil
}

// LayoutOptions returns the layout engine's view of the configuration.
func (c *Config) LayoutOptions() domain.LayoutConfig {
	return domain.LayoutConfig{
		Width:            c.Layout.Width,
		Indent:           c.Layout.Indent,
		Spacing:          c.Layout.Spacing,
		RightToLeft:      c.Layout.RightToLeft,
		Ornament:         c.Layout.Ornament,
		IncludeStats:     c.Layout.Stats,
		RequiredChapters: c.Layout.Chapters,
	}
}

// PageOptions returns the page renderer's view of the configuration.
func (c *Config) PageOptions() domain.PageConfig {
	return domain.PageConfig{
		Size:              domain.PageSize(strings.ToLower(c.Page.Size)),
		FontName:          c.Page.Font,
		FontPath:          c.Page.FontFile,
		LineSpacing:       c.Page.LineSpacing,
		FirstLineIndent:   c.Page.FirstLineIndent,
		HeaderSpaceBefore: c.Page.HeaderSpaceBefore,
		HeaderSpaceAfter:  c.Page.HeaderSpaceAfter,
		BreakPerChapter:   c.Page.ChapterBreaks,
	}
}
