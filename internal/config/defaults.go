package config

import (
	"os"
	"path/filepath"

	"github.com/warraqdev/warraq/internal/domain"
)

// Default values
const (
	// Layout defaults
	DefaultWidth    = 84
	DefaultSpacing  = 1
	DefaultOrnament = "✦"
	DefaultChapters = 25

	// Page defaults
	DefaultPageSize          = domain.PageA4
	DefaultLineSpacing       = 1.5
	DefaultFirstLineIndent   = 8.0
	DefaultHeaderSpaceBefore = 12.0
	DefaultHeaderSpaceAfter  = 6.0

	// Output defaults
	DefaultOutputPath = "formatted_novel.md"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".warraq"
	}
	return filepath.Join(home, ".warraq")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Width:       DefaultWidth,
			Indent:      0,
			Spacing:     DefaultSpacing,
			RightToLeft: true,
			Ornament:    DefaultOrnament,
			Stats:       false,
			Chapters:    DefaultChapters,
		},
		Page: PageConfig{
			Size:              string(DefaultPageSize),
			LineSpacing:       DefaultLineSpacing,
			FirstLineIndent:   DefaultFirstLineIndent,
			HeaderSpaceBefore: DefaultHeaderSpaceBefore,
			HeaderSpaceAfter:  DefaultHeaderSpaceAfter,
			ChapterBreaks:     true,
		},
		Output: OutputConfig{
			Path:     DefaultOutputPath,
			PDF:      false,
			KeepText: false,
			Report:   false,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
