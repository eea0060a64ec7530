package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warraqdev/warraq/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Title:       "رحلة الشتاء",
		Author:      "سارة الخالد",
		Intro:       "intro.md",
		Conclusion:  "conclusion.md",
		ChaptersDir: "chapters",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid with chapters dir",
			mutate: func(c *Config) {},
		},
		{
			name: "valid with chapter list",
			mutate: func(c *Config) {
				c.ChaptersDir = ""
				c.Chapters = []string{"one.md"}
			},
		},
		{
			name:    "missing title",
			mutate:  func(c *Config) { c.Title = "" },
			wantErr: ErrNoTitle,
		},
		{
			name:    "missing author",
			mutate:  func(c *Config) { c.Author = "" },
			wantErr: ErrNoAuthor,
		},
		{
			name:    "missing intro",
			mutate:  func(c *Config) { c.Intro = "" },
			wantErr: ErrNoIntroduction,
		},
		{
			name:    "missing conclusion",
			mutate:  func(c *Config) { c.Conclusion = "" },
			wantErr: ErrNoConclusion,
		},
		{
			name: "both chapter sources",
			mutate: func(c *Config) {
				c.Chapters = []string{"one.md"}
			},
			wantErr: domain.ErrAmbiguousChapterSource,
		},
		{
			name: "no chapter source",
			mutate: func(c *Config) {
				c.ChaptersDir = ""
			},
			wantErr: domain.ErrNoChapterSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ChapterSource(t *testing.T) {
	cfg := validConfig()
	src := cfg.ChapterSource()
	assert.Equal(t, "chapters", src.Dir)
	assert.Empty(t, src.Files)

	cfg.ChaptersDir = ""
	cfg.Chapters = []string{"a.md", "b.md"}
	src = cfg.ChapterSource()
	assert.Empty(t, src.Dir)
	assert.Equal(t, []string{"a.md", "b.md"}, src.Files)
}
