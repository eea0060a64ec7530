package layout

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warraqdev/warraq/internal/domain"
)

func sampleManuscript(chapters int) *domain.Manuscript {
	man := &domain.Manuscript{
		Title:        "رحلة الشتاء",
		Author:       "سارة الخالد",
		Tagline:      "رواية",
		Epigraph:     "في البدء كانت الكلمة",
		Introduction: "تمهد هذه المقدمة لأحداث الرواية كلها.",
		Conclusion:   "وهكذا انتهت الرحلة الطويلة.",
	}
	for i := 1; i <= chapters; i++ {
		man.Chapters = append(man.Chapters, fmt.Sprintf("تجري أحداث الفصل رقم %d في مدينة بعيدة.", i))
	}
	return man
}

func sampleLayout(chapters int) domain.LayoutConfig {
	return domain.LayoutConfig{
		Width:            40,
		Indent:           0,
		Spacing:          1,
		RightToLeft:      true,
		Ornament:         "✦",
		RequiredChapters: chapters,
	}
}

func TestPrepareManuscript(t *testing.T) {
	t.Run("cleans every section", func(t *testing.T) {
		man := sampleManuscript(2)
		man.Introduction = "مقدمة ,\n\n\n\nبفقرتين."
		man.Title = " رحلة الشتاء "

		got, err := PrepareManuscript(man, sampleLayout(2))
		require.NoError(t, err)

		assert.Equal(t, "مقدمة،\n\nبفقرتين.", got.Introduction)
		assert.Equal(t, "رحلة الشتاء", got.Title)
		assert.Len(t, got.Chapters, 2)
		// the input manuscript is left untouched
		assert.Equal(t, "مقدمة ,\n\n\n\nبفقرتين.", man.Introduction)
	})

	t.Run("reports the introduction before any chapter", func(t *testing.T) {
		man := sampleManuscript(2)
		man.Introduction = "   "
		man.Chapters[0] = ""

		_, err := PrepareManuscript(man, sampleLayout(2))
		require.Error(t, err)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, LabelIntroduction, verr.Section)
	})

	t.Run("names the empty chapter", func(t *testing.T) {
		man := sampleManuscript(3)
		man.Chapters[1] = "\n\n"

		_, err := PrepareManuscript(man, sampleLayout(3))

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "الفصل 2", verr.Section)
	})

	t.Run("names the empty conclusion", func(t *testing.T) {
		man := sampleManuscript(1)
		man.Conclusion = ""

		_, err := PrepareManuscript(man, sampleLayout(1))

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, LabelConclusion, verr.Section)
	})

	t.Run("rejects a wrong chapter count", func(t *testing.T) {
		man := sampleManuscript(3)
		cfg := sampleLayout(3)
		cfg.RequiredChapters = 25

		_, err := PrepareManuscript(man, cfg)
		require.Error(t, err)

		var cerr *domain.CountMismatchError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, 25, cerr.Want)
		assert.Equal(t, 3, cerr.Got)
		assert.EqualError(t, err, "expected 25 chapters but received 3")
	})

	t.Run("accepts any count when none is required", func(t *testing.T) {
		man := sampleManuscript(4)
		cfg := sampleLayout(4)
		cfg.RequiredChapters = 0

		_, err := PrepareManuscript(man, cfg)
		assert.NoError(t, err)
	})
}

func TestBuildSectionsOrder(t *testing.T) {
	man := sampleManuscript(3)
	cfg := sampleLayout(3)

	prepared, err := PrepareManuscript(man, cfg)
	require.NoError(t, err)

	sections := BuildSections(prepared, cfg)

	kinds := make([]domain.SectionKind, 0, len(sections))
	for _, s := range sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []domain.SectionKind{
		domain.KindTitle,
		domain.KindContents,
		domain.KindIntroduction,
		domain.KindChapter,
		domain.KindChapter,
		domain.KindChapter,
		domain.KindConclusion,
		domain.KindEnding,
	}, kinds)

	assert.Equal(t, 1, sections[3].Number)
	assert.Equal(t, 2, sections[4].Number)
	assert.Equal(t, 3, sections[5].Number)
	assert.Equal(t, "الفصل 2", sections[4].Label)
}

func TestBuildSectionsWithStatistics(t *testing.T) {
	man := sampleManuscript(2)
	cfg := sampleLayout(2)
	cfg.IncludeStats = true

	prepared, err := PrepareManuscript(man, cfg)
	require.NoError(t, err)

	sections := BuildSections(prepared, cfg)

	require.Greater(t, len(sections), 4)
	assert.Equal(t, domain.KindIntroduction, sections[2].Kind)
	assert.Equal(t, domain.KindStatistics, sections[3].Kind)
	assert.Equal(t, domain.KindChapter, sections[4].Kind)
}

func TestContentsLines(t *testing.T) {
	lines := ContentsLines(25)

	require.Len(t, lines, 29)
	assert.Equal(t, LabelContents, lines[0])
	assert.Equal(t, "1. المقدمة", lines[2])
	assert.Equal(t, "2. الفصل 1", lines[3])
	assert.Equal(t, "26. الفصل 25", lines[27])
	assert.Equal(t, "27. الخاتمة", lines[28])
}

func TestRenderFlat(t *testing.T) {
	man := sampleManuscript(3)
	cfg := sampleLayout(3)

	prepared, err := PrepareManuscript(man, cfg)
	require.NoError(t, err)
	doc := RenderFlat(BuildSections(prepared, cfg), cfg)

	t.Run("ends with exactly one newline", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(doc, "\n"))
		assert.False(t, strings.HasSuffix(doc, "\n\n"))
	})

	t.Run("sections separated by single blank lines", func(t *testing.T) {
		assert.NotContains(t, doc, "\n\n\n")
	})

	t.Run("headers appear in reading order", func(t *testing.T) {
		headers := []string{
			"✦ المقدمة ✦",
			"✦ الفصل 1 ✦",
			"✦ الفصل 2 ✦",
			"✦ الفصل 3 ✦",
			"✦ الخاتمة ✦",
			"✦ النهاية ✦",
		}
		last := -1
		for _, h := range headers {
			idx := strings.Index(doc, h)
			require.NotEqual(t, -1, idx, "missing header %q", h)
			assert.Greater(t, idx, last, "header %q out of order", h)
			last = idx
		}
	})

	t.Run("title page carries identity and epigraph", func(t *testing.T) {
		assert.Contains(t, doc, "رحلة الشتاء")
		assert.Contains(t, doc, "بقلم سارة الخالد")
		assert.Contains(t, doc, "في البدء كانت الكلمة")
		assert.Contains(t, doc, "✦✦✦")
	})

	t.Run("contents list every section", func(t *testing.T) {
		assert.Contains(t, doc, LabelContents)
		assert.Contains(t, doc, "1. المقدمة")
		assert.Contains(t, doc, "4. الفصل 3")
		assert.Contains(t, doc, "5. الخاتمة")
	})

	t.Run("closing mark follows the ending header", func(t *testing.T) {
		endingAt := strings.Index(doc, "✦ النهاية ✦")
		closingAt := strings.LastIndex(doc, LabelClosing)
		assert.Greater(t, closingAt, endingAt)
	})

	t.Run("decorated lines span the configured width", func(t *testing.T) {
		for _, line := range strings.Split(doc, "\n") {
			if strings.Contains(line, HeaderUnderline) || strings.Contains(line, EndingUnderline) {
				assert.Equal(t, cfg.Width, uniseg.StringWidth(line), "line %q", line)
			}
		}
	})
}

func TestRenderFlatWithStatistics(t *testing.T) {
	man := sampleManuscript(2)
	cfg := sampleLayout(2)
	cfg.IncludeStats = true

	prepared, err := PrepareManuscript(man, cfg)
	require.NoError(t, err)
	doc := RenderFlat(BuildSections(prepared, cfg), cfg)

	statsAt := strings.Index(doc, LabelStatistics)
	introAt := strings.Index(doc, "✦ المقدمة ✦")
	chapterAt := strings.Index(doc, "✦ الفصل 1 ✦")

	require.NotEqual(t, -1, statsAt)
	assert.Greater(t, statsAt, introAt)
	assert.Less(t, statsAt, chapterAt)
	assert.Contains(t, doc, LabelTotal)
}

func TestRenderFlatWithoutTagline(t *testing.T) {
	man := sampleManuscript(1)
	man.Tagline = ""
	man.Epigraph = ""
	cfg := sampleLayout(1)

	prepared, err := PrepareManuscript(man, cfg)
	require.NoError(t, err)
	doc := RenderFlat(BuildSections(prepared, cfg), cfg)

	assert.NotContains(t, doc, " رواية ")
	for _, line := range strings.Split(doc, "\n") {
		assert.NotEqual(t, "✦✦✦", strings.TrimSpace(line), "stray ornamental break")
	}
	assert.Contains(t, doc, "بقلم سارة الخالد")
}
