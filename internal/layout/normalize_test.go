package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warraqdev/warraq/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses runs of blank lines",
			input:    "أول\n\n\n\nثان",
			expected: "أول\n\nثان",
		},
		{
			name:     "keeps single blank line",
			input:    "أول\n\nثان",
			expected: "أول\n\nثان",
		},
		{
			name:     "strips trailing spaces per line",
			input:    "سطر  \nآخر\t",
			expected: "سطر\nآخر",
		},
		{
			name:     "converts windows line endings",
			input:    "سطر\r\nآخر",
			expected: "سطر\nآخر",
		},
		{
			name:     "trims surrounding blank lines",
			input:    "\n\nنص\n\n",
			expected: "نص",
		},
		{
			name:     "blank line of spaces collapses once trimmed",
			input:    "أول\n   \n\nثان",
			expected: "أول\n\nثان",
		},
		{
			name:     "plain text unchanged",
			input:    "نص عادي",
			expected: "نص عادي",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := "فقرة أولى  \n\n\n\nفقرة ثانية\r\nتكملة\n\n\n"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}

func TestRefinePunctuation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "comma",
			input:    "ذهبنا, ثم عدنا",
			expected: "ذهبنا، ثم عدنا",
		},
		{
			name:     "semicolon",
			input:    "قال; ثم صمت",
			expected: "قال؛ ثم صمت",
		},
		{
			name:     "question mark",
			input:    "من الطارق?",
			expected: "من الطارق؟",
		},
		{
			name:     "ellipsis before single marks",
			input:    "وبعد...",
			expected: "وبعد…",
		},
		{
			name:     "alternating double quotes",
			input:    `قال "نعم" ثم "لا"`,
			expected: "قال «نعم» ثم «لا»",
		},
		{
			name:     "space before mark is removed",
			input:    "ذهبنا , ثم عدنا ؟",
			expected: "ذهبنا، ثم عدنا؟",
		},
		{
			name:     "space before closing quote is removed",
			input:    `قال "نعم "`,
			expected: "قال «نعم»",
		},
		{
			name:     "space before opening quote survives",
			input:    `ثم "نعم"`,
			expected: "ثم «نعم»",
		},
		{
			name:     "already localized text unchanged",
			input:    "ذهبنا، ثم عدنا؟ «تمام»",
			expected: "ذهبنا، ثم عدنا؟ «تمام»",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RefinePunctuation(tt.input))
		})
	}
}

func TestPrepare(t *testing.T) {
	t.Run("rejects empty input", func(t *testing.T) {
		_, err := Prepare(LabelIntroduction, "", true)
		require.Error(t, err)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, LabelIntroduction, verr.Section)
	})

	t.Run("rejects whitespace-only input", func(t *testing.T) {
		_, err := Prepare(ChapterLabel(3), " \n\t\n ", false)
		require.Error(t, err)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "الفصل 3", verr.Section)
	})

	t.Run("normalizes and localizes", func(t *testing.T) {
		got, err := Prepare(LabelConclusion, "انتهى الأمر ,\n\n\n\nوالسلام.", true)
		require.NoError(t, err)
		assert.Equal(t, "انتهى الأمر،\n\nوالسلام.", got)
	})

	t.Run("skips localization when disabled", func(t *testing.T) {
		got, err := Prepare(LabelConclusion, "done, at last", false)
		require.NoError(t, err)
		assert.Equal(t, "done, at last", got)
	})
}
