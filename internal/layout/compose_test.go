package layout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	t.Run("spans exactly the requested width", func(t *testing.T) {
		got := Header("Intro", 20, "═", "✦")

		assert.Equal(t, 20, utf8.RuneCountInString(got))
		assert.Equal(t, 20, uniseg.StringWidth(got))
		assert.Contains(t, got, " ✦ Intro ✦ ")
		assert.True(t, strings.HasPrefix(got, "═"))
		assert.True(t, strings.HasSuffix(got, "═"))
	})

	t.Run("holds the width invariant across widths", func(t *testing.T) {
		for width := 15; width <= 84; width++ {
			got := Header("المقدمة", width, "═", "✦")
			assert.Equal(t, width, uniseg.StringWidth(got), "width %d", width)
		}
	})

	t.Run("empty ornament degrades to spaced title", func(t *testing.T) {
		got := Header("الخاتمة", 21, "─", "")

		assert.Equal(t, 21, uniseg.StringWidth(got))
		assert.Contains(t, got, " الخاتمة ")
		assert.NotContains(t, got, "✦")
	})

	t.Run("overflow keeps the full title", func(t *testing.T) {
		title := "عنوان طويل جدا لا يتسع في السطر أبدا"
		got := Header(title, 10, "═", "✦")

		assert.Contains(t, got, title)
		assert.GreaterOrEqual(t, uniseg.StringWidth(got), 10)
	})

	t.Run("strips surrounding whitespace from the title", func(t *testing.T) {
		assert.Equal(t, Header("الفصل 1", 30, "═", "✦"), Header("  الفصل 1 ", 30, "═", "✦"))
	})
}

func TestCenterBlock(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		width    int
		expected string
	}{
		{
			name:     "even padding",
			lines:    []string{"أ"},
			width:    5,
			expected: "  أ  ",
		},
		{
			name:     "odd remainder goes right",
			lines:    []string{"ab"},
			width:    5,
			expected: " ab  ",
		},
		{
			name:     "multiple lines joined by line breaks",
			lines:    []string{"أول", "", "ثان"},
			width:    7,
			expected: "  أول  \n       \n  ثان  ",
		},
		{
			name:     "overlong line passes through",
			lines:    []string{"سطر أطول من العرض"},
			width:    5,
			expected: "سطر أطول من العرض",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CenterBlock(tt.lines, tt.width))
		})
	}
}

func TestOrnamentalBreak(t *testing.T) {
	got := OrnamentalBreak(11, "✦")

	assert.Equal(t, "    ✦✦✦    ", got)
	assert.Equal(t, 11, uniseg.StringWidth(got))
}

func TestRule(t *testing.T) {
	got := Rule(11, "═", "✦")

	assert.Equal(t, "═══ ✦✦✦ ═══", got)
	assert.Equal(t, 11, uniseg.StringWidth(got))
}
