package arabic

import (
	"testing"

	"github.com/abdullahdiaa/garabic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warraqdev/warraq/internal/shaping"
)

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func TestShaperRegistersItself(t *testing.T) {
	s, ok := shaping.Lookup(shaping.CapabilityArabic)
	require.True(t, ok)
	assert.Equal(t, shaping.CapabilityArabic, s.Name())

	selected, ok := shaping.For(true)
	require.True(t, ok)
	assert.Equal(t, shaping.CapabilityArabic, selected.Name())
}

func TestShapeLatinPassesThrough(t *testing.T) {
	s := New()
	assert.Equal(t, "hello world", s.Shape("hello world"))
	assert.Equal(t, "", s.Shape(""))
}

func TestShapeJoinsArabicLetters(t *testing.T) {
	s := New()
	in := "سلام عليكم"
	got := s.Shape(in)

	require.NotEmpty(t, got)
	assert.NotEqual(t, in, got)
	for _, r := range got {
		assert.False(t, r >= 0x0621 && r <= 0x064A,
			"rune %U left in the base Arabic block", r)
	}
}

func TestShapeMirrorsPureRightToLeftLine(t *testing.T) {
	// a single right-to-left run in visual order is the shaped line
	// mirrored rune by rune
	s := New()
	in := "سلام عليكم"
	assert.Equal(t, reverseRunes(garabic.Shape(in)), s.Shape(in))
}

func TestShapeReordersBidiRuns(t *testing.T) {
	s := New()

	t.Run("hebrew line is mirrored", func(t *testing.T) {
		assert.Equal(t, "םלוע םולש", s.Shape("שלום עולם"))
	})

	t.Run("digits keep their order", func(t *testing.T) {
		assert.Equal(t, "חתפנ 12 קרפ", s.Shape("פרק 12 נפתח"))
	})
}

func TestShapeHandlesMultipleLines(t *testing.T) {
	s := New()
	assert.Equal(t, "םולש\nםלוע", s.Shape("שלום\nעולם"))
}
