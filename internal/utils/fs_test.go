package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	target := filepath.Join(base, "nested", "deeper", "novel.md")

	require.NoError(t, EnsureDir(target))

	info, err := os.Stat(filepath.Join(base, "nested", "deeper"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on existing directories
	require.NoError(t, EnsureDir(target))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde prefix",
			input:    "~/books/out.md",
			expected: filepath.Join(home, "books", "out.md"),
		},
		{
			name:     "bare tilde",
			input:    "~",
			expected: home,
		},
		{
			name:     "absolute path untouched",
			input:    "/tmp/out.md",
			expected: "/tmp/out.md",
		},
		{
			name:     "relative path untouched",
			input:    "out.md",
			expected: "out.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestIsRegularFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "ch01.txt")
	require.NoError(t, os.WriteFile(file, []byte("نص"), 0644))

	assert.True(t, IsRegularFile(file))
	assert.False(t, IsRegularFile(dir))
	assert.False(t, IsRegularFile(filepath.Join(dir, "absent.txt")))
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "novel.pdf", ReplaceExt("novel.md", ".pdf"))
	assert.Equal(t, "out/novel.pdf", ReplaceExt("out/novel.md", ".pdf"))
	assert.Equal(t, "novel.pdf", ReplaceExt("novel", ".pdf"))
}
