package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/warraqdev/warraq/internal/domain"
	"github.com/warraqdev/warraq/internal/utils"
)

// ChapterSource designates where chapter bodies come from: a directory
// scanned for markdown files, or an explicit ordered file list. Exactly one
// of the two must be set.
type ChapterSource struct {
	Dir   string
	Files []string
}

// Resolve turns the source into the ordered list of chapter file paths.
// Directory sources are scanned non-recursively for .md files and ordered
// naturally, so c2.md precedes c10.md. Explicit lists keep their given
// order. Setting both or neither of the source fields is an error.
func Resolve(src ChapterSource) ([]string, error) {
	hasDir := src.Dir != ""
	hasFiles := len(src.Files) > 0
	switch {
	case hasDir && hasFiles:
		return nil, domain.ErrAmbiguousChapterSource
	case !hasDir && !hasFiles:
		return nil, domain.ErrNoChapterSource
	case hasFiles:
		return append([]string(nil), src.Files...), nil
	}

	entries, err := os.ReadDir(src.Dir)
	if err != nil {
		return nil, domain.NewNotFoundError(src.Dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoChapterFiles, src.Dir)
	}
	SortNatural(names)

	files := make([]string, len(names))
	for i, name := range names {
		files[i] = filepath.Join(src.Dir, name)
	}
	return files, nil
}

// Load verifies the resolved chapter files and reads their bodies in order.
// Every file's existence is checked before the count, so a missing file is
// always reported ahead of a count mismatch. Bodies come back stripped of
// surrounding whitespace; content validation happens later, at layout time.
func Load(files []string, want int) ([]string, error) {
	for _, path := range files {
		if !utils.IsRegularFile(path) {
			return nil, domain.NewNotFoundError(path, nil)
		}
	}
	if want > 0 && len(files) != want {
		return nil, domain.NewCountMismatchError(want, len(files))
	}

	chapters := make([]string, 0, len(files))
	for _, path := range files {
		body, err := ReadSection(path)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, body)
	}
	return chapters, nil
}

// Gather resolves the chapter source and loads the bodies in one step.
func Gather(src ChapterSource, want int) ([]string, error) {
	files, err := Resolve(src)
	if err != nil {
		return nil, err
	}
	return Load(files, want)
}

// ReadSection reads a single prose file, such as the introduction or the
// conclusion, and strips surrounding whitespace.
func ReadSection(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewNotFoundError(path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
