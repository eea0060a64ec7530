// Package output persists rendered artifacts. The writer creates parent
// directories as needed, always overwrites, and remembers what it wrote so a
// build report can list every artifact of the run.
package output

import (
	"context"
	"fmt"
	"os"

	"github.com/warraqdev/warraq/internal/domain"
	"github.com/warraqdev/warraq/internal/utils"
)

// Artifact describes one file produced by a run.
type Artifact struct {
	Kind string `json:"kind"` // "text" or "pdf"
	Path string `json:"path"`
	Size int    `json:"size"` // bytes
}

// Writer stores rendered documents on disk.
type Writer struct {
	artifacts []Artifact
}

// NewWriter returns a writer with no recorded artifacts.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText stores the flat rendering at path as UTF-8.
func (w *Writer) WriteText(ctx context.Context, path, text string) error {
	if err := w.write(ctx, path, []byte(text)); err != nil {
		return err
	}
	w.record("text", path, len(text))
	return nil
}

// WritePDF stores the binary document at path.
func (w *Writer) WritePDF(ctx context.Context, path string, data []byte) error {
	if err := w.write(ctx, path, data); err != nil {
		return err
	}
	w.record("pdf", path, len(data))
	return nil
}

// Artifacts returns a copy of everything written so far, in write order.
func (w *Writer) Artifacts() []Artifact {
	out := make([]Artifact, len(w.artifacts))
	copy(out, w.artifacts)
	return out
}

func (w *Writer) record(kind, path string, size int) {
	w.artifacts = append(w.artifacts, Artifact{Kind: kind, Path: path, Size: size})
}

func (w *Writer) write(ctx context.Context, path string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := utils.EnsureDir(path); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, path, err)
	}
	return nil
}
