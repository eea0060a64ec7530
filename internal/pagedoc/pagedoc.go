// Package pagedoc renders an assembled section sequence onto fixed-size
// pages. Concrete backends live in subpackages and register themselves by
// capability name from an init function, so a build selects its backend
// with a blank import. Requesting a backend that was never linked in
// yields a MissingDependencyError instead of a nil dereference.
package pagedoc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/warraqdev/warraq/internal/domain"
)

// CapabilityPDF names the backend that produces PDF pages.
const CapabilityPDF = "pdf"

// Document bundles everything a page backend needs to draw the book.
type Document struct {
	Manuscript *domain.Manuscript
	Sections   []domain.Section
	Layout     domain.LayoutConfig
	Page       domain.PageConfig
}

// Renderer draws a document onto pages and returns the encoded bytes.
type Renderer interface {
	Name() string
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

var (
	mu        sync.RWMutex
	renderers = make(map[string]Renderer)
)

// Register makes a renderer available under its capability name. It panics
// when the renderer is nil or the name is already taken.
func Register(r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	if r == nil {
		panic("pagedoc: Register called with nil renderer")
	}
	name := strings.ToLower(r.Name())
	if _, dup := renderers[name]; dup {
		panic(fmt.Sprintf("pagedoc: Register called twice for %q", name))
	}
	renderers[name] = r
}

// New returns the renderer registered under name. An unknown name means
// the capability was not linked into this build.
func New(name string) (Renderer, error) {
	mu.RLock()
	defer mu.RUnlock()
	if r, ok := renderers[strings.ToLower(name)]; ok {
		return r, nil
	}
	return nil, domain.NewMissingDependencyError(name)
}

// Available lists the registered backend names in sorted order.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
