// Package shaping prepares logical-order text for renderers that draw
// glyphs strictly left to right. Implementations register themselves by
// capability name, usually from an init function, and are selected at
// render time. The package itself only ships a passthrough shaper; the
// Arabic implementation lives in a subpackage and is linked in with a
// blank import. Builds without it still render, just with unshaped text.
package shaping

import (
	"fmt"
	"sync"
)

// CapabilityArabic names the shaper required for right-to-left page
// rendering.
const CapabilityArabic = "arabic"

// Shaper converts a logical-order line into the form a left-to-right
// glyph renderer must draw. Shape is called once per laid-out line.
type Shaper interface {
	Name() string
	Shape(line string) string
}

var (
	mu      sync.RWMutex
	shapers = make(map[string]Shaper)
)

// Register makes a shaper available under its capability name. It panics
// if the shaper is nil or the name is already taken, mirroring how
// database/sql treats driver registration.
func Register(s Shaper) {
	mu.Lock()
	defer mu.Unlock()
	if s == nil {
		panic("shaping: Register called with nil shaper")
	}
	if _, dup := shapers[s.Name()]; dup {
		panic(fmt.Sprintf("shaping: Register called twice for %q", s.Name()))
	}
	shapers[s.Name()] = s
}

// Lookup returns the shaper registered under name.
func Lookup(name string) (Shaper, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := shapers[name]
	return s, ok
}

// For selects the shaper for the requested text direction. Left-to-right
// text needs no shaping and always gets the passthrough. Right-to-left
// text wants the Arabic capability; when no such shaper is linked into the
// build, For falls back to the passthrough and reports false, and the text
// comes out unshaped rather than failing the render.
func For(rtl bool) (Shaper, bool) {
	if !rtl {
		return Passthrough(), true
	}
	if s, ok := Lookup(CapabilityArabic); ok {
		return s, true
	}
	return Passthrough(), false
}

// Passthrough returns the identity shaper.
func Passthrough() Shaper {
	return passthrough{}
}

type passthrough struct{}

func (passthrough) Name() string { return "passthrough" }

func (passthrough) Shape(line string) string { return line }
