// Package manifest provides types and utilities for loading and validating
// book manifest files. A manifest names the manuscript identity and where
// its prose lives, so a whole book can be formatted from one file instead
// of a long flag list.
//
// # Manifest Format
//
// Manifests can be written in YAML or JSON format:
//
//	title: رحلة الشتاء
//	author: سارة الخالد
//	tagline: رواية
//	epigraph: |
//	  في البدء كانت الكلمة
//	intro: intro.md
//	conclusion: conclusion.md
//	chapters_dir: chapters/
//	options:
//	  width: 84
//	  chapter_count: 25
//	  stats: true
//
// Chapters come either from chapters_dir, scanned and ordered naturally,
// or from an explicit chapters list kept in its given order. Relative
// paths are resolved against the manifest's own directory.
//
// # Usage
//
// Load a manifest file:
//
//	loader := manifest.NewLoader()
//	book, err := loader.Load("book.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrNoTitle / ErrNoAuthor: required identity fields are missing
//   - ErrNoIntroduction / ErrNoConclusion: required prose paths missing
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrFileNotFound: manifest file does not exist
//   - ErrUnsupportedExt: unsupported file extension
//
// Chapter source problems reuse the domain sentinels
// ErrNoChapterSource and ErrAmbiguousChapterSource.
package manifest
