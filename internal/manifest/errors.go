package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrNoTitle indicates the manifest is missing the book title
	ErrNoTitle = errors.New("manifest must name a title")

	// ErrNoAuthor indicates the manifest is missing the author
	ErrNoAuthor = errors.New("manifest must name an author")

	// ErrNoIntroduction indicates the manifest is missing the introduction path
	ErrNoIntroduction = errors.New("manifest must name an intro file")

	// ErrNoConclusion indicates the manifest is missing the conclusion path
	ErrNoConclusion = errors.New("manifest must name a conclusion file")

	// ErrInvalidFormat indicates the manifest file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("manifest must be valid YAML or JSON")

	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")
)
