package document

import "errors"

var (
	// ErrUnknownFormat is returned for a format name or file extension that
	// is neither JSON nor YAML.
	ErrUnknownFormat = errors.New("document: unknown format")

	// ErrNotMapping is returned by [Load] when the document root is not a
	// mapping.
	ErrNotMapping = errors.New("document: root is not a mapping")

	// ErrNotContainer is returned by [LoadContainer] when the document root
	// is a scalar.
	ErrNotContainer = errors.New("document: root is not a mapping or a sequence")
)
