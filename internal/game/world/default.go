package world

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed content/forest.yaml
var defaultMapYAML []byte

// DefaultMap builds a fresh copy of the built-in forest map.
//
// Postcondition: Returns a Map starting at (0, 0), or an error if the embedded content is invalid.
func DefaultMap() (*Map, error) {
	return LoadMapFromBytes(defaultMapYAML)
}

// NewMapFactory reads the map at path, or the built-in forest when path
// is empty, and returns a function that builds an independent Map from
// it on every call.
//
// Postcondition: The source is read and validated once; a non-nil error
// means no factory is returned.
func NewMapFactory(path string) (func() (*Map, error), error) {
	data := defaultMapYAML
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("reading map file %s: %w", path, err)
		}
	}
	if _, err := LoadMapFromBytes(data); err != nil {
		return nil, err
	}
	return func() (*Map, error) {
		return LoadMapFromBytes(data)
	}, nil
}
