package wordpool

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed words/*.yml
var embeddedWords embed.FS

var loadDefault = sync.OnceValues(func() ([]WordEntry, error) {
	return loadFS(embeddedWords, "words/*.yml")
})

// Default returns the bundled word table. It is decoded once; callers must not modify it.
func Default() ([]WordEntry, error) {
	return loadDefault()
}

// MustDefault is like Default but panics if the bundled table cannot be decoded.
func MustDefault() []WordEntry {
	entries, err := Default()
	if err != nil {
		panic(err)
	}
	return entries
}

func loadFS(fsys fs.FS, pattern string) ([]WordEntry, error) {
	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("fs.Glob(%s) > %w", pattern, err)
	}

	var entries []WordEntry
	for _, path := range paths {
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("fs.ReadFile(%s) > %w", path, err)
		}
		var file WordFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
		}
		entries = append(entries, file.Entries()...)
	}
	return entries, nil
}

// EmbeddedSource serves the bundled word table.
type EmbeddedSource struct{}

func (EmbeddedSource) Entries(ctx context.Context) ([]WordEntry, error) {
	return Default()
}
