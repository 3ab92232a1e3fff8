package wordsapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileCache keeps raw API responses as <word>.json files.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(word string) string {
	return filepath.Join(f.rootDir, strings.ToLower(word)+".json")
}

// cache returns the stored contents for word, or calls fetch and stores its result.
// Failed fetches are not stored.
func (f *FileCache) cache(word string, fetch func() ([]byte, error)) ([]byte, error) {
	path := f.filePath(word)
	if contents, err := os.ReadFile(path); err == nil {
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(f.rootDir, 0755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll(%s) > %w", f.rootDir, err)
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return contents, fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return contents, nil
}
