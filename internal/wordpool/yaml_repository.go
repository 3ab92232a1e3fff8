package wordpool

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// YAMLRepository reads word lists from YAML files.
type YAMLRepository struct {
	directories []string
	files       []string
}

// NewYAMLRepository creates a repository over every YAML file under directories plus files.
func NewYAMLRepository(directories, files []string) *YAMLRepository {
	return &YAMLRepository{directories: directories, files: files}
}

// Files loads every word file, keyed by path.
func (r *YAMLRepository) Files() (map[string]WordFile, error) {
	paths, err := r.paths()
	if err != nil {
		return nil, err
	}

	result := make(map[string]WordFile, len(paths))
	for _, path := range paths {
		file, err := readYamlFile[WordFile](path)
		if err != nil {
			return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
		}
		result[path] = file
	}
	return result, nil
}

// Entries returns the entries of every file. When a word appears more than once,
// the first occurrence in path order wins.
func (r *YAMLRepository) Entries(ctx context.Context) ([]WordEntry, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	seen := make(map[string]bool)
	var entries []WordEntry
	for _, path := range paths {
		for _, e := range files[path].Entries() {
			if seen[e.Word] {
				continue
			}
			seen[e.Word] = true
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *YAMLRepository) paths() ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, dir := range r.directories {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isYAMLFile(path) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("filepath.WalkDir(%s) > %w", dir, err)
		}
	}
	for _, path := range r.files {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("os.Stat(%s) > %w", path, err)
		}
		add(path)
	}
	return paths, nil
}
