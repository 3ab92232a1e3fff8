package wordpool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WordFile is the YAML layout of a word list.
// Entries without a level inherit the file's level.
type WordFile struct {
	Level Level       `yaml:"level"`
	Words []WordEntry `yaml:"words"`
}

// Entries returns the normalized entries of the file.
func (f WordFile) Entries() []WordEntry {
	entries := make([]WordEntry, 0, len(f.Words))
	for _, w := range f.Words {
		if w.Level == 0 {
			w.Level = f.Level
		}
		w = Normalize(w)
		if w.Word == "" {
			continue
		}
		entries = append(entries, w)
	}
	return entries
}

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode()> %w", err)
	}
	return result, nil
}

// WriteYAMLFile writes data as YAML to path, creating parent directories.
func WriteYAMLFile[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s)> %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("yaml.NewEncoder().Encode()> %w", err)
	}
	return encoder.Close()
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}
