package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/crossword/internal/testutil"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// setupWordsConfig writes a config reading a small level 1 word list and returns its directory.
func setupWordsConfig(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
	testutil.WriteWordFile(t, tmpDir, "level1.yml", wordpool.WordFile{
		Level: 1,
		Words: []wordpool.WordEntry{
			{Word: "cat", Clue: "Pet that purrs"},
			{Word: "tap", Clue: "Water comes out of it"},
			{Word: "tea", Clue: "Hot drink brewed from leaves"},
			{Word: "pen", Clue: "Used for writing"},
			{Word: "ant", Clue: "Small insect"},
			{Word: "hat"},
		},
	})
	return tmpDir
}

func disableColor(t *testing.T) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if configFile != "" {
		args = append([]string{"--config", configFile}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
