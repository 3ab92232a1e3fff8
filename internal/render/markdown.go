package render

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

const fallbackTemplateName = "crossword.md.go.tmpl"

//go:embed templates/crossword.md.go.tmpl
var fallbackMarkdownTemplate string

var defaultMarkdownRenderer = &MarkdownRenderer{
	tmpl: template.Must(template.New(fallbackTemplateName).Parse(fallbackMarkdownTemplate)),
}

// MarkdownTemplate is the data a Markdown template is executed with.
type MarkdownTemplate struct {
	Level   wordpool.Level
	Columns []int
	// Rows holds the text of each cell: "#" for black cells, "(n)" for numbered cells, "(n/m)" when two words start there.
	Rows   [][]string
	Across []MarkdownClue
	Down   []MarkdownClue
}

type MarkdownClue struct {
	Number int
	Text   string
}

// MarkdownRenderer writes puzzles with a text/template.
type MarkdownRenderer struct {
	tmpl *template.Template
}

// NewMarkdownRenderer parses the template at templatePath.
// The embedded template is used when templatePath is empty, missing or cannot be parsed.
func NewMarkdownRenderer(templatePath string) (*MarkdownRenderer, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).ParseFiles(templatePath)
			if err == nil {
				return &MarkdownRenderer{tmpl: tmpl}, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackTemplateName).Parse(fallbackMarkdownTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return &MarkdownRenderer{tmpl: tmpl}, nil
}

// Render returns the puzzle as a Markdown document.
func (m *MarkdownRenderer) Render(result *crossword.Result, showAnswers bool) (string, error) {
	var b strings.Builder
	if err := m.tmpl.Execute(&b, newMarkdownTemplate(result, showAnswers)); err != nil {
		return "", fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return b.String(), nil
}

// Markdown renders the puzzle with the embedded template, the grid as a table.
func Markdown(result *crossword.Result, showAnswers bool) string {
	// The embedded template only reads fields that always exist.
	markdown, _ := defaultMarkdownRenderer.Render(result, showAnswers)
	return markdown
}

func newMarkdownTemplate(result *crossword.Result, showAnswers bool) MarkdownTemplate {
	data := MarkdownTemplate{
		Level:   result.Level,
		Columns: make([]int, result.Grid.Size()),
		Rows:    make([][]string, len(result.Grid)),
	}
	for c := range data.Columns {
		data.Columns[c] = c + 1
	}
	labels := result.StartLabels()
	for r, row := range result.Grid {
		data.Rows[r] = make([]string, len(row))
		for c, cell := range row {
			data.Rows[r][c] = markdownCell(cell, labels[crossword.Position{Row: r, Col: c}], showAnswers)
		}
	}

	clues := result.Clues()
	data.Across = markdownClues(clues.Across, showAnswers)
	data.Down = markdownClues(clues.Down, showAnswers)
	return data
}

func markdownCell(cell crossword.Cell, label string, showAnswers bool) string {
	if cell.IsBlack {
		return "#"
	}
	var parts []string
	if label != "" {
		parts = append(parts, "("+label+")")
	}
	if showAnswers {
		parts = append(parts, cell.CorrectLetter)
	}
	if len(parts) == 0 {
		return " "
	}
	return strings.Join(parts, " ")
}

func markdownClues(lines []crossword.ClueLine, showAnswers bool) []MarkdownClue {
	clues := make([]MarkdownClue, len(lines))
	for i, line := range lines {
		clues[i] = MarkdownClue{Number: line.Number, Text: clueText(line, showAnswers)}
	}
	return clues
}
