package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/at-ishikawa/crossword/internal/crossword"
)

// WritePDF writes the puzzle with the embedded template. See MarkdownRenderer.WritePDF.
func WritePDF(pdfPath string, result *crossword.Result, showAnswers bool) (string, error) {
	return defaultMarkdownRenderer.WritePDF(pdfPath, result, showAnswers)
}

// WritePDF writes the puzzle as Markdown next to pdfPath and converts it to a printable PDF.
// It returns the absolute path of the PDF.
func (m *MarkdownRenderer) WritePDF(pdfPath string, result *crossword.Result, showAnswers bool) (string, error) {
	if !strings.HasSuffix(pdfPath, ".pdf") {
		return "", fmt.Errorf("output file must have .pdf extension: %s", pdfPath)
	}
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(pdfPath), err)
	}

	markdown, err := m.Render(result, showAnswers)
	if err != nil {
		return "", err
	}
	markdownPath := strings.TrimSuffix(pdfPath, ".pdf") + ".md"
	if err := os.WriteFile(markdownPath, []byte(markdown), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	return ConvertMarkdownToPDF(markdownPath)
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
