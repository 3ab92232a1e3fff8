// Package render draws crosswords for the terminal, Markdown and print.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/crossword/internal/crossword"
)

var (
	blackCell  = color.New(color.FgHiBlack)
	wordNumber = color.New(color.FgCyan)
	wrongCell  = color.New(color.FgRed, color.Bold)
	heading    = color.New(color.Bold)
)

// minLabelWidth fits a two digit word number.
const minLabelWidth = 2

// Text writes the grid and its numbered clues. With showAnswers the correct letters are filled in.
func Text(w io.Writer, result *crossword.Result, showAnswers bool) error {
	letter := func(cell crossword.Cell) (string, bool) {
		if showAnswers {
			return cell.CorrectLetter, false
		}
		return "", false
	}
	if err := writeGrid(w, result, letter); err != nil {
		return err
	}
	return writeClues(w, result, showAnswers)
}

// Progress writes the grid with the player's letters. Wrong letters are highlighted when markWrong is set.
func Progress(w io.Writer, result *crossword.Result, markWrong bool) error {
	letter := func(cell crossword.Cell) (string, bool) {
		return cell.Letter, markWrong && cell.Letter != "" && cell.Letter != cell.CorrectLetter
	}
	if err := writeGrid(w, result, letter); err != nil {
		return err
	}
	return writeClues(w, result, false)
}

func writeGrid(w io.Writer, result *crossword.Result, letter func(crossword.Cell) (string, bool)) error {
	labels := result.StartLabels()
	labelWidth := minLabelWidth
	for _, label := range labels {
		labelWidth = max(labelWidth, len(label))
	}
	cellWidth := labelWidth + 2

	grid := result.Grid
	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", grid.Size())
	var b strings.Builder
	b.WriteString(border + "\n")
	for r, row := range grid {
		b.WriteString("|")
		for c, cell := range row {
			if cell.IsBlack {
				b.WriteString(blackCell.Sprint(strings.Repeat("#", cellWidth)))
			} else {
				b.WriteString(formatCell(cell, labels[crossword.Position{Row: r, Col: c}], labelWidth, letter))
			}
			b.WriteString("|")
		}
		b.WriteString("\n" + border + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatCell(cell crossword.Cell, label string, labelWidth int, letter func(crossword.Cell) (string, bool)) string {
	number := strings.Repeat(" ", labelWidth)
	if label != "" {
		number = wordNumber.Sprintf("%*s", labelWidth, label)
	}
	text, wrong := letter(cell)
	if text == "" {
		text = " "
	}
	if wrong {
		text = wrongCell.Sprint(text)
	}
	return number + text + " "
}

func writeClues(w io.Writer, result *crossword.Result, showAnswers bool) error {
	clues := result.Clues()
	sections := []struct {
		title string
		lines []crossword.ClueLine
	}{
		{title: "Across", lines: clues.Across},
		{title: "Down", lines: clues.Down},
	}

	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", heading.Sprint(section.title)); err != nil {
			return err
		}
		for _, line := range section.lines {
			if _, err := fmt.Fprintf(w, "%3s. %s\n", strconv.Itoa(line.Number), clueText(line, showAnswers)); err != nil {
				return err
			}
		}
	}
	return nil
}

func clueText(line crossword.ClueLine, showAnswers bool) string {
	text := line.Clue
	if text == "" {
		text = "(no clue)"
	}
	text = fmt.Sprintf("%s (%d)", text, line.Length)
	if showAnswers {
		text += " " + line.Answer
	}
	return text
}
