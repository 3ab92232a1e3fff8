package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/render"
)

const playHelp = `Commands:
  <number> <answer>  write an answer, e.g. "1 cat"
  check              check your letters
  reveal <number>    show the answer of a word
  show               show the grid again
  quit               stop playing`

// PlaySession lets a player solve a crossword in the terminal.
type PlaySession struct {
	*InteractiveCLI
	result    *crossword.Result
	markWrong bool
	redraw    bool
}

func NewPlaySession(cli *InteractiveCLI, result *crossword.Result) *PlaySession {
	return &PlaySession{
		InteractiveCLI: cli,
		result:         result,
		redraw:         true,
	}
}

// Session handles one command.
func (s *PlaySession) Session(ctx context.Context) error {
	if s.redraw {
		if err := render.Progress(s.stdoutWriter, s.result, s.markWrong); err != nil {
			return fmt.Errorf("render.Progress() > %w", err)
		}
		_, _ = fmt.Fprintln(s.stdoutWriter)
		s.redraw = false
	}
	_, _ = s.bold.Fprint(s.stdoutWriter, "> ")

	line, err := s.readLine()
	if err != nil {
		return err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		return errEnd
	case "help", "?":
		_, _ = fmt.Fprintln(s.stdoutWriter, playHelp)
	case "show":
		s.redraw = true
	case "check":
		return s.check()
	case "reveal":
		if len(fields) != 2 {
			_, _ = fmt.Fprintln(s.stdoutWriter, `Usage: reveal <number>`)
			return nil
		}
		return s.reveal(fields[1])
	default:
		if len(fields) != 2 {
			_, _ = fmt.Fprintf(s.stdoutWriter, "Unknown command %q\n%s\n", strings.TrimSpace(line), playHelp)
			return nil
		}
		return s.answer(fields[0], fields[1])
	}
	return nil
}

func (s *PlaySession) word(number string) (crossword.PlacedWord, bool) {
	id, err := strconv.Atoi(number)
	if err != nil {
		_, _ = fmt.Fprintf(s.stdoutWriter, "%q is not a word number\n", number)
		return crossword.PlacedWord{}, false
	}
	w, ok := s.result.Word(id)
	if !ok {
		_, _ = fmt.Fprintf(s.stdoutWriter, "There is no word %d\n", id)
	}
	return w, ok
}

func (s *PlaySession) answer(number, answer string) error {
	w, ok := s.word(number)
	if !ok {
		return nil
	}
	letters := []rune(strings.ToUpper(answer))
	if len(letters) != w.Length {
		_, _ = fmt.Fprintf(s.stdoutWriter, "Word %d has %d letters, %q has %d\n", w.ID, w.Length, answer, len(letters))
		return nil
	}

	if slices.ContainsFunc(letters, func(r rune) bool { return !unicode.IsLetter(r) }) {
		_, _ = fmt.Fprintf(s.stdoutWriter, "Cannot write %q: use letters only\n", answer)
		return nil
	}

	// Letters go to a copy so a failing cell leaves the grid untouched.
	grid := s.result.Grid.Clone()
	for i, p := range w.Cells() {
		if err := grid.SetLetter(p.Row, p.Col, string(letters[i])); err != nil {
			_, _ = fmt.Fprintf(s.stdoutWriter, "Cannot write %q: %v\n", answer, err)
			return nil
		}
	}
	s.result.Grid = grid
	s.redraw = true
	if s.result.Grid.Check().Complete {
		return s.finish()
	}
	return nil
}

func (s *PlaySession) check() error {
	result := s.result.Grid.Check()
	if result.Complete {
		return s.finish()
	}

	_, _ = fmt.Fprintf(s.stdoutWriter, "%d of %d letters are correct, %d are empty.\n", result.Correct, result.Total, result.Empty)
	if len(result.Wrong) > 0 {
		_, _ = s.red.Fprintf(s.stdoutWriter, "%d letters are wrong. They are shown in red.\n", len(result.Wrong))
	}
	if len(result.SolvedWordIDs) > 0 {
		_, _ = s.green.Fprintf(s.stdoutWriter, "Solved words: %s\n", joinInts(result.SolvedWordIDs))
	}
	s.markWrong = true
	s.redraw = true
	return nil
}

func (s *PlaySession) reveal(number string) error {
	w, ok := s.word(number)
	if !ok {
		return nil
	}
	if err := s.result.Grid.Reveal(w); err != nil {
		return fmt.Errorf("Grid.Reveal() > %w", err)
	}
	_, _ = fmt.Fprintf(s.stdoutWriter, "Word %d is %s\n", w.ID, w.Word)
	s.redraw = true
	if s.result.Grid.Check().Complete {
		return s.finish()
	}
	return nil
}

func (s *PlaySession) finish() error {
	if err := render.Progress(s.stdoutWriter, s.result, false); err != nil {
		return fmt.Errorf("render.Progress() > %w", err)
	}
	_, _ = s.green.Fprintln(s.stdoutWriter, "Well done! The crossword is complete.")
	return errEnd
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

var _ Session = (*PlaySession)(nil)
