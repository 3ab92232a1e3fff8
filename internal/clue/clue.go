// Package clue writes crossword clues for words that have none.
package clue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/at-ishikawa/crossword/internal/wordpool"
)

//go:generate mockgen -source=clue.go -destination=../mocks/clue/mock_provider.go -package=mock_clue

// ErrNoClue is returned when a provider has nothing usable for a word.
var ErrNoClue = errors.New("no clue available")

// maxClueLength keeps clues short enough for a large-print clue list.
const maxClueLength = 80

// Provider writes a clue for a word at a difficulty level.
type Provider interface {
	Clue(ctx context.Context, word string, level wordpool.Level) (string, error)
}

// Sanitize turns provider output into a plain single-line clue.
// Markup is dropped, entities are decoded, and surrounding quotes are removed.
func Sanitize(text string) string {
	doc, err := html.Parse(strings.NewReader(text))
	if err == nil {
		var b strings.Builder
		collectText(doc, &b)
		text = b.String()
	}
	text = strings.Join(strings.Fields(text), " ")
	text = strings.TrimPrefix(text, "Clue:")
	return strings.Trim(text, " \"'`")
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// Clean sanitizes text and rejects clues that are empty, too long, or give the answer away.
func Clean(text, word string) (string, error) {
	clue := Sanitize(text)
	if clue == "" {
		return "", fmt.Errorf("%w: empty clue for %s", ErrNoClue, word)
	}
	if len([]rune(clue)) > maxClueLength {
		return "", fmt.Errorf("%w: clue for %s is longer than %d characters", ErrNoClue, word, maxClueLength)
	}
	if word != "" && strings.Contains(strings.ToUpper(clue), strings.ToUpper(word)) {
		return "", fmt.Errorf("%w: clue for %s contains the answer", ErrNoClue, word)
	}
	return clue, nil
}
