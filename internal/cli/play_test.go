package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/testutil"
)

func disableColor(t *testing.T) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
}

func TestPlaySession_Session(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name       string
		input      string
		wantEnd    bool
		wantOutput []string
		validate   func(t *testing.T, result *crossword.Result)
	}{
		{
			name:       "answer a word",
			input:      "1 cat\n",
			wantOutput: []string{"Across", "> "},
			validate: func(t *testing.T, result *crossword.Result) {
				assert.Equal(t, "C", result.Grid[2][1].Letter)
				assert.Equal(t, "A", result.Grid[2][2].Letter)
				assert.Equal(t, "T", result.Grid[2][3].Letter)
			},
		},
		{
			name:       "answer with wrong length",
			input:      "1 ca\n",
			wantOutput: []string{`Word 1 has 3 letters, "ca" has 2`},
			validate: func(t *testing.T, result *crossword.Result) {
				assert.Empty(t, result.Grid[2][1].Letter)
			},
		},
		{
			name:       "unknown word number",
			input:      "9 cat\n",
			wantOutput: []string{"There is no word 9"},
		},
		{
			name:       "not a number",
			input:      "x cat\n",
			wantOutput: []string{`"x" is not a word number`},
		},
		{
			name:       "answer with a digit",
			input:      "1 c4t\n",
			wantOutput: []string{`Cannot write "c4t": use letters only`},
			validate: func(t *testing.T, result *crossword.Result) {
				assert.Empty(t, result.Grid[2][1].Letter)
			},
		},
		{
			name:       "check",
			input:      "check\n",
			wantOutput: []string{"0 of 5 letters are correct, 5 are empty."},
		},
		{
			name:       "reveal",
			input:      "reveal 2\n",
			wantOutput: []string{"Word 2 is TAP"},
			validate: func(t *testing.T, result *crossword.Result) {
				assert.Equal(t, []int{2}, result.Grid.Check().SolvedWordIDs)
			},
		},
		{
			name:       "reveal without a number",
			input:      "reveal\n",
			wantOutput: []string{"Usage: reveal <number>"},
		},
		{
			name:       "help",
			input:      "help\n",
			wantOutput: []string{"Commands:"},
		},
		{
			name:       "unknown command",
			input:      "hello\n",
			wantOutput: []string{`Unknown command "hello"`},
		},
		{
			name:  "blank line",
			input: "\n",
		},
		{
			name:    "quit",
			input:   "quit\n",
			wantEnd: true,
		},
		{
			name:    "end of input",
			input:   "",
			wantEnd: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			result := testutil.CatTapResult(t)
			session := NewPlaySession(NewInteractiveCLI(strings.NewReader(tt.input), &out), result)

			err := session.Session(context.Background())
			if tt.wantEnd {
				assert.ErrorIs(t, err, errEnd)
			} else {
				assert.NoError(t, err)
			}
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestPlaySession_answerIsAllOrNothing(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	result := testutil.CatTapResult(t)
	result.Grid[4][3].IsBlack = true
	session := NewPlaySession(NewInteractiveCLI(strings.NewReader("2 tap\n"), &out), result)

	require.NoError(t, session.Session(context.Background()))
	assert.Contains(t, out.String(), `Cannot write "tap": `)
	assert.Empty(t, result.Grid[2][3].Letter)
	assert.Empty(t, result.Grid[3][3].Letter)
}

func TestPlaySession_checkMarksWrongLetters(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	result := testutil.CatTapResult(t)
	session := NewPlaySession(NewInteractiveCLI(strings.NewReader("1 cat\n2 tip\ncheck\n"), &out), result)

	for range 3 {
		require.NoError(t, session.Session(context.Background()))
	}
	assert.Contains(t, out.String(), "4 of 5 letters are correct, 0 are empty.")
	assert.Contains(t, out.String(), "1 letters are wrong.")
	assert.Contains(t, out.String(), "Solved words: 1")
	assert.True(t, session.markWrong)
}

func TestPlaySession_Run(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	cli := NewInteractiveCLI(strings.NewReader("1 cat\nreveal 2\n"), &out)
	result := testutil.CatTapResult(t)

	require.NoError(t, cli.Run(context.Background(), NewPlaySession(cli, result)))
	assert.Contains(t, out.String(), "Well done! The crossword is complete.")
	assert.True(t, result.Grid.Check().Complete)
}
