package wordpool_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_wordpool "github.com/at-ishikawa/crossword/internal/mocks/wordpool"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

func TestImporter_ImportWords(t *testing.T) {
	existing := []wordpool.WordEntry{
		{Word: "SUN", Clue: "Bright star", Length: 3, Level: 1},
		{Word: "GARDEN", Clue: "Old clue", Length: 6, Level: 2},
	}

	tests := []struct {
		name       string
		source     []wordpool.WordEntry
		opts       wordpool.ImportOptions
		setup      func(repo *mock_wordpool.MockWordRepository)
		want       *wordpool.ImportResult
		wantOutput []string
		wantErr    bool
	}{
		{
			name: "new words are upserted and unchanged ones skipped",
			source: []wordpool.WordEntry{
				{Word: "sun", Clue: "Bright star", Level: 1},
				{Word: "tea", Clue: "Hot drink", Level: 1},
			},
			setup: func(repo *mock_wordpool.MockWordRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return(existing, nil)
				repo.EXPECT().BatchUpsert(gomock.Any(), []wordpool.WordEntry{
					{Word: "TEA", Clue: "Hot drink", Length: 3, Level: 1},
				}).Return(nil)
			},
			want:       &wordpool.ImportResult{New: 1, Skipped: 1},
			wantOutput: []string{`[NEW]  "TEA" (level 1)`},
		},
		{
			name: "changed word is skipped without UpdateExisting",
			source: []wordpool.WordEntry{
				{Word: "GARDEN", Clue: "Where flowers grow", Level: 2},
			},
			setup: func(repo *mock_wordpool.MockWordRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return(existing, nil)
			},
			want:       &wordpool.ImportResult{Skipped: 1},
			wantOutput: []string{`[SKIP]  "GARDEN" (level 2)`},
		},
		{
			name: "changed word is updated with UpdateExisting",
			source: []wordpool.WordEntry{
				{Word: "GARDEN", Clue: "Where flowers grow", Level: 2},
			},
			opts: wordpool.ImportOptions{UpdateExisting: true},
			setup: func(repo *mock_wordpool.MockWordRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return(existing, nil)
				repo.EXPECT().BatchUpsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entries []wordpool.WordEntry) error {
						require.Len(t, entries, 1)
						assert.Equal(t, "Where flowers grow", entries[0].Clue)
						return nil
					})
			},
			want:       &wordpool.ImportResult{Updated: 1},
			wantOutput: []string{`[UPDATE]  "GARDEN" (level 2)`},
		},
		{
			name: "dry run writes nothing",
			source: []wordpool.WordEntry{
				{Word: "TEA", Clue: "Hot drink", Level: 1},
				{Word: "TEA", Clue: "Hot drink", Level: 1},
			},
			opts: wordpool.ImportOptions{DryRun: true},
			setup: func(repo *mock_wordpool.MockWordRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
			},
			want: &wordpool.ImportResult{New: 1, Skipped: 1},
		},
		{
			name: "invalid level is skipped",
			source: []wordpool.WordEntry{
				{Word: "TEA", Clue: "Hot drink", Level: 7},
			},
			setup: func(repo *mock_wordpool.MockWordRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
			},
			want:       &wordpool.ImportResult{Skipped: 1},
			wantOutput: []string{`"TEA" (invalid level 7)`},
		},
		{
			name:   "FindAll error",
			source: []wordpool.WordEntry{{Word: "TEA", Level: 1}},
			setup: func(repo *mock_wordpool.MockWordRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
		{
			name:   "BatchUpsert error propagates",
			source: []wordpool.WordEntry{{Word: "TEA", Level: 1}},
			setup: func(repo *mock_wordpool.MockWordRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
				repo.EXPECT().BatchUpsert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_wordpool.NewMockWordRepository(ctrl)
			tt.setup(repo)

			var output bytes.Buffer
			got, err := wordpool.NewImporter(repo, &output).ImportWords(context.Background(), tt.source, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, want := range tt.wantOutput {
				assert.Contains(t, output.String(), want)
			}
		})
	}
}
