package wordpool

import (
	"context"
	"fmt"
	"io"
)

// ImportResult tracks counts for an import.
type ImportResult struct {
	New     int
	Updated int
	Skipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes word entries from files into a WordRepository.
type Importer struct {
	repo   WordRepository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repo WordRepository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// ImportWords classifies each source entry as new, updated or skipped against the
// repository and writes the new and updated ones in one batch.
func (imp *Importer) ImportWords(ctx context.Context, source []WordEntry, opts ImportOptions) (*ImportResult, error) {
	existing, err := imp.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing words: %w", err)
	}
	cache := make(map[string]WordEntry, len(existing))
	for _, e := range existing {
		cache[e.Word] = e
	}

	result := &ImportResult{}
	var upserts []WordEntry
	for _, src := range source {
		src = Normalize(src)
		if src.Word == "" {
			continue
		}
		if !src.Level.Valid() {
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  %q (invalid level %d)\n", src.Word, src.Level)
			result.Skipped++
			continue
		}

		current, ok := cache[src.Word]
		switch {
		case !ok:
			_, _ = fmt.Fprintf(imp.writer, "  [NEW]  %q (level %d)\n", src.Word, src.Level)
			result.New++
		case current.Clue == src.Clue && current.Level == src.Level:
			result.Skipped++
			continue
		case opts.UpdateExisting:
			_, _ = fmt.Fprintf(imp.writer, "  [UPDATE]  %q (level %d)\n", src.Word, src.Level)
			result.Updated++
		default:
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  %q (level %d)\n", src.Word, src.Level)
			result.Skipped++
			continue
		}
		cache[src.Word] = src
		upserts = append(upserts, src)
	}

	if !opts.DryRun && len(upserts) > 0 {
		if err := imp.repo.BatchUpsert(ctx, upserts); err != nil {
			return nil, fmt.Errorf("batch upsert words: %w", err)
		}
	}
	return result, nil
}
