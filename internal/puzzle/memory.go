package puzzle

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps puzzles in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	puzzles map[uuid.UUID]Puzzle
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{puzzles: make(map[uuid.UUID]Puzzle)}
}

func (r *MemoryRepository) Create(_ context.Context, p *Puzzle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.puzzles[p.ID]; ok {
		return fmt.Errorf("puzzle %s already exists", p.ID)
	}
	stored := *p
	stored.Grid = p.Grid.Clone()
	r.puzzles[p.ID] = stored
	return nil
}

// FindByID returns a copy of the stored puzzle so callers may fill in its grid.
func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.puzzles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p.Grid = p.Grid.Clone()
	return &p, nil
}

func (r *MemoryRepository) List(_ context.Context, limit int) ([]Puzzle, error) {
	r.mu.RLock()
	puzzles := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		puzzles = append(puzzles, p)
	}
	r.mu.RUnlock()

	sort.Slice(puzzles, func(i, j int) bool {
		if !puzzles[i].CreatedAt.Equal(puzzles[j].CreatedAt) {
			return puzzles[i].CreatedAt.After(puzzles[j].CreatedAt)
		}
		return puzzles[i].ID.String() < puzzles[j].ID.String()
	})
	if limit > 0 && len(puzzles) > limit {
		puzzles = puzzles[:limit]
	}
	for i := range puzzles {
		puzzles[i].Grid = puzzles[i].Grid.Clone()
	}
	return puzzles, nil
}
