package authors

import (
	"context"

	"authorlist/internal/types"
)

type Repository interface {
	// GetAll returns every stored author ordered by sort. The order of the
	// returned slice is final, callers must not reorder it.
	GetAll(ctx context.Context, sort types.SortSpec) ([]*types.Author, error)
}
