package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"authorlist/internal/storage/authors"
	"authorlist/internal/types"
)

var errNilAuthor = errors.New("store returned nil author")

var byFamilyName = types.SortSpec{{Field: types.SortByFamilyName, Direction: types.Asc}}

type Service struct {
	ar authors.Repository
	l  *slog.Logger
}

func NewService(ar authors.Repository, l *slog.Logger) *Service {
	return &Service{ar: ar, l: l}
}

// ListAuthors asks the store for all authors ordered by family name and renders
// each one as a display line. Store errors are logged here and never returned.
func (s *Service) ListAuthors(ctx context.Context) Result {
	rows, err := s.ar.GetAll(ctx, byFamilyName)
	if err != nil {
		return s.failed(ctx, err)
	}

	if len(rows) == 0 {
		return Empty{}
	}

	lines := make([]string, 0, len(rows))
	for ix, row := range rows {
		if row == nil {
			return s.failed(ctx, fmt.Errorf("%w at position %d", errNilAuthor, ix))
		}
		lines = append(lines, row.DisplayLine())
	}

	return Listed{Lines: lines}
}

func (s *Service) failed(ctx context.Context, err error) Failed {
	errId := uuid.NewString()
	s.l.ErrorContext(ctx, "Failed to list authors: "+err.Error(), slog.String("err_id", errId))
	return Failed{ErrId: errId}
}
