package authors

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorlist/internal/types"
)

func NewPGXRepository(pg *pgxpool.Pool, l *slog.Logger, collation string) Repository {
	return &pgxRepo{pg: pg, g: goqu.Dialect("postgres"), l: l, collation: collation}
}

type pgxRepo struct {
	pg        *pgxpool.Pool
	g         goqu.DialectWrapper
	l         *slog.Logger
	collation string
}

type pgxAuthor struct {
	FirstName   string     `db:"first_name"`
	FamilyName  string     `db:"family_name"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	DateOfDeath *time.Time `db:"date_of_death"`
}

func (a *pgxAuthor) intoCommon(l *slog.Logger, ctx context.Context) *types.Author {
	if a.DateOfBirth == nil {
		l.WarnContext(ctx, "Author stored without date of birth: "+a.FirstName+" "+a.FamilyName)
	}

	return &types.Author{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: formatDate(a.DateOfBirth),
		DateOfDeath: formatDate(a.DateOfDeath),
	}
}

func (p *pgxRepo) GetAll(ctx context.Context, sort types.SortSpec) ([]*types.Author, error) {
	sql, params, err := selectAll(p.g, sort, p.collation)
	if err != nil {
		return nil, fmt.Errorf("build authors query: %w", err)
	}

	var rows []pgxAuthor

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, fmt.Errorf("select authors: %w", err)
	}

	p.l.DebugContext(ctx, "authors loaded", slog.Int("count", len(rows)))

	ret := make([]*types.Author, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon(p.l, ctx))
	}

	return ret, nil
}
