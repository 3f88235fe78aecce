package authors

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"authorlist/internal/types"
)

// OpenSQLX connects through lib/pq, for deployments where pgx is not wanted.
func OpenSQLX(ctx context.Context, dsn string) (*sqlx.DB, error) {
	return sqlx.ConnectContext(ctx, "postgres", dsn)
}

func NewSQLXRepository(db *sqlx.DB, l *slog.Logger, collation string) Repository {
	return &sqlxRepo{db: db, g: goqu.Dialect("postgres"), l: l, collation: collation}
}

type sqlxRepo struct {
	db        *sqlx.DB
	g         goqu.DialectWrapper
	l         *slog.Logger
	collation string
}

type sqlxAuthor struct {
	FirstName   string       `db:"first_name"`
	FamilyName  string       `db:"family_name"`
	DateOfBirth sql.NullTime `db:"date_of_birth"`
	DateOfDeath sql.NullTime `db:"date_of_death"`
}

func (a *sqlxAuthor) intoCommon(l *slog.Logger, ctx context.Context) *types.Author {
	if !a.DateOfBirth.Valid {
		l.WarnContext(ctx, "Author stored without date of birth: "+a.FirstName+" "+a.FamilyName)
	}

	ret := &types.Author{FirstName: a.FirstName, FamilyName: a.FamilyName}
	if a.DateOfBirth.Valid {
		ret.DateOfBirth = formatDate(&a.DateOfBirth.Time)
	}
	if a.DateOfDeath.Valid {
		ret.DateOfDeath = formatDate(&a.DateOfDeath.Time)
	}
	return ret
}

func (s *sqlxRepo) GetAll(ctx context.Context, sort types.SortSpec) ([]*types.Author, error) {
	query, params, err := selectAll(s.g, sort, s.collation)
	if err != nil {
		return nil, fmt.Errorf("build authors query: %w", err)
	}

	var rows []sqlxAuthor

	err = s.db.SelectContext(ctx, &rows, query, params...)
	if err != nil {
		return nil, fmt.Errorf("select authors: %w", err)
	}

	s.l.DebugContext(ctx, "authors loaded", slog.Int("count", len(rows)))

	ret := make([]*types.Author, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon(s.l, ctx))
	}

	return ret, nil
}
