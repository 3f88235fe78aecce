package authors

import (
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"

	"authorlist/internal/types"
)

const authorTable = "author"

var authorColumns = []any{"first_name", "family_name", "date_of_birth", "date_of_death"}

// selectAll builds the listing query shared by the SQL backed repositories.
// With a non-empty collation, text columns are ordered with an explicit COLLATE.
func selectAll(g goqu.DialectWrapper, sort types.SortSpec, collation string) (string, []any, error) {
	if err := sort.Validate(); err != nil {
		return "", nil, err
	}

	qb := g.From(authorTable).Select(authorColumns...)

	for _, key := range sort {
		var col exp.Orderable = goqu.C(string(key.Field))
		if collation != "" && isTextField(key.Field) {
			col = goqu.L("? COLLATE ?", goqu.C(string(key.Field)), goqu.I(collation))
		}

		if key.Direction == types.Desc {
			qb = qb.OrderAppend(col.Desc())
		} else {
			qb = qb.OrderAppend(col.Asc())
		}
	}

	return qb.ToSQL()
}

func isTextField(f types.SortField) bool {
	return f == types.SortByFirstName || f == types.SortByFamilyName
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(types.DateLayout)
}
