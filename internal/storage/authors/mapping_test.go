package authors

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type warnCounter struct {
	mu    sync.Mutex
	warns []string
}

func (h *warnCounter) Enabled(context.Context, slog.Level) bool { return true }

func (h *warnCounter) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r.Level == slog.LevelWarn {
		h.warns = append(h.warns, r.Message)
	}
	return nil
}

func (h *warnCounter) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *warnCounter) WithGroup(string) slog.Handler      { return h }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var mappingCases = []struct {
	name        string
	first       string
	family      string
	born        *time.Time
	died        *time.Time
	wantLine    string
	wantWarning bool
}{
	{
		name:     "dead author",
		first:    "John",
		family:   "Doe",
		born:     date(1998, time.December, 21),
		died:     date(2025, time.December, 23),
		wantLine: "John Doe : 12/21/1998 - 12/23/2025",
	},
	{
		name:     "living author keeps trailing separator",
		first:    "Matt",
		family:   "Zao",
		born:     date(1970, time.January, 2),
		wantLine: "Matt Zao : 01/02/1970 - ",
	},
	{
		name:        "missing date of birth",
		first:       "Charles",
		family:      "Apple",
		died:        date(1900, time.March, 4),
		wantLine:    "Charles Apple :  - 03/04/1900",
		wantWarning: true,
	},
}

func TestPgxAuthor_IntoCommon(t *testing.T) {
	for _, tc := range mappingCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &warnCounter{}
			row := pgxAuthor{FirstName: tc.first, FamilyName: tc.family, DateOfBirth: tc.born, DateOfDeath: tc.died}

			got := row.intoCommon(slog.New(logs), context.Background())

			assert.Equal(t, tc.wantLine, got.DisplayLine())
			assert.Equal(t, tc.wantWarning, len(logs.warns) == 1)
		})
	}
}

func TestSqlxAuthor_IntoCommon(t *testing.T) {
	for _, tc := range mappingCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &warnCounter{}
			row := sqlxAuthor{FirstName: tc.first, FamilyName: tc.family, DateOfBirth: nullTime(tc.born), DateOfDeath: nullTime(tc.died)}

			got := row.intoCommon(slog.New(logs), context.Background())

			assert.Equal(t, tc.wantLine, got.DisplayLine())
			assert.Equal(t, tc.wantWarning, len(logs.warns) == 1)
		})
	}
}
