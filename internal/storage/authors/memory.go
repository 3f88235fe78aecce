package authors

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"authorlist/internal/types"
)

// NewMemoryRepository keeps authors in process memory. Text fields are
// compared with a collator for locale, so "émile" sorts next to "Emile".
func NewMemoryRepository(locale language.Tag, authors ...*types.Author) *MemoryRepository {
	m := &MemoryRepository{locale: locale}
	m.Save(authors...)
	return m
}

// LoadMemoryRepository seeds a memory repository from a JSON array of authors.
func LoadMemoryRepository(path string, locale language.Tag) (*MemoryRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var authors []*types.Author
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(f).Decode(&authors); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	for ix, a := range authors {
		if a == nil {
			return nil, fmt.Errorf("decode %s: null author at index %d", path, ix)
		}
	}

	return NewMemoryRepository(locale, authors...), nil
}

type MemoryRepository struct {
	mu      sync.RWMutex
	locale  language.Tag
	authors []types.Author
}

// Save appends authors, nil entries are skipped.
func (m *MemoryRepository) Save(authors ...*types.Author) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range authors {
		if a == nil {
			continue
		}
		m.authors = append(m.authors, *a)
	}
}

func (m *MemoryRepository) GetAll(ctx context.Context, sort types.SortSpec) ([]*types.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := sort.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	ret := make([]*types.Author, 0, len(m.authors))
	for i := range m.authors {
		a := m.authors[i]
		ret = append(ret, &a)
	}
	m.mu.RUnlock()

	// Collator keeps per call state, it must not be shared between goroutines
	col := collate.New(m.locale)

	slices.SortStableFunc(ret, func(a, b *types.Author) int {
		for _, key := range sort {
			c := compareField(col, key.Field, a, b)
			if key.Direction == types.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	return ret, nil
}

func compareField(col *collate.Collator, f types.SortField, a, b *types.Author) int {
	switch f {
	case types.SortByFirstName:
		return col.CompareString(a.FirstName, b.FirstName)
	case types.SortByFamilyName:
		return col.CompareString(a.FamilyName, b.FamilyName)
	case types.SortByDateOfBirth:
		return compareDates(a.DateOfBirth, b.DateOfBirth)
	case types.SortByDateOfDeath:
		return compareDates(a.DateOfDeath, b.DateOfDeath)
	}
	return 0
}

// compareDates orders chronologically; empty or malformed dates go last.
func compareDates(a, b string) int {
	ta, errA := time.Parse(types.DateLayout, a)
	tb, errB := time.Parse(types.DateLayout, b)

	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return ta.Compare(tb)
}
