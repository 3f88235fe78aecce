package types

import (
	"errors"
	"fmt"
)

// DateLayout is how author dates are serialized: MM/DD/YYYY.
const DateLayout = "01/02/2006"

type Author struct {
	FirstName   string `json:"first_name"`
	FamilyName  string `json:"family_name"`
	DateOfBirth string `json:"date_of_birth"`
	DateOfDeath string `json:"date_of_death"` // empty if living
}

// DisplayLine renders the author as "First Family : DOB - DOD".
func (a *Author) DisplayLine() string {
	return a.FirstName + " " + a.FamilyName + " : " + a.DateOfBirth + " - " + a.DateOfDeath
}

type SortDirection uint8

const (
	Asc  SortDirection = 1
	Desc SortDirection = 2
)

type SortField string

const (
	SortByFirstName   SortField = "first_name"
	SortByFamilyName  SortField = "family_name"
	SortByDateOfBirth SortField = "date_of_birth"
	SortByDateOfDeath SortField = "date_of_death"
)

var (
	ErrUnknownSortField     = errors.New("unknown sort field")
	ErrUnknownSortDirection = errors.New("unknown sort direction")
)

// Valid reports whether stores know how to order by f.
func (f SortField) Valid() bool {
	switch f {
	case SortByFirstName, SortByFamilyName, SortByDateOfBirth, SortByDateOfDeath:
		return true
	}
	return false
}

type SortKey struct {
	Field     SortField
	Direction SortDirection
}

// SortSpec lists keys by priority, first key wins.
type SortSpec []SortKey

func (s SortSpec) Validate() error {
	for _, key := range s {
		if !key.Field.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownSortField, key.Field)
		}
		if key.Direction != Asc && key.Direction != Desc {
			return fmt.Errorf("%w %d for %q", ErrUnknownSortDirection, key.Direction, key.Field)
		}
	}
	return nil
}
