package listing

import "net/http"

// NoAuthorsText is the body for both the empty and the failed listing.
// Failures are deliberately indistinguishable from an empty store to the caller.
const NoAuthorsText = "No authors found"

// Result is one of Listed, Empty or Failed.
type Result interface {
	Status() int
	isResult()
}

// Listed carries display lines in store order.
type Listed struct {
	Lines []string
}

type Empty struct{}

// Failed means the store could not produce authors. ErrId points at the log entry.
type Failed struct {
	ErrId string
}

func (Listed) Status() int { return http.StatusOK }
func (Empty) Status() int  { return http.StatusOK }
func (Failed) Status() int { return http.StatusInternalServerError }

func (Listed) isResult() {}
func (Empty) isResult()  {}
func (Failed) isResult() {}
