package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"authorlist/internal/listing"
	"authorlist/internal/response"
)

var (
	errNotFound         = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

func Handler(ls *listing.Service, rr *response.Responder) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rr.RespondAndLogCustom(w, r.Context(), errNotFound, slog.LevelInfo, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rr.RespondAndLogCustom(w, r.Context(), errMethodNotAllowed, slog.LevelInfo, http.StatusMethodNotAllowed)
	})

	r.Get("/authors", func(w http.ResponseWriter, r *http.Request) {
		renderListing(w, r, rr, ls.ListAuthors(r.Context()))
	})

	return r
}

func renderListing(w http.ResponseWriter, r *http.Request, rr *response.Responder, res listing.Result) {
	switch res := res.(type) {
	case listing.Listed:
		rr.SendJson(w, r.Context(), res.Status(), res.Lines)
	case listing.Empty:
		rr.SendText(w, res.Status(), listing.NoAuthorsText)
	case listing.Failed:
		w.Header().Set("X-Error-Id", res.ErrId)
		rr.SendText(w, res.Status(), listing.NoAuthorsText)
	default:
		rr.RespondAndLogError(w, r.Context(), fmt.Errorf("unexpected listing result %T", res))
	}
}
