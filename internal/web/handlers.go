package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/evcraddock/review-analyzer/internal/review"
)

// Client-facing error messages.
const (
	msgMissingField     = "ReviewBody and Location are required"
	msgInvalidLocation  = "Invalid location"
	msgBodyTooLarge     = "request body too large"
	msgUnreadableBody   = "unreadable request body"
	msgMethodNotAllowed = "method not allowed"
	msgInternal         = "internal server error"
)

// maxFormBytes bounds the size of a POST body.
const maxFormBytes = 1 << 20

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"error": msg}, code)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// handleReviews dispatches / by method.
func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		apiError(w, "not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.listReviews(w, r)
	case http.MethodPost:
		s.createReview(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		apiError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// listReviews returns reviews matching the query filters with sentiment attached.
func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	f := review.ParseFilter(r.URL.Query())

	reviews, err := s.reviews.List(r.Context(), f)
	if err != nil {
		slog.ErrorContext(r.Context(), "listing reviews", "error", err)
		apiError(w, msgInternal, http.StatusInternalServerError)
		return
	}

	apiJSON(w, reviews, http.StatusOK)
}

// createReview validates a form-encoded review and stores it.
// The body is decoded as a form whatever its Content-Type.
func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFormBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apiError(w, msgBodyTooLarge, http.StatusBadRequest)
			return
		}
		slog.WarnContext(r.Context(), "reading request body", "error", err)
		apiError(w, msgUnreadableBody, http.StatusBadRequest)
		return
	}
	form := parseForm(string(raw))

	created, err := s.reviews.Submit(r.Context(), form.Get("ReviewBody"), form.Get("Location"))
	switch {
	case errors.Is(err, review.ErrMissingField):
		apiError(w, msgMissingField, http.StatusBadRequest)
		return
	case errors.Is(err, review.ErrInvalidLocation):
		apiError(w, msgInvalidLocation, http.StatusBadRequest)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "creating review", "error", err)
		apiError(w, msgInternal, http.StatusInternalServerError)
		return
	}

	apiJSON(w, created, http.StatusCreated)
}
