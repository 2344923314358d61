package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evcraddock/review-analyzer/internal/sentiment"
)

// Validation errors returned by Submit.
var (
	ErrMissingField    = errors.New("review body and location are required")
	ErrInvalidLocation = errors.New("invalid location")
)

// Service implements listing and submission of reviews against a Store.
type Service struct {
	store  *Store
	scorer sentiment.Scorer
	now    func() time.Time
	newID  func() string
}

// NewService creates a review service.
func NewService(store *Store, scorer sentiment.Scorer) *Service {
	return &Service{
		store:  store,
		scorer: scorer,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Store returns the underlying review store.
func (s *Service) Store() *Store {
	return s.store
}

// List returns the reviews matching f in store order, each with its sentiment.
// The result is never nil.
func (s *Service) List(ctx context.Context, f Filter) ([]Scored, error) {
	out := []Scored{}
	for _, r := range s.store.All() {
		if !f.Matches(r) {
			continue
		}
		scores, err := s.scorer.Score(ctx, r.ReviewBody)
		if err != nil {
			return nil, fmt.Errorf("scoring review %s: %w", r.ReviewID, err)
		}
		out = append(out, Scored{Review: r, Sentiment: scores})
	}
	return out, nil
}

// Submit validates and stores a new review.
func (s *Service) Submit(ctx context.Context, body, location string) (Review, error) {
	if err := Validate(body, location); err != nil {
		return Review{}, err
	}

	r := Review{
		ReviewID:   s.newID(),
		Timestamp:  s.now().Format(TimestampLayout),
		ReviewBody: body,
		Location:   location,
	}
	s.store.Append(r)

	slog.DebugContext(ctx, "review stored", "id", r.ReviewID, "location", r.Location)
	return r, nil
}

// Validate applies the admission rules for a review, in order.
func Validate(body, location string) error {
	if body == "" || location == "" {
		return ErrMissingField
	}
	if !IsValidLocation(location) {
		return ErrInvalidLocation
	}
	return nil
}
