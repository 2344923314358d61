package review

import "sync"

// Store holds reviews in memory in insertion order.
// It is append-only and safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	reviews []Review
}

// NewStore creates a store seeded with the given reviews.
func NewStore(seed []Review) *Store {
	reviews := make([]Review, len(seed))
	copy(reviews, seed)
	return &Store{reviews: reviews}
}

// All returns a snapshot of every review in insertion order.
func (s *Store) All() []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// Append adds a review at the end of the store.
func (s *Store) Append(r Review) {
	s.mu.Lock()
	s.reviews = append(s.reviews, r)
	s.mu.Unlock()
}

// Len returns the number of stored reviews.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}
