// Package review provides the review domain model, the in-memory store,
// and the query and ingestion rules applied to it.
package review

import (
	"time"

	"github.com/evcraddock/review-analyzer/internal/sentiment"
)

// TimestampLayout is the format of Review.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Review is a single customer feedback record.
type Review struct {
	ReviewID   string `json:"ReviewId"`
	Timestamp  string `json:"Timestamp"`
	ReviewBody string `json:"ReviewBody"`
	Location   string `json:"Location"`
}

// Scored is a review annotated with its sentiment at query time.
type Scored struct {
	Review
	Sentiment sentiment.Scores `json:"sentiment"`
}

// ParsedTimestamp parses the review's timestamp.
// ok is false when the timestamp is not a recognizable date.
func (r Review) ParsedTimestamp() (t time.Time, ok bool) {
	return parseTime(r.Timestamp)
}
