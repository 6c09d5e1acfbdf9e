package domain

import (
	"time"
)

type Provider struct {
	ID            int64     `json:"id"`
	ActorID       *int64    `json:"actor_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Rating        float64   `json:"rating"`
	RatingsCount  int       `json:"ratings_count"`
	CompletedJobs int       `json:"completed_jobs"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReputationSummary is the denormalized copy of the provider statistics kept on
// the providers row.
type ReputationSummary struct {
	Rating        float64 `json:"rating"`
	RatingsCount  int     `json:"ratings_count"`
	CompletedJobs int     `json:"completed_jobs"`
}
