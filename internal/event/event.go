package event

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"reputation/internal/domain"
)

const (
	TypeRatingVerified = "rating.verified"
	TypeRatingReplied  = "rating.replied"

	source = "reputation"
)

// Event is the envelope written to the ratings topic.
type Event struct {
	ID         string          `json:"event_id"`
	Type       string          `json:"event_type"`
	RatingID   string          `json:"aggregate_id"`
	ProviderID int64           `json:"provider_id"`
	Source     string          `json:"source"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

type ratingPayload struct {
	RatingID        int64      `json:"rating_id"`
	ProblemReportID int64      `json:"problem_report_id"`
	ProviderID      int64      `json:"provider_id"`
	CommunityID     int64      `json:"community_id"`
	OverallScore    int        `json:"overall_score"`
	IsVerified      bool       `json:"is_verified"`
	RepliedAt       *time.Time `json:"replied_at,omitempty"`
}

func newRatingEvent(eventType string, rating *domain.Rating) (*Event, error) {
	data, err := json.Marshal(ratingPayload{
		RatingID:        rating.ID,
		ProblemReportID: rating.ProblemReportID,
		ProviderID:      rating.ProviderID,
		CommunityID:     rating.CommunityID,
		OverallScore:    rating.OverallScore,
		IsVerified:      rating.IsVerified,
		RepliedAt:       rating.RepliedAt,
	})
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		RatingID:   strconv.FormatInt(rating.ID, 10),
		ProviderID: rating.ProviderID,
		Source:     source,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}, nil
}

func RatingVerified(rating *domain.Rating) (*Event, error) {
	return newRatingEvent(TypeRatingVerified, rating)
}

func RatingReplied(rating *domain.Rating) (*Event, error) {
	return newRatingEvent(TypeRatingReplied, rating)
}
