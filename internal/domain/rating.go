package domain

import (
	"time"
)

const (
	MinScore = 1
	MaxScore = 5
)

type Rating struct {
	ID                   int64      `json:"id"`
	ProblemReportID      int64      `json:"problem_report_id"`
	ProviderID           int64      `json:"provider_id"`
	CommunityID          int64      `json:"community_id"`
	SubmittedByActorID   int64      `json:"submitted_by_actor_id"`
	AuthorizedByActorID  int64      `json:"authorized_by_actor_id"`
	OfferRecordID        int64      `json:"offer_record_id"`
	OverallScore         int        `json:"overall_score"`
	QualityScore         int        `json:"quality_score"`
	TimelinessScore      int        `json:"timeliness_score"`
	BudgetAdherenceScore int        `json:"budget_adherence_score"`
	Comment              string     `json:"comment"`
	PhotoRefs            []string   `json:"photo_refs"`
	IsVerified           bool       `json:"is_verified"`
	ReplyText            *string    `json:"reply_text"`
	RepliedAt            *time.Time `json:"replied_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (r *Rating) HasReply() bool {
	return r.ReplyText != nil
}

// OverallFromCategories is the rounded (half up) mean of the three category scores.
func OverallFromCategories(quality, timeliness, budgetAdherence int) int {
	sum := quality + timeliness + budgetAdherence
	return (2*sum + 3) / 6
}

type SubmitRatingDTO struct {
	ProblemReportID      int64    `json:"problem_report_id" binding:"required" validate:"required,gt=0"`
	ProviderID           int64    `json:"provider_id" binding:"required" validate:"required,gt=0"`
	OfferRecordID        int64    `json:"offer_record_id" binding:"required" validate:"required,gt=0"`
	AuthorizedByActorID  int64    `json:"authorized_by_actor_id" binding:"required" validate:"required,gt=0"`
	OverallScore         int      `json:"overall_score" binding:"omitempty,min=1,max=5" validate:"omitempty,min=1,max=5"`
	QualityScore         int      `json:"quality_score" binding:"required,min=1,max=5" validate:"required,min=1,max=5"`
	TimelinessScore      int      `json:"timeliness_score" binding:"required,min=1,max=5" validate:"required,min=1,max=5"`
	BudgetAdherenceScore int      `json:"budget_adherence_score" binding:"required,min=1,max=5" validate:"required,min=1,max=5"`
	Comment              string   `json:"comment" binding:"max=4000" validate:"max=4000"`
	PhotoRefs            []string `json:"photo_refs" binding:"max=10,dive,notblank" validate:"max=10,dive,notblank"`
}

type AttachReplyDTO struct {
	ReplyText string `json:"reply_text"`
}

type RatingFilter struct {
	ProviderID  int64  `json:"provider_id"`
	CommunityID *int64 `json:"community_id"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
}

// RatingPage is one page of a rating listing. Limit and Offset are the values
// actually applied after defaults and bounds.
type RatingPage struct {
	Ratings []Rating `json:"ratings"`
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// ProviderStatistics is the on-demand aggregate over a provider's ratings.
type ProviderStatistics struct {
	AverageOverall         float64 `json:"average_overall"`
	AverageQuality         float64 `json:"average_quality"`
	AverageTimeliness      float64 `json:"average_timeliness"`
	AverageBudgetAdherence float64 `json:"average_budget_adherence"`
	TotalRatings           int     `json:"total_ratings"`
}

type PhotoLink struct {
	Ref string `json:"ref"`
	URL string `json:"url"`
}
