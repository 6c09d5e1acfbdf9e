package domain

import (
	"time"
)

type ProblemReportStatus string

const (
	ProblemReportStatusOpen       ProblemReportStatus = "open"
	ProblemReportStatusQuoted     ProblemReportStatus = "quoted"
	ProblemReportStatusApproved   ProblemReportStatus = "approved"
	ProblemReportStatusInProgress ProblemReportStatus = "in_progress"
	ProblemReportStatusResolved   ProblemReportStatus = "resolved"
)

func (s ProblemReportStatus) IsValid() bool {
	switch s {
	case ProblemReportStatusOpen, ProblemReportStatusQuoted, ProblemReportStatusApproved,
		ProblemReportStatusInProgress, ProblemReportStatusResolved:
		return true
	}
	return false
}

type ProblemReport struct {
	ID                 int64               `json:"id"`
	CommunityID        int64               `json:"community_id"`
	Title              string              `json:"title"`
	Status             ProblemReportStatus `json:"status"`
	AssignedProviderID *int64              `json:"assigned_provider_id"`
	ApprovedOfferID    *int64              `json:"approved_offer_id"`
	FinalCost          *float64            `json:"final_cost"`
	ResolvedAt         *time.Time          `json:"resolved_at"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}
