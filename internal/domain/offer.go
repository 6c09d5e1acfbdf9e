package domain

import (
	"time"
)

// OfferRecord is a provider's priced proposal ("budget") against a problem report.
type OfferRecord struct {
	ID              int64           `json:"id"`
	ProblemReportID int64           `json:"problem_report_id"`
	ProviderID      int64           `json:"provider_id"`
	TotalAmount     float64         `json:"total_amount"`
	IsApproved      bool            `json:"is_approved"`
	Items           []OfferLineItem `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OfferLineItem struct {
	ID          int64   `json:"id"`
	OfferID     int64   `json:"offer_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (i OfferLineItem) LineTotal() float64 {
	return i.Quantity * i.UnitPrice
}
