package repository

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"reputation/internal/domain"
)

var fixedTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func int64Ptr(v int64) *int64 {
	return &v
}

func sampleRating() *domain.Rating {
	return &domain.Rating{
		ProblemReportID:      11,
		ProviderID:           21,
		CommunityID:          1,
		SubmittedByActorID:   100,
		AuthorizedByActorID:  200,
		OfferRecordID:        31,
		OverallScore:         4,
		QualityScore:         5,
		TimelinessScore:      4,
		BudgetAdherenceScore: 3,
		Comment:              "Быстро починили кран",
		PhotoRefs:            []string{"ratings/11/before.jpg"},
		IsVerified:           true,
	}
}

func ratingColumnNames() []string {
	return []string{
		"id", "problem_report_id", "provider_id", "community_id", "submitted_by_actor_id",
		"authorized_by_actor_id", "offer_record_id", "overall_score", "quality_score",
		"timeliness_score", "budget_adherence_score", "comment", "photo_refs", "is_verified",
		"reply_text", "replied_at", "created_at", "updated_at",
	}
}

func ratingRows(ratings ...*domain.Rating) *pgxmock.Rows {
	rows := pgxmock.NewRows(ratingColumnNames())
	for _, r := range ratings {
		rows.AddRow(
			r.ID, r.ProblemReportID, r.ProviderID, r.CommunityID, r.SubmittedByActorID,
			r.AuthorizedByActorID, r.OfferRecordID, r.OverallScore, r.QualityScore,
			r.TimelinessScore, r.BudgetAdherenceScore, r.Comment, r.PhotoRefs, r.IsVerified,
			r.ReplyText, r.RepliedAt, r.CreatedAt, r.UpdatedAt,
		)
	}
	return rows
}
