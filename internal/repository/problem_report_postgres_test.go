package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reputation/internal/domain"
	"reputation/pkg/apperrors"
)

func TestProblemReportRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewProblemReportRepository(mock)

	finalCost := 1500.0
	resolvedAt := fixedTime
	mock.ExpectQuery("SELECT (.+) FROM problem_reports").
		WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "community_id", "title", "status", "assigned_provider_id", "approved_offer_id",
			"final_cost", "resolved_at", "created_at", "updated_at",
		}).AddRow(int64(11), int64(1), "Течет кран", domain.ProblemReportStatusResolved,
			int64Ptr(21), int64Ptr(31), &finalCost, &resolvedAt, fixedTime, fixedTime))

	report, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, domain.ProblemReportStatusResolved, report.Status)
	require.NotNil(t, report.AssignedProviderID)
	assert.Equal(t, int64(21), *report.AssignedProviderID)
	require.NotNil(t, report.ApprovedOfferID)
	assert.Equal(t, int64(31), *report.ApprovedOfferID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProblemReportRepo_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewProblemReportRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM problem_reports").
		WithArgs(int64(12)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 12)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
