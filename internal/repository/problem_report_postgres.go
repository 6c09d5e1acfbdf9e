package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"reputation/internal/domain"
	"reputation/pkg/apperrors"
	"reputation/pkg/database"
)

type ProblemReportRepo struct {
	db database.DB
}

func NewProblemReportRepository(db database.DB) *ProblemReportRepo {
	return &ProblemReportRepo{
		db: db,
	}
}

func (r *ProblemReportRepo) GetByID(ctx context.Context, id int64) (*domain.ProblemReport, error) {
	query := `
		SELECT id, community_id, title, status, assigned_provider_id, approved_offer_id,
		       final_cost, resolved_at, created_at, updated_at
		FROM problem_reports
		WHERE id = $1
	`

	var report domain.ProblemReport
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.CommunityID,
		&report.Title,
		&report.Status,
		&report.AssignedProviderID,
		&report.ApprovedOfferID,
		&report.FinalCost,
		&report.ResolvedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("заявка", id)
		}
		return nil, fmt.Errorf("ошибка получения заявки: %w", err)
	}

	return &report, nil
}
