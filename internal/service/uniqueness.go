package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"reputation/internal/repository"
	"reputation/pkg/apperrors"
)

// UniquenessEnforcer is the advisory half of the one-rating-per-report rule.
// The unique constraint on ratings.problem_report_id decides races.
type UniquenessEnforcer struct {
	ratings repository.RatingRepository
	logger  *zap.Logger
}

func NewUniquenessEnforcer(ratings repository.RatingRepository, logger *zap.Logger) *UniquenessEnforcer {
	return &UniquenessEnforcer{
		ratings: ratings,
		logger:  logger,
	}
}

func (u *UniquenessEnforcer) Check(ctx context.Context, reportID int64) error {
	existing, err := u.ratings.FindByProblemReportID(ctx, reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return classify(err)
	}

	u.logger.Warn("повторный отзыв по заявке",
		zap.Int64("reportID", reportID),
		zap.Int64("existingRatingID", existing.ID))
	return apperrors.Conflict("отзыв по этой заявке уже оставлен")
}
