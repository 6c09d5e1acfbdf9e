package service

import (
	"context"

	"go.uber.org/zap"

	"reputation/internal/domain"
	"reputation/internal/repository"
	"reputation/pkg/apperrors"
)

// EligibilityGate admits only resolved problem reports of the submitter's community.
type EligibilityGate struct {
	reports repository.ProblemReportRepository
	logger  *zap.Logger
}

func NewEligibilityGate(reports repository.ProblemReportRepository, logger *zap.Logger) *EligibilityGate {
	return &EligibilityGate{
		reports: reports,
		logger:  logger,
	}
}

func (g *EligibilityGate) Check(ctx context.Context, reportID, communityID int64) (*domain.ProblemReport, error) {
	report, err := g.reports.GetByID(ctx, reportID)
	if err != nil {
		g.logger.Warn("заявка для отзыва не найдена", zap.Int64("reportID", reportID), zap.Error(err))
		return nil, classify(err)
	}

	if report.Status != domain.ProblemReportStatusResolved {
		g.logger.Warn("попытка оценить незакрытую заявку",
			zap.Int64("reportID", reportID),
			zap.String("status", string(report.Status)))
		return nil, apperrors.InvalidState("оценить можно только закрытую заявку")
	}

	if report.CommunityID != communityID {
		g.logger.Warn("заявка принадлежит другому сообществу",
			zap.Int64("reportID", reportID),
			zap.Int64("reportCommunityID", report.CommunityID),
			zap.Int64("submitterCommunityID", communityID))
		return nil, apperrors.CommunityMismatch("заявка принадлежит другому сообществу")
	}

	return report, nil
}
