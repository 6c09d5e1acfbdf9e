package service

import (
	"context"

	"go.uber.org/zap"

	"reputation/internal/domain"
	"reputation/internal/repository"
	"reputation/pkg/apperrors"
)

// OfferValidator checks that the submitted offer is the approved offer of the
// report and belongs to the rated provider.
type OfferValidator struct {
	offers repository.OfferRepository
	logger *zap.Logger
}

func NewOfferValidator(offers repository.OfferRepository, logger *zap.Logger) *OfferValidator {
	return &OfferValidator{
		offers: offers,
		logger: logger,
	}
}

func (v *OfferValidator) Check(ctx context.Context, offerID int64, report *domain.ProblemReport, providerID int64) (*domain.OfferRecord, error) {
	offer, err := v.offers.GetByID(ctx, offerID)
	if err != nil {
		v.logger.Warn("смета для отзыва не найдена", zap.Int64("offerID", offerID), zap.Error(err))
		return nil, classify(err)
	}

	fields := []zap.Field{
		zap.Int64("offerID", offer.ID),
		zap.Int64("reportID", report.ID),
		zap.Int64("providerID", providerID),
	}

	if !offer.IsApproved {
		v.logger.Warn("смета не утверждена", fields...)
		return nil, apperrors.NotApproved("смета не утверждена")
	}

	if offer.ProblemReportID != report.ID {
		v.logger.Warn("смета относится к другой заявке", append(fields, zap.Int64("offerReportID", offer.ProblemReportID))...)
		return nil, apperrors.ReportMismatch("смета относится к другой заявке")
	}

	if offer.ProviderID != providerID {
		v.logger.Warn("смета относится к другому исполнителю", append(fields, zap.Int64("offerProviderID", offer.ProviderID))...)
		return nil, apperrors.ProviderMismatch("смета относится к другому исполнителю")
	}

	if report.ApprovedOfferID != nil && *report.ApprovedOfferID != offer.ID {
		v.logger.Warn("заявка закрыта по другой смете", append(fields, zap.Int64("approvedOfferID", *report.ApprovedOfferID))...)
		return nil, apperrors.ReportMismatch("заявка закрыта по другой смете")
	}

	if report.AssignedProviderID != nil && *report.AssignedProviderID != providerID {
		v.logger.Warn("заявку выполнял другой исполнитель", append(fields, zap.Int64("assignedProviderID", *report.AssignedProviderID))...)
		return nil, apperrors.ProviderMismatch("заявку выполнял другой исполнитель")
	}

	return offer, nil
}
