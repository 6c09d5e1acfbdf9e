package service

import (
	"context"

	"go.uber.org/zap"

	"reputation/internal/domain"
	"reputation/internal/repository"
)

type ProviderServiceImpl struct {
	providerRepo repository.ProviderRepository
	statistics   StatisticsService
	logger       *zap.Logger
}

func NewProviderService(
	providerRepo repository.ProviderRepository,
	statistics StatisticsService,
	logger *zap.Logger,
) *ProviderServiceImpl {
	return &ProviderServiceImpl{
		providerRepo: providerRepo,
		statistics:   statistics,
		logger:       logger,
	}
}

func (s *ProviderServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("исполнитель не найден", zap.Int64("id", id), zap.Error(err))
		return nil, classify(err)
	}
	return provider, nil
}

// RefreshReputation recomputes the summary shown on the provider profile from
// all of the provider's ratings and resolved reports and stores it on the
// provider row in one transaction. Cached statistics of the provider are
// dropped first.
func (s *ProviderServiceImpl) RefreshReputation(ctx context.Context, providerID int64) (*domain.ReputationSummary, error) {
	if err := s.statistics.Invalidate(ctx, providerID); err != nil {
		s.logger.Warn("не удалось сбросить кэш статистики", zap.Int64("providerID", providerID), zap.Error(err))
	}

	summary, err := s.providerRepo.RefreshReputation(ctx, providerID)
	if err != nil {
		s.logger.Error("ошибка пересчета рейтинга исполнителя", zap.Int64("providerID", providerID), zap.Error(err))
		return nil, classify(err)
	}

	s.logger.Info("рейтинг исполнителя обновлен",
		zap.Int64("providerID", providerID),
		zap.Float64("rating", summary.Rating),
		zap.Int("ratingsCount", summary.RatingsCount),
		zap.Int("completedJobs", summary.CompletedJobs))

	return summary, nil
}
