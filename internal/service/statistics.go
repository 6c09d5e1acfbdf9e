package service

import (
	"context"

	"go.uber.org/zap"

	"reputation/internal/domain"
	"reputation/internal/metrics"
	"reputation/internal/repository"
)

type StatisticsServiceImpl struct {
	providerRepo repository.ProviderRepository
	ratingRepo   repository.RatingRepository
	cache        StatisticsCache
	logger       *zap.Logger
}

func NewStatisticsService(
	providerRepo repository.ProviderRepository,
	ratingRepo repository.RatingRepository,
	cache StatisticsCache,
	logger *zap.Logger,
) *StatisticsServiceImpl {
	return &StatisticsServiceImpl{
		providerRepo: providerRepo,
		ratingRepo:   ratingRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *StatisticsServiceImpl) ProviderStatistics(ctx context.Context, providerID int64, communityID *int64) (*domain.ProviderStatistics, error) {
	if _, err := s.providerRepo.GetByID(ctx, providerID); err != nil {
		s.logger.Warn("исполнитель не найден", zap.Int64("providerID", providerID), zap.Error(err))
		return nil, classify(err)
	}

	// The generation is read before the ratings so a concurrent Invalidate
	// makes the write below a no-op.
	var (
		generation int64
		cacheable  bool
	)
	if s.cache != nil {
		cached, gen, err := s.cache.Get(ctx, providerID, communityID)
		if err != nil {
			s.logger.Warn("кэш статистики недоступен", zap.Int64("providerID", providerID), zap.Error(err))
		}
		metrics.ObserveCacheLookup(cached != nil)
		if cached != nil {
			return cached, nil
		}
		generation, cacheable = gen, err == nil
	}

	ratings, err := s.ratingRepo.ListByProvider(ctx, providerID, communityID)
	if err != nil {
		s.logger.Error("ошибка загрузки отзывов для статистики", zap.Int64("providerID", providerID), zap.Error(err))
		return nil, classify(err)
	}

	stats := Aggregate(ratings)

	if cacheable {
		if err := s.cache.Set(ctx, providerID, communityID, generation, &stats); err != nil {
			s.logger.Warn("не удалось сохранить статистику в кэш", zap.Int64("providerID", providerID), zap.Error(err))
		}
	}

	return &stats, nil
}

func (s *StatisticsServiceImpl) Invalidate(ctx context.Context, providerID int64) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, providerID)
}

// Aggregate averages the scores of ratings. Means are rounded half up to one
// decimal place using integer tenths, so 4.25 becomes 4.3 exactly.
func Aggregate(ratings []domain.Rating) domain.ProviderStatistics {
	n := len(ratings)
	if n == 0 {
		return domain.ProviderStatistics{}
	}

	var overall, quality, timeliness, budget int
	for _, r := range ratings {
		overall += r.OverallScore
		quality += r.QualityScore
		timeliness += r.TimelinessScore
		budget += r.BudgetAdherenceScore
	}

	return domain.ProviderStatistics{
		AverageOverall:         meanOneDecimal(overall, n),
		AverageQuality:         meanOneDecimal(quality, n),
		AverageTimeliness:      meanOneDecimal(timeliness, n),
		AverageBudgetAdherence: meanOneDecimal(budget, n),
		TotalRatings:           n,
	}
}

// meanOneDecimal is round-half-up(sum/n, 1) for non-negative sums.
func meanOneDecimal(sum, n int) float64 {
	tenths := (20*sum + n) / (2 * n)
	return float64(tenths) / 10
}
