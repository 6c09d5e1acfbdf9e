package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"reputation/config"
	"reputation/internal/domain"
	"reputation/internal/event"
	"reputation/internal/repository"
	"reputation/internal/storage"
	"reputation/pkg/apperrors"
)

type Deps struct {
	Repos        *repository.Repositories
	Logger       *zap.Logger
	Config       *config.Config
	PhotoStorage storage.PhotoStorage
	StatsCache   StatisticsCache
	Events       EventPublisher
}

type Services struct {
	Rating     RatingService
	Statistics StatisticsService
	Provider   ProviderService
}

func NewServices(deps Deps) *Services {
	statistics := NewStatisticsService(deps.Repos.Provider, deps.Repos.Rating, deps.StatsCache, deps.Logger)
	provider := NewProviderService(deps.Repos.Provider, statistics, deps.Logger)

	return &Services{
		Statistics: statistics,
		Provider:   provider,
		Rating: NewRatingService(
			deps.Repos,
			provider,
			deps.PhotoStorage,
			deps.Events,
			deps.Config.S3.PresignTTL,
			deps.Logger,
		),
	}
}

type RatingService interface {
	Submit(ctx context.Context, callerID int64, dto domain.SubmitRatingDTO) (*domain.Rating, error)
	AttachReply(ctx context.Context, callerID, ratingID int64, dto domain.AttachReplyDTO) (*domain.Rating, error)
	GetByID(ctx context.Context, id int64) (*domain.Rating, error)
	ListByProvider(ctx context.Context, filter domain.RatingFilter) (*domain.RatingPage, error)
	PhotoLinks(ctx context.Context, ratingID int64) ([]domain.PhotoLink, error)
}

type StatisticsService interface {
	ProviderStatistics(ctx context.Context, providerID int64, communityID *int64) (*domain.ProviderStatistics, error)
	Invalidate(ctx context.Context, providerID int64) error
}

type ProviderService interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	RefreshReputation(ctx context.Context, providerID int64) (*domain.ReputationSummary, error)
}

// StatisticsCache is implemented by cache.StatisticsCache. Get returns nil on a
// miss together with the generation that Set must be given for the recomputed value.
type StatisticsCache interface {
	Get(ctx context.Context, providerID int64, communityID *int64) (*domain.ProviderStatistics, int64, error)
	Set(ctx context.Context, providerID int64, communityID *int64, generation int64, stats *domain.ProviderStatistics) error
	Invalidate(ctx context.Context, providerID int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, evt *event.Event) error
}

// classify keeps taxonomy errors as they are and hides everything else behind Internal.
func classify(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Internal(err)
}
