package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"reputation/internal/domain"
	"reputation/internal/event"
)

// --- repositories ---

type mockActorRepository struct {
	mock.Mock
}

func (m *mockActorRepository) GetByID(ctx context.Context, id int64) (*domain.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

type mockProviderRepository struct {
	mock.Mock
}

func (m *mockProviderRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *mockProviderRepository) GetByActorID(ctx context.Context, actorID int64) (*domain.Provider, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *mockProviderRepository) RefreshReputation(ctx context.Context, id int64) (*domain.ReputationSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReputationSummary), args.Error(1)
}

type mockProblemReportRepository struct {
	mock.Mock
}

func (m *mockProblemReportRepository) GetByID(ctx context.Context, id int64) (*domain.ProblemReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProblemReport), args.Error(1)
}

type mockOfferRepository struct {
	mock.Mock
}

func (m *mockOfferRepository) GetByID(ctx context.Context, id int64) (*domain.OfferRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OfferRecord), args.Error(1)
}

type mockRatingRepository struct {
	mock.Mock
}

func (m *mockRatingRepository) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingRepository) FindByProblemReportID(ctx context.Context, problemReportID int64) (*domain.Rating, error) {
	args := m.Called(ctx, problemReportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingRepository) Insert(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingRepository) UpdateReply(ctx context.Context, id int64, text string, repliedAt time.Time) error {
	args := m.Called(ctx, id, text, repliedAt)
	return args.Error(0)
}

func (m *mockRatingRepository) ListByProvider(ctx context.Context, providerID int64, communityID *int64) ([]domain.Rating, error) {
	args := m.Called(ctx, providerID, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *mockRatingRepository) List(ctx context.Context, filter domain.RatingFilter) ([]domain.Rating, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *mockRatingRepository) CountByFilter(ctx context.Context, filter domain.RatingFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

// --- collaborators ---

type mockPhotoStorage struct {
	mock.Mock
}

func (m *mockPhotoStorage) Exists(ctx context.Context, ref string) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

func (m *mockPhotoStorage) PresignedURL(ctx context.Context, ref string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, ref, expiry)
	return args.String(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, evt *event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type mockStatisticsCache struct {
	mock.Mock
}

func (m *mockStatisticsCache) Get(ctx context.Context, providerID int64, communityID *int64) (*domain.ProviderStatistics, int64, error) {
	args := m.Called(ctx, providerID, communityID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.ProviderStatistics), args.Get(1).(int64), args.Error(2)
}

func (m *mockStatisticsCache) Set(ctx context.Context, providerID int64, communityID *int64, generation int64, stats *domain.ProviderStatistics) error {
	args := m.Called(ctx, providerID, communityID, generation, stats)
	return args.Error(0)
}

func (m *mockStatisticsCache) Invalidate(ctx context.Context, providerID int64) error {
	args := m.Called(ctx, providerID)
	return args.Error(0)
}

type mockStatisticsService struct {
	mock.Mock
}

func (m *mockStatisticsService) ProviderStatistics(ctx context.Context, providerID int64, communityID *int64) (*domain.ProviderStatistics, error) {
	args := m.Called(ctx, providerID, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderStatistics), args.Error(1)
}

func (m *mockStatisticsService) Invalidate(ctx context.Context, providerID int64) error {
	args := m.Called(ctx, providerID)
	return args.Error(0)
}

type mockProviderService struct {
	mock.Mock
}

func (m *mockProviderService) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *mockProviderService) RefreshReputation(ctx context.Context, providerID int64) (*domain.ReputationSummary, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReputationSummary), args.Error(1)
}
