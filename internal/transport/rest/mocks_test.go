package rest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"reputation/internal/domain"
)

type mockRatingService struct {
	mock.Mock
}

func (m *mockRatingService) Submit(ctx context.Context, callerID int64, dto domain.SubmitRatingDTO) (*domain.Rating, error) {
	args := m.Called(ctx, callerID, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingService) AttachReply(ctx context.Context, callerID, ratingID int64, dto domain.AttachReplyDTO) (*domain.Rating, error) {
	args := m.Called(ctx, callerID, ratingID, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingService) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingService) ListByProvider(ctx context.Context, filter domain.RatingFilter) (*domain.RatingPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingPage), args.Error(1)
}

func (m *mockRatingService) PhotoLinks(ctx context.Context, ratingID int64) ([]domain.PhotoLink, error) {
	args := m.Called(ctx, ratingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PhotoLink), args.Error(1)
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
	return m.Called(ctx, providerID).Error(0)
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
