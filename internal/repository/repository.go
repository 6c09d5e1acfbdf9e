package repository

import (
	"context"
	"time"

	"reputation/internal/domain"
	"reputation/pkg/database"
)

type Repositories struct {
	Actor         ActorRepository
	Provider      ProviderRepository
	ProblemReport ProblemReportRepository
	Offer         OfferRepository
	Rating        RatingRepository
}

func NewRepositories(db database.DB) *Repositories {
	return &Repositories{
		Actor:         NewActorRepository(db),
		Provider:      NewProviderRepository(db),
		ProblemReport: NewProblemReportRepository(db),
		Offer:         NewOfferRepository(db),
		Rating:        NewRatingRepository(db),
	}
}

// Lookups return an error matching apperrors.ErrNotFound when the row is absent.

type ActorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)
}

type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	GetByActorID(ctx context.Context, actorID int64) (*domain.Provider, error)
	RefreshReputation(ctx context.Context, id int64) (*domain.ReputationSummary, error)
}

type ProblemReportRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ProblemReport, error)
}

type OfferRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.OfferRecord, error)
}

type RatingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rating, error)
	FindByProblemReportID(ctx context.Context, problemReportID int64) (*domain.Rating, error)
	// Insert fills ID, CreatedAt and UpdatedAt. A second rating for the same
	// problem report fails with apperrors.ErrConflict.
	Insert(ctx context.Context, rating *domain.Rating) error
	// UpdateReply sets the reply only when none exists yet; otherwise apperrors.ErrConflict.
	UpdateReply(ctx context.Context, id int64, text string, repliedAt time.Time) error
	ListByProvider(ctx context.Context, providerID int64, communityID *int64) ([]domain.Rating, error)
	List(ctx context.Context, filter domain.RatingFilter) ([]domain.Rating, error)
	CountByFilter(ctx context.Context, filter domain.RatingFilter) (int, error)
}
