package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"reputation/internal/domain"
	"reputation/internal/repository"
	"reputation/pkg/apperrors"
)

const (
	communityID = int64(1)
	submitterID = int64(100)
	adminID     = int64(200)
	operatorID  = int64(300)
	providerID  = int64(21)
	reportID    = int64(11)
	offerID     = int64(31)
	ratingID    = int64(501)
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	actors      *mockActorRepository
	providers   *mockProviderRepository
	reports     *mockProblemReportRepository
	offers      *mockOfferRepository
	ratings     *mockRatingRepository
	providerSvc *mockProviderService
	photos      *mockPhotoStorage
	events      *mockPublisher
	svc         *RatingServiceImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		actors:      new(mockActorRepository),
		providers:   new(mockProviderRepository),
		reports:     new(mockProblemReportRepository),
		offers:      new(mockOfferRepository),
		ratings:     new(mockRatingRepository),
		providerSvc: new(mockProviderService),
		photos:      new(mockPhotoStorage),
		events:      new(mockPublisher),
	}

	repos := &repository.Repositories{
		Actor:         f.actors,
		Provider:      f.providers,
		ProblemReport: f.reports,
		Offer:         f.offers,
		Rating:        f.ratings,
	}

	f.svc = NewRatingService(repos, f.providerSvc, nil, f.events, 15*time.Minute, zap.NewNop())
	f.svc.now = func() time.Time { return fixedNow }

	return f
}

func (f *fixture) withPhotoStorage() {
	f.svc.photos = f.photos
}

func submitter() *domain.Actor {
	return &domain.Actor{ID: submitterID, CommunityID: communityID, FullName: "Олег Смирнов", Role: domain.ActorRoleMember, IsActive: true}
}

func administrator() *domain.Actor {
	return &domain.Actor{ID: adminID, CommunityID: communityID, FullName: "Ирина Петрова", Role: domain.ActorRoleAdministrator, IsActive: true}
}

func resolvedReport() *domain.ProblemReport {
	return &domain.ProblemReport{
		ID:                 reportID,
		CommunityID:        communityID,
		Title:              "Течет кран на кухне",
		Status:             domain.ProblemReportStatusResolved,
		AssignedProviderID: ptr(providerID),
		ApprovedOfferID:    ptr(offerID),
		ResolvedAt:         ptr(fixedNow.Add(-24 * time.Hour)),
	}
}

func approvedOffer() *domain.OfferRecord {
	return &domain.OfferRecord{
		ID:              offerID,
		ProblemReportID: reportID,
		ProviderID:      providerID,
		TotalAmount:     1500,
		IsApproved:      true,
	}
}

func validSubmission() domain.SubmitRatingDTO {
	return domain.SubmitRatingDTO{
		ProblemReportID:      reportID,
		ProviderID:           providerID,
		OfferRecordID:        offerID,
		AuthorizedByActorID:  adminID,
		QualityScore:         5,
		TimelinessScore:      4,
		BudgetAdherenceScore: 3,
		Comment:              "  Быстро и аккуратно  ",
	}
}

// expectChain registers the lookups of a fully valid submission. Individual
// tests override single steps by registering their own expectation first.
func (f *fixture) expectChain() {
	f.actors.On("GetByID", mock.Anything, submitterID).Return(submitter(), nil).Maybe()
	f.reports.On("GetByID", mock.Anything, reportID).Return(resolvedReport(), nil).Maybe()
	f.offers.On("GetByID", mock.Anything, offerID).Return(approvedOffer(), nil).Maybe()
	f.actors.On("GetByID", mock.Anything, adminID).Return(administrator(), nil).Maybe()
	f.ratings.On("FindByProblemReportID", mock.Anything, reportID).
		Return(nil, apperrors.NotFound("отзыв по заявке", reportID)).Maybe()
}

func (f *fixture) expectInsertOK() {
	f.ratings.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Rating")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Rating)
			r.ID = ratingID
			r.CreatedAt = fixedNow
			r.UpdatedAt = fixedNow
		}).
		Return(nil)
}

func (f *fixture) expectPostWrite() {
	f.providerSvc.On("RefreshReputation", mock.Anything, providerID).
		Return(&domain.ReputationSummary{Rating: 4, RatingsCount: 1, CompletedJobs: 1}, nil)
	f.events.On("Publish", mock.Anything, mock.Anything).Return(nil)
}
