package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"reputation/internal/domain"
	"reputation/internal/event"
	"reputation/internal/metrics"
	"reputation/internal/repository"
	"reputation/internal/storage"
	"reputation/pkg/apperrors"
	"reputation/pkg/validator"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type RatingServiceImpl struct {
	actorRepo    repository.ActorRepository
	ratingRepo   repository.RatingRepository
	providerRepo repository.ProviderRepository

	eligibility   *EligibilityGate
	offers        *OfferValidator
	authorization *AuthorizationValidator
	uniqueness    *UniquenessEnforcer

	providers  ProviderService
	photos     storage.PhotoStorage
	events     EventPublisher
	presignTTL time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func NewRatingService(
	repos *repository.Repositories,
	providers ProviderService,
	photos storage.PhotoStorage,
	events EventPublisher,
	presignTTL time.Duration,
	logger *zap.Logger,
) *RatingServiceImpl {
	return &RatingServiceImpl{
		actorRepo:     repos.Actor,
		ratingRepo:    repos.Rating,
		providerRepo:  repos.Provider,
		eligibility:   NewEligibilityGate(repos.ProblemReport, logger),
		offers:        NewOfferValidator(repos.Offer, logger),
		authorization: NewAuthorizationValidator(repos.Actor, logger),
		uniqueness:    NewUniquenessEnforcer(repos.Rating, logger),
		providers:     providers,
		photos:        photos,
		events:        events,
		presignTTL:    presignTTL,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *RatingServiceImpl) Submit(ctx context.Context, callerID int64, dto domain.SubmitRatingDTO) (*domain.Rating, error) {
	rating, err := s.submit(ctx, callerID, dto)
	metrics.ObserveSubmission(err)
	return rating, err
}

func (s *RatingServiceImpl) submit(ctx context.Context, callerID int64, dto domain.SubmitRatingDTO) (*domain.Rating, error) {
	dto.Comment = strings.TrimSpace(dto.Comment)
	if err := validator.Struct(dto); err != nil {
		s.logger.Warn("некорректные данные отзыва", zap.Int64("callerID", callerID), zap.Error(err))
		return nil, apperrors.InvalidInput(err.Error())
	}

	overall := domain.OverallFromCategories(dto.QualityScore, dto.TimelinessScore, dto.BudgetAdherenceScore)
	if dto.OverallScore != 0 && dto.OverallScore != overall {
		s.logger.Warn("общая оценка не соответствует оценкам по критериям",
			zap.Int("overall", dto.OverallScore),
			zap.Int("expected", overall))
		return nil, apperrors.InvalidInput("общая оценка должна быть округленным средним оценок по критериям")
	}

	submitter, err := s.resolveSubmitter(ctx, callerID)
	if err != nil {
		return nil, err
	}

	report, err := s.eligibility.Check(ctx, dto.ProblemReportID, submitter.CommunityID)
	if err != nil {
		return nil, err
	}

	if _, err = s.offers.Check(ctx, dto.OfferRecordID, report, dto.ProviderID); err != nil {
		return nil, err
	}

	if _, err = s.authorization.Check(ctx, dto.AuthorizedByActorID, submitter.CommunityID); err != nil {
		return nil, err
	}

	if err = s.uniqueness.Check(ctx, report.ID); err != nil {
		return nil, err
	}

	if err = s.checkPhotos(ctx, dto.PhotoRefs); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		ProblemReportID:      report.ID,
		ProviderID:           dto.ProviderID,
		CommunityID:          submitter.CommunityID,
		SubmittedByActorID:   submitter.ID,
		AuthorizedByActorID:  dto.AuthorizedByActorID,
		OfferRecordID:        dto.OfferRecordID,
		OverallScore:         overall,
		QualityScore:         dto.QualityScore,
		TimelinessScore:      dto.TimelinessScore,
		BudgetAdherenceScore: dto.BudgetAdherenceScore,
		Comment:              dto.Comment,
		PhotoRefs:            dto.PhotoRefs,
		IsVerified:           true,
	}

	if err = s.ratingRepo.Insert(ctx, rating); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.logger.Warn("отзыв по заявке уже сохранен параллельным запросом", zap.Int64("reportID", report.ID))
			return nil, err
		}
		s.logger.Error("ошибка сохранения отзыва", zap.Int64("reportID", report.ID), zap.Error(err))
		return nil, classify(err)
	}

	s.logger.Info("отзыв сохранен",
		zap.Int64("ratingID", rating.ID),
		zap.Int64("reportID", rating.ProblemReportID),
		zap.Int64("providerID", rating.ProviderID))

	s.afterSubmit(ctx, rating)

	return rating, nil
}

// resolveSubmitter loads the caller; community and activity always come from storage.
func (s *RatingServiceImpl) resolveSubmitter(ctx context.Context, callerID int64) (*domain.Actor, error) {
	submitter, err := s.actorRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("автор отзыва не найден", zap.Int64("callerID", callerID))
			return nil, apperrors.Unauthorized("автор отзыва не зарегистрирован в сообществе")
		}
		s.logger.Error("ошибка получения автора отзыва", zap.Int64("callerID", callerID), zap.Error(err))
		return nil, classify(err)
	}

	if !submitter.IsActive {
		s.logger.Warn("автор отзыва деактивирован", zap.Int64("callerID", callerID))
		return nil, apperrors.Unauthorized("учетная запись участника деактивирована")
	}

	return submitter, nil
}

func (s *RatingServiceImpl) checkPhotos(ctx context.Context, refs []string) error {
	if s.photos == nil {
		return nil
	}

	for _, ref := range refs {
		ok, err := s.photos.Exists(ctx, ref)
		if err != nil {
			s.logger.Error("ошибка проверки фото", zap.String("ref", ref), zap.Error(err))
			return apperrors.Internal(err)
		}
		if !ok {
			s.logger.Warn("фото не найдено в хранилище", zap.String("ref", ref))
			return apperrors.InvalidInput("фото не найдено: " + ref)
		}
	}

	return nil
}

// afterSubmit runs once the rating is committed; its failures are only logged.
// It ignores cancellation of the request context.
func (s *RatingServiceImpl) afterSubmit(ctx context.Context, rating *domain.Rating) {
	ctx = context.WithoutCancel(ctx)

	if s.providers != nil {
		if _, err := s.providers.RefreshReputation(ctx, rating.ProviderID); err != nil {
			s.logger.Error("не удалось обновить рейтинг исполнителя",
				zap.Int64("providerID", rating.ProviderID),
				zap.Error(err))
		}
	}

	s.publish(ctx, event.RatingVerified, rating)
}

func (s *RatingServiceImpl) publish(ctx context.Context, build func(*domain.Rating) (*event.Event, error), rating *domain.Rating) {
	if s.events == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	evt, err := build(rating)
	if err != nil {
		s.logger.Error("ошибка формирования события", zap.Int64("ratingID", rating.ID), zap.Error(err))
		return
	}

	if err := s.events.Publish(ctx, evt); err != nil {
		s.logger.Error("ошибка публикации события",
			zap.String("type", evt.Type),
			zap.Int64("ratingID", rating.ID),
			zap.Error(err))
	}
}

func (s *RatingServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения отзыва", zap.Int64("id", id), zap.Error(err))
		return nil, classify(err)
	}
	return rating, nil
}

// ListByProvider returns one page of the provider's ratings. A missing or
// non-positive limit becomes the default, larger limits are capped and a
// negative offset starts from the beginning.
func (s *RatingServiceImpl) ListByProvider(ctx context.Context, filter domain.RatingFilter) (*domain.RatingPage, error) {
	if _, err := s.providerRepo.GetByID(ctx, filter.ProviderID); err != nil {
		s.logger.Warn("исполнитель не найден", zap.Int64("providerID", filter.ProviderID), zap.Error(err))
		return nil, classify(err)
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	ratings, err := s.ratingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка отзывов", zap.Int64("providerID", filter.ProviderID), zap.Error(err))
		return nil, classify(err)
	}

	total, err := s.ratingRepo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка подсчета отзывов", zap.Int64("providerID", filter.ProviderID), zap.Error(err))
		return nil, classify(err)
	}

	return &domain.RatingPage{
		Ratings: ratings,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}

// PhotoLinks returns temporary download links for the photos of a rating.
// Without object storage configured the links carry only the reference.
func (s *RatingServiceImpl) PhotoLinks(ctx context.Context, ratingID int64) ([]domain.PhotoLink, error) {
	rating, err := s.GetByID(ctx, ratingID)
	if err != nil {
		return nil, err
	}

	links := make([]domain.PhotoLink, 0, len(rating.PhotoRefs))
	for _, ref := range rating.PhotoRefs {
		link := domain.PhotoLink{Ref: ref}
		if s.photos != nil {
			link.URL, err = s.photos.PresignedURL(ctx, ref, s.presignTTL)
			if err != nil {
				s.logger.Error("ошибка генерации ссылки на фото",
					zap.Int64("ratingID", ratingID),
					zap.String("ref", ref),
					zap.Error(err))
				return nil, apperrors.Internal(err)
			}
		}
		links = append(links, link)
	}

	return links, nil
}
