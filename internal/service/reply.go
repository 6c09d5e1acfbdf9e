package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"reputation/internal/domain"
	"reputation/internal/event"
	"reputation/internal/metrics"
	"reputation/pkg/apperrors"
	"reputation/pkg/validator"
)

const maxReplyLength = 4000

// AttachReply lets the rated provider answer a rating once.
func (s *RatingServiceImpl) AttachReply(ctx context.Context, callerID, ratingID int64, dto domain.AttachReplyDTO) (*domain.Rating, error) {
	rating, err := s.attachReply(ctx, callerID, ratingID, dto)
	metrics.ObserveReply(err)
	return rating, err
}

func (s *RatingServiceImpl) attachReply(ctx context.Context, callerID, ratingID int64, dto domain.AttachReplyDTO) (*domain.Rating, error) {
	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		s.logger.Warn("отзыв для ответа не найден", zap.Int64("ratingID", ratingID), zap.Error(err))
		return nil, classify(err)
	}

	provider, err := s.providerRepo.GetByActorID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("ответ на отзыв от участника без профиля исполнителя",
				zap.Int64("callerID", callerID),
				zap.Int64("ratingID", ratingID))
			return nil, apperrors.Unauthorized("отвечать на отзыв может только оцененный исполнитель")
		}
		s.logger.Error("ошибка получения исполнителя", zap.Int64("callerID", callerID), zap.Error(err))
		return nil, classify(err)
	}

	if provider.ID != rating.ProviderID {
		s.logger.Warn("попытка ответить на отзыв о другом исполнителе",
			zap.Int64("callerProviderID", provider.ID),
			zap.Int64("ratingProviderID", rating.ProviderID),
			zap.Int64("ratingID", ratingID))
		return nil, apperrors.Unauthorized("отвечать на отзыв может только оцененный исполнитель")
	}

	text := strings.TrimSpace(dto.ReplyText)
	if validator.IsBlank(text) {
		return nil, apperrors.InvalidInput("текст ответа не может быть пустым")
	}
	if utf8.RuneCountInString(text) > maxReplyLength {
		return nil, apperrors.InvalidInput("текст ответа слишком длинный")
	}

	if rating.HasReply() {
		s.logger.Warn("повторный ответ на отзыв", zap.Int64("ratingID", ratingID))
		return nil, apperrors.Conflict("на отзыв уже дан ответ")
	}

	repliedAt := s.now().UTC()
	if err = s.ratingRepo.UpdateReply(ctx, rating.ID, text, repliedAt); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.logger.Warn("ответ на отзыв уже сохранен параллельным запросом", zap.Int64("ratingID", ratingID))
			return nil, err
		}
		s.logger.Error("ошибка сохранения ответа", zap.Int64("ratingID", ratingID), zap.Error(err))
		return nil, classify(err)
	}

	rating.ReplyText = &text
	rating.RepliedAt = &repliedAt
	rating.UpdatedAt = repliedAt

	s.logger.Info("ответ на отзыв сохранен",
		zap.Int64("ratingID", rating.ID),
		zap.Int64("providerID", provider.ID))

	s.publish(ctx, event.RatingReplied, rating)

	return rating, nil
}
