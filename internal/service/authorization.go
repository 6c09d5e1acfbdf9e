package service

import (
	"context"

	"go.uber.org/zap"

	"reputation/internal/domain"
	"reputation/internal/repository"
	"reputation/pkg/apperrors"
)

// AuthorizationValidator requires the co-signing actor to be an administrator
// of the submitter's community. The role is read from storage on every call.
type AuthorizationValidator struct {
	actors repository.ActorRepository
	logger *zap.Logger
}

func NewAuthorizationValidator(actors repository.ActorRepository, logger *zap.Logger) *AuthorizationValidator {
	return &AuthorizationValidator{
		actors: actors,
		logger: logger,
	}
}

func (v *AuthorizationValidator) Check(ctx context.Context, actorID, communityID int64) (*domain.Actor, error) {
	actor, err := v.actors.GetByID(ctx, actorID)
	if err != nil {
		v.logger.Warn("подтверждающий участник не найден", zap.Int64("actorID", actorID), zap.Error(err))
		return nil, classify(err)
	}

	if actor.Role != domain.ActorRoleAdministrator {
		v.logger.Warn("подтверждающий участник не администратор",
			zap.Int64("actorID", actorID),
			zap.String("role", string(actor.Role)))
		return nil, apperrors.Unauthorized("подтвердить отзыв может только администратор сообщества")
	}

	if actor.CommunityID != communityID {
		v.logger.Warn("администратор из другого сообщества",
			zap.Int64("actorID", actorID),
			zap.Int64("actorCommunityID", actor.CommunityID),
			zap.Int64("submitterCommunityID", communityID))
		return nil, apperrors.CommunityMismatch("администратор относится к другому сообществу")
	}

	return actor, nil
}
