package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"reputation/internal/domain"
	"reputation/pkg/apperrors"
	"reputation/pkg/database"
)

type ActorRepo struct {
	db database.DB
}

func NewActorRepository(db database.DB) *ActorRepo {
	return &ActorRepo{
		db: db,
	}
}

func (r *ActorRepo) GetByID(ctx context.Context, id int64) (*domain.Actor, error) {
	query := `
		SELECT id, community_id, full_name, role, is_active, created_at, updated_at
		FROM actors
		WHERE id = $1
	`

	var actor domain.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&actor.ID,
		&actor.CommunityID,
		&actor.FullName,
		&actor.Role,
		&actor.IsActive,
		&actor.CreatedAt,
		&actor.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("участник", id)
		}
		return nil, fmt.Errorf("ошибка получения участника: %w", err)
	}

	return &actor, nil
}
