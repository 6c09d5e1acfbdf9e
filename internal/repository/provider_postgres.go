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

type ProviderRepo struct {
	db database.DB
}

func NewProviderRepository(db database.DB) *ProviderRepo {
	return &ProviderRepo{
		db: db,
	}
}

const providerColumns = `id, actor_id, name, category, rating, ratings_count, completed_jobs, created_at, updated_at`

func (r *ProviderRepo) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`

	provider, err := r.scanProvider(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("исполнитель", id)
		}
		return nil, fmt.Errorf("ошибка получения исполнителя: %w", err)
	}

	return provider, nil
}

func (r *ProviderRepo) GetByActorID(ctx context.Context, actorID int64) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE actor_id = $1`

	provider, err := r.scanProvider(r.db.QueryRow(ctx, query, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("исполнитель участника", actorID)
		}
		return nil, fmt.Errorf("ошибка получения исполнителя по участнику: %w", err)
	}

	return provider, nil
}

// RefreshReputation recomputes the provider's rating, ratings count and
// completed jobs from the ratings and problem_reports tables and stores them
// on the provider row. The provider row is locked first so concurrent
// refreshes serialize and the last one to commit sees every committed rating.
func (r *ProviderRepo) RefreshReputation(ctx context.Context, id int64) (*domain.ReputationSummary, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var locked int64
	err = tx.QueryRow(ctx, `SELECT id FROM providers WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("исполнитель", id)
		}
		return nil, fmt.Errorf("ошибка блокировки исполнителя: %w", err)
	}

	query := `
		UPDATE providers
		SET rating = COALESCE((SELECT ROUND(AVG(overall_score), 1) FROM ratings WHERE provider_id = $1), 0),
		    ratings_count = (SELECT COUNT(*) FROM ratings WHERE provider_id = $1),
		    completed_jobs = (SELECT COUNT(*) FROM problem_reports
		                      WHERE assigned_provider_id = $1 AND status = $2),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING rating, ratings_count, completed_jobs
	`

	var summary domain.ReputationSummary
	err = tx.QueryRow(ctx, query, id, domain.ProblemReportStatusResolved).Scan(
		&summary.Rating,
		&summary.RatingsCount,
		&summary.CompletedJobs,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления рейтинга исполнителя: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return &summary, nil
}

func (r *ProviderRepo) scanProvider(row pgx.Row) (*domain.Provider, error) {
	var provider domain.Provider
	err := row.Scan(
		&provider.ID,
		&provider.ActorID,
		&provider.Name,
		&provider.Category,
		&provider.Rating,
		&provider.RatingsCount,
		&provider.CompletedJobs,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &provider, nil
}
