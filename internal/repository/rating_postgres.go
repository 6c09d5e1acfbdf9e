package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"reputation/internal/domain"
	"reputation/pkg/apperrors"
	"reputation/pkg/database"
)

const uniqueViolationCode = "23505"

type RatingRepo struct {
	db database.DB
}

func NewRatingRepository(db database.DB) *RatingRepo {
	return &RatingRepo{
		db: db,
	}
}

const ratingColumns = `id, problem_report_id, provider_id, community_id, submitted_by_actor_id,
		       authorized_by_actor_id, offer_record_id, overall_score, quality_score,
		       timeliness_score, budget_adherence_score, comment, photo_refs, is_verified,
		       reply_text, replied_at, created_at, updated_at`

func (r *RatingRepo) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`

	rating, err := scanRating(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("отзыв", id)
		}
		return nil, fmt.Errorf("ошибка получения отзыва: %w", err)
	}

	return rating, nil
}

func (r *RatingRepo) FindByProblemReportID(ctx context.Context, problemReportID int64) (*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE problem_report_id = $1`

	rating, err := scanRating(r.db.QueryRow(ctx, query, problemReportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("отзыв по заявке", problemReportID)
		}
		return nil, fmt.Errorf("ошибка поиска отзыва по заявке: %w", err)
	}

	return rating, nil
}

func (r *RatingRepo) Insert(ctx context.Context, rating *domain.Rating) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO ratings (problem_report_id, provider_id, community_id, submitted_by_actor_id,
		                     authorized_by_actor_id, offer_record_id, overall_score, quality_score,
		                     timeliness_score, budget_adherence_score, comment, photo_refs,
		                     is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id, created_at, updated_at
	`

	photoRefs := rating.PhotoRefs
	if photoRefs == nil {
		photoRefs = []string{}
	}

	err = tx.QueryRow(ctx, query,
		rating.ProblemReportID,
		rating.ProviderID,
		rating.CommunityID,
		rating.SubmittedByActorID,
		rating.AuthorizedByActorID,
		rating.OfferRecordID,
		rating.OverallScore,
		rating.QualityScore,
		rating.TimelinessScore,
		rating.BudgetAdherenceScore,
		rating.Comment,
		photoRefs,
		rating.IsVerified,
		time.Now(),
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.Conflict("отзыв по этой заявке уже оставлен")
		}
		return fmt.Errorf("ошибка создания отзыва: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	rating.PhotoRefs = photoRefs
	return nil
}

func (r *RatingRepo) UpdateReply(ctx context.Context, id int64, text string, repliedAt time.Time) error {
	query := `
		UPDATE ratings
		SET reply_text = $1, replied_at = $2, updated_at = $2
		WHERE id = $3 AND reply_text IS NULL
	`

	tag, err := r.db.Exec(ctx, query, text, repliedAt, id)
	if err != nil {
		return fmt.Errorf("ошибка сохранения ответа на отзыв: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.Conflict("на отзыв уже дан ответ")
	}

	return nil
}

// ListByProvider returns every rating of the provider, optionally limited to one
// community. Used by the aggregation path, so no pagination.
func (r *RatingRepo) ListByProvider(ctx context.Context, providerID int64, communityID *int64) ([]domain.Rating, error) {
	return r.List(ctx, domain.RatingFilter{ProviderID: providerID, CommunityID: communityID})
}

func (r *RatingRepo) List(ctx context.Context, filter domain.RatingFilter) ([]domain.Rating, error) {
	where, args := ratingConditions(filter)

	query := `SELECT ` + ratingColumns + ` FROM ratings` + where + ` ORDER BY created_at DESC, id DESC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения отзывов: %w", err)
	}
	defer rows.Close()

	ratings := make([]domain.Rating, 0)
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования отзыва: %w", err)
		}
		ratings = append(ratings, *rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return ratings, nil
}

func (r *RatingRepo) CountByFilter(ctx context.Context, filter domain.RatingFilter) (int, error) {
	where, args := ratingConditions(filter)

	query := `SELECT COUNT(*) FROM ratings` + where

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчета отзывов: %w", err)
	}

	return count, nil
}

func ratingConditions(filter domain.RatingFilter) (string, []any) {
	conditions := []string{}
	args := make([]any, 0, 4)

	if filter.ProviderID > 0 {
		args = append(args, filter.ProviderID)
		conditions = append(conditions, fmt.Sprintf("provider_id = $%d", len(args)))
	}

	if filter.CommunityID != nil {
		args = append(args, *filter.CommunityID)
		conditions = append(conditions, fmt.Sprintf("community_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanRating(row pgx.Row) (*domain.Rating, error) {
	var rating domain.Rating
	err := row.Scan(
		&rating.ID,
		&rating.ProblemReportID,
		&rating.ProviderID,
		&rating.CommunityID,
		&rating.SubmittedByActorID,
		&rating.AuthorizedByActorID,
		&rating.OfferRecordID,
		&rating.OverallScore,
		&rating.QualityScore,
		&rating.TimelinessScore,
		&rating.BudgetAdherenceScore,
		&rating.Comment,
		&rating.PhotoRefs,
		&rating.IsVerified,
		&rating.ReplyText,
		&rating.RepliedAt,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
