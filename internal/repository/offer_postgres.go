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

type OfferRepo struct {
	db database.DB
}

func NewOfferRepository(db database.DB) *OfferRepo {
	return &OfferRepo{
		db: db,
	}
}

func (r *OfferRepo) GetByID(ctx context.Context, id int64) (*domain.OfferRecord, error) {
	query := `
		SELECT id, problem_report_id, provider_id, total_amount, is_approved, created_at, updated_at
		FROM offer_records
		WHERE id = $1
	`

	var offer domain.OfferRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offer.ID,
		&offer.ProblemReportID,
		&offer.ProviderID,
		&offer.TotalAmount,
		&offer.IsApproved,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("смета", id)
		}
		return nil, fmt.Errorf("ошибка получения сметы: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}
	offer.Items = items

	return &offer, nil
}

func (r *OfferRepo) getItems(ctx context.Context, offerID int64) ([]domain.OfferLineItem, error) {
	query := `
		SELECT id, offer_id, description, quantity, unit_price
		FROM offer_line_items
		WHERE offer_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, offerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения позиций сметы: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OfferLineItem, 0)
	for rows.Next() {
		var item domain.OfferLineItem
		if err := rows.Scan(
			&item.ID,
			&item.OfferID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования позиции сметы: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return items, nil
}
