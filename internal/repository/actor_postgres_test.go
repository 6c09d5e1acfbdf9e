package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reputation/internal/domain"
	"reputation/pkg/apperrors"
)

func TestActorRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewActorRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM actors WHERE id = \\$1").
		WithArgs(int64(200)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "community_id", "full_name", "role", "is_active", "created_at", "updated_at"}).
			AddRow(int64(200), int64(1), "Ирина Петрова", domain.ActorRoleAdministrator, true, fixedTime, fixedTime))

	actor, err := repo.GetByID(context.Background(), 200)
	require.NoError(t, err)
	assert.Equal(t, int64(1), actor.CommunityID)
	assert.Equal(t, domain.ActorRoleAdministrator, actor.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActorRepo_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewActorRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM actors").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActorRepo_GetByID_DatabaseError(t *testing.T) {
	mock := newMock(t)
	repo := NewActorRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM actors").
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}
