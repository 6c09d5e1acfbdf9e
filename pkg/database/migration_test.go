package database

import (
	"context"
	"errors"
	"io/fs"
	"regexp"
	"testing"
	"testing/fstest"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func migrationColumns() []string {
	return []string{"version", "name", "applied_at"}
}

func testMigrationsFS() fstest.MapFS {
	return fstest.MapFS{
		"0002_offers.sql":      {Data: []byte("CREATE TABLE offers (id BIGINT);")},
		"0001_init.sql":        {Data: []byte("CREATE TABLE reports (id BIGINT);")},
		"README.md":            {Data: []byte("not a migration")},
		"broken.sql":           {Data: []byte("SELECT 1;")},
		"nested/0003_skip.sql": {Data: []byte("SELECT 1;")},
	}
}

func TestRunMigrations_AppliesPendingInVersionOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT version, name, applied_at FROM migrations").
		WillReturnRows(pgxmock.NewRows(migrationColumns()).AddRow("0001", "init", time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE offers (id BIGINT);")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO migrations").
		WithArgs("0002", "offers", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = runMigrations(context.Background(), mock, testMigrationsFS(), zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_FailedMigrationRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT version, name, applied_at FROM migrations").
		WillReturnRows(pgxmock.NewRows(migrationColumns()))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE reports (id BIGINT);")).
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err = runMigrations(context.Background(), mock, testMigrationsFS(), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0001_init.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMigrations_SkipsMalformedNames(t *testing.T) {
	files, err := listMigrations(testMigrationsFS(), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "0001", files[0].version)
	assert.Equal(t, "init", files[0].name)
	assert.Equal(t, "0002", files[1].version)
}

func TestEmbeddedMigrations_DeclareRatingUniqueness(t *testing.T) {
	sub, err := fs.Sub(migrationFS, "migrations")
	require.NoError(t, err)

	files, err := listMigrations(sub, zap.NewNop())
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var found bool
	for _, f := range files {
		content, err := fs.ReadFile(sub, f.path)
		require.NoError(t, err)
		if regexp.MustCompile(`UNIQUE \(problem_report_id\)`).Match(content) {
			found = true
		}
	}
	assert.True(t, found, "ratings.problem_report_id must be unique at the storage layer")
}
