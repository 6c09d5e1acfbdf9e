package testhelpers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"reputation/config"
	"reputation/pkg/database"
)

const postgresImage = "postgres:16-alpine"

// TestDB is a Postgres container shared by all integration tests of a run,
// with migrations applied.
type TestDB struct {
	Container testcontainers.Container
	Pool      *pgxpool.Pool
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("интеграционный тест пропущен в режиме -short (нужен Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("не удалось поднять тестовую БД: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "reputation_test",
			"POSTGRES_USER":     "reputation",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка запуска контейнера: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения хоста контейнера: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("ошибка получения порта контейнера: %w", err)
	}

	pool, err := database.NewPostgresDB(ctx, config.PostgresConfig{
		Host:               host,
		Port:               port.Port(),
		Username:           "reputation",
		Password:           "test_password",
		DBName:             "reputation_test",
		SSLMode:            "disable",
		MaxConnections:     20,
		MaxIdleConnections: 2,
		MaxLifetime:        5 * time.Minute,
	})
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(ctx, pool, zap.NewNop()); err != nil {
		pool.Close()
		return nil, err
	}

	return &TestDB{
		Container: container,
		Pool:      pool,
	}, nil
}
