package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type MigrationRecord struct {
	Version   string
	Name      string
	AppliedAt time.Time
}

type migrationFile struct {
	version string
	name    string
	path    string
}

// RunMigrations applies the embedded SQL migrations that are not yet recorded
// in the migrations table. Each file runs in its own transaction.
func RunMigrations(ctx context.Context, db DB, logger *zap.Logger) error {
	sub, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("ошибка при чтении встроенных миграций: %w", err)
	}
	return runMigrations(ctx, db, sub, logger)
}

func runMigrations(ctx context.Context, db DB, fsys fs.FS, logger *zap.Logger) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("ошибка при создании таблицы миграций: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	files, err := listMigrations(fsys, logger)
	if err != nil {
		return err
	}

	for _, file := range files {
		if applied[file.version] {
			logger.Debug("миграция уже выполнена", zap.String("version", file.version), zap.String("name", file.name))
			continue
		}

		content, err := fs.ReadFile(fsys, file.path)
		if err != nil {
			return fmt.Errorf("ошибка при чтении файла миграции %s: %w", file.path, err)
		}

		logger.Info("выполнение миграции", zap.String("version", file.version), zap.String("name", file.name))

		if err := applyMigration(ctx, db, file, string(content)); err != nil {
			return err
		}

		logger.Info("миграция выполнена успешно", zap.String("version", file.version), zap.String("name", file.name))
	}

	return nil
}

func appliedVersions(ctx context.Context, db DB) (map[string]bool, error) {
	rows, err := db.Query(ctx, "SELECT version, name, applied_at FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка выполненных миграций: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var record MigrationRecord
		if err := rows.Scan(&record.Version, &record.Name, &record.AppliedAt); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании записи о миграции: %w", err)
		}
		applied[record.Version] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов запроса: %w", err)
	}

	return applied, nil
}

func listMigrations(fsys fs.FS, logger *zap.Logger) ([]migrationFile, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении директории миграций: %w", err)
	}

	var files []migrationFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		parts := strings.SplitN(entry.Name(), "_", 2)
		if len(parts) != 2 {
			logger.Warn("неверный формат имени файла миграции", zap.String("file", entry.Name()))
			continue
		}

		files = append(files, migrationFile{
			version: parts[0],
			name:    strings.TrimSuffix(parts[1], ".sql"),
			path:    path.Clean(entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].version < files[j].version })

	return files, nil
}

func applyMigration(ctx context.Context, db DB, file migrationFile, content string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, content); err != nil {
		return fmt.Errorf("ошибка при выполнении миграции %s: %w", file.path, err)
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO migrations (version, name, applied_at) VALUES ($1, $2, $3)",
		file.version, file.name, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("ошибка при записи информации о выполненной миграции: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return nil
}
