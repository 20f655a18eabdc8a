package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/icco/gamelog/models"
	"gorm.io/gorm"
)

// RunMigrations creates the schema for the game collection.
func RunMigrations(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	enableSQLiteOptimizations(ctx, db, logger)

	if err := db.WithContext(ctx).AutoMigrate(&models.Game{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := createAdditionalIndexes(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to create additional indexes: %w", err)
	}

	return nil
}

// enableSQLiteOptimizations applies pragmas suited to an in-memory database.
// Failures are logged and ignored since none of them affect correctness.
func enableSQLiteOptimizations(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	optimizations := []string{
		"PRAGMA synchronous=OFF",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}

	for _, pragma := range optimizations {
		if err := db.WithContext(ctx).Exec(pragma).Error; err != nil {
			logger.WarnContext(ctx, "Failed to execute pragma", slog.String("pragma", pragma), slog.Any("error", err))
		} else {
			logger.DebugContext(ctx, "Executed pragma", slog.String("pragma", pragma))
		}
	}
}

// createAdditionalIndexes creates composite indexes for the status queries
// the stats and library views run.
func createAdditionalIndexes(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	additionalIndexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_games_status_genre ON games(status, genre)",
		"CREATE INDEX IF NOT EXISTS idx_games_status_platform ON games(status, platform)",
	}

	for _, indexSQL := range additionalIndexes {
		if err := db.WithContext(ctx).Exec(indexSQL).Error; err != nil {
			return fmt.Errorf("failed to execute %q: %w", indexSQL, err)
		}
		logger.DebugContext(ctx, "Created index", slog.String("sql", indexSQL))
	}

	return nil
}
