// Package store keeps the current game collection in an SQLite database
// opened through GORM. With the default DSN the database lives in memory and
// is re-seeded on every start.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/icco/gamelog/lib/db"
	"github.com/icco/gamelog/lib/library"
	"github.com/icco/gamelog/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no game has the requested id.
var ErrNotFound = errors.New("game not found")

type Store struct {
	db     *gorm.DB
	logger *slog.Logger

	// mu serializes writers so each change applies to the latest snapshot.
	mu sync.Mutex
}

// Open connects to dsn and runs migrations.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: db.NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// A memory database disappears with its last connection, so keep exactly
	// one open for the life of the store.
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.RunMigrations(ctx, gormDB, logger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: gormDB, logger: logger}, nil
}

// DB exposes the underlying handle for health checks.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Seed replaces the stored collection with games, remembering their order.
func (s *Store) Seed(ctx context.Context, games []models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]models.Game, len(games))
	copy(rows, games)
	for i := range rows {
		rows[i].Position = i
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Game{}).Error; err != nil {
			return fmt.Errorf("failed to clear games: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert games: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Seeded game library", slog.Int("count", len(rows)))
	return nil
}

// Games returns a snapshot of the collection in seed order.
func (s *Store) Games(ctx context.Context) ([]models.Game, error) {
	return snapshot(s.db.WithContext(ctx))
}

// Game returns the game with the given id, or ErrNotFound.
func (s *Store) Game(ctx context.Context, id int64) (models.Game, error) {
	var g models.Game
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Game{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return models.Game{}, fmt.Errorf("failed to get game %d: %w", id, err)
	}
	g.Position = 0
	return g, nil
}

// SetStatus replaces the status of one game and returns the new collection
// along with the updated record.
func (s *Store) SetStatus(ctx context.Context, id int64, status models.Status) ([]models.Game, models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		games   []models.Game
		updated models.Game
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := snapshot(tx)
		if err != nil {
			return err
		}

		next, ok := library.SetStatus(current, id, status)
		if !ok {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}

		if err := tx.Model(&models.Game{}).Where("id = ?", id).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update status of game %d: %w", id, err)
		}

		games = next
		updated, _ = library.Find(next, id)
		return nil
	})
	if err != nil {
		return nil, models.Game{}, err
	}

	s.logger.InfoContext(ctx, "Updated game status",
		slog.Int64("id", id),
		slog.String("status", status.String()))
	return games, updated, nil
}

// Wishlist marks candidate as Wishlisted, adding it to the collection when
// it is not there yet.
func (s *Store) Wishlist(ctx context.Context, candidate models.Game) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var games []models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := snapshot(tx)
		if err != nil {
			return err
		}

		next := library.Wishlist(current, candidate)
		if len(next) == len(current) {
			err = tx.Model(&models.Game{}).Where("id = ?", candidate.ID).Update("status", models.StatusWishlisted).Error
		} else {
			added := next[len(next)-1]
			added.Position = len(current)
			err = tx.Create(&added).Error
		}
		if err != nil {
			return fmt.Errorf("failed to wishlist game %d: %w", candidate.ID, err)
		}

		games = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Wishlisted game", slog.Int64("id", candidate.ID))
	return games, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// snapshot loads the collection in seed order. Position is a storage detail
// and is cleared on the way out.
func snapshot(tx *gorm.DB) ([]models.Game, error) {
	var games []models.Game
	if err := tx.Order("position").Order("id").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	for i := range games {
		games[i].Position = 0
	}
	return games, nil
}
