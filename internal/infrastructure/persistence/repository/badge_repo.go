package repository

import (
	"context"
	"fmt"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/infrastructure/persistence/sqlite"
	"go.uber.org/zap"
)

// BadgeRepository implements port.BadgeRepository
type BadgeRepository struct {
	db     *sqlite.DB
	logger *zap.Logger
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db *sqlite.DB, logger *zap.Logger) port.BadgeRepository {
	return &BadgeRepository{db: db, logger: logger}
}

// Create inserts a newly earned badge
func (r *BadgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	query := `
		INSERT INTO badges (id, user_id, name, description, rarity, earned_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Executor(ctx).ExecContext(ctx, query,
		badge.ID,
		badge.UserID,
		badge.Name,
		badge.Description,
		badge.Rarity,
		badge.EarnedDate,
	)
	if err != nil {
		r.logger.Error("Failed to create badge", zap.Error(err))
		return fmt.Errorf("failed to create badge: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's badges in the order they were earned
func (r *BadgeRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Badge, error) {
	query := `
		SELECT id, user_id, name, description, rarity, earned_date
		FROM badges
		WHERE user_id = ?
		ORDER BY earned_date, rowid
	`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list badges", zap.Error(err))
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	defer rows.Close()

	var badges []*entity.Badge
	for rows.Next() {
		var b entity.Badge
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.Description, &b.Rarity, &b.EarnedDate); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, &b)
	}
	return badges, rows.Err()
}
