package repository

import (
	"context"
	"fmt"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/infrastructure/persistence/sqlite"
	"go.uber.org/zap"
)

// ActivityRepository implements port.ActivityRepository
type ActivityRepository struct {
	db     *sqlite.DB
	logger *zap.Logger
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sqlite.DB, logger *zap.Logger) port.ActivityRepository {
	return &ActivityRepository{db: db, logger: logger}
}

// Create appends an activity feed entry
func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, type, description, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Executor(ctx).ExecContext(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Type,
		activity.Description,
		activity.Timestamp,
	)
	if err != nil {
		r.logger.Error("Failed to create activity", zap.Error(err))
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's recent activity, newest first
func (r *ActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, user_id, type, description, timestamp
		FROM activities
		WHERE user_id = ?
		ORDER BY timestamp DESC, rowid DESC
		LIMIT ?
	`
	return r.queryActivities(ctx, query, userID, limit)
}

// ListRecent retrieves the most recent activity across all users
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, user_id, type, description, timestamp
		FROM activities
		ORDER BY timestamp DESC, rowid DESC
		LIMIT ?
	`
	return r.queryActivities(ctx, query, limit)
}

func (r *ActivityRepository) queryActivities(ctx context.Context, query string, args ...interface{}) ([]*entity.Activity, error) {
	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list activities", zap.Error(err))
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Description, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &a)
	}
	return activities, rows.Err()
}
