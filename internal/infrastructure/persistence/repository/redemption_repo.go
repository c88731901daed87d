package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/infrastructure/persistence/sqlite"
	"go.uber.org/zap"
)

// RedemptionRepository implements port.RedemptionRepository
type RedemptionRepository struct {
	db     *sqlite.DB
	logger *zap.Logger
}

// NewRedemptionRepository creates a new redemption repository
func NewRedemptionRepository(db *sqlite.DB, logger *zap.Logger) port.RedemptionRepository {
	return &RedemptionRepository{db: db, logger: logger}
}

const redemptionColumns = `id, user_id, reward_id, credits_cost, status, request_date,
	approval_date, manager_comment, created_at, updated_at`

// Create inserts a new redemption request
func (r *RedemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	query := `
		INSERT INTO redemptions (id, user_id, reward_id, credits_cost, status, request_date, manager_comment)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Executor(ctx).ExecContext(ctx, query,
		redemption.ID,
		redemption.UserID,
		redemption.RewardID,
		redemption.CreditsCost,
		redemption.Status,
		redemption.RequestDate,
		redemption.ManagerComment,
	)
	if err != nil {
		r.logger.Error("Failed to create redemption", zap.Error(err))
		return fmt.Errorf("failed to create redemption: %w", err)
	}
	return nil
}

// GetByID retrieves a redemption by ID, returning nil when not found
func (r *RedemptionRepository) GetByID(ctx context.Context, id string) (*entity.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions WHERE id = ?`

	redemption, err := scanRedemption(r.db.Executor(ctx).QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get redemption", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get redemption: %w", err)
	}
	return redemption, nil
}

// List retrieves all redemptions in request order
func (r *RedemptionRepository) List(ctx context.Context) ([]*entity.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions ORDER BY request_date, rowid`
	return r.queryRedemptions(ctx, query)
}

// ListByUser retrieves a user's redemptions
func (r *RedemptionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions WHERE user_id = ? ORDER BY request_date, rowid`
	return r.queryRedemptions(ctx, query, userID)
}

// ListByStatus retrieves redemptions with the given status
func (r *RedemptionRepository) ListByStatus(ctx context.Context, status string) ([]*entity.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions WHERE status = ? ORDER BY request_date, rowid`
	return r.queryRedemptions(ctx, query, status)
}

// UpdateDecision records the review outcome, approval timestamp and comment
func (r *RedemptionRepository) UpdateDecision(ctx context.Context, id, status, managerComment string) error {
	query := `
		UPDATE redemptions
		SET status = ?, approval_date = CURRENT_TIMESTAMP, manager_comment = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.Executor(ctx).ExecContext(ctx, query, status, managerComment, id)
	if err != nil {
		r.logger.Error("Failed to update redemption decision", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update redemption decision: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("redemption not found: %s", id)
	}
	return nil
}

func (r *RedemptionRepository) queryRedemptions(ctx context.Context, query string, args ...interface{}) ([]*entity.Redemption, error) {
	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list redemptions", zap.Error(err))
		return nil, fmt.Errorf("failed to list redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []*entity.Redemption
	for rows.Next() {
		redemption, err := scanRedemption(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan redemption: %w", err)
		}
		redemptions = append(redemptions, redemption)
	}
	return redemptions, rows.Err()
}

func scanRedemption(row rowScanner) (*entity.Redemption, error) {
	var redemption entity.Redemption
	var approvalDate sql.NullTime
	var comment sql.NullString

	err := row.Scan(
		&redemption.ID,
		&redemption.UserID,
		&redemption.RewardID,
		&redemption.CreditsCost,
		&redemption.Status,
		&redemption.RequestDate,
		&approvalDate,
		&comment,
		&redemption.CreatedAt,
		&redemption.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if approvalDate.Valid {
		redemption.ApprovalDate = &approvalDate.Time
	}
	redemption.ManagerComment = comment.String
	return &redemption, nil
}
