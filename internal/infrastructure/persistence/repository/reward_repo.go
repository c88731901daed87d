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

// RewardRepository implements port.RewardRepository
type RewardRepository struct {
	db     *sqlite.DB
	logger *zap.Logger
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *sqlite.DB, logger *zap.Logger) port.RewardRepository {
	return &RewardRepository{db: db, logger: logger}
}

const rewardColumns = `id, title, description, category, credits_cost, available, terms, popularity, created_at`

// Create inserts a new catalog reward
func (r *RewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	query := `
		INSERT INTO rewards (id, title, description, category, credits_cost, available, terms, popularity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Executor(ctx).ExecContext(ctx, query,
		reward.ID,
		reward.Title,
		reward.Description,
		reward.Category,
		reward.CreditsCost,
		reward.Available,
		reward.Terms,
		reward.Popularity,
	)
	if err != nil {
		r.logger.Error("Failed to create reward", zap.Error(err))
		return fmt.Errorf("failed to create reward: %w", err)
	}
	return nil
}

// GetByID retrieves a reward by ID, returning nil when not found
func (r *RewardRepository) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = ?`

	reward, err := scanReward(r.db.Executor(ctx).QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get reward", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	return reward, nil
}

// List retrieves the full catalog
func (r *RewardRepository) List(ctx context.Context) ([]*entity.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards ORDER BY rowid`
	return r.queryRewards(ctx, query)
}

// ListAvailable retrieves only rewards visible in the catalog
func (r *RewardRepository) ListAvailable(ctx context.Context) ([]*entity.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE available = 1 ORDER BY rowid`
	return r.queryRewards(ctx, query)
}

func (r *RewardRepository) queryRewards(ctx context.Context, query string, args ...interface{}) ([]*entity.Reward, error) {
	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list rewards", zap.Error(err))
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	defer rows.Close()

	var rewards []*entity.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reward: %w", err)
		}
		rewards = append(rewards, reward)
	}
	return rewards, rows.Err()
}

func scanReward(row rowScanner) (*entity.Reward, error) {
	var reward entity.Reward
	err := row.Scan(
		&reward.ID,
		&reward.Title,
		&reward.Description,
		&reward.Category,
		&reward.CreditsCost,
		&reward.Available,
		&reward.Terms,
		&reward.Popularity,
		&reward.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}
