package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/infrastructure/persistence/sqlite"
	"go.uber.org/zap"
)

// ChallengeRepository implements port.ChallengeRepository
type ChallengeRepository struct {
	db     *sqlite.DB
	logger *zap.Logger
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(db *sqlite.DB, logger *zap.Logger) port.ChallengeRepository {
	return &ChallengeRepository{db: db, logger: logger}
}

const challengeColumns = `id, title, description, type, target, metric, reward, start_date, end_date, participants, status`

// Create inserts a new challenge
func (r *ChallengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	participants, err := json.Marshal(challenge.Participants)
	if err != nil {
		return fmt.Errorf("failed to marshal participants: %w", err)
	}

	query := `
		INSERT INTO challenges (id, title, description, type, target, metric, reward, start_date, end_date, participants, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Executor(ctx).ExecContext(ctx, query,
		challenge.ID,
		challenge.Title,
		challenge.Description,
		challenge.Type,
		challenge.Target,
		challenge.Metric,
		challenge.Reward,
		challenge.StartDate,
		challenge.EndDate,
		string(participants),
		challenge.Status,
	)
	if err != nil {
		r.logger.Error("Failed to create challenge", zap.Error(err))
		return fmt.Errorf("failed to create challenge: %w", err)
	}
	return nil
}

// GetByID retrieves a challenge by ID, returning nil when not found
func (r *ChallengeRepository) GetByID(ctx context.Context, id string) (*entity.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = ?`

	challenge, err := scanChallenge(r.db.Executor(ctx).QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get challenge", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	return challenge, nil
}

// List retrieves all challenges
func (r *ChallengeRepository) List(ctx context.Context) ([]*entity.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges ORDER BY start_date, rowid`

	rows, err := r.db.Executor(ctx).QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list challenges", zap.Error(err))
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*entity.Challenge
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, challenge)
	}
	return challenges, rows.Err()
}

func scanChallenge(row rowScanner) (*entity.Challenge, error) {
	var challenge entity.Challenge
	var participants string

	err := row.Scan(
		&challenge.ID,
		&challenge.Title,
		&challenge.Description,
		&challenge.Type,
		&challenge.Target,
		&challenge.Metric,
		&challenge.Reward,
		&challenge.StartDate,
		&challenge.EndDate,
		&participants,
		&challenge.Status,
	)
	if err != nil {
		return nil, err
	}

	if participants != "" {
		if err := json.Unmarshal([]byte(participants), &challenge.Participants); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participants: %w", err)
		}
	}
	return &challenge, nil
}
