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

// AutomationRepository implements port.AutomationRepository
type AutomationRepository struct {
	db     *sqlite.DB
	logger *zap.Logger
}

// NewAutomationRepository creates a new automation repository
func NewAutomationRepository(db *sqlite.DB, logger *zap.Logger) port.AutomationRepository {
	return &AutomationRepository{db: db, logger: logger}
}

const automationColumns = `id, user_id, title, description, category, time_saved_per_execution,
	frequency, total_executions, credits_earned, status, submission_date, approval_date, tags,
	created_at, updated_at`

// Create inserts a new automation submission
func (r *AutomationRepository) Create(ctx context.Context, automation *entity.Automation) error {
	tags, err := json.Marshal(automation.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	query := `
		INSERT INTO automations (id, user_id, title, description, category, time_saved_per_execution,
			frequency, total_executions, credits_earned, status, submission_date, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Executor(ctx).ExecContext(ctx, query,
		automation.ID,
		automation.UserID,
		automation.Title,
		automation.Description,
		automation.Category,
		automation.TimeSavedPerExecution,
		automation.Frequency,
		automation.TotalExecutions,
		automation.CreditsEarned,
		automation.Status,
		automation.SubmissionDate,
		string(tags),
	)
	if err != nil {
		r.logger.Error("Failed to create automation", zap.Error(err))
		return fmt.Errorf("failed to create automation: %w", err)
	}
	return nil
}

// GetByID retrieves an automation by ID, returning nil when not found
func (r *AutomationRepository) GetByID(ctx context.Context, id string) (*entity.Automation, error) {
	query := `SELECT ` + automationColumns + ` FROM automations WHERE id = ?`

	automation, err := scanAutomation(r.db.Executor(ctx).QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get automation", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get automation: %w", err)
	}
	return automation, nil
}

// List retrieves all automations in submission order
func (r *AutomationRepository) List(ctx context.Context) ([]*entity.Automation, error) {
	query := `SELECT ` + automationColumns + ` FROM automations ORDER BY submission_date, rowid`
	return r.queryAutomations(ctx, query)
}

// ListByUser retrieves a user's automations in submission order
func (r *AutomationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Automation, error) {
	query := `SELECT ` + automationColumns + ` FROM automations WHERE user_id = ? ORDER BY submission_date, rowid`
	return r.queryAutomations(ctx, query, userID)
}

// ListByStatus retrieves automations with the given status
func (r *AutomationRepository) ListByStatus(ctx context.Context, status string) ([]*entity.Automation, error) {
	query := `SELECT ` + automationColumns + ` FROM automations WHERE status = ? ORDER BY submission_date, rowid`
	return r.queryAutomations(ctx, query, status)
}

// UpdateDecision records the review outcome and stamps the approval date
func (r *AutomationRepository) UpdateDecision(ctx context.Context, id, status string) error {
	query := `
		UPDATE automations
		SET status = ?, approval_date = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.Executor(ctx).ExecContext(ctx, query, status, id)
	if err != nil {
		r.logger.Error("Failed to update automation decision", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update automation decision: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("automation not found: %s", id)
	}
	return nil
}

func (r *AutomationRepository) queryAutomations(ctx context.Context, query string, args ...interface{}) ([]*entity.Automation, error) {
	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list automations", zap.Error(err))
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}
	defer rows.Close()

	var automations []*entity.Automation
	for rows.Next() {
		automation, err := scanAutomation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan automation: %w", err)
		}
		automations = append(automations, automation)
	}
	return automations, rows.Err()
}

func scanAutomation(row rowScanner) (*entity.Automation, error) {
	var automation entity.Automation
	var approvalDate sql.NullTime
	var tags string

	err := row.Scan(
		&automation.ID,
		&automation.UserID,
		&automation.Title,
		&automation.Description,
		&automation.Category,
		&automation.TimeSavedPerExecution,
		&automation.Frequency,
		&automation.TotalExecutions,
		&automation.CreditsEarned,
		&automation.Status,
		&automation.SubmissionDate,
		&approvalDate,
		&tags,
		&automation.CreatedAt,
		&automation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if approvalDate.Valid {
		automation.ApprovalDate = &approvalDate.Time
	}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &automation.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	return &automation, nil
}
