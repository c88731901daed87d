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

// TransactionRepository implements port.TransactionRepository
type TransactionRepository struct {
	db     *sqlite.DB
	logger *zap.Logger
}

// NewTransactionRepository creates a new credit transaction repository
func NewTransactionRepository(db *sqlite.DB, logger *zap.Logger) port.TransactionRepository {
	return &TransactionRepository{db: db, logger: logger}
}

const transactionColumns = `id, user_id, type, amount, description, timestamp, automation_id, redemption_id`

// Create appends a ledger entry. Amount must already be a positive magnitude.
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.CreditTransaction) error {
	if transaction.Amount <= 0 {
		return fmt.Errorf("transaction amount must be positive, got %d", transaction.Amount)
	}

	query := `
		INSERT INTO credit_transactions (id, user_id, type, amount, description, timestamp, automation_id, redemption_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Executor(ctx).ExecContext(ctx, query,
		transaction.ID,
		transaction.UserID,
		transaction.Type,
		transaction.Amount,
		transaction.Description,
		transaction.Timestamp,
		transaction.AutomationID,
		transaction.RedemptionID,
	)
	if err != nil {
		r.logger.Error("Failed to create transaction", zap.Error(err))
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// List retrieves the full ledger in chronological order
func (r *TransactionRepository) List(ctx context.Context) ([]*entity.CreditTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM credit_transactions ORDER BY timestamp, rowid`
	return r.queryTransactions(ctx, query)
}

// ListByUser retrieves a user's ledger entries in chronological order
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.CreditTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM credit_transactions WHERE user_id = ? ORDER BY timestamp, rowid`
	return r.queryTransactions(ctx, query, userID)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]*entity.CreditTransaction, error) {
	rows, err := r.db.Executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*entity.CreditTransaction
	for rows.Next() {
		var t entity.CreditTransaction
		var automationID, redemptionID sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Type,
			&t.Amount,
			&t.Description,
			&t.Timestamp,
			&automationID,
			&redemptionID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		t.AutomationID = automationID.String
		t.RedemptionID = redemptionID.String
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}
