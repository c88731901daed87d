package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/infrastructure/persistence/sqlite"
	"github.com/garyjia/timebank/pkg/database"
)

func setupDB(t *testing.T) *sqlite.DB {
	t.Helper()

	logger := zap.NewNop()
	sqlDB, err := database.Open(database.Config{
		Path:            filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.NewMigrator(sqlDB, logger).Run())
	return sqlite.NewDB(sqlDB, logger)
}

func seedUser(t *testing.T, db *sqlite.DB, id string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:         id,
		Name:       "Test User " + id,
		Email:      id + "@example.com",
		Role:       entity.RoleEmployee,
		Department: "Engineering",
		Level:      1,
		JoinDate:   time.Now().AddDate(-1, 0, 0),
	}
	require.NoError(t, NewUserRepository(db, zap.NewNop()).Create(context.Background(), user))
	return user
}

func TestUserRepository_RoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db, zap.NewNop())
	ctx := context.Background()

	created := seedUser(t, db, "u1")

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, 0, got.CreditBalance)
	assert.Equal(t, 1, got.Level)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserRepository_AdjustBalanceAndLevel(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db, zap.NewNop())
	ctx := context.Background()

	seedUser(t, db, "u1")

	require.NoError(t, repo.AdjustBalance(ctx, "u1", 120))
	require.NoError(t, repo.AdjustBalance(ctx, "u1", -20))
	require.NoError(t, repo.UpdateLevel(ctx, "u1", 2))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.CreditBalance)
	assert.Equal(t, 2, got.Level)
}

func TestAutomationRepository_RoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewAutomationRepository(db, zap.NewNop())
	ctx := context.Background()

	seedUser(t, db, "u1")

	automation := &entity.Automation{
		ID:                    "a1",
		UserID:                "u1",
		Title:                 "Log rotation bot",
		Category:              "Monitoring",
		TimeSavedPerExecution: 30,
		Frequency:             entity.FrequencyDaily,
		TotalExecutions:       10,
		CreditsEarned:         50,
		Status:                entity.AutomationStatusPending,
		SubmissionDate:        time.Now(),
		Tags:                  []string{"ops", "cross-team"},
	}
	require.NoError(t, repo.Create(ctx, automation))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, automation.Title, got.Title)
	assert.Equal(t, []string{"ops", "cross-team"}, got.Tags)
	assert.Nil(t, got.ApprovalDate)

	pending, err := repo.ListByStatus(ctx, entity.AutomationStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	require.NoError(t, repo.UpdateDecision(ctx, "a1", entity.AutomationStatusApproved))

	got, err = repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entity.AutomationStatusApproved, got.Status)
	assert.NotNil(t, got.ApprovalDate)

	err = repo.UpdateDecision(ctx, "missing", entity.AutomationStatusApproved)
	assert.Error(t, err)
}

func TestTransactionRepository_RejectsNonPositiveAmount(t *testing.T) {
	db := setupDB(t)
	repo := NewTransactionRepository(db, zap.NewNop())
	ctx := context.Background()

	seedUser(t, db, "u1")

	err := repo.Create(ctx, &entity.CreditTransaction{
		ID:        "t1",
		UserID:    "u1",
		Type:      entity.TransactionEarned,
		Amount:    0,
		Timestamp: time.Now(),
	})
	assert.Error(t, err)
}

func TestWithTransaction_RollsBackAllWrites(t *testing.T) {
	db := setupDB(t)
	userRepo := NewUserRepository(db, zap.NewNop())
	transactionRepo := NewTransactionRepository(db, zap.NewNop())
	ctx := context.Background()

	seedUser(t, db, "u1")

	boom := errors.New("boom")
	err := db.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := userRepo.AdjustBalance(txCtx, "u1", 50); err != nil {
			return err
		}
		if err := transactionRepo.Create(txCtx, &entity.CreditTransaction{
			ID:        "t1",
			UserID:    "u1",
			Type:      entity.TransactionEarned,
			Amount:    50,
			Timestamp: time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	user, err := userRepo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, user.CreditBalance, "balance change must roll back with the failed transaction")

	transactions, err := transactionRepo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestChallengeRepository_ParticipantsRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewChallengeRepository(db, zap.NewNop())
	ctx := context.Background()

	challenge := &entity.Challenge{
		ID:           "c1",
		Title:        "Automation sprint",
		Type:         entity.ChallengeTeam,
		Target:       5,
		Metric:       entity.MetricAutomations,
		Reward:       50,
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 1, 0),
		Participants: []string{"u1", "u2"},
		Status:       entity.ChallengeActive,
	}
	require.NoError(t, repo.Create(ctx, challenge))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"u1", "u2"}, got.Participants)
}
