package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/domain/workflow"
)

// RedemptionService manages the reward redemption lifecycle
type RedemptionService interface {
	Request(ctx context.Context, userID, rewardID string) (*entity.Redemption, error)
	Get(ctx context.Context, id string) (*entity.Redemption, error)
	List(ctx context.Context) ([]*entity.Redemption, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Redemption, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Redemption, error)
	Approve(ctx context.Context, id, comment string) (*entity.Redemption, error)
	Reject(ctx context.Context, id, comment string) (*entity.Redemption, error)
	Fulfill(ctx context.Context, id string) (*entity.Redemption, error)
}

type redemptionServiceImpl struct {
	userRepo         port.UserRepository
	rewardRepo       port.RewardRepository
	redemptionRepo   port.RedemptionRepository
	transactionRepo  port.TransactionRepository
	notificationRepo port.NotificationRepository
	activityRepo     port.ActivityRepository
	txManager        port.TransactionManager
	logger           Logger
}

// NewRedemptionService creates a new RedemptionService
func NewRedemptionService(
	userRepo port.UserRepository,
	rewardRepo port.RewardRepository,
	redemptionRepo port.RedemptionRepository,
	transactionRepo port.TransactionRepository,
	notificationRepo port.NotificationRepository,
	activityRepo port.ActivityRepository,
	txManager port.TransactionManager,
	logger Logger,
) RedemptionService {
	return &redemptionServiceImpl{
		userRepo:         userRepo,
		rewardRepo:       rewardRepo,
		redemptionRepo:   redemptionRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Request opens a pending redemption against an available reward. The
// reward's cost is snapshotted on the redemption; credits only move when
// the request is approved.
func (s *redemptionServiceImpl) Request(ctx context.Context, userID, rewardID string) (*entity.Redemption, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	reward, err := s.rewardRepo.GetByID(ctx, rewardID)
	if err != nil {
		return nil, fmt.Errorf("get reward: %w", err)
	}
	if reward == nil {
		return nil, fmt.Errorf("%w: reward %s", ErrNotFound, rewardID)
	}
	if !reward.Available {
		return nil, fmt.Errorf("%w: %s", ErrRewardUnavailable, reward.Title)
	}
	if user.CreditBalance < reward.CreditsCost {
		return nil, fmt.Errorf("%w: have %d, need %d",
			ErrInsufficientCredits, user.CreditBalance, reward.CreditsCost)
	}

	now := time.Now()
	redemption := &entity.Redemption{
		ID:          uuid.NewString(),
		UserID:      userID,
		RewardID:    rewardID,
		CreditsCost: reward.CreditsCost,
		Status:      entity.RedemptionStatusPending,
		RequestDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.redemptionRepo.Create(txCtx, redemption); err != nil {
			return fmt.Errorf("create redemption: %w", err)
		}

		activity := &entity.Activity{
			ID:          uuid.NewString(),
			UserID:      userID,
			Type:        entity.ActivityRedemptionRequested,
			Description: fmt.Sprintf("Requested %q for %d credits", reward.Title, reward.CreditsCost),
			Timestamp:   now,
		}
		if err := s.activityRepo.Create(txCtx, activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		if user.ManagerID != "" {
			notification := &entity.Notification{
				ID:        uuid.NewString(),
				UserID:    user.ManagerID,
				Title:     "Redemption pending review",
				Message:   fmt.Sprintf("%s requested %q (%d credits)", user.Name, reward.Title, reward.CreditsCost),
				Type:      entity.NotificationInfo,
				Timestamp: now,
			}
			if err := s.notificationRepo.Create(txCtx, notification); err != nil {
				return fmt.Errorf("create notification: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Failed to request redemption", "error", err, "user_id", userID, "reward_id", rewardID)
		return nil, err
	}

	s.logger.Info("Redemption requested",
		"id", redemption.ID, "user_id", userID, "reward_id", rewardID, "cost", redemption.CreditsCost)
	return redemption, nil
}

// Get retrieves a redemption by ID
func (s *redemptionServiceImpl) Get(ctx context.Context, id string) (*entity.Redemption, error) {
	redemption, err := s.redemptionRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get redemption", "error", err, "id", id)
		return nil, err
	}
	if redemption == nil {
		return nil, fmt.Errorf("%w: redemption %s", ErrNotFound, id)
	}
	return redemption, nil
}

// List retrieves all redemptions
func (s *redemptionServiceImpl) List(ctx context.Context) ([]*entity.Redemption, error) {
	return s.redemptionRepo.List(ctx)
}

// ListByUser retrieves a user's redemptions
func (s *redemptionServiceImpl) ListByUser(ctx context.Context, userID string) ([]*entity.Redemption, error) {
	return s.redemptionRepo.ListByUser(ctx, userID)
}

// ListByStatus retrieves redemptions in a given state
func (s *redemptionServiceImpl) ListByStatus(ctx context.Context, status string) ([]*entity.Redemption, error) {
	if !workflow.State(status).IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.redemptionRepo.ListByStatus(ctx, status)
}

// Approve moves a pending redemption to approved and deducts the snapshot
// cost from the user's balance. The balance is re-checked at decision time
// so concurrent requests can never drive it negative.
func (s *redemptionServiceImpl) Approve(ctx context.Context, id, comment string) (*entity.Redemption, error) {
	redemption, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := workflow.NewRedemptionMachine(workflow.State(redemption.Status))
	if err := machine.Fire(ctx, workflow.TriggerApprove); err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			return nil, fmt.Errorf("%w: redemption %s is %s", ErrAlreadyDecided, id, redemption.Status)
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, redemption.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, redemption.UserID)
	}
	if user.CreditBalance < redemption.CreditsCost {
		return nil, fmt.Errorf("%w: have %d, need %d",
			ErrInsufficientCredits, user.CreditBalance, redemption.CreditsCost)
	}

	now := time.Now()
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.redemptionRepo.UpdateDecision(txCtx, id, entity.RedemptionStatusApproved, comment); err != nil {
			return fmt.Errorf("update decision: %w", err)
		}

		if err := s.userRepo.AdjustBalance(txCtx, user.ID, -redemption.CreditsCost); err != nil {
			return fmt.Errorf("adjust balance: %w", err)
		}

		transaction := &entity.CreditTransaction{
			ID:           uuid.NewString(),
			UserID:       user.ID,
			Type:         entity.TransactionSpent,
			Amount:       redemption.CreditsCost,
			Description:  fmt.Sprintf("Redemption %s approved", id),
			Timestamp:    now,
			RedemptionID: id,
		}
		if err := s.transactionRepo.Create(txCtx, transaction); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		notification := &entity.Notification{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Title:     "Redemption approved",
			Message:   fmt.Sprintf("Your redemption was approved, %d credits deducted", redemption.CreditsCost),
			Type:      entity.NotificationSuccess,
			Timestamp: now,
		}
		if err := s.notificationRepo.Create(txCtx, notification); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		activity := &entity.Activity{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Type:        entity.ActivityRedemptionApproved,
			Description: fmt.Sprintf("Redemption approved, %d credits spent", redemption.CreditsCost),
			Timestamp:   now,
		}
		if err := s.activityRepo.Create(txCtx, activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Failed to approve redemption", "error", err, "id", id)
		return nil, err
	}

	s.logger.Info("Redemption approved", "id", id, "user_id", user.ID, "cost", redemption.CreditsCost)
	return s.Get(ctx, id)
}

// Reject moves a pending redemption to rejected. No credits move.
func (s *redemptionServiceImpl) Reject(ctx context.Context, id, comment string) (*entity.Redemption, error) {
	redemption, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := workflow.NewRedemptionMachine(workflow.State(redemption.Status))
	if err := machine.Fire(ctx, workflow.TriggerReject); err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			return nil, fmt.Errorf("%w: redemption %s is %s", ErrAlreadyDecided, id, redemption.Status)
		}
		return nil, err
	}

	now := time.Now()
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.redemptionRepo.UpdateDecision(txCtx, id, entity.RedemptionStatusRejected, comment); err != nil {
			return fmt.Errorf("update decision: %w", err)
		}

		message := "Your redemption was declined"
		if comment != "" {
			message = fmt.Sprintf("Your redemption was declined: %s", comment)
		}
		notification := &entity.Notification{
			ID:        uuid.NewString(),
			UserID:    redemption.UserID,
			Title:     "Redemption rejected",
			Message:   message,
			Type:      entity.NotificationWarning,
			Timestamp: now,
		}
		if err := s.notificationRepo.Create(txCtx, notification); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Failed to reject redemption", "error", err, "id", id)
		return nil, err
	}

	s.logger.Info("Redemption rejected", "id", id)
	return s.Get(ctx, id)
}

// Fulfill marks an approved redemption as delivered
func (s *redemptionServiceImpl) Fulfill(ctx context.Context, id string) (*entity.Redemption, error) {
	redemption, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := workflow.NewRedemptionMachine(workflow.State(redemption.Status))
	if err := machine.Fire(ctx, workflow.TriggerFulfill); err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			return nil, fmt.Errorf("%w: redemption %s is %s", ErrAlreadyDecided, id, redemption.Status)
		}
		return nil, err
	}

	if err := s.redemptionRepo.UpdateDecision(ctx, id, entity.RedemptionStatusFulfilled, redemption.ManagerComment); err != nil {
		s.logger.Error("Failed to fulfill redemption", "error", err, "id", id)
		return nil, err
	}

	s.logger.Info("Redemption fulfilled", "id", id)
	return s.Get(ctx, id)
}
