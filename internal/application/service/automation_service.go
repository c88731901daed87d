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
	"github.com/garyjia/timebank/internal/scoring"
	"github.com/garyjia/timebank/pkg/utils"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// SubmitAutomationInput carries the fields of a new submission
type SubmitAutomationInput struct {
	UserID                string   `json:"user_id"`
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	Category              string   `json:"category"`
	TimeSavedPerExecution int      `json:"time_saved_per_execution"`
	Frequency             string   `json:"frequency"`
	TotalExecutions       int      `json:"total_executions"`
	Tags                  []string `json:"tags"`
}

// AutomationService manages the automation submission lifecycle
type AutomationService interface {
	Submit(ctx context.Context, input SubmitAutomationInput) (*entity.Automation, error)
	Get(ctx context.Context, id string) (*entity.Automation, error)
	List(ctx context.Context) ([]*entity.Automation, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Automation, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Automation, error)
	Approve(ctx context.Context, id string) (*entity.Automation, error)
	Reject(ctx context.Context, id, reason string) (*entity.Automation, error)
}

type automationServiceImpl struct {
	userRepo         port.UserRepository
	automationRepo   port.AutomationRepository
	transactionRepo  port.TransactionRepository
	notificationRepo port.NotificationRepository
	activityRepo     port.ActivityRepository
	txManager        port.TransactionManager
	logger           Logger
}

// NewAutomationService creates a new AutomationService
func NewAutomationService(
	userRepo port.UserRepository,
	automationRepo port.AutomationRepository,
	transactionRepo port.TransactionRepository,
	notificationRepo port.NotificationRepository,
	activityRepo port.ActivityRepository,
	txManager port.TransactionManager,
	logger Logger,
) AutomationService {
	return &automationServiceImpl{
		userRepo:         userRepo,
		automationRepo:   automationRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Submit registers a new pending automation. Credits are computed once
// from the documented time savings and frozen on the record.
func (s *automationServiceImpl) Submit(ctx context.Context, input SubmitAutomationInput) (*entity.Automation, error) {
	if err := s.validateSubmission(input); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, input.UserID)
	}

	now := time.Now()
	automation := &entity.Automation{
		ID:                    uuid.NewString(),
		UserID:                input.UserID,
		Title:                 utils.SanitizeString(input.Title),
		Description:           utils.SanitizeString(input.Description),
		Category:              input.Category,
		TimeSavedPerExecution: input.TimeSavedPerExecution,
		Frequency:             input.Frequency,
		TotalExecutions:       input.TotalExecutions,
		Status:                entity.AutomationStatusPending,
		SubmissionDate:        now,
		Tags:                  input.Tags,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	automation.CreditsEarned = scoring.CreditsFromTimeSaved(automation.TotalTimeSaved())

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.automationRepo.Create(txCtx, automation); err != nil {
			return fmt.Errorf("create automation: %w", err)
		}

		activity := &entity.Activity{
			ID:          uuid.NewString(),
			UserID:      owner.ID,
			Type:        entity.ActivityAutomationSubmitted,
			Description: fmt.Sprintf("Submitted automation %q", automation.Title),
			Timestamp:   now,
		}
		if err := s.activityRepo.Create(txCtx, activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		// Let the reviewer know there is something in their queue
		if owner.ManagerID != "" {
			notification := &entity.Notification{
				ID:        uuid.NewString(),
				UserID:    owner.ManagerID,
				Title:     "Automation pending review",
				Message:   fmt.Sprintf("%s submitted %q for review", owner.Name, automation.Title),
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
		s.logger.Error("Failed to submit automation", "error", err, "user_id", input.UserID)
		return nil, err
	}

	s.logger.Info("Automation submitted",
		"id", automation.ID, "user_id", automation.UserID, "credits", automation.CreditsEarned)
	return automation, nil
}

// Get retrieves an automation by ID
func (s *automationServiceImpl) Get(ctx context.Context, id string) (*entity.Automation, error) {
	automation, err := s.automationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get automation", "error", err, "id", id)
		return nil, err
	}
	if automation == nil {
		return nil, fmt.Errorf("%w: automation %s", ErrNotFound, id)
	}
	return automation, nil
}

// List retrieves all automations
func (s *automationServiceImpl) List(ctx context.Context) ([]*entity.Automation, error) {
	return s.automationRepo.List(ctx)
}

// ListByUser retrieves a user's automations
func (s *automationServiceImpl) ListByUser(ctx context.Context, userID string) ([]*entity.Automation, error) {
	return s.automationRepo.ListByUser(ctx, userID)
}

// ListByStatus retrieves automations in a given review state
func (s *automationServiceImpl) ListByStatus(ctx context.Context, status string) ([]*entity.Automation, error) {
	if !workflow.State(status).IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.automationRepo.ListByStatus(ctx, status)
}

// Approve moves a pending automation to approved and materializes its
// credits on the owner's balance. A repeated approve or an approve on a
// rejected record fails without touching the balance.
func (s *automationServiceImpl) Approve(ctx context.Context, id string) (*entity.Automation, error) {
	automation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := workflow.NewAutomationMachine(workflow.State(automation.Status))
	if err := machine.Fire(ctx, workflow.TriggerApprove); err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			return nil, fmt.Errorf("%w: automation %s is %s", ErrAlreadyDecided, id, automation.Status)
		}
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, automation.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, automation.UserID)
	}

	now := time.Now()
	credits := automation.CreditsEarned
	newBalance := owner.CreditBalance + credits
	newLevel := scoring.LevelForBalance(newBalance)

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.automationRepo.UpdateDecision(txCtx, id, entity.AutomationStatusApproved); err != nil {
			return fmt.Errorf("update decision: %w", err)
		}

		if credits > 0 {
			if err := s.userRepo.AdjustBalance(txCtx, owner.ID, credits); err != nil {
				return fmt.Errorf("adjust balance: %w", err)
			}

			transaction := &entity.CreditTransaction{
				ID:           uuid.NewString(),
				UserID:       owner.ID,
				Type:         entity.TransactionEarned,
				Amount:       credits,
				Description:  fmt.Sprintf("Credits for %q", automation.Title),
				Timestamp:    now,
				AutomationID: automation.ID,
			}
			if err := s.transactionRepo.Create(txCtx, transaction); err != nil {
				return fmt.Errorf("create transaction: %w", err)
			}
		}

		notification := &entity.Notification{
			ID:        uuid.NewString(),
			UserID:    owner.ID,
			Title:     "Automation approved",
			Message:   fmt.Sprintf("%q was approved for %d credits", automation.Title, credits),
			Type:      entity.NotificationSuccess,
			Timestamp: now,
		}
		if err := s.notificationRepo.Create(txCtx, notification); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		activity := &entity.Activity{
			ID:          uuid.NewString(),
			UserID:      owner.ID,
			Type:        entity.ActivityAutomationApproved,
			Description: fmt.Sprintf("%q approved, %d credits earned", automation.Title, credits),
			Timestamp:   now,
		}
		if err := s.activityRepo.Create(txCtx, activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		if newLevel.Level > owner.Level {
			if err := s.userRepo.UpdateLevel(txCtx, owner.ID, newLevel.Level); err != nil {
				return fmt.Errorf("update level: %w", err)
			}
			levelUp := &entity.Notification{
				ID:        uuid.NewString(),
				UserID:    owner.ID,
				Title:     "Level up",
				Message:   fmt.Sprintf("You reached level %d: %s", newLevel.Level, newLevel.Name),
				Type:      entity.NotificationAchievement,
				Timestamp: now,
			}
			if err := s.notificationRepo.Create(txCtx, levelUp); err != nil {
				return fmt.Errorf("create level notification: %w", err)
			}
			levelActivity := &entity.Activity{
				ID:          uuid.NewString(),
				UserID:      owner.ID,
				Type:        entity.ActivityLevelUp,
				Description: fmt.Sprintf("Reached level %d (%s)", newLevel.Level, newLevel.Name),
				Timestamp:   now,
			}
			if err := s.activityRepo.Create(txCtx, levelActivity); err != nil {
				return fmt.Errorf("create level activity: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Failed to approve automation", "error", err, "id", id)
		return nil, err
	}

	s.logger.Info("Automation approved", "id", id, "user_id", owner.ID, "credits", credits)
	return s.Get(ctx, id)
}

// Reject moves a pending automation to rejected. No credits move.
func (s *automationServiceImpl) Reject(ctx context.Context, id, reason string) (*entity.Automation, error) {
	automation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := workflow.NewAutomationMachine(workflow.State(automation.Status))
	if err := machine.Fire(ctx, workflow.TriggerReject); err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			return nil, fmt.Errorf("%w: automation %s is %s", ErrAlreadyDecided, id, automation.Status)
		}
		return nil, err
	}

	now := time.Now()
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.automationRepo.UpdateDecision(txCtx, id, entity.AutomationStatusRejected); err != nil {
			return fmt.Errorf("update decision: %w", err)
		}

		message := fmt.Sprintf("%q was not approved", automation.Title)
		if reason != "" {
			message = fmt.Sprintf("%q was not approved: %s", automation.Title, reason)
		}
		notification := &entity.Notification{
			ID:        uuid.NewString(),
			UserID:    automation.UserID,
			Title:     "Automation rejected",
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
		s.logger.Error("Failed to reject automation", "error", err, "id", id)
		return nil, err
	}

	s.logger.Info("Automation rejected", "id", id)
	return s.Get(ctx, id)
}

func (s *automationServiceImpl) validateSubmission(input SubmitAutomationInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if err := utils.ValidateTimeSaved(input.TimeSavedPerExecution); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if input.TotalExecutions < 0 {
		return fmt.Errorf("%w: total executions must not be negative", ErrValidation)
	}
	switch input.Frequency {
	case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly:
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrValidation, input.Frequency)
	}
	for _, category := range entity.AutomationCategories {
		if input.Category == category {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
}
