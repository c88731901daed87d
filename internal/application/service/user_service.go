package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/scoring"
	"github.com/garyjia/timebank/pkg/utils"
)

// CreateUserInput carries the fields of a new user
type CreateUserInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	ManagerID  string `json:"manager_id"`
}

// Dashboard bundles everything a user's home view needs in one read
type Dashboard struct {
	User          *entity.User                `json:"user"`
	LevelProgress scoring.LevelProgress       `json:"level_progress"`
	CreditScore   scoring.CreditScore         `json:"credit_score"`
	Automations   []*entity.Automation        `json:"automations"`
	Redemptions   []*entity.Redemption        `json:"redemptions"`
	Transactions  []*entity.CreditTransaction `json:"transactions"`
	Activities    []*entity.Activity          `json:"activities"`
	Badges        []*entity.Badge             `json:"badges"`
	UnreadCount   int                         `json:"unread_count"`
}

// UserService manages program participants
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	GetDashboard(ctx context.Context, id string) (*Dashboard, error)
	Transactions(ctx context.Context, id string) ([]*entity.CreditTransaction, error)
}

type userServiceImpl struct {
	userRepo         port.UserRepository
	automationRepo   port.AutomationRepository
	redemptionRepo   port.RedemptionRepository
	transactionRepo  port.TransactionRepository
	notificationRepo port.NotificationRepository
	activityRepo     port.ActivityRepository
	badgeRepo        port.BadgeRepository
	logger           Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo port.UserRepository,
	automationRepo port.AutomationRepository,
	redemptionRepo port.RedemptionRepository,
	transactionRepo port.TransactionRepository,
	notificationRepo port.NotificationRepository,
	activityRepo port.ActivityRepository,
	badgeRepo port.BadgeRepository,
	logger Logger,
) UserService {
	return &userServiceImpl{
		userRepo:         userRepo,
		automationRepo:   automationRepo,
		redemptionRepo:   redemptionRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		badgeRepo:        badgeRepo,
		logger:           logger,
	}
}

// Create registers a new participant at the starting tier
func (s *userServiceImpl) Create(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	role := input.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	switch role {
	case entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, input.Role)
	}

	now := time.Now()
	user := &entity.User{
		ID:         uuid.NewString(),
		Name:       utils.SanitizeString(input.Name),
		Email:      input.Email,
		Role:       role,
		Department: input.Department,
		ManagerID:  input.ManagerID,
		Level:      1,
		JoinDate:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", "error", err, "email", input.Email)
		return nil, err
	}

	s.logger.Info("User created", "id", user.ID, "department", user.Department)
	return user, nil
}

// Transactions returns the user's credit ledger in chronological order.
func (s *userServiceImpl) Transactions(ctx context.Context, id string) ([]*entity.CreditTransaction, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return s.transactionRepo.ListByUser(ctx, id)
}

// Get retrieves a user by ID
func (s *userServiceImpl) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get user", "error", err, "id", id)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return user, nil
}

// List retrieves all users
func (s *userServiceImpl) List(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.List(ctx)
}

// GetDashboard assembles the user's complete home view. Everything shown
// is derived from current records; nothing here mutates state.
func (s *userServiceImpl) GetDashboard(ctx context.Context, id string) (*Dashboard, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	automations, err := s.automationRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list automations: %w", err)
	}
	redemptions, err := s.redemptionRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list redemptions: %w", err)
	}
	transactions, err := s.transactionRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	activities, err := s.activityRepo.ListByUser(ctx, id, 20)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	badges, err := s.badgeRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	unread, err := s.notificationRepo.CountUnread(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}

	return &Dashboard{
		User:          user,
		LevelProgress: scoring.ProgressToNextLevel(user.CreditBalance),
		CreditScore:   scoring.ComputeCreditScore(user, automations, transactions),
		Automations:   automations,
		Redemptions:   redemptions,
		Transactions:  transactions,
		Activities:    activities,
		Badges:        badges,
		UnreadCount:   unread,
	}, nil
}
