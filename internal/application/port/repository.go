package port

import (
	"context"

	"github.com/garyjia/timebank/internal/domain/entity"
)

// UserRepository defines persistence operations for User
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	ListByDepartment(ctx context.Context, department string) ([]*entity.User, error)
	AdjustBalance(ctx context.Context, id string, delta int) error
	UpdateLevel(ctx context.Context, id string, level int) error
	Count(ctx context.Context) (int, error)
}

// AutomationRepository defines persistence operations for Automation
type AutomationRepository interface {
	Create(ctx context.Context, automation *entity.Automation) error
	GetByID(ctx context.Context, id string) (*entity.Automation, error)
	List(ctx context.Context) ([]*entity.Automation, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Automation, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Automation, error)
	UpdateDecision(ctx context.Context, id, status string) error
}

// RewardRepository defines persistence operations for Reward
type RewardRepository interface {
	Create(ctx context.Context, reward *entity.Reward) error
	GetByID(ctx context.Context, id string) (*entity.Reward, error)
	List(ctx context.Context) ([]*entity.Reward, error)
	ListAvailable(ctx context.Context) ([]*entity.Reward, error)
}

// RedemptionRepository defines persistence operations for Redemption
type RedemptionRepository interface {
	Create(ctx context.Context, redemption *entity.Redemption) error
	GetByID(ctx context.Context, id string) (*entity.Redemption, error)
	List(ctx context.Context) ([]*entity.Redemption, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Redemption, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Redemption, error)
	UpdateDecision(ctx context.Context, id, status, managerComment string) error
}

// TransactionRepository defines persistence operations for CreditTransaction
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.CreditTransaction) error
	List(ctx context.Context) ([]*entity.CreditTransaction, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.CreditTransaction, error)
}

// NotificationRepository defines persistence operations for Notification
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) error
}

// ActivityRepository defines persistence operations for Activity
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Activity, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}

// BadgeRepository defines persistence operations for Badge
type BadgeRepository interface {
	Create(ctx context.Context, badge *entity.Badge) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Badge, error)
}

// ChallengeRepository defines persistence operations for Challenge
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	GetByID(ctx context.Context, id string) (*entity.Challenge, error)
	List(ctx context.Context) ([]*entity.Challenge, error)
}

// TransactionManager handles database transactions
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
