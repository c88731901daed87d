package service

import (
	"context"

	"github.com/garyjia/timebank/internal/domain/entity"
)

// Mock repositories. Zero-value mocks behave like an empty store; tests
// override individual funcs to shape the scenario.

type mockUserRepo struct {
	createFunc        func(ctx context.Context, user *entity.User) error
	getByIDFunc       func(ctx context.Context, id string) (*entity.User, error)
	listFunc          func(ctx context.Context) ([]*entity.User, error)
	adjustBalanceFunc func(ctx context.Context, id string, delta int) error
	updateLevelFunc   func(ctx context.Context, id string, level int) error
	countFunc         func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*entity.User{}, nil
}

func (m *mockUserRepo) ListByDepartment(ctx context.Context, department string) ([]*entity.User, error) {
	return []*entity.User{}, nil
}

func (m *mockUserRepo) AdjustBalance(ctx context.Context, id string, delta int) error {
	if m.adjustBalanceFunc != nil {
		return m.adjustBalanceFunc(ctx, id, delta)
	}
	return nil
}

func (m *mockUserRepo) UpdateLevel(ctx context.Context, id string, level int) error {
	if m.updateLevelFunc != nil {
		return m.updateLevelFunc(ctx, id, level)
	}
	return nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockAutomationRepo struct {
	createFunc         func(ctx context.Context, automation *entity.Automation) error
	getByIDFunc        func(ctx context.Context, id string) (*entity.Automation, error)
	listFunc           func(ctx context.Context) ([]*entity.Automation, error)
	listByUserFunc     func(ctx context.Context, userID string) ([]*entity.Automation, error)
	updateDecisionFunc func(ctx context.Context, id, status string) error
}

func (m *mockAutomationRepo) Create(ctx context.Context, automation *entity.Automation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, automation)
	}
	return nil
}

func (m *mockAutomationRepo) GetByID(ctx context.Context, id string) (*entity.Automation, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAutomationRepo) List(ctx context.Context) ([]*entity.Automation, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*entity.Automation{}, nil
}

func (m *mockAutomationRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Automation, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return []*entity.Automation{}, nil
}

func (m *mockAutomationRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Automation, error) {
	return []*entity.Automation{}, nil
}

func (m *mockAutomationRepo) UpdateDecision(ctx context.Context, id, status string) error {
	if m.updateDecisionFunc != nil {
		return m.updateDecisionFunc(ctx, id, status)
	}
	return nil
}

type mockRewardRepo struct {
	createFunc  func(ctx context.Context, reward *entity.Reward) error
	getByIDFunc func(ctx context.Context, id string) (*entity.Reward, error)
	listFunc    func(ctx context.Context) ([]*entity.Reward, error)
}

func (m *mockRewardRepo) Create(ctx context.Context, reward *entity.Reward) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, reward)
	}
	return nil
}

func (m *mockRewardRepo) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRewardRepo) List(ctx context.Context) ([]*entity.Reward, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*entity.Reward{}, nil
}

func (m *mockRewardRepo) ListAvailable(ctx context.Context) ([]*entity.Reward, error) {
	return []*entity.Reward{}, nil
}

type mockRedemptionRepo struct {
	createFunc         func(ctx context.Context, redemption *entity.Redemption) error
	getByIDFunc        func(ctx context.Context, id string) (*entity.Redemption, error)
	listFunc           func(ctx context.Context) ([]*entity.Redemption, error)
	updateDecisionFunc func(ctx context.Context, id, status, managerComment string) error
}

func (m *mockRedemptionRepo) Create(ctx context.Context, redemption *entity.Redemption) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, redemption)
	}
	return nil
}

func (m *mockRedemptionRepo) GetByID(ctx context.Context, id string) (*entity.Redemption, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRedemptionRepo) List(ctx context.Context) ([]*entity.Redemption, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*entity.Redemption{}, nil
}

func (m *mockRedemptionRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Redemption, error) {
	return []*entity.Redemption{}, nil
}

func (m *mockRedemptionRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Redemption, error) {
	return []*entity.Redemption{}, nil
}

func (m *mockRedemptionRepo) UpdateDecision(ctx context.Context, id, status, managerComment string) error {
	if m.updateDecisionFunc != nil {
		return m.updateDecisionFunc(ctx, id, status, managerComment)
	}
	return nil
}

type mockTransactionRepo struct {
	createFunc func(ctx context.Context, transaction *entity.CreditTransaction) error
	listFunc   func(ctx context.Context) ([]*entity.CreditTransaction, error)
}

func (m *mockTransactionRepo) Create(ctx context.Context, transaction *entity.CreditTransaction) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, transaction)
	}
	return nil
}

func (m *mockTransactionRepo) List(ctx context.Context) ([]*entity.CreditTransaction, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*entity.CreditTransaction{}, nil
}

func (m *mockTransactionRepo) ListByUser(ctx context.Context, userID string) ([]*entity.CreditTransaction, error) {
	return []*entity.CreditTransaction{}, nil
}

type mockNotificationRepo struct {
	createFunc func(ctx context.Context, notification *entity.Notification) error
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, notification)
	}
	return nil
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return []*entity.Notification{}, nil
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id string) error {
	return nil
}

type mockActivityRepo struct {
	createFunc func(ctx context.Context, activity *entity.Activity) error
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, activity)
	}
	return nil
}

func (m *mockActivityRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Activity, error) {
	return []*entity.Activity{}, nil
}

func (m *mockActivityRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	return []*entity.Activity{}, nil
}

type mockBadgeRepo struct{}

func (m *mockBadgeRepo) Create(ctx context.Context, badge *entity.Badge) error {
	return nil
}

func (m *mockBadgeRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Badge, error) {
	return []*entity.Badge{}, nil
}

type mockChallengeRepo struct {
	listFunc func(ctx context.Context) ([]*entity.Challenge, error)
}

func (m *mockChallengeRepo) Create(ctx context.Context, challenge *entity.Challenge) error {
	return nil
}

func (m *mockChallengeRepo) GetByID(ctx context.Context, id string) (*entity.Challenge, error) {
	return nil, nil
}

func (m *mockChallengeRepo) List(ctx context.Context) ([]*entity.Challenge, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*entity.Challenge{}, nil
}

type mockTxManager struct {
	withTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.withTransactionFunc != nil {
		return m.withTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}
