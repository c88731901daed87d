package service

import (
	"context"
	"fmt"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/scoring"
)

// Overview summarizes program-wide totals for the admin landing view
type Overview struct {
	TotalUsers           int `json:"total_users"`
	TotalAutomations     int `json:"total_automations"`
	ApprovedAutomations  int `json:"approved_automations"`
	PendingAutomations   int `json:"pending_automations"`
	TotalTimeSaved       int `json:"total_time_saved"` // minutes, approved only
	TotalCreditsEarned   int `json:"total_credits_earned"`
	TotalCreditsSpent    int `json:"total_credits_spent"`
	PendingRedemptions   int `json:"pending_redemptions"`
	FulfilledRedemptions int `json:"fulfilled_redemptions"`
}

// UserScore pairs a user with their computed credit score
type UserScore struct {
	UserID     string              `json:"user_id"`
	Name       string              `json:"name"`
	Department string              `json:"department"`
	Score      scoring.CreditScore `json:"score"`
}

// ChallengeStanding pairs a challenge with its derived progress
type ChallengeStanding struct {
	Challenge *entity.Challenge         `json:"challenge"`
	Progress  scoring.ChallengeProgress `json:"progress"`
}

// AnalyticsService derives reporting views from current records. All
// computation happens in the scoring package against immutable snapshots
// loaded here; nothing in this service writes.
type AnalyticsService interface {
	Overview(ctx context.Context) (*Overview, error)
	DepartmentStats(ctx context.Context) ([]scoring.DepartmentStats, error)
	CategoryStats(ctx context.Context) ([]scoring.CategoryStats, error)
	RewardStats(ctx context.Context) ([]scoring.RewardCategoryStats, error)
	ROI(ctx context.Context) (*scoring.SystemROI, error)
	Leaderboard(ctx context.Context) ([]scoring.LeaderboardEntry, error)
	CreditScore(ctx context.Context, userID string) (*UserScore, error)
	CreditScores(ctx context.Context) ([]UserScore, error)
	Challenges(ctx context.Context) ([]ChallengeStanding, error)
}

type analyticsServiceImpl struct {
	userRepo        port.UserRepository
	automationRepo  port.AutomationRepository
	rewardRepo      port.RewardRepository
	redemptionRepo  port.RedemptionRepository
	transactionRepo port.TransactionRepository
	challengeRepo   port.ChallengeRepository
	logger          Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(
	userRepo port.UserRepository,
	automationRepo port.AutomationRepository,
	rewardRepo port.RewardRepository,
	redemptionRepo port.RedemptionRepository,
	transactionRepo port.TransactionRepository,
	challengeRepo port.ChallengeRepository,
	logger Logger,
) AnalyticsService {
	return &analyticsServiceImpl{
		userRepo:        userRepo,
		automationRepo:  automationRepo,
		rewardRepo:      rewardRepo,
		redemptionRepo:  redemptionRepo,
		transactionRepo: transactionRepo,
		challengeRepo:   challengeRepo,
		logger:          logger,
	}
}

// Overview computes program-wide totals
func (s *analyticsServiceImpl) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	automations, err := s.automationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list automations: %w", err)
	}
	redemptions, err := s.redemptionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list redemptions: %w", err)
	}

	overview := &Overview{TotalUsers: users, TotalAutomations: len(automations)}
	for _, a := range automations {
		switch a.Status {
		case entity.AutomationStatusApproved:
			overview.ApprovedAutomations++
			overview.TotalTimeSaved += a.TotalTimeSaved()
			overview.TotalCreditsEarned += a.CreditsEarned
		case entity.AutomationStatusPending:
			overview.PendingAutomations++
		}
	}
	for _, r := range redemptions {
		switch r.Status {
		case entity.RedemptionStatusPending:
			overview.PendingRedemptions++
		case entity.RedemptionStatusApproved:
			overview.TotalCreditsSpent += r.CreditsCost
		case entity.RedemptionStatusFulfilled:
			overview.TotalCreditsSpent += r.CreditsCost
			overview.FulfilledRedemptions++
		}
	}
	return overview, nil
}

// DepartmentStats aggregates activity per department
func (s *analyticsServiceImpl) DepartmentStats(ctx context.Context) ([]scoring.DepartmentStats, error) {
	users, automations, redemptions, err := s.loadCore(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.AggregateByDepartment(users, automations, redemptions), nil
}

// CategoryStats aggregates automations per submission category
func (s *analyticsServiceImpl) CategoryStats(ctx context.Context) ([]scoring.CategoryStats, error) {
	automations, err := s.automationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list automations: %w", err)
	}
	return scoring.AggregateByCategory(automations), nil
}

// RewardStats aggregates redemptions per reward category
func (s *analyticsServiceImpl) RewardStats(ctx context.Context) ([]scoring.RewardCategoryStats, error) {
	rewards, err := s.rewardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	redemptions, err := s.redemptionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list redemptions: %w", err)
	}
	return scoring.AggregateByRewardCategory(rewards, redemptions), nil
}

// ROI projects cost savings against development investment
func (s *analyticsServiceImpl) ROI(ctx context.Context) (*scoring.SystemROI, error) {
	users, automations, redemptions, err := s.loadCore(ctx)
	if err != nil {
		return nil, err
	}
	stats := scoring.AggregateByDepartment(users, automations, redemptions)
	roi := scoring.ComputeSystemROI(stats)
	return &roi, nil
}

// Leaderboard ranks users by credits earned from approved automations
func (s *analyticsServiceImpl) Leaderboard(ctx context.Context) ([]scoring.LeaderboardEntry, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	automations, err := s.automationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list automations: %w", err)
	}
	return scoring.BuildLeaderboard(users, automations), nil
}

// CreditScore computes the composite score for one user
func (s *analyticsServiceImpl) CreditScore(ctx context.Context, userID string) (*UserScore, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	automations, err := s.automationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list automations: %w", err)
	}
	transactions, err := s.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return &UserScore{
		UserID:     user.ID,
		Name:       user.Name,
		Department: user.Department,
		Score:      scoring.ComputeCreditScore(user, automations, transactions),
	}, nil
}

// CreditScores computes the composite score for every user
func (s *analyticsServiceImpl) CreditScores(ctx context.Context) ([]UserScore, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	automations, err := s.automationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list automations: %w", err)
	}
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	byUser := make(map[string][]*entity.Automation)
	for _, a := range automations {
		byUser[a.UserID] = append(byUser[a.UserID], a)
	}
	txByUser := make(map[string][]*entity.CreditTransaction)
	for _, t := range transactions {
		txByUser[t.UserID] = append(txByUser[t.UserID], t)
	}

	scores := make([]UserScore, 0, len(users))
	for _, user := range users {
		scores = append(scores, UserScore{
			UserID:     user.ID,
			Name:       user.Name,
			Department: user.Department,
			Score:      scoring.ComputeCreditScore(user, byUser[user.ID], txByUser[user.ID]),
		})
	}
	return scores, nil
}

// Challenges lists all challenges with derived progress
func (s *analyticsServiceImpl) Challenges(ctx context.Context) ([]ChallengeStanding, error) {
	challenges, err := s.challengeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	automations, err := s.automationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list automations: %w", err)
	}

	standings := make([]ChallengeStanding, 0, len(challenges))
	for _, challenge := range challenges {
		standings = append(standings, ChallengeStanding{
			Challenge: challenge,
			Progress:  scoring.ComputeChallengeProgress(challenge, automations),
		})
	}
	return standings, nil
}

func (s *analyticsServiceImpl) loadCore(ctx context.Context) ([]*entity.User, []*entity.Automation, []*entity.Redemption, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list users: %w", err)
	}
	automations, err := s.automationRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list automations: %w", err)
	}
	redemptions, err := s.redemptionRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list redemptions: %w", err)
	}
	return users, automations, redemptions, nil
}
