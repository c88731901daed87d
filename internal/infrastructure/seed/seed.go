// Package seed installs a demo dataset on an empty database so the API
// is explorable immediately after first start.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/scoring"
)

// Seeder loads the demo dataset
type Seeder struct {
	userRepo       port.UserRepository
	automationRepo port.AutomationRepository
	rewardRepo     port.RewardRepository
	challengeRepo  port.ChallengeRepository
	txManager      port.TransactionManager
	logger         *zap.Logger
}

// New creates a new Seeder
func New(
	userRepo port.UserRepository,
	automationRepo port.AutomationRepository,
	rewardRepo port.RewardRepository,
	challengeRepo port.ChallengeRepository,
	txManager port.TransactionManager,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		userRepo:       userRepo,
		automationRepo: automationRepo,
		rewardRepo:     rewardRepo,
		challengeRepo:  challengeRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Run installs the demo dataset if the users table is empty. Calling it
// against a populated database is a no-op, so restarts are safe.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Seed skipped, users already present", zap.Int("count", count))
		return nil
	}

	s.logger.Info("Seeding demo dataset")

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		users := s.demoUsers()
		for _, u := range users {
			if err := s.userRepo.Create(txCtx, u); err != nil {
				return fmt.Errorf("seed user %s: %w", u.Name, err)
			}
		}
		for _, a := range s.demoAutomations(users) {
			if err := s.automationRepo.Create(txCtx, a); err != nil {
				return fmt.Errorf("seed automation %s: %w", a.Title, err)
			}
		}
		for _, r := range s.demoRewards() {
			if err := s.rewardRepo.Create(txCtx, r); err != nil {
				return fmt.Errorf("seed reward %s: %w", r.Title, err)
			}
		}
		for _, c := range s.demoChallenges(users) {
			if err := s.challengeRepo.Create(txCtx, c); err != nil {
				return fmt.Errorf("seed challenge %s: %w", c.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Demo dataset seeded")
	return nil
}

func (s *Seeder) demoUsers() []*entity.User {
	now := time.Now()
	admin := &entity.User{
		ID:         uuid.NewString(),
		Name:       "Dana Whitfield",
		Email:      "dana.whitfield@example.com",
		Role:       entity.RoleAdmin,
		Department: "Operations",
		Level:      1,
		JoinDate:   now.AddDate(-2, 0, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	members := []struct {
		name       string
		department string
	}{
		{"Avery Chen", "Engineering"},
		{"Marcus Reed", "Engineering"},
		{"Priya Nair", "Finance"},
		{"Jonas Keller", "Sales"},
		{"Sofia Marino", "Marketing"},
		{"Liam O'Connor", "Operations"},
		{"Grace Udo", "HR"},
	}

	users := []*entity.User{admin}
	for i, m := range members {
		users = append(users, &entity.User{
			ID:         uuid.NewString(),
			Name:       m.name,
			Email:      fmt.Sprintf("user%d@example.com", i+1),
			Role:       entity.RoleEmployee,
			Department: m.department,
			ManagerID:  admin.ID,
			Level:      1,
			JoinDate:   now.AddDate(-1, -i, 0),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return users
}

func (s *Seeder) demoAutomations(users []*entity.User) []*entity.Automation {
	now := time.Now()
	specs := []struct {
		owner     int // index into users
		title     string
		category  string
		minutes   int
		frequency string
		execs     int
		tags      []string
	}{
		{1, "Nightly build triage bot", "Testing", 30, entity.FrequencyDaily, 60, []string{"ci", "cross-team"}},
		{1, "Release notes generator", "Documentation", 45, entity.FrequencyWeekly, 12, []string{"ai"}},
		{2, "Log anomaly digest", "Monitoring", 20, entity.FrequencyDaily, 90, []string{"observability"}},
		{3, "Invoice matching pipeline", "Data Processing", 60, entity.FrequencyWeekly, 16, []string{"finance", "shared-service"}},
		{4, "Lead enrichment sync", "Data Processing", 25, entity.FrequencyDaily, 40, []string{"crm"}},
		{5, "Campaign report builder", "Report Generation", 90, entity.FrequencyMonthly, 6, []string{"innovation-lab"}},
		{6, "Vendor onboarding checklist", "File Organization", 35, entity.FrequencyWeekly, 10, nil},
		{7, "Interview scheduling assistant", "Communication", 15, entity.FrequencyDaily, 50, []string{"cross-department"}},
	}

	automations := make([]*entity.Automation, 0, len(specs))
	for i, spec := range specs {
		submitted := now.AddDate(0, 0, -(len(specs)-i)*7)
		a := &entity.Automation{
			ID:                    uuid.NewString(),
			UserID:                users[spec.owner].ID,
			Title:                 spec.title,
			Description:           fmt.Sprintf("Automates %s work that used to be done by hand.", spec.category),
			Category:              spec.category,
			TimeSavedPerExecution: spec.minutes,
			Frequency:             spec.frequency,
			TotalExecutions:       spec.execs,
			Status:                entity.AutomationStatusPending,
			SubmissionDate:        submitted,
			Tags:                  spec.tags,
			CreatedAt:             submitted,
			UpdatedAt:             submitted,
		}
		a.CreditsEarned = scoring.CreditsFromTimeSaved(a.TotalTimeSaved())
		automations = append(automations, a)
	}
	return automations
}

func (s *Seeder) demoRewards() []*entity.Reward {
	now := time.Now()
	specs := []struct {
		title      string
		category   string
		cost       int
		popularity int
	}{
		{"Half day off", "time-off", 150, 92},
		{"Full day off", "time-off", 280, 88},
		{"Conference ticket", "learning", 400, 75},
		{"Online course budget", "learning", 120, 70},
		{"Team lunch", "team", 200, 65},
		{"Wellness session", "wellness", 90, 58},
		{"Innovation day pass", "innovation", 250, 54},
		{"Wall of fame feature", "recognition", 60, 40},
	}

	rewards := make([]*entity.Reward, 0, len(specs))
	for _, spec := range specs {
		rewards = append(rewards, &entity.Reward{
			ID:          uuid.NewString(),
			Title:       spec.title,
			Description: fmt.Sprintf("Redeem %d credits for: %s", spec.cost, spec.title),
			Category:    spec.category,
			CreditsCost: spec.cost,
			Available:   true,
			Popularity:  spec.popularity,
			CreatedAt:   now,
		})
	}
	return rewards
}

func (s *Seeder) demoChallenges(users []*entity.User) []*entity.Challenge {
	now := time.Now()
	participants := make([]string, 0, len(users))
	for _, u := range users {
		participants = append(participants, u.ID)
	}

	return []*entity.Challenge{
		{
			ID:           uuid.NewString(),
			Title:        "Automation sprint",
			Description:  "Ship five approved automations as a company",
			Type:         entity.ChallengeTeam,
			Target:       5,
			Metric:       entity.MetricAutomations,
			Reward:       50,
			StartDate:    now.AddDate(0, 0, -14),
			EndDate:      now.AddDate(0, 1, 0),
			Participants: participants,
			Status:       entity.ChallengeActive,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Thousand hours back",
			Description:  "Save one thousand hours of manual work",
			Type:         entity.ChallengeDepartment,
			Target:       60000,
			Metric:       entity.MetricTimeSaved,
			Reward:       100,
			StartDate:    now,
			EndDate:      now.AddDate(0, 3, 0),
			Participants: participants,
			Status:       entity.ChallengeUpcoming,
		},
	}
}
