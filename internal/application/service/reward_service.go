package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/garyjia/timebank/internal/application/port"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/pkg/utils"
)

// CreateRewardInput carries the fields of a new catalog entry
type CreateRewardInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreditsCost int    `json:"credits_cost"`
	Available   bool   `json:"available"`
	Terms       string `json:"terms"`
	Popularity  int    `json:"popularity"`
}

// RewardService manages the reward catalog
type RewardService interface {
	Create(ctx context.Context, input CreateRewardInput) (*entity.Reward, error)
	Get(ctx context.Context, id string) (*entity.Reward, error)
	List(ctx context.Context) ([]*entity.Reward, error)
	ListAvailable(ctx context.Context) ([]*entity.Reward, error)
}

type rewardServiceImpl struct {
	rewardRepo port.RewardRepository
	logger     Logger
}

// NewRewardService creates a new RewardService
func NewRewardService(rewardRepo port.RewardRepository, logger Logger) RewardService {
	return &rewardServiceImpl{rewardRepo: rewardRepo, logger: logger}
}

// Create adds a reward to the catalog
func (s *rewardServiceImpl) Create(ctx context.Context, input CreateRewardInput) (*entity.Reward, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.CreditsCost <= 0 {
		return nil, fmt.Errorf("%w: credits cost must be positive", ErrValidation)
	}
	if input.Popularity < 0 || input.Popularity > 100 {
		return nil, fmt.Errorf("%w: popularity must be in [0, 100]", ErrValidation)
	}

	reward := &entity.Reward{
		ID:          uuid.NewString(),
		Title:       utils.SanitizeString(input.Title),
		Description: utils.SanitizeString(input.Description),
		Category:    input.Category,
		CreditsCost: input.CreditsCost,
		Available:   input.Available,
		Terms:       input.Terms,
		Popularity:  input.Popularity,
		CreatedAt:   time.Now(),
	}

	if err := s.rewardRepo.Create(ctx, reward); err != nil {
		s.logger.Error("Failed to create reward", "error", err, "title", input.Title)
		return nil, err
	}

	s.logger.Info("Reward created", "id", reward.ID, "title", reward.Title, "cost", reward.CreditsCost)
	return reward, nil
}

// Get retrieves a reward by ID
func (s *rewardServiceImpl) Get(ctx context.Context, id string) (*entity.Reward, error) {
	reward, err := s.rewardRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get reward", "error", err, "id", id)
		return nil, err
	}
	if reward == nil {
		return nil, fmt.Errorf("%w: reward %s", ErrNotFound, id)
	}
	return reward, nil
}

// List retrieves the whole catalog
func (s *rewardServiceImpl) List(ctx context.Context) ([]*entity.Reward, error) {
	return s.rewardRepo.List(ctx)
}

// ListAvailable retrieves only currently offered rewards
func (s *rewardServiceImpl) ListAvailable(ctx context.Context) ([]*entity.Reward, error) {
	return s.rewardRepo.ListAvailable(ctx)
}
