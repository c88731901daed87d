package entity

import "time"

// Reward is a catalog item that credits can be redeemed against
type Reward struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreditsCost int       `json:"credits_cost"`
	Available   bool      `json:"available"`
	Terms       string    `json:"terms,omitempty"`
	Popularity  int       `json:"popularity"` // 0-100 display metric
	CreatedAt   time.Time `json:"created_at"`
}

// Redemption is a request to exchange credits for a reward. CreditsCost is
// snapshotted from the reward at request time so later catalog price changes
// never affect an in-flight redemption.
type Redemption struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	RewardID       string     `json:"reward_id"`
	CreditsCost    int        `json:"credits_cost"`
	Status         string     `json:"status"`
	RequestDate    time.Time  `json:"request_date"`
	ApprovalDate   *time.Time `json:"approval_date,omitempty"`
	ManagerComment string     `json:"manager_comment,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
