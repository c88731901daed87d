package entity

import "time"

// CreditTransaction records a single credit movement on a user's balance.
// Amount is always a positive magnitude; Type gives the direction. Every
// balance mutation is paired with exactly one transaction, so for any user
// the balance equals sum(earned) - sum(spent) at all times.
type CreditTransaction struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Amount       int       `json:"amount"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
	AutomationID string    `json:"automation_id,omitempty"`
	RedemptionID string    `json:"redemption_id,omitempty"`
}

// Activity is an append-only feed entry describing something a user did
type Activity struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
