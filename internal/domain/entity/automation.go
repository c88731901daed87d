package entity

import "time"

// Automation represents a user-submitted time-saving automation awaiting
// admin review. CreditsEarned is computed at submission time and never
// recomputed afterwards; it materializes on the owner's balance only when
// the automation is approved.
type Automation struct {
	ID                    string     `json:"id"`
	UserID                string     `json:"user_id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	Category              string     `json:"category"`
	TimeSavedPerExecution int        `json:"time_saved_per_execution"` // minutes
	Frequency             string     `json:"frequency"`
	TotalExecutions       int        `json:"total_executions"`
	CreditsEarned         int        `json:"credits_earned"`
	Status                string     `json:"status"`
	SubmissionDate        time.Time  `json:"submission_date"`
	ApprovalDate          *time.Time `json:"approval_date,omitempty"`
	Tags                  []string   `json:"tags"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// TotalTimeSaved returns the cumulative minutes saved across all executions.
func (a *Automation) TotalTimeSaved() int {
	return a.TimeSavedPerExecution * a.TotalExecutions
}
