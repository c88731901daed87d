package entity

import "time"

// Challenge is a time-boxed goal that groups of users work towards.
// Participants is the set of enrolled user IDs; progress against Target is
// derived from the participants' approved automations, never stored.
type Challenge struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Target       int       `json:"target"`
	Metric       string    `json:"metric"`
	Reward       int       `json:"reward"` // bonus credits
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Participants []string  `json:"participants"`
	Status       string    `json:"status"`
}
