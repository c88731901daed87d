package entity

import "time"

// User represents an employee participating in the automation credit program
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Department    string    `json:"department"`
	ManagerID     string    `json:"manager_id,omitempty"`
	CreditBalance int       `json:"credit_balance"`
	Level         int       `json:"level"`
	JoinDate      time.Time `json:"join_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may perform admin-gated operations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Badge represents an achievement badge earned by a user
type Badge struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rarity      string    `json:"rarity"`
	EarnedDate  time.Time `json:"earned_date"`
}
