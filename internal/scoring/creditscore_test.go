package scoring

import (
	"testing"

	"github.com/garyjia/timebank/internal/domain/entity"
)

func userAuto(userID, status, category string, tags []string, minutes int) *entity.Automation {
	return &entity.Automation{
		UserID:                userID,
		Status:                status,
		Category:              category,
		Tags:                  tags,
		TimeSavedPerExecution: minutes,
		TotalExecutions:       1,
	}
}

func TestComputeCreditScore_Bounds(t *testing.T) {
	user := &entity.User{ID: "u1"}

	// no history at all: every sub-score bottoms out
	score := ComputeCreditScore(user, nil, nil)
	if score.Score < 300 || score.Score > 850 {
		t.Errorf("Score = %d, want within [300,850]", score.Score)
	}

	// perfect history: all sub-scores max out
	autos := []*entity.Automation{
		userAuto("u1", entity.AutomationStatusApproved, "AI", []string{"cross-team"}, 20*60),
		userAuto("u1", entity.AutomationStatusApproved, "AI", []string{"shared"}, 20*60),
		userAuto("u1", entity.AutomationStatusApproved, "AI", []string{"cross"}, 20*60),
		userAuto("u1", entity.AutomationStatusApproved, "AI", []string{"cross"}, 20*60),
	}
	txs := []*entity.CreditTransaction{
		{UserID: "u1", Type: entity.TransactionEarned, Amount: 100},
		{UserID: "u1", Type: entity.TransactionSpent, Amount: 90},
	}
	score = ComputeCreditScore(user, autos, txs)
	if score.Score != 850 {
		t.Errorf("Score = %d, want 850 for maxed sub-scores", score.Score)
	}
}

func TestComputeCreditScore_NoSubmissionsFloor(t *testing.T) {
	user := &entity.User{ID: "u1"}

	score := ComputeCreditScore(user, nil, nil)

	if score.SuccessScore != 0 {
		t.Errorf("SuccessScore = %v, want 0 with no submissions", score.SuccessScore)
	}
	if score.VelocityScore != 40 {
		t.Errorf("VelocityScore = %v, want 40 floor", score.VelocityScore)
	}
	// raw = 0*0.4 + 0*0.3 + 0*0.2 + 40*0.1 = 4 -> 300 + 22 = 322
	if score.Score != 322 {
		t.Errorf("Score = %d, want 322", score.Score)
	}
	if score.Rating != RatingPoor {
		t.Errorf("Rating = %s, want Poor", score.Rating)
	}
	if score.Trend != TrendDown {
		t.Errorf("Trend = %s, want down", score.Trend)
	}
}

func TestRatingForScore_BandPartition(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{300, RatingPoor},
		{579, RatingPoor},
		{580, RatingFair},
		{669, RatingFair},
		{670, RatingGood},
		{739, RatingGood},
		{740, RatingVeryGood},
		{799, RatingVeryGood},
		{800, RatingExceptional},
		{850, RatingExceptional},
	}

	for _, tt := range tests {
		if got := RatingForScore(tt.score); got != tt.expected {
			t.Errorf("RatingForScore(%d) = %s, want %s", tt.score, got, tt.expected)
		}
	}
}

func TestVelocityScore_Steps(t *testing.T) {
	tests := []struct {
		name     string
		earned   int
		spent    int
		expected float64
	}{
		{"heavy redeemer", 100, 90, 100},
		{"over half", 100, 60, 80},
		{"light redeemer", 100, 30, 60},
		{"hoarder", 100, 10, 40},
		{"nothing earned", 0, 0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := []*entity.CreditTransaction{
				{UserID: "u1", Type: entity.TransactionEarned, Amount: tt.earned},
				{UserID: "u1", Type: entity.TransactionSpent, Amount: tt.spent},
			}
			if got := velocityScore("u1", txs); got != tt.expected {
				t.Errorf("velocityScore = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCollaborationScore(t *testing.T) {
	// two approved, one cross-department: 1/2*100 + 2*5 = 60
	approved := []*entity.Automation{
		userAuto("u1", entity.AutomationStatusApproved, "Testing", []string{"Cross-Team"}, 60),
		userAuto("u1", entity.AutomationStatusApproved, "Testing", nil, 60),
	}
	if got := collaborationScore(approved); got != 60 {
		t.Errorf("collaborationScore = %v, want 60", got)
	}

	if got := collaborationScore(nil); got != 0 {
		t.Errorf("collaborationScore(empty) = %v, want 0", got)
	}
}

func TestInnovationScore(t *testing.T) {
	// one innovative automation saving 2 hours: 25 + 2 = 27
	approved := []*entity.Automation{
		userAuto("u1", entity.AutomationStatusApproved, "Testing", []string{"AI"}, 120),
	}
	if got := innovationScore(approved); got != 27 {
		t.Errorf("innovationScore = %v, want 27", got)
	}

	// complexity is capped at 20 hours per automation
	big := []*entity.Automation{
		userAuto("u1", entity.AutomationStatusApproved, "Testing", nil, 100*60),
	}
	if got := innovationScore(big); got != 20 {
		t.Errorf("innovationScore = %v, want 20 (complexity cap)", got)
	}

	// "email" must not match the ai tag rule
	email := []*entity.Automation{
		userAuto("u1", entity.AutomationStatusApproved, "Email Management", []string{"email"}, 60),
	}
	if got := innovationScore(email); got != 1 {
		t.Errorf("innovationScore = %v, want 1 (not innovative)", got)
	}
}

func TestTrend(t *testing.T) {
	mk := func(statuses ...string) []*entity.Automation {
		out := make([]*entity.Automation, len(statuses))
		for i, s := range statuses {
			out[i] = userAuto("u1", s, "Testing", nil, 60)
		}
		return out
	}

	tests := []struct {
		name     string
		owned    []*entity.Automation
		expected string
	}{
		{"two recent approvals", mk(entity.AutomationStatusRejected, entity.AutomationStatusApproved, entity.AutomationStatusApproved, entity.AutomationStatusPending), TrendUp},
		{"all approved", mk(entity.AutomationStatusApproved, entity.AutomationStatusApproved, entity.AutomationStatusApproved), TrendUp},
		{"old approvals fall out of the window", mk(entity.AutomationStatusApproved, entity.AutomationStatusRejected, entity.AutomationStatusRejected, entity.AutomationStatusRejected), TrendDown},
		{"single approved submission", mk(entity.AutomationStatusApproved), TrendStable},
		{"no submissions", nil, TrendDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trend(tt.owned); got != tt.expected {
				t.Errorf("trend = %s, want %s", got, tt.expected)
			}
		})
	}
}
