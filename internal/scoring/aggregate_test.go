package scoring

import (
	"testing"

	"github.com/garyjia/timebank/internal/domain/entity"
)

func TestAggregateByDepartment(t *testing.T) {
	users := []*entity.User{
		{ID: "u1", Department: "Engineering"},
		{ID: "u2", Department: "Engineering"},
		{ID: "u3", Department: "Marketing"},
	}
	automations := []*entity.Automation{
		{UserID: "u1", Status: entity.AutomationStatusApproved, CreditsEarned: 100, TimeSavedPerExecution: 30, TotalExecutions: 10},
		{UserID: "u2", Status: entity.AutomationStatusApproved, CreditsEarned: 50, TimeSavedPerExecution: 15, TotalExecutions: 4},
		{UserID: "u2", Status: entity.AutomationStatusPending, CreditsEarned: 999, TimeSavedPerExecution: 60, TotalExecutions: 9},
		{UserID: "u3", Status: entity.AutomationStatusApproved, CreditsEarned: 80, TimeSavedPerExecution: 20, TotalExecutions: 6},
	}
	redemptions := []*entity.Redemption{
		{UserID: "u1", CreditsCost: 40, Status: entity.RedemptionStatusApproved},
		{UserID: "u3", CreditsCost: 60, Status: entity.RedemptionStatusPending},
	}

	stats := AggregateByDepartment(users, automations, redemptions)

	if len(stats) != 2 {
		t.Fatalf("got %d departments, want 2", len(stats))
	}

	eng := stats[0]
	if eng.Department != "Engineering" {
		t.Fatalf("departments not sorted: first = %s", eng.Department)
	}
	if eng.Users != 2 || eng.Automations != 2 {
		t.Errorf("Engineering users=%d automations=%d, want 2/2", eng.Users, eng.Automations)
	}
	if eng.CreditsEarned != 150 {
		t.Errorf("Engineering CreditsEarned = %d, want 150 (pending excluded)", eng.CreditsEarned)
	}
	if eng.TimeSavedMinutes != 360 {
		t.Errorf("Engineering TimeSavedMinutes = %d, want 360", eng.TimeSavedMinutes)
	}
	if eng.CreditsSpent != 40 || eng.Redemptions != 1 {
		t.Errorf("Engineering spent=%d redemptions=%d, want 40/1", eng.CreditsSpent, eng.Redemptions)
	}

	mkt := stats[1]
	if mkt.CreditsSpent != 60 {
		t.Errorf("Marketing CreditsSpent = %d, want 60 (all request statuses counted)", mkt.CreditsSpent)
	}
}

func TestAggregateByDepartment_SkipsDanglingReferences(t *testing.T) {
	users := []*entity.User{{ID: "u1", Department: "HR"}}
	automations := []*entity.Automation{
		{UserID: "ghost", Status: entity.AutomationStatusApproved, CreditsEarned: 500},
	}
	redemptions := []*entity.Redemption{{UserID: "ghost", CreditsCost: 100}}

	stats := AggregateByDepartment(users, automations, redemptions)

	if len(stats) != 1 {
		t.Fatalf("got %d departments, want 1", len(stats))
	}
	if stats[0].CreditsEarned != 0 || stats[0].CreditsSpent != 0 {
		t.Errorf("dangling refs leaked into stats: %+v", stats[0])
	}
}

func TestAggregateByCategory(t *testing.T) {
	automations := []*entity.Automation{
		{Category: "Testing", Status: entity.AutomationStatusApproved, CreditsEarned: 40, TimeSavedPerExecution: 20, TotalExecutions: 6},
		{Category: "Testing", Status: entity.AutomationStatusApproved, CreditsEarned: 20, TimeSavedPerExecution: 30, TotalExecutions: 2},
		{Category: "Deployment", Status: entity.AutomationStatusRejected, CreditsEarned: 90},
	}

	stats := AggregateByCategory(automations)

	if len(stats) != 1 {
		t.Fatalf("got %d categories, want 1 (rejected excluded)", len(stats))
	}
	s := stats[0]
	if s.Count != 2 || s.TimeSavedMinutes != 180 || s.CreditsEarned != 60 {
		t.Errorf("stats = %+v, want count 2, timeSaved 180, credits 60", s)
	}
	if s.AvgTimeSaved != 90 {
		t.Errorf("AvgTimeSaved = %v, want 90 (running count, not stale)", s.AvgTimeSaved)
	}
}

func TestAggregateByRewardCategory(t *testing.T) {
	rewards := []*entity.Reward{
		{ID: "r1", Category: "learning", Popularity: 80},
		{ID: "r2", Category: "learning", Popularity: 60},
		{ID: "r3", Category: "wellness", Popularity: 90},
	}
	redemptions := []*entity.Redemption{
		{RewardID: "r1", CreditsCost: 100, Status: entity.RedemptionStatusApproved},
		{RewardID: "r2", CreditsCost: 50, Status: entity.RedemptionStatusApproved},
		{RewardID: "r1", CreditsCost: 100, Status: entity.RedemptionStatusPending},
		{RewardID: "missing", CreditsCost: 999, Status: entity.RedemptionStatusApproved},
	}

	stats := AggregateByRewardCategory(rewards, redemptions)

	if len(stats) != 2 {
		t.Fatalf("got %d categories, want 2", len(stats))
	}

	learning := stats[0]
	if learning.Category != "learning" {
		learning = stats[1]
	}
	if learning.Redemptions != 2 || learning.CreditsSpent != 150 {
		t.Errorf("learning redemptions=%d spent=%d, want 2/150", learning.Redemptions, learning.CreditsSpent)
	}
	if learning.AvgCost != 75 {
		t.Errorf("learning AvgCost = %v, want 75", learning.AvgCost)
	}
	if learning.Popularity != 70 {
		t.Errorf("learning Popularity = %d, want 70", learning.Popularity)
	}
}

func TestAggregateByRewardCategory_EmptyCategoryAvoidsDivisionByZero(t *testing.T) {
	rewards := []*entity.Reward{{ID: "r1", Category: "time-off", Popularity: 50}}

	stats := AggregateByRewardCategory(rewards, nil)

	if stats[0].AvgCost != 0 {
		t.Errorf("AvgCost = %v, want 0 for category with no redemptions", stats[0].AvgCost)
	}
}
