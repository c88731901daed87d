package scoring

import (
	"testing"

	"github.com/garyjia/timebank/internal/domain/entity"
)

func auto(userID, status string, credits, minutesPerRun, runs int) *entity.Automation {
	return &entity.Automation{
		UserID:                userID,
		Status:                status,
		CreditsEarned:         credits,
		TimeSavedPerExecution: minutesPerRun,
		TotalExecutions:       runs,
	}
}

func TestBuildLeaderboard_RanksByCreditsDescending(t *testing.T) {
	users := []*entity.User{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: "Ben"},
		{ID: "u3", Name: "Cho"},
	}
	automations := []*entity.Automation{
		auto("u1", entity.AutomationStatusApproved, 100, 30, 10),
		auto("u2", entity.AutomationStatusApproved, 250, 60, 5),
		auto("u3", entity.AutomationStatusApproved, 50, 15, 4),
	}

	entries := BuildLeaderboard(users, automations)

	if entries[0].UserID != "u2" || entries[0].Rank != 1 {
		t.Errorf("first entry = %s rank %d, want u2 rank 1", entries[0].UserID, entries[0].Rank)
	}
	if entries[1].UserID != "u1" || entries[1].Rank != 2 {
		t.Errorf("second entry = %s rank %d, want u1 rank 2", entries[1].UserID, entries[1].Rank)
	}
	if entries[2].UserID != "u3" || entries[2].Rank != 3 {
		t.Errorf("third entry = %s rank %d, want u3 rank 3", entries[2].UserID, entries[2].Rank)
	}
}

func TestBuildLeaderboard_ExcludesPendingAndRejected(t *testing.T) {
	users := []*entity.User{{ID: "u1", Name: "Ana"}}
	automations := []*entity.Automation{
		auto("u1", entity.AutomationStatusApproved, 100, 60, 2),
		auto("u1", entity.AutomationStatusPending, 500, 60, 2),
		auto("u1", entity.AutomationStatusRejected, 300, 60, 2),
	}

	entries := BuildLeaderboard(users, automations)

	if entries[0].CreditsEarned != 100 {
		t.Errorf("CreditsEarned = %d, want 100 (approved only)", entries[0].CreditsEarned)
	}
	if entries[0].AutomationsCount != 1 {
		t.Errorf("AutomationsCount = %d, want 1", entries[0].AutomationsCount)
	}
	if entries[0].TimeSavedMinutes != 120 {
		t.Errorf("TimeSavedMinutes = %d, want 120", entries[0].TimeSavedMinutes)
	}
}

func TestBuildLeaderboard_DenseRankAndStableTies(t *testing.T) {
	users := []*entity.User{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: "Ben"},
		{ID: "u3", Name: "Cho"},
		{ID: "u4", Name: "Dee"},
	}
	automations := []*entity.Automation{
		auto("u1", entity.AutomationStatusApproved, 200, 60, 1),
		auto("u2", entity.AutomationStatusApproved, 200, 60, 1),
		auto("u3", entity.AutomationStatusApproved, 300, 60, 1),
		auto("u4", entity.AutomationStatusApproved, 100, 60, 1),
	}

	entries := BuildLeaderboard(users, automations)

	// u3 first, then the tied pair in input order, then u4 with a dense rank
	if entries[0].UserID != "u3" || entries[0].Rank != 1 {
		t.Errorf("entry 0 = %s rank %d, want u3 rank 1", entries[0].UserID, entries[0].Rank)
	}
	if entries[1].UserID != "u1" || entries[1].Rank != 2 {
		t.Errorf("entry 1 = %s rank %d, want u1 rank 2 (stable tie order)", entries[1].UserID, entries[1].Rank)
	}
	if entries[2].UserID != "u2" || entries[2].Rank != 2 {
		t.Errorf("entry 2 = %s rank %d, want u2 rank 2 (tie shares rank)", entries[2].UserID, entries[2].Rank)
	}
	if entries[3].UserID != "u4" || entries[3].Rank != 3 {
		t.Errorf("entry 3 = %s rank %d, want u4 rank 3 (dense)", entries[3].UserID, entries[3].Rank)
	}
}

func TestBuildLeaderboard_UserWithoutAutomations(t *testing.T) {
	users := []*entity.User{{ID: "u1", Name: "Ana"}}

	entries := BuildLeaderboard(users, nil)

	if len(entries) != 1 || entries[0].CreditsEarned != 0 || entries[0].Rank != 1 {
		t.Errorf("entries = %+v, want single zero entry with rank 1", entries)
	}
}
