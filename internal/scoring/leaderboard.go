package scoring

import (
	"sort"

	"github.com/garyjia/timebank/internal/domain/entity"
)

// LeaderboardEntry is a derived per-user ranking snapshot
type LeaderboardEntry struct {
	UserID           string `json:"user_id"`
	UserName         string `json:"user_name"`
	Department       string `json:"department"`
	CreditsEarned    int    `json:"credits_earned"`
	AutomationsCount int    `json:"automations_count"`
	TimeSavedMinutes int    `json:"time_saved_minutes"`
	Rank             int    `json:"rank"`
}

// BuildLeaderboard ranks users by credits earned from approved automations,
// descending. Ranks are dense (equal credit totals share a rank) and ties
// preserve the input order of the users slice.
func BuildLeaderboard(users []*entity.User, automations []*entity.Automation) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		e := LeaderboardEntry{UserID: u.ID, UserName: u.Name, Department: u.Department}
		for _, a := range automations {
			if a.UserID != u.ID || a.Status != entity.AutomationStatusApproved {
				continue
			}
			e.CreditsEarned += a.CreditsEarned
			e.AutomationsCount++
			e.TimeSavedMinutes += a.TotalTimeSaved()
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreditsEarned > entries[j].CreditsEarned
	})

	rank := 0
	prev := -1
	for i := range entries {
		if entries[i].CreditsEarned != prev {
			rank++
			prev = entries[i].CreditsEarned
		}
		entries[i].Rank = rank
	}

	return entries
}
