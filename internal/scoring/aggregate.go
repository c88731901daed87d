package scoring

import (
	"sort"

	"github.com/garyjia/timebank/internal/domain/entity"
)

// DepartmentStats aggregates approved-automation impact per department
type DepartmentStats struct {
	Department       string `json:"department"`
	Users            int    `json:"users"`
	Automations      int    `json:"automations"`
	CreditsEarned    int    `json:"credits_earned"`
	CreditsSpent     int    `json:"credits_spent"`
	TimeSavedMinutes int    `json:"time_saved_minutes"`
	Redemptions      int    `json:"redemptions"`
}

// CategoryStats aggregates approved automations per submission category
type CategoryStats struct {
	Category         string  `json:"category"`
	Count            int     `json:"count"`
	TimeSavedMinutes int     `json:"time_saved_minutes"`
	CreditsEarned    int     `json:"credits_earned"`
	AvgTimeSaved     float64 `json:"avg_time_saved"`
}

// RewardCategoryStats aggregates approved redemption spend per reward category
type RewardCategoryStats struct {
	Category     string  `json:"category"`
	TotalRewards int     `json:"total_rewards"`
	Redemptions  int     `json:"redemptions"`
	CreditsSpent int     `json:"credits_spent"`
	AvgCost      float64 `json:"avg_cost"`
	Popularity   int     `json:"popularity"` // mean of member reward popularity
}

// AggregateByDepartment groups users by department and folds in the impact
// of each department member's approved automations and redemption requests.
// Only approved automations count towards earned metrics; redemption costs
// are summed across all request statuses, matching the admin dashboard.
// Automations whose owner is unknown are skipped rather than failing the
// whole pass. Output order is by department name for stable display.
func AggregateByDepartment(users []*entity.User, automations []*entity.Automation, redemptions []*entity.Redemption) []DepartmentStats {
	byDept := make(map[string]*DepartmentStats)
	order := make([]string, 0)

	get := func(dept string) *DepartmentStats {
		s, ok := byDept[dept]
		if !ok {
			s = &DepartmentStats{Department: dept}
			byDept[dept] = s
			order = append(order, dept)
		}
		return s
	}

	deptByUser := make(map[string]string, len(users))
	for _, u := range users {
		deptByUser[u.ID] = u.Department
		get(u.Department).Users++
	}

	for _, a := range automations {
		dept, ok := deptByUser[a.UserID]
		if !ok || a.Status != entity.AutomationStatusApproved {
			continue
		}
		s := get(dept)
		s.Automations++
		s.CreditsEarned += a.CreditsEarned
		s.TimeSavedMinutes += a.TotalTimeSaved()
	}

	for _, r := range redemptions {
		dept, ok := deptByUser[r.UserID]
		if !ok {
			continue
		}
		s := get(dept)
		s.Redemptions++
		s.CreditsSpent += r.CreditsCost
	}

	sort.Strings(order)
	out := make([]DepartmentStats, 0, len(order))
	for _, dept := range order {
		out = append(out, *byDept[dept])
	}
	return out
}

// AggregateByCategory groups approved automations by category. AvgTimeSaved
// always reflects the final running count for the group.
func AggregateByCategory(automations []*entity.Automation) []CategoryStats {
	byCat := make(map[string]*CategoryStats)
	order := make([]string, 0)

	for _, a := range automations {
		if a.Status != entity.AutomationStatusApproved {
			continue
		}
		s, ok := byCat[a.Category]
		if !ok {
			s = &CategoryStats{Category: a.Category}
			byCat[a.Category] = s
			order = append(order, a.Category)
		}
		s.Count++
		s.TimeSavedMinutes += a.TotalTimeSaved()
		s.CreditsEarned += a.CreditsEarned
		s.AvgTimeSaved = float64(s.TimeSavedMinutes) / float64(s.Count)
	}

	out := make([]CategoryStats, 0, len(order))
	for _, cat := range order {
		out = append(out, *byCat[cat])
	}
	return out
}

// AggregateByRewardCategory groups the reward catalog by category and folds
// in approved redemption spend. Redemptions referencing an unknown reward
// are skipped. AvgCost divides by max(redemptions, 1) so empty categories
// report zero instead of NaN.
func AggregateByRewardCategory(rewards []*entity.Reward, redemptions []*entity.Redemption) []RewardCategoryStats {
	byCat := make(map[string]*RewardCategoryStats)
	order := make([]string, 0)
	catByReward := make(map[string]string, len(rewards))
	popularitySum := make(map[string]int)

	for _, rw := range rewards {
		catByReward[rw.ID] = rw.Category
		s, ok := byCat[rw.Category]
		if !ok {
			s = &RewardCategoryStats{Category: rw.Category}
			byCat[rw.Category] = s
			order = append(order, rw.Category)
		}
		s.TotalRewards++
		popularitySum[rw.Category] += rw.Popularity
	}

	for _, r := range redemptions {
		if r.Status != entity.RedemptionStatusApproved {
			continue
		}
		cat, ok := catByReward[r.RewardID]
		if !ok {
			continue
		}
		s := byCat[cat]
		s.Redemptions++
		s.CreditsSpent += r.CreditsCost
	}

	out := make([]RewardCategoryStats, 0, len(order))
	for _, cat := range order {
		s := byCat[cat]
		div := s.Redemptions
		if div == 0 {
			div = 1
		}
		s.AvgCost = float64(s.CreditsSpent) / float64(div)
		if s.TotalRewards > 0 {
			s.Popularity = popularitySum[cat] / s.TotalRewards
		}
		out = append(out, *s)
	}
	return out
}
