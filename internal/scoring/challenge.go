package scoring

import "github.com/garyjia/timebank/internal/domain/entity"

// ChallengeProgress is the derived standing of one challenge
type ChallengeProgress struct {
	ChallengeID string  `json:"challenge_id"`
	Metric      string  `json:"metric"`
	Target      int     `json:"target"`
	Current     int     `json:"current"`
	Percent     float64 `json:"percent"` // 0-100
	Completed   bool    `json:"completed"`
}

// ComputeChallengeProgress sums the challenge metric over the approved
// automations of enrolled participants. A zero target reports 100 percent
// to avoid dividing by zero on misconfigured challenges.
func ComputeChallengeProgress(challenge *entity.Challenge, automations []*entity.Automation) ChallengeProgress {
	enrolled := make(map[string]bool, len(challenge.Participants))
	for _, id := range challenge.Participants {
		enrolled[id] = true
	}

	current := 0
	for _, a := range automations {
		if !enrolled[a.UserID] || a.Status != entity.AutomationStatusApproved {
			continue
		}
		switch challenge.Metric {
		case entity.MetricCredits:
			current += a.CreditsEarned
		case entity.MetricAutomations:
			current++
		case entity.MetricTimeSaved:
			current += a.TotalTimeSaved() / 60
		}
	}

	progress := ChallengeProgress{
		ChallengeID: challenge.ID,
		Metric:      challenge.Metric,
		Target:      challenge.Target,
		Current:     current,
	}

	if challenge.Target <= 0 {
		progress.Percent = 100
	} else {
		progress.Percent = float64(current) / float64(challenge.Target) * 100
		if progress.Percent > 100 {
			progress.Percent = 100
		}
	}
	progress.Completed = current >= challenge.Target

	return progress
}
