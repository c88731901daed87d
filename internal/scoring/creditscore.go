package scoring

import (
	"math"
	"strings"

	"github.com/garyjia/timebank/internal/domain/entity"
)

// Credit score model: a composite 300-850 rating per user, scaled like a
// consumer credit score, from four weighted sub-scores each clamped to
// [0,100].
const (
	weightSuccess       = 0.40
	weightCollaboration = 0.30
	weightInnovation    = 0.20
	weightVelocity      = 0.10

	scoreFloor = 300
	scoreSpan  = 550

	maxComplexityHours = 20
)

// innovationCategories designates which submission categories count as
// innovative regardless of tags.
var innovationCategories = map[string]bool{
	"AI":               true,
	"Machine Learning": true,
	"Innovation":       true,
}

// Rating band names, inclusive at the lower bound
const (
	RatingExceptional = "Exceptional"
	RatingVeryGood    = "Very Good"
	RatingGood        = "Good"
	RatingFair        = "Fair"
	RatingPoor        = "Poor"
)

// Trend values for CreditScore
const (
	TrendUp     = "up"
	TrendStable = "stable"
	TrendDown   = "down"
)

// CreditScore is the composite rating for one user
type CreditScore struct {
	UserID             string  `json:"user_id"`
	Score              int     `json:"score"`
	Rating             string  `json:"rating"`
	Trend              string  `json:"trend"`
	SuccessScore       float64 `json:"success_score"`
	CollaborationScore float64 `json:"collaboration_score"`
	InnovationScore    float64 `json:"innovation_score"`
	VelocityScore      float64 `json:"velocity_score"`
}

// ComputeCreditScore derives the composite score for a user from their
// automation history and credit transactions. The automations slice should
// be in submission order; only entries belonging to the user are considered.
func ComputeCreditScore(user *entity.User, automations []*entity.Automation, transactions []*entity.CreditTransaction) CreditScore {
	var owned, approved []*entity.Automation
	for _, a := range automations {
		if a.UserID != user.ID {
			continue
		}
		owned = append(owned, a)
		if a.Status == entity.AutomationStatusApproved {
			approved = append(approved, a)
		}
	}

	success := successScore(owned, approved)
	collaboration := collaborationScore(approved)
	innovation := innovationScore(approved)
	velocity := velocityScore(user.ID, transactions)

	raw := success*weightSuccess + collaboration*weightCollaboration +
		innovation*weightInnovation + velocity*weightVelocity

	score := int(math.Round(scoreFloor + raw/100*scoreSpan))

	return CreditScore{
		UserID:             user.ID,
		Score:              score,
		Rating:             RatingForScore(score),
		Trend:              trend(owned),
		SuccessScore:       success,
		CollaborationScore: collaboration,
		InnovationScore:    innovation,
		VelocityScore:      velocity,
	}
}

// RatingForScore maps a score to its band. Bands are contiguous and
// partition the whole 300-850 range at 580/670/740/800.
func RatingForScore(score int) string {
	switch {
	case score >= 800:
		return RatingExceptional
	case score >= 740:
		return RatingVeryGood
	case score >= 670:
		return RatingGood
	case score >= 580:
		return RatingFair
	default:
		return RatingPoor
	}
}

func successScore(owned, approved []*entity.Automation) float64 {
	if len(owned) == 0 {
		return 0
	}
	return clamp100(float64(len(approved)) / float64(len(owned)) * 100)
}

func collaborationScore(approved []*entity.Automation) float64 {
	crossDept := 0
	for _, a := range approved {
		if isCrossDepartment(a) {
			crossDept++
		}
	}

	div := len(approved)
	if div == 0 {
		div = 1
	}
	score := float64(crossDept)/float64(div)*100 + float64(len(approved))*5
	return clamp100(score)
}

func innovationScore(approved []*entity.Automation) float64 {
	innovative := 0
	complexitySum := 0.0
	for _, a := range approved {
		if isInnovative(a) {
			innovative++
		}
		hours := float64(a.TotalTimeSaved()) / 60
		if hours > maxComplexityHours {
			hours = maxComplexityHours
		}
		complexitySum += hours
	}

	avgComplexity := 0.0
	if len(approved) > 0 {
		avgComplexity = complexitySum / float64(len(approved))
	}

	return clamp100(float64(innovative)*25 + avgComplexity)
}

// velocityScore is a step function of the user's spent/earned ratio: heavy
// redeemers score higher because circulating credits signal an engaged user.
func velocityScore(userID string, transactions []*entity.CreditTransaction) float64 {
	earned, spent := 0, 0
	for _, t := range transactions {
		if t.UserID != userID {
			continue
		}
		switch t.Type {
		case entity.TransactionEarned:
			earned += t.Amount
		case entity.TransactionSpent:
			spent += t.Amount
		}
	}

	ratio := 0.0
	if earned > 0 {
		ratio = float64(spent) / float64(earned)
	}

	switch {
	case ratio > 0.8:
		return 100
	case ratio > 0.5:
		return 80
	case ratio > 0.2:
		return 60
	default:
		return 40
	}
}

// trend is a recency proxy over the user's last three submissions, not a
// time-windowed computation: two or more recent approvals trend up, one is
// stable, none is down.
func trend(owned []*entity.Automation) string {
	start := len(owned) - 3
	if start < 0 {
		start = 0
	}

	approved := 0
	for _, a := range owned[start:] {
		if a.Status == entity.AutomationStatusApproved {
			approved++
		}
	}

	switch {
	case approved >= 2:
		return TrendUp
	case approved == 1:
		return TrendStable
	default:
		return TrendDown
	}
}

func isCrossDepartment(a *entity.Automation) bool {
	for _, tag := range a.Tags {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, "cross") || strings.Contains(lower, "shared") {
			return true
		}
	}
	return false
}

func isInnovative(a *entity.Automation) bool {
	if innovationCategories[a.Category] {
		return true
	}
	for _, tag := range a.Tags {
		lower := strings.ToLower(tag)
		if lower == "ai" || strings.Contains(lower, "innovation") {
			return true
		}
	}
	return false
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
