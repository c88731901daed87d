package scoring

import "math"

// ROI model constants. These are illustrative business-value assumptions,
// not measured facts; every figure derived from them is a model output.
const (
	defaultHourlyRate       = 50.0
	devCostPerHour          = 75.0
	avgDevHoursPerAuto      = 8.0
	qualityFactor           = 0.85
	monthlyGrowthRate       = 0.05
	creditValueUSD          = 5.0 // one credit = 6 minutes at the default rate
	defaultRewardMultiplier = 1.0
)

// hourlyRates maps departments to blended hourly labor rates
var hourlyRates = map[string]float64{
	"Engineering": 85,
	"Finance":     75,
	"Sales":       70,
	"Marketing":   65,
	"Operations":  65,
	"HR":          60,
}

// rewardMultipliers weights redemption spend by the expected productivity
// return of the reward category. Unknown categories fall back to 1.0.
var rewardMultipliers = map[string]float64{
	"learning":    1.5,
	"innovation":  1.4,
	"wellness":    1.2,
	"team":        1.1,
	"time-off":    1.0,
	"recognition": 0.9,
}

// HourlyRateFor returns the blended hourly rate for a department, falling
// back to the default rate for unknown departments.
func HourlyRateFor(department string) float64 {
	if rate, ok := hourlyRates[department]; ok {
		return rate
	}
	return defaultHourlyRate
}

// DepartmentROI is the business-return projection for one department
type DepartmentROI struct {
	Department      string  `json:"department"`
	HourlyRate      float64 `json:"hourly_rate"`
	CostSavings     float64 `json:"cost_savings"`
	DevelopmentCost float64 `json:"development_cost"`
	NetROI          float64 `json:"net_roi"`
	ROIPercentage   float64 `json:"roi_percentage"`
	PaybackMonths   float64 `json:"payback_months"`
}

// SystemROI rolls the per-department projections up to company level
type SystemROI struct {
	Departments            []DepartmentROI `json:"departments"`
	TotalCostSavings       float64         `json:"total_cost_savings"`
	TotalDevelopmentCost   float64         `json:"total_development_cost"`
	NetROI                 float64         `json:"net_roi"`
	ROIPercentage          float64         `json:"roi_percentage"`
	ProjectedAnnualSavings float64         `json:"projected_annual_savings"`
	MonthlySavingsRunRate  float64         `json:"monthly_savings_run_rate"`
}

// ComputeDepartmentROI projects cost savings and development cost for a
// single department's aggregated stats. Zero development cost short-circuits
// the percentage to 0 rather than dividing by zero, and payback is only
// reported when the net return is positive.
func ComputeDepartmentROI(stats DepartmentStats) DepartmentROI {
	rate := HourlyRateFor(stats.Department)
	costSavings := float64(stats.TimeSavedMinutes) / 60 * rate * qualityFactor
	devCost := float64(stats.Automations) * devCostPerHour * avgDevHoursPerAuto
	net := costSavings - devCost

	roi := DepartmentROI{
		Department:      stats.Department,
		HourlyRate:      rate,
		CostSavings:     costSavings,
		DevelopmentCost: devCost,
		NetROI:          net,
	}

	if devCost > 0 {
		roi.ROIPercentage = net / devCost * 100
	}
	if net > 0 && costSavings > 0 {
		roi.PaybackMonths = devCost / (costSavings / 12)
	}

	return roi
}

// ComputeSystemROI folds department projections into a company rollup with
// a projected annual savings figure that assumes a fixed monthly growth rate.
func ComputeSystemROI(departments []DepartmentStats) SystemROI {
	sys := SystemROI{Departments: make([]DepartmentROI, 0, len(departments))}

	for _, d := range departments {
		roi := ComputeDepartmentROI(d)
		sys.Departments = append(sys.Departments, roi)
		sys.TotalCostSavings += roi.CostSavings
		sys.TotalDevelopmentCost += roi.DevelopmentCost
	}

	sys.NetROI = sys.TotalCostSavings - sys.TotalDevelopmentCost
	if sys.TotalDevelopmentCost > 0 {
		sys.ROIPercentage = sys.NetROI / sys.TotalDevelopmentCost * 100
	}

	sys.MonthlySavingsRunRate = sys.TotalCostSavings / 12
	sys.ProjectedAnnualSavings = sys.MonthlySavingsRunRate * 12 * (1 + monthlyGrowthRate)

	return sys
}

// RewardInvestmentValue estimates the productivity value returned by credits
// spent in a reward category: spend converted to dollars at the canonical
// credit value, weighted by the category multiplier.
func RewardInvestmentValue(category string, creditsSpent int) float64 {
	mult, ok := rewardMultipliers[category]
	if !ok {
		mult = defaultRewardMultiplier
	}
	return math.Round(float64(creditsSpent)*creditValueUSD*mult*100) / 100
}
