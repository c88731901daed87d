package scoring

import (
	"math"
	"testing"
)

func TestHourlyRateFor(t *testing.T) {
	if got := HourlyRateFor("Engineering"); got != 85 {
		t.Errorf("HourlyRateFor(Engineering) = %v, want 85", got)
	}
	if got := HourlyRateFor("Cryptozoology"); got != defaultHourlyRate {
		t.Errorf("HourlyRateFor(unknown) = %v, want default %v", got, defaultHourlyRate)
	}
}

func TestComputeDepartmentROI(t *testing.T) {
	stats := DepartmentStats{
		Department:       "Engineering",
		Automations:      2,
		TimeSavedMinutes: 6000, // 100 hours
	}

	roi := ComputeDepartmentROI(stats)

	wantSavings := 100 * 85 * qualityFactor
	if math.Abs(roi.CostSavings-wantSavings) > 1e-9 {
		t.Errorf("CostSavings = %v, want %v", roi.CostSavings, wantSavings)
	}

	wantDevCost := 2 * devCostPerHour * avgDevHoursPerAuto
	if roi.DevelopmentCost != wantDevCost {
		t.Errorf("DevelopmentCost = %v, want %v", roi.DevelopmentCost, wantDevCost)
	}

	wantNet := wantSavings - wantDevCost
	if math.Abs(roi.NetROI-wantNet) > 1e-9 {
		t.Errorf("NetROI = %v, want %v", roi.NetROI, wantNet)
	}

	wantPct := wantNet / wantDevCost * 100
	if math.Abs(roi.ROIPercentage-wantPct) > 1e-9 {
		t.Errorf("ROIPercentage = %v, want %v", roi.ROIPercentage, wantPct)
	}

	wantPayback := wantDevCost / (wantSavings / 12)
	if math.Abs(roi.PaybackMonths-wantPayback) > 1e-9 {
		t.Errorf("PaybackMonths = %v, want %v", roi.PaybackMonths, wantPayback)
	}
}

func TestComputeDepartmentROI_EmptyDepartment(t *testing.T) {
	roi := ComputeDepartmentROI(DepartmentStats{Department: "HR"})

	if roi.ROIPercentage != 0 {
		t.Errorf("ROIPercentage = %v, want 0 with zero development cost", roi.ROIPercentage)
	}
	if roi.PaybackMonths != 0 {
		t.Errorf("PaybackMonths = %v, want 0 with no net return", roi.PaybackMonths)
	}
	if math.IsNaN(roi.ROIPercentage) || math.IsInf(roi.ROIPercentage, 0) {
		t.Error("ROIPercentage is NaN or Inf")
	}
}

func TestComputeDepartmentROI_NegativeNetSkipsPayback(t *testing.T) {
	// one automation, barely any time saved: dev cost dominates
	roi := ComputeDepartmentROI(DepartmentStats{Department: "Sales", Automations: 1, TimeSavedMinutes: 60})

	if roi.NetROI >= 0 {
		t.Fatalf("NetROI = %v, expected negative scenario", roi.NetROI)
	}
	if roi.PaybackMonths != 0 {
		t.Errorf("PaybackMonths = %v, want 0 when net is negative", roi.PaybackMonths)
	}
}

func TestComputeSystemROI(t *testing.T) {
	departments := []DepartmentStats{
		{Department: "Engineering", Automations: 2, TimeSavedMinutes: 6000},
		{Department: "Marketing", Automations: 1, TimeSavedMinutes: 1200},
	}

	sys := ComputeSystemROI(departments)

	if len(sys.Departments) != 2 {
		t.Fatalf("got %d department projections, want 2", len(sys.Departments))
	}

	var wantSavings, wantDev float64
	for _, d := range sys.Departments {
		wantSavings += d.CostSavings
		wantDev += d.DevelopmentCost
	}
	if math.Abs(sys.TotalCostSavings-wantSavings) > 1e-9 {
		t.Errorf("TotalCostSavings = %v, want %v", sys.TotalCostSavings, wantSavings)
	}
	if math.Abs(sys.NetROI-(wantSavings-wantDev)) > 1e-9 {
		t.Errorf("NetROI = %v, want %v", sys.NetROI, wantSavings-wantDev)
	}

	wantProjected := wantSavings / 12 * 12 * (1 + monthlyGrowthRate)
	if math.Abs(sys.ProjectedAnnualSavings-wantProjected) > 1e-9 {
		t.Errorf("ProjectedAnnualSavings = %v, want %v", sys.ProjectedAnnualSavings, wantProjected)
	}
}

func TestComputeSystemROI_Empty(t *testing.T) {
	sys := ComputeSystemROI(nil)

	if sys.ROIPercentage != 0 || sys.ProjectedAnnualSavings != 0 {
		t.Errorf("empty system ROI = %+v, want zeros", sys)
	}
}

func TestRewardInvestmentValue(t *testing.T) {
	tests := []struct {
		category string
		credits  int
		expected float64
	}{
		{"learning", 100, 750},  // 100 * 5 * 1.5
		{"time-off", 100, 500},  // multiplier 1.0
		{"mystery", 100, 500},   // unknown falls back to 1.0
		{"recognition", 10, 45}, // 10 * 5 * 0.9
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := RewardInvestmentValue(tt.category, tt.credits); got != tt.expected {
				t.Errorf("RewardInvestmentValue(%s, %d) = %v, want %v", tt.category, tt.credits, got, tt.expected)
			}
		})
	}
}
