package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/garyjia/timebank/internal/scoring"
)

// ReportService renders the analytics views into an xlsx workbook
type ReportService interface {
	// Export builds the full analytics workbook and returns the file
	// contents together with a timestamped filename.
	Export(ctx context.Context) ([]byte, string, error)
}

type reportServiceImpl struct {
	analytics AnalyticsService
	logger    Logger
}

// NewReportService creates a new ReportService
func NewReportService(analytics AnalyticsService, logger Logger) ReportService {
	return &reportServiceImpl{analytics: analytics, logger: logger}
}

// Export builds a workbook with one sheet per analytics view
func (s *reportServiceImpl) Export(ctx context.Context) ([]byte, string, error) {
	overview, err := s.analytics.Overview(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load overview: %w", err)
	}
	departments, err := s.analytics.DepartmentStats(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load department stats: %w", err)
	}
	categories, err := s.analytics.CategoryStats(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load category stats: %w", err)
	}
	rewards, err := s.analytics.RewardStats(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load reward stats: %w", err)
	}
	roi, err := s.analytics.ROI(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load roi: %w", err)
	}
	leaderboard, err := s.analytics.Leaderboard(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load leaderboard: %w", err)
	}
	scores, err := s.analytics.CreditScores(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load scores: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// Overview sheet replaces the default one
	if err := f.SetSheetName("Sheet1", "Overview"); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}
	s.fillOverview(f, overview)

	if err := s.fillRows(f, "Departments",
		[]string{"Department", "Users", "Automations", "Time Saved (min)", "Credits Earned", "Credits Spent"},
		len(departments), func(i int) []interface{} {
			d := departments[i]
			return []interface{}{d.Department, d.Users, d.Automations, d.TimeSavedMinutes, d.CreditsEarned, d.CreditsSpent}
		}); err != nil {
		return nil, "", err
	}

	if err := s.fillRows(f, "Categories",
		[]string{"Category", "Automations", "Time Saved (min)", "Credits Earned", "Avg Time Saved (min)"},
		len(categories), func(i int) []interface{} {
			c := categories[i]
			return []interface{}{c.Category, c.Count, c.TimeSavedMinutes, c.CreditsEarned, c.AvgTimeSaved}
		}); err != nil {
		return nil, "", err
	}

	if err := s.fillRows(f, "Rewards",
		[]string{"Category", "Rewards", "Redemptions", "Credits Spent", "Avg Cost", "Popularity"},
		len(rewards), func(i int) []interface{} {
			r := rewards[i]
			return []interface{}{r.Category, r.TotalRewards, r.Redemptions, r.CreditsSpent, r.AvgCost, r.Popularity}
		}); err != nil {
		return nil, "", err
	}

	if err := s.fillROI(f, roi); err != nil {
		return nil, "", err
	}

	if err := s.fillRows(f, "Leaderboard",
		[]string{"Rank", "Name", "Department", "Credits Earned", "Automations", "Time Saved (min)"},
		len(leaderboard), func(i int) []interface{} {
			e := leaderboard[i]
			return []interface{}{e.Rank, e.UserName, e.Department, e.CreditsEarned, e.AutomationsCount, e.TimeSavedMinutes}
		}); err != nil {
		return nil, "", err
	}

	if err := s.fillRows(f, "Credit Scores",
		[]string{"Name", "Department", "Score", "Rating", "Trend"},
		len(scores), func(i int) []interface{} {
			u := scores[i]
			return []interface{}{u.Name, u.Department, u.Score.Score, u.Score.Rating, u.Score.Trend}
		}); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("analytics-%s.xlsx", time.Now().Format("20060102-150405"))
	s.logger.Info("Analytics workbook exported", "filename", filename, "bytes", buf.Len())
	return buf.Bytes(), filename, nil
}

func (s *reportServiceImpl) fillOverview(f *excelize.File, overview *Overview) {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total users", overview.TotalUsers},
		{"Total automations", overview.TotalAutomations},
		{"Approved automations", overview.ApprovedAutomations},
		{"Pending automations", overview.PendingAutomations},
		{"Total time saved (min)", overview.TotalTimeSaved},
		{"Total credits earned", overview.TotalCreditsEarned},
		{"Total credits spent", overview.TotalCreditsSpent},
		{"Pending redemptions", overview.PendingRedemptions},
		{"Fulfilled redemptions", overview.FulfilledRedemptions},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		s.setRow(f, "Overview", cell, row)
	}
}

func (s *reportServiceImpl) fillROI(f *excelize.File, roi *scoring.SystemROI) error {
	if _, err := f.NewSheet("ROI"); err != nil {
		return fmt.Errorf("create sheet ROI: %w", err)
	}

	system := [][]interface{}{
		{"System ROI", ""},
		{"Total cost savings (USD)", roi.TotalCostSavings},
		{"Total development cost (USD)", roi.TotalDevelopmentCost},
		{"Net ROI (USD)", roi.NetROI},
		{"ROI (%)", roi.ROIPercentage},
		{"Monthly savings run rate (USD)", roi.MonthlySavingsRunRate},
		{"Projected annual savings (USD)", roi.ProjectedAnnualSavings},
	}
	for i, row := range system {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		s.setRow(f, "ROI", cell, row)
	}

	header := []interface{}{"Department", "Hourly Rate", "Cost Savings", "Development Cost", "Net ROI", "ROI (%)", "Payback (months)"}
	base := len(system) + 2
	cell, _ := excelize.CoordinatesToCellName(1, base)
	s.setRow(f, "ROI", cell, header)
	for i, d := range roi.Departments {
		cell, _ := excelize.CoordinatesToCellName(1, base+1+i)
		s.setRow(f, "ROI", cell, []interface{}{
			d.Department, d.HourlyRate, d.CostSavings, d.DevelopmentCost, d.NetROI, d.ROIPercentage, d.PaybackMonths,
		})
	}
	return nil
}

func (s *reportServiceImpl) fillRows(f *excelize.File, sheet string, header []string, n int, row func(i int) []interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	cell, _ := excelize.CoordinatesToCellName(1, 1)
	s.setRow(f, sheet, cell, headerRow)

	for i := 0; i < n; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		s.setRow(f, sheet, cell, row(i))
	}
	return nil
}

func (s *reportServiceImpl) setRow(f *excelize.File, sheet, cell string, values []interface{}) {
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		s.logger.Error("Failed to set sheet row", "sheet", sheet, "cell", cell, "error", err)
	}
}
