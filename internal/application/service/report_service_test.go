package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/garyjia/timebank/internal/domain/entity"
)

func reportFixtureAnalytics() AnalyticsService {
	users := []*entity.User{
		{ID: "u1", Name: "Alice", Department: "Engineering", CreditBalance: 30},
		{ID: "u2", Name: "Bob", Department: "Finance"},
	}
	automations := []*entity.Automation{
		{
			ID: "a1", UserID: "u1", Category: "Data Processing",
			Status: entity.AutomationStatusApproved, CreditsEarned: 30,
			TimeSavedPerExecution: 45, TotalExecutions: 4,
		},
		{ID: "a2", UserID: "u2", Category: "Testing", Status: entity.AutomationStatusPending},
	}

	return NewAnalyticsService(
		&mockUserRepo{
			listFunc:  func(ctx context.Context) ([]*entity.User, error) { return users, nil },
			countFunc: func(ctx context.Context) (int, error) { return len(users), nil },
		},
		&mockAutomationRepo{
			listFunc: func(ctx context.Context) ([]*entity.Automation, error) { return automations, nil },
		},
		&mockRewardRepo{},
		&mockRedemptionRepo{},
		&mockTransactionRepo{},
		&mockChallengeRepo{},
		&mockLogger{},
	)
}

func TestReportService_Export(t *testing.T) {
	svc := NewReportService(reportFixtureAnalytics(), &mockLogger{})

	data, filename, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Contains(t, filename, ".xlsx")
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"Overview", "Departments", "Categories", "Rewards", "ROI", "Leaderboard", "Credit Scores"} {
		assert.Contains(t, sheets, want)
	}

	// Overview carries the approved automation's totals
	totalAutomations, err := f.GetCellValue("Overview", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", totalAutomations)
	timeSaved, err := f.GetCellValue("Overview", "B6")
	require.NoError(t, err)
	assert.Equal(t, "180", timeSaved)

	// Leaderboard has a header row plus one ranked entry per user
	rows, err := f.GetRows("Leaderboard")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Alice", rows[1][1])
}
