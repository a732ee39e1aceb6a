package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics "github.com/frauddesk/fraud-mcp/internal/analytics/mocks"
	"github.com/frauddesk/fraud-mcp/internal/domain"
	fraud_mocks "github.com/frauddesk/fraud-mcp/internal/fraud/mocks"
	insight_mocks "github.com/frauddesk/fraud-mcp/internal/insight/mocks"
	"github.com/frauddesk/fraud-mcp/internal/tools"
	"github.com/frauddesk/fraud-mcp/internal/tools/analysis/dashboard"
)

func TestGetFraudDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get_fraud_dashboard").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("dashboard combines all sources", func(t *testing.T) {
		created := time.Now().Add(-time.Hour)
		recent := []*domain.FraudRecord{
			{ID: "r1", TransactionID: "t1", RiskLevel: domain.RiskHigh, CreatedAt: created},
			{ID: "r2", TransactionID: "t2", RiskLevel: domain.RiskLow, CreatedAt: created},
		}
		unverified := []*domain.FraudRecord{
			{ID: "r1", TransactionID: "t1", RiskLevel: domain.RiskHigh, CreatedAt: created},
		}

		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetStatistics(gomock.Any()).
			Return(&domain.Statistics{
				TotalRecords:      5,
				HighRiskRecords:   2,
				MediumRiskRecords: 2,
				LowRiskRecords:    1,
				UnverifiedRecords: 3,
			}, nil)
		fraudService.EXPECT().
			GetRecentRecords(gomock.Any()).
			Return(recent, nil)
		fraudService.EXPECT().
			GetHighRiskUnverified(gomock.Any()).
			Return(unverified, nil)

		insightService := insight_mocks.NewMockService(ctrl)
		insightService.EXPECT().
			SummarizePatterns(gomock.Any(), gomock.Len(2)).
			Return("pattern summary text")

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			InsightService:   insightService,
			AnalyticsService: analyticsService,
		}

		handler := dashboard.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		textContent := result.Content[0].(mcp.TextContent)
		var response struct {
			Success       bool `json:"success"`
			DashboardData struct {
				Statistics struct {
					TotalRecords    int64 `json:"total_records"`
					VerifiedRecords int64 `json:"verified_records"`
				} `json:"statistics"`
				RecentRecordsCount      int    `json:"recent_records_count"`
				HighRiskUnverifiedCount int    `json:"high_risk_unverified_count"`
				PatternSummary          string `json:"pattern_summary"`
			} `json:"dashboard_data"`
			GeneratedAt string `json:"generated_at"`
		}
		if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.DashboardData.Statistics.TotalRecords != 5 {
			t.Errorf("Expected 5 total records, got %d", response.DashboardData.Statistics.TotalRecords)
		}
		if response.DashboardData.Statistics.VerifiedRecords != 2 {
			t.Errorf("Expected 2 verified records, got %d", response.DashboardData.Statistics.VerifiedRecords)
		}
		if response.DashboardData.RecentRecordsCount != 2 {
			t.Errorf("Expected 2 recent records, got %d", response.DashboardData.RecentRecordsCount)
		}
		if response.DashboardData.HighRiskUnverifiedCount != 1 {
			t.Errorf("Expected 1 high-risk unverified record, got %d", response.DashboardData.HighRiskUnverifiedCount)
		}
		if response.DashboardData.PatternSummary != "pattern summary text" {
			t.Errorf("Unexpected pattern_summary: %s", response.DashboardData.PatternSummary)
		}
	})

	t.Run("statistics failure", func(t *testing.T) {
		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetStatistics(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			InsightService:   insight_mocks.NewMockService(ctrl),
			AnalyticsService: analyticsService,
		}

		handler := dashboard.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for storage failure")
		}
	})
}
