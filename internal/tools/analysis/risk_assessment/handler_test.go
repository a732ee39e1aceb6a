package risk_assessment_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics "github.com/frauddesk/fraud-mcp/internal/analytics/mocks"
	"github.com/frauddesk/fraud-mcp/internal/domain"
	fraud_mocks "github.com/frauddesk/fraud-mcp/internal/fraud/mocks"
	insight_mocks "github.com/frauddesk/fraud-mcp/internal/insight/mocks"
	"github.com/frauddesk/fraud-mcp/internal/tools"
	"github.com/frauddesk/fraud-mcp/internal/tools/analysis/risk_assessment"
)

func TestGenerateUserRiskAssessmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("generate_user_risk_assessment").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("statistics computed from history", func(t *testing.T) {
		created := time.Now().Add(-time.Hour)
		history := []*domain.FraudRecord{
			{ID: "r1", UserID: "user-1", TransactionID: "t1", Amount: 100, Currency: "USD", RiskLevel: domain.RiskHigh, CreatedAt: created},
			{ID: "r2", UserID: "user-1", TransactionID: "t2", Amount: 50.5, Currency: "EUR", RiskLevel: domain.RiskHigh, CreatedAt: created},
			{ID: "r3", UserID: "user-1", TransactionID: "t3", Amount: 25, Currency: "USD", RiskLevel: domain.RiskLow, CreatedAt: created},
		}

		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetRecordsByUser(gomock.Any(), "user-1").
			Return(history, nil)

		insightService := insight_mocks.NewMockService(ctrl)
		insightService.EXPECT().
			AssessUserRisk(gomock.Any(), "user-1", gomock.Len(3)).
			Return("elevated risk profile")

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			InsightService:   insightService,
			AnalyticsService: analyticsService,
		}

		handler := risk_assessment.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"user_id": "user-1"}},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		textContent := result.Content[0].(mcp.TextContent)
		var response struct {
			Success        bool   `json:"success"`
			UserID         string `json:"user_id"`
			RiskAssessment string `json:"risk_assessment"`
			Statistics     struct {
				TotalIncidents  int     `json:"total_incidents"`
				HighRiskCount   int     `json:"high_risk_count"`
				MediumRiskCount int     `json:"medium_risk_count"`
				LowRiskCount    int     `json:"low_risk_count"`
				TotalAmount     float64 `json:"total_amount"`
			} `json:"statistics"`
		}
		if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.RiskAssessment != "elevated risk profile" {
			t.Errorf("Unexpected risk_assessment: %s", response.RiskAssessment)
		}
		if response.Statistics.TotalIncidents != 3 || response.Statistics.HighRiskCount != 2 || response.Statistics.LowRiskCount != 1 {
			t.Errorf("Unexpected statistics: %+v", response.Statistics)
		}
		if response.Statistics.TotalAmount != 175.5 {
			t.Errorf("Expected total_amount 175.5, got %v", response.Statistics.TotalAmount)
		}
	})

	t.Run("missing user_id", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			FraudService:     fraud_mocks.NewMockService(ctrl),
			InsightService:   insight_mocks.NewMockService(ctrl),
			AnalyticsService: analyticsService,
		}

		handler := risk_assessment.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{}},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for missing user_id")
		}
	})
}
