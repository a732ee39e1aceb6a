package patterns_test

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
	"github.com/frauddesk/fraud-mcp/internal/tools/analysis/patterns"
)

func recentSet() []*domain.FraudRecord {
	created := time.Now().Add(-48 * time.Hour)
	return []*domain.FraudRecord{
		{ID: "rec-1", UserID: "u1", TransactionID: "t1", Amount: 10, Currency: "USD", MerchantName: "A", FraudType: "card_fraud", RiskLevel: domain.RiskHigh, CreatedAt: created},
		{ID: "rec-2", UserID: "u2", TransactionID: "t2", Amount: 20, Currency: "USD", MerchantName: "B", FraudType: "phishing", RiskLevel: domain.RiskHigh, CreatedAt: created},
		{ID: "rec-3", UserID: "u3", TransactionID: "t3", Amount: 30, Currency: "USD", MerchantName: "C", FraudType: "card_fraud", RiskLevel: domain.RiskLow, CreatedAt: created},
	}
}

func TestAnalyzeFraudPatternsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("analyze_fraud_patterns").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("filters are case-insensitive", func(t *testing.T) {
		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetRecentRecords(gomock.Any()).
			Return(recentSet(), nil)

		insightService := insight_mocks.NewMockService(ctrl)
		insightService.EXPECT().
			SummarizePatterns(gomock.Any(), gomock.Len(1)).
			DoAndReturn(func(_ context.Context, records []*domain.FraudRecord) string {
				if records[0].ID != "rec-1" {
					t.Errorf("Expected rec-1 after filtering, got %s", records[0].ID)
				}
				return "analysis text"
			})

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			InsightService:   insightService,
			AnalyticsService: analyticsService,
		}

		handler := patterns.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{
				"risk_level": "high",
				"fraud_type": "CARD_FRAUD",
			}},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		textContent := result.Content[0].(mcp.TextContent)
		var response struct {
			Success              bool   `json:"success"`
			TotalRecordsAnalyzed int    `json:"total_records_analyzed"`
			AnalysisPeriod       string `json:"analysis_period"`
			AIAnalysis           string `json:"ai_analysis"`
		}
		if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.TotalRecordsAnalyzed != 1 {
			t.Errorf("Expected 1 record analyzed, got %d", response.TotalRecordsAnalyzed)
		}
		if response.AnalysisPeriod != "Last 30 days" {
			t.Errorf("Unexpected analysis_period: %s", response.AnalysisPeriod)
		}
		if response.AIAnalysis != "analysis text" {
			t.Errorf("Unexpected ai_analysis: %s", response.AIAnalysis)
		}
	})

	t.Run("days argument does not change the window", func(t *testing.T) {
		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetRecentRecords(gomock.Any()).
			Return(recentSet(), nil)

		insightService := insight_mocks.NewMockService(ctrl)
		insightService.EXPECT().
			SummarizePatterns(gomock.Any(), gomock.Len(3)).
			Return("analysis text")

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			InsightService:   insightService,
			AnalyticsService: analyticsService,
		}

		handler := patterns.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"days": 90}},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		textContent := result.Content[0].(mcp.TextContent)
		var response struct {
			AnalysisPeriod string `json:"analysis_period"`
		}
		if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.AnalysisPeriod != "Last 30 days" {
			t.Errorf("Expected fixed 30-day period, got %s", response.AnalysisPeriod)
		}
	})

	t.Run("nil insight service", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			FraudService:     fraud_mocks.NewMockService(ctrl),
			AnalyticsService: analyticsService,
		}

		handler := patterns.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil insight service")
		}
	})
}
