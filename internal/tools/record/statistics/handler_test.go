package statistics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics "github.com/frauddesk/fraud-mcp/internal/analytics/mocks"
	"github.com/frauddesk/fraud-mcp/internal/domain"
	fraud_mocks "github.com/frauddesk/fraud-mcp/internal/fraud/mocks"
	"github.com/frauddesk/fraud-mcp/internal/tools"
	"github.com/frauddesk/fraud-mcp/internal/tools/record/statistics"
)

func TestGetFraudStatisticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get_fraud_statistics").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("statistics returned with derived verified count", func(t *testing.T) {
		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetStatistics(gomock.Any()).
			Return(&domain.Statistics{
				TotalRecords:      10,
				HighRiskRecords:   4,
				MediumRiskRecords: 3,
				LowRiskRecords:    3,
				UnverifiedRecords: 6,
			}, nil)

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			AnalyticsService: analyticsService,
		}

		handler := statistics.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		textContent := result.Content[0].(mcp.TextContent)
		var response struct {
			Success    bool `json:"success"`
			Statistics struct {
				TotalRecords      int64 `json:"total_records"`
				HighRiskRecords   int64 `json:"high_risk_records"`
				UnverifiedRecords int64 `json:"unverified_records"`
				VerifiedRecords   int64 `json:"verified_records"`
			} `json:"statistics"`
			GeneratedAt string `json:"generated_at"`
		}
		if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Statistics.TotalRecords != 10 {
			t.Errorf("Expected 10 total records, got %d", response.Statistics.TotalRecords)
		}
		if response.Statistics.VerifiedRecords != 4 {
			t.Errorf("Expected 4 verified records, got %d", response.Statistics.VerifiedRecords)
		}
		if response.GeneratedAt == "" {
			t.Error("Expected generated_at to be set")
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetStatistics(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			AnalyticsService: analyticsService,
		}

		handler := statistics.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for storage failure")
		}
	})

	t.Run("nil fraud service", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			AnalyticsService: analyticsService,
		}

		handler := statistics.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil fraud service")
		}
	})
}
