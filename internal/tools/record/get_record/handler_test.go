package get_record_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics "github.com/frauddesk/fraud-mcp/internal/analytics/mocks"
	"github.com/frauddesk/fraud-mcp/internal/domain"
	fraud_mocks "github.com/frauddesk/fraud-mcp/internal/fraud/mocks"
	"github.com/frauddesk/fraud-mcp/internal/storage"
	"github.com/frauddesk/fraud-mcp/internal/tools"
	"github.com/frauddesk/fraud-mcp/internal/tools/record/get_record"
)

const testReferenceID = "7f9c24e5-2f0c-4f2a-9b55-111111111111"

func TestGetFraudRecordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get_fraud_record").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("record found", func(t *testing.T) {
		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetRecord(gomock.Any(), testReferenceID).
			Return(&domain.FraudRecord{
				ID:            testReferenceID,
				UserID:        "user-1",
				TransactionID: "txn-100",
				Amount:        75,
				Currency:      "EUR",
				MerchantName:  "Acme",
				FraudType:     "phishing",
				RiskLevel:     domain.RiskMedium,
				CreatedAt:     time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
				DetectedAt:    time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
			}, nil)

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			AnalyticsService: analyticsService,
		}

		handler := get_record.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{
				"reference_id": testReferenceID,
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
			Success     bool             `json:"success"`
			FraudRecord tools.RecordView `json:"fraud_record"`
		}
		if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.FraudRecord.ID != testReferenceID {
			t.Errorf("Unexpected record id: %s", response.FraudRecord.ID)
		}
		if response.FraudRecord.RiskLevel != "MEDIUM" {
			t.Errorf("Unexpected risk level: %s", response.FraudRecord.RiskLevel)
		}
	})

	t.Run("record not found", func(t *testing.T) {
		fraudService := fraud_mocks.NewMockService(ctrl)
		fraudService.EXPECT().
			GetRecord(gomock.Any(), testReferenceID).
			Return(nil, fmt.Errorf("find record: %w", storage.ErrNotFound))

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			AnalyticsService: analyticsService,
		}

		handler := get_record.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{
				"reference_id": testReferenceID,
			}},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected error result")
		}

		textContent := result.Content[0].(mcp.TextContent)
		var response struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Success {
			t.Error("Expected success=false")
		}
		if response.Message != "Fraud record not found with ID: "+testReferenceID {
			t.Errorf("Unexpected message: %s", response.Message)
		}
	})

	t.Run("malformed reference id", func(t *testing.T) {
		fraudService := fraud_mocks.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			FraudService:     fraudService,
			AnalyticsService: analyticsService,
		}

		handler := get_record.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{
				"reference_id": "not-a-uuid",
			}},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected error result for malformed reference id")
		}

		textContent := result.Content[0].(mcp.TextContent)
		var response struct {
			Success bool `json:"success"`
		}
		if err := json.Unmarshal([]byte(textContent.Text), &response); err != nil {
			t.Fatalf("Failed to decode failure envelope: %v", err)
		}
		if response.Success {
			t.Error("Expected success=false")
		}
	})

	t.Run("missing reference id", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			FraudService:     fraud_mocks.NewMockService(ctrl),
			AnalyticsService: analyticsService,
		}

		handler := get_record.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{}},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for missing reference id")
		}
	})
}
