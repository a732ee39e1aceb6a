package recent

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for get_recent_fraud_records
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetRecentFraudRecords(ctx, request, deps)
	}
}

type recentRecordsResponse struct {
	Success      bool                  `json:"success"`
	TotalRecords int                   `json:"total_records"`
	Period       string                `json:"period"`
	FraudRecords []tools.RecordSummary `json:"fraud_records"`
}

func handleGetRecentFraudRecords(ctx context.Context, _ mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService == nil {
		errMessage := "Analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.FraudService == nil {
		errMessage := "Fraud service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(
		deps.AnalyticsService.NewToolsEvent("get_recent_fraud_records"),
	)

	records, err := deps.FraudService.GetRecentRecords(ctx)
	if err != nil {
		slog.Error("error retrieving recent fraud records", "error", err)
		return tools.FailureResult(err.Error(), "Failed to retrieve recent fraud records"), nil
	}

	return tools.JSONResult(recentRecordsResponse{
		Success:      true,
		TotalRecords: len(records),
		Period:       "Last 30 days",
		FraudRecords: tools.NewRecordSummaries(records, true),
	}), nil
}
