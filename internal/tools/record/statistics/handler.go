package statistics

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for get_fraud_statistics
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetFraudStatistics(ctx, request, deps)
	}
}

type statisticsBody struct {
	TotalRecords      int64 `json:"total_records"`
	HighRiskRecords   int64 `json:"high_risk_records"`
	MediumRiskRecords int64 `json:"medium_risk_records"`
	LowRiskRecords    int64 `json:"low_risk_records"`
	UnverifiedRecords int64 `json:"unverified_records"`
	VerifiedRecords   int64 `json:"verified_records"`
}

type statisticsResponse struct {
	Success     bool           `json:"success"`
	Statistics  statisticsBody `json:"statistics"`
	GeneratedAt string         `json:"generated_at"`
}

func handleGetFraudStatistics(ctx context.Context, _ mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("get_fraud_statistics"),
	)

	stats, err := deps.FraudService.GetStatistics(ctx)
	if err != nil {
		slog.Error("error retrieving fraud statistics", "error", err)
		return tools.FailureResult(err.Error(), "Failed to retrieve fraud statistics"), nil
	}

	return tools.JSONResult(statisticsResponse{
		Success: true,
		Statistics: statisticsBody{
			TotalRecords:      stats.TotalRecords,
			HighRiskRecords:   stats.HighRiskRecords,
			MediumRiskRecords: stats.MediumRiskRecords,
			LowRiskRecords:    stats.LowRiskRecords,
			UnverifiedRecords: stats.UnverifiedRecords,
			VerifiedRecords:   stats.VerifiedRecords(),
		},
		GeneratedAt: tools.FormatTimestamp(time.Now()),
	}), nil
}
