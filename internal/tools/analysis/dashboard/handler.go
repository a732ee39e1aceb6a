package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for get_fraud_dashboard
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetFraudDashboard(ctx, request, deps)
	}
}

type dashboardStatistics struct {
	TotalRecords      int64 `json:"total_records"`
	HighRiskRecords   int64 `json:"high_risk_records"`
	MediumRiskRecords int64 `json:"medium_risk_records"`
	LowRiskRecords    int64 `json:"low_risk_records"`
	UnverifiedRecords int64 `json:"unverified_records"`
	VerifiedRecords   int64 `json:"verified_records"`
}

type dashboardData struct {
	Statistics              dashboardStatistics `json:"statistics"`
	RecentRecordsCount      int                 `json:"recent_records_count"`
	HighRiskUnverifiedCount int                 `json:"high_risk_unverified_count"`
	PatternSummary          string              `json:"pattern_summary"`
}

type dashboardResponse struct {
	Success       bool          `json:"success"`
	DashboardData dashboardData `json:"dashboard_data"`
	GeneratedAt   string        `json:"generated_at"`
}

func handleGetFraudDashboard(ctx context.Context, _ mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	if deps.InsightService == nil {
		errMessage := "Insight service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(
		deps.AnalyticsService.NewToolsEvent("get_fraud_dashboard"),
	)

	stats, err := deps.FraudService.GetStatistics(ctx)
	if err != nil {
		slog.Error("error retrieving statistics for dashboard", "error", err)
		return tools.FailureResult(err.Error(), "Failed to build fraud dashboard"), nil
	}

	recentRecords, err := deps.FraudService.GetRecentRecords(ctx)
	if err != nil {
		slog.Error("error retrieving recent records for dashboard", "error", err)
		return tools.FailureResult(err.Error(), "Failed to build fraud dashboard"), nil
	}

	highRiskUnverified, err := deps.FraudService.GetHighRiskUnverified(ctx)
	if err != nil {
		slog.Error("error retrieving high-risk unverified records for dashboard", "error", err)
		return tools.FailureResult(err.Error(), "Failed to build fraud dashboard"), nil
	}

	patternSummary := deps.InsightService.SummarizePatterns(ctx, recentRecords)

	return tools.JSONResult(dashboardResponse{
		Success: true,
		DashboardData: dashboardData{
			Statistics: dashboardStatistics{
				TotalRecords:      stats.TotalRecords,
				HighRiskRecords:   stats.HighRiskRecords,
				MediumRiskRecords: stats.MediumRiskRecords,
				LowRiskRecords:    stats.LowRiskRecords,
				UnverifiedRecords: stats.UnverifiedRecords,
				VerifiedRecords:   stats.VerifiedRecords(),
			},
			RecentRecordsCount:      len(recentRecords),
			HighRiskUnverifiedCount: len(highRiskUnverified),
			PatternSummary:          patternSummary,
		},
		GeneratedAt: tools.FormatTimestamp(time.Now()),
	}), nil
}
