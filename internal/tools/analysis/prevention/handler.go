package prevention

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for get_fraud_prevention_tips
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetFraudPreventionTips(ctx, request, deps)
	}
}

type preventionTipsResponse struct {
	Success        bool   `json:"success"`
	FraudType      string `json:"fraud_type"`
	RiskLevel      string `json:"risk_level"`
	PreventionTips string `json:"prevention_tips"`
	GeneratedAt    string `json:"generated_at"`
}

func handleGetFraudPreventionTips(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService == nil {
		errMessage := "Analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.InsightService == nil {
		errMessage := "Insight service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(
		deps.AnalyticsService.NewToolsEvent("get_fraud_prevention_tips"),
	)

	var args GetFraudPreventionTipsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return tools.FailureResult(err.Error(), "Failed to generate fraud prevention tips"), nil
	}

	if args.FraudType == "" {
		errMessage := "fraud_type parameter is required"
		slog.Error(errMessage)
		return tools.FailureResult(errMessage, "Failed to generate fraud prevention tips"), nil
	}

	if args.RiskLevel == "" {
		errMessage := "risk_level parameter is required"
		slog.Error(errMessage)
		return tools.FailureResult(errMessage, "Failed to generate fraud prevention tips"), nil
	}

	tips := deps.InsightService.PreventionTips(ctx, args.FraudType, args.RiskLevel)

	return tools.JSONResult(preventionTipsResponse{
		Success:        true,
		FraudType:      args.FraudType,
		RiskLevel:      args.RiskLevel,
		PreventionTips: tips,
		GeneratedAt:    tools.FormatTimestamp(time.Now()),
	}), nil
}
