package user_records

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for get_user_fraud_records
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetUserFraudRecords(ctx, request, deps)
	}
}

type userRecordsResponse struct {
	Success      bool                  `json:"success"`
	UserID       string                `json:"user_id"`
	TotalRecords int                   `json:"total_records"`
	FraudRecords []tools.RecordSummary `json:"fraud_records"`
}

func handleGetUserFraudRecords(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("get_user_fraud_records"),
	)

	var args GetUserFraudRecordsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return tools.FailureResult(err.Error(), "Failed to retrieve user fraud records"), nil
	}

	if args.UserID == "" {
		errMessage := "user_id parameter is required"
		slog.Error(errMessage)
		return tools.FailureResult(errMessage, "Failed to retrieve user fraud records"), nil
	}

	records, err := deps.FraudService.GetRecordsByUser(ctx, args.UserID)
	if err != nil {
		slog.Error("error retrieving user fraud records", "userId", args.UserID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to retrieve user fraud records"), nil
	}

	return tools.JSONResult(userRecordsResponse{
		Success:      true,
		UserID:       args.UserID,
		TotalRecords: len(records),
		FraudRecords: tools.NewRecordSummaries(records, false),
	}), nil
}
