package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/storage"
	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for update_fraud_verification
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdateFraudVerification(ctx, request, deps)
	}
}

type updateVerificationResponse struct {
	Success     bool   `json:"success"`
	ReferenceID string `json:"reference_id"`
	IsVerified  bool   `json:"is_verified"`
	Message     string `json:"message"`
}

func handleUpdateFraudVerification(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("update_fraud_verification"),
	)

	var args UpdateFraudVerificationInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return tools.FailureResult(err.Error(), "Failed to update verification status"), nil
	}

	if args.ReferenceID == "" {
		errMessage := "reference_id parameter is required"
		slog.Error(errMessage)
		return tools.FailureResult(errMessage, "Failed to update verification status"), nil
	}

	if err := deps.FraudService.UpdateVerification(ctx, args.ReferenceID, args.Verified); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			errMessage := fmt.Sprintf("Fraud record not found with ID: %s", args.ReferenceID)
			return tools.FailureResult(errMessage, "Failed to update verification status"), nil
		}
		slog.Error("error updating verification status", "referenceId", args.ReferenceID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to update verification status"), nil
	}

	return tools.JSONResult(updateVerificationResponse{
		Success:     true,
		ReferenceID: args.ReferenceID,
		IsVerified:  args.Verified,
		Message:     "Verification status updated successfully",
	}), nil
}
