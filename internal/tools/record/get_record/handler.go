package get_record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/storage"
	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for get_fraud_record
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetFraudRecord(ctx, request, deps)
	}
}

type getRecordResponse struct {
	Success     bool             `json:"success"`
	FraudRecord tools.RecordView `json:"fraud_record"`
}

type notFoundResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func handleGetFraudRecord(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("get_fraud_record"),
	)

	var args GetFraudRecordInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return tools.FailureResult(err.Error(), "Failed to retrieve fraud record"), nil
	}

	if args.ReferenceID == "" {
		errMessage := "reference_id parameter is required"
		slog.Error(errMessage)
		return tools.FailureResult(errMessage, "Failed to retrieve fraud record"), nil
	}

	if err := uuid.Validate(args.ReferenceID); err != nil {
		slog.Error("malformed reference id", "referenceId", args.ReferenceID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to retrieve fraud record"), nil
	}

	rec, err := deps.FraudService.GetRecord(ctx, args.ReferenceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			body, _ := json.Marshal(notFoundResponse{
				Success: false,
				Message: fmt.Sprintf("Fraud record not found with ID: %s", args.ReferenceID),
			})
			return mcp.NewToolResultError(string(body)), nil
		}
		slog.Error("error retrieving fraud record", "referenceId", args.ReferenceID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to retrieve fraud record"), nil
	}

	return tools.JSONResult(getRecordResponse{
		Success:     true,
		FraudRecord: tools.NewRecordView(rec),
	}), nil
}
