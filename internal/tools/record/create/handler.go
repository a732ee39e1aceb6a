package create

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/domain"
	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for create_fraud_record
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateFraudRecord(ctx, request, deps)
	}
}

// HandlerWithAI returns the tool handler function for create_fraud_record_with_ai
func HandlerWithAI(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateFraudRecordWithAI(ctx, request, deps)
	}
}

type createResponse struct {
	Success     bool   `json:"success"`
	ReferenceID string `json:"reference_id"`
	Message     string `json:"message"`
	CreatedAt   string `json:"created_at"`
}

func handleCreateFraudRecord(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("create_fraud_record"),
	)

	req, result := buildReportRequest(request)
	if result != nil {
		return result, nil
	}

	referenceID, err := deps.FraudService.CreateRecord(ctx, req)
	if err != nil {
		slog.Error("error creating fraud record", "transactionId", req.TransactionID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to create fraud record"), nil
	}

	rec, err := deps.FraudService.GetRecord(ctx, referenceID)
	if err != nil {
		slog.Error("error loading created fraud record", "referenceId", referenceID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to create fraud record"), nil
	}

	return tools.JSONResult(createResponse{
		Success:     true,
		ReferenceID: referenceID,
		Message:     "Fraud record created successfully",
		CreatedAt:   tools.FormatTimestamp(rec.CreatedAt),
	}), nil
}

type createWithAIResponse struct {
	Success     bool             `json:"success"`
	ReferenceID string           `json:"reference_id"`
	FraudRecord tools.RecordView `json:"fraud_record"`
	AIResponse  string           `json:"ai_response"`
	Message     string           `json:"message"`
}

func handleCreateFraudRecordWithAI(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("create_fraud_record_with_ai"),
	)

	req, result := buildReportRequest(request)
	if result != nil {
		return result, nil
	}

	referenceID, err := deps.FraudService.CreateRecord(ctx, req)
	if err != nil {
		slog.Error("error creating fraud record", "transactionId", req.TransactionID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to create fraud record"), nil
	}

	rec, err := deps.FraudService.GetRecord(ctx, referenceID)
	if err != nil {
		slog.Error("error loading created fraud record", "referenceId", referenceID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to create fraud record"), nil
	}

	aiResponse := deps.InsightService.NarrateRecordCreation(ctx, referenceID, rec)

	return tools.JSONResult(createWithAIResponse{
		Success:     true,
		ReferenceID: referenceID,
		FraudRecord: tools.NewRecordView(rec),
		AIResponse:  aiResponse,
		Message:     "Fraud record created successfully",
	}), nil
}

// buildReportRequest decodes and coerces the arguments. A non-nil result is
// the structured failure to return to the caller.
func buildReportRequest(request mcp.CallToolRequest) (*domain.FraudReportRequest, *mcp.CallToolResult) {
	var args CreateFraudRecordInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return nil, tools.FailureResult(err.Error(), "Failed to create fraud record")
	}

	var detectedAt time.Time
	if args.DetectedAt != "" {
		parsed, err := time.ParseInLocation(domain.TimeLayout, args.DetectedAt, time.Local)
		if err != nil {
			errMessage := fmt.Sprintf("detected_at must use the format %s", domain.TimeLayout)
			slog.Error(errMessage, "detectedAt", args.DetectedAt)
			return nil, tools.FailureResult(errMessage, "Failed to create fraud record")
		}
		detectedAt = parsed
	}

	return &domain.FraudReportRequest{
		UserID:         args.UserID,
		TransactionID:  args.TransactionID,
		Amount:         args.Amount.Float64(),
		Currency:       args.Currency,
		MerchantName:   args.MerchantName,
		FraudType:      args.FraudType,
		Description:    args.Description,
		RiskLevel:      args.RiskLevel,
		DetectedAt:     detectedAt,
		IPAddress:      args.IPAddress,
		Location:       args.Location,
		AdditionalInfo: args.AdditionalInfo,
	}, nil
}
