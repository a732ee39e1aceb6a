package risk_assessment

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/domain"
	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for generate_user_risk_assessment
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGenerateUserRiskAssessment(ctx, request, deps)
	}
}

type userStatistics struct {
	TotalIncidents  int     `json:"total_incidents"`
	HighRiskCount   int     `json:"high_risk_count"`
	MediumRiskCount int     `json:"medium_risk_count"`
	LowRiskCount    int     `json:"low_risk_count"`
	TotalAmount     float64 `json:"total_amount"`
}

type riskAssessmentResponse struct {
	Success        bool           `json:"success"`
	UserID         string         `json:"user_id"`
	RiskAssessment string         `json:"risk_assessment"`
	Statistics     userStatistics `json:"statistics"`
	GeneratedAt    string         `json:"generated_at"`
}

func handleGenerateUserRiskAssessment(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("generate_user_risk_assessment"),
	)

	var args GenerateUserRiskAssessmentInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return tools.FailureResult(err.Error(), "Failed to generate risk assessment"), nil
	}

	if args.UserID == "" {
		errMessage := "user_id parameter is required"
		slog.Error(errMessage)
		return tools.FailureResult(errMessage, "Failed to generate risk assessment"), nil
	}

	records, err := deps.FraudService.GetRecordsByUser(ctx, args.UserID)
	if err != nil {
		slog.Error("error retrieving records for risk assessment", "userId", args.UserID, "error", err)
		return tools.FailureResult(err.Error(), "Failed to generate risk assessment"), nil
	}

	assessment := deps.InsightService.AssessUserRisk(ctx, args.UserID, records)

	return tools.JSONResult(riskAssessmentResponse{
		Success:        true,
		UserID:         args.UserID,
		RiskAssessment: assessment,
		Statistics:     summarize(records),
		GeneratedAt:    tools.FormatTimestamp(time.Now()),
	}), nil
}

// summarize counts incidents per risk level and sums amounts. Amounts are
// added as-is, with no currency conversion.
func summarize(records []*domain.FraudRecord) userStatistics {
	stats := userStatistics{TotalIncidents: len(records)}
	for _, rec := range records {
		stats.TotalAmount += rec.Amount
		switch rec.RiskLevel {
		case domain.RiskHigh:
			stats.HighRiskCount++
		case domain.RiskMedium:
			stats.MediumRiskCount++
		case domain.RiskLow:
			stats.LowRiskCount++
		}
	}
	return stats
}
