package patterns

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/domain"
	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// Handler returns the tool handler function for analyze_fraud_patterns
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAnalyzeFraudPatterns(ctx, request, deps)
	}
}

type analyzePatternsResponse struct {
	Success              bool   `json:"success"`
	TotalRecordsAnalyzed int    `json:"total_records_analyzed"`
	AnalysisPeriod       string `json:"analysis_period"`
	AIAnalysis           string `json:"ai_analysis"`
	GeneratedAt          string `json:"generated_at"`
}

func handleAnalyzeFraudPatterns(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
		deps.AnalyticsService.NewToolsEvent("analyze_fraud_patterns"),
	)

	var args AnalyzeFraudPatternsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return tools.FailureResult(err.Error(), "Failed to analyze fraud patterns"), nil
	}

	records, err := deps.FraudService.GetRecentRecords(ctx)
	if err != nil {
		slog.Error("error retrieving records for pattern analysis", "error", err)
		return tools.FailureResult(err.Error(), "Failed to analyze fraud patterns"), nil
	}

	filtered := filterRecords(records, args.RiskLevel, args.FraudType)

	slog.Info("analyzing fraud patterns",
		"totalRecords", len(records),
		"filteredRecords", len(filtered),
		"riskLevel", args.RiskLevel,
		"fraudType", args.FraudType)

	analysis := deps.InsightService.SummarizePatterns(ctx, filtered)

	return tools.JSONResult(analyzePatternsResponse{
		Success:              true,
		TotalRecordsAnalyzed: len(filtered),
		AnalysisPeriod:       "Last 30 days",
		AIAnalysis:           analysis,
		GeneratedAt:          tools.FormatTimestamp(time.Now()),
	}), nil
}

// filterRecords applies the optional risk-level and fraud-type filters with
// case-insensitive exact matching.
func filterRecords(records []*domain.FraudRecord, riskLevel, fraudType string) []*domain.FraudRecord {
	if riskLevel == "" && fraudType == "" {
		return records
	}

	filtered := make([]*domain.FraudRecord, 0, len(records))
	for _, rec := range records {
		if riskLevel != "" && !strings.EqualFold(string(rec.RiskLevel), riskLevel) {
			continue
		}
		if fraudType != "" && !strings.EqualFold(rec.FraudType, fraudType) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}
