package patterns

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/tools"
)

type AnalyzeFraudPatternsInput struct {
	Days      tools.FlexNumber `json:"days,omitempty" jsonschema:"default=30,description=Analysis window in days. Currently informational only: analysis always operates on the fixed 30-day recent set."`
	RiskLevel string           `json:"risk_level,omitempty" jsonschema:"description=Optional risk level filter (HIGH, MEDIUM or LOW, case-insensitive)"`
	FraudType string           `json:"fraud_type,omitempty" jsonschema:"description=Optional fraud type filter (case-insensitive exact match)"`
}

// Spec returns the MCP tool specification for analyze_fraud_patterns
func Spec() mcp.Tool {
	return mcp.NewTool("analyze_fraud_patterns",
		mcp.WithDescription(`Analyzes fraud records from the last 30 days and generates a natural-language summary of patterns, trends and anomalies.

Optional risk_level and fraud_type filters narrow the analyzed set (case-insensitive exact match). The days argument is accepted but informational only; the window is fixed at 30 days.

Returns the number of records analyzed and the generated analysis text.`),
		mcp.WithInputSchema[AnalyzeFraudPatternsInput](),
		mcp.WithTitleAnnotation("Analyze Fraud Patterns"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
