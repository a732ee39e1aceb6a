package dashboard

import "github.com/mark3labs/mcp-go/mcp"

// Spec returns the MCP tool specification for get_fraud_dashboard
func Spec() mcp.Tool {
	return mcp.NewTool("get_fraud_dashboard",
		mcp.WithDescription(`Builds a fraud overview combining aggregate statistics, the 30-day recent record count, the number of high-risk unverified records, and a generated summary of recent fraud patterns.`),
		mcp.WithTitleAnnotation("Get Fraud Dashboard"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
