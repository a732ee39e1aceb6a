package recent

import "github.com/mark3labs/mcp-go/mcp"

// Spec returns the MCP tool specification for get_recent_fraud_records
func Spec() mcp.Tool {
	return mcp.NewTool("get_recent_fraud_records",
		mcp.WithDescription(`Retrieves fraud records created within the last 30 days, ordered newest first.`),
		mcp.WithTitleAnnotation("Get Recent Fraud Records"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
