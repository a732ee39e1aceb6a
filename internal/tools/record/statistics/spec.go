package statistics

import "github.com/mark3labs/mcp-go/mcp"

// Spec returns the MCP tool specification for get_fraud_statistics
func Spec() mcp.Tool {
	return mcp.NewTool("get_fraud_statistics",
		mcp.WithDescription(`Retrieves aggregate fraud statistics: total records, counts per risk level, and verification status breakdown.

Statistics are recomputed from the store on every call; nothing is cached.`),
		mcp.WithTitleAnnotation("Get Fraud Statistics"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
