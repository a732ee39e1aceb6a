package user_records

import "github.com/mark3labs/mcp-go/mcp"

type GetUserFraudRecordsInput struct {
	UserID string `json:"user_id" jsonschema:"description=User ID to search for"`
}

// Spec returns the MCP tool specification for get_user_fraud_records
func Spec() mcp.Tool {
	return mcp.NewTool("get_user_fraud_records",
		mcp.WithDescription(`Retrieves all fraud records associated with a specific user ID.

Returns the record count and a summary of each record (transaction, amount, merchant, fraud type, risk level, verification status).`),
		mcp.WithInputSchema[GetUserFraudRecordsInput](),
		mcp.WithTitleAnnotation("Get User Fraud Records"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
