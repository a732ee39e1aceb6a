package verification

import "github.com/mark3labs/mcp-go/mcp"

type UpdateFraudVerificationInput struct {
	ReferenceID string `json:"reference_id" jsonschema:"description=Reference ID of the fraud record to update"`
	Verified    bool   `json:"verified" jsonschema:"description=New verification status"`
}

// Spec returns the MCP tool specification for update_fraud_verification
func Spec() mcp.Tool {
	return mcp.NewTool("update_fraud_verification",
		mcp.WithDescription(`Updates the verification status of an existing fraud record. No other field can change through this tool.

Fails with a not-found response when the reference ID is unknown.`),
		mcp.WithInputSchema[UpdateFraudVerificationInput](),
		mcp.WithTitleAnnotation("Update Fraud Verification Status"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
