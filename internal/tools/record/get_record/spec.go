package get_record

import "github.com/mark3labs/mcp-go/mcp"

type GetFraudRecordInput struct {
	ReferenceID string `json:"reference_id" jsonschema:"description=Reference ID of the fraud record"`
}

// Spec returns the MCP tool specification for get_fraud_record
func Spec() mcp.Tool {
	return mcp.NewTool("get_fraud_record",
		mcp.WithDescription(`Retrieves a fraud record by its reference ID.

Returns the full record including risk level, verification status and timestamps, or a not-found response when no record matches.`),
		mcp.WithInputSchema[GetFraudRecordInput](),
		mcp.WithTitleAnnotation("Get Fraud Record"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
