package risk_assessment

import "github.com/mark3labs/mcp-go/mcp"

type GenerateUserRiskAssessmentInput struct {
	UserID string `json:"user_id" jsonschema:"description=User ID to assess"`
}

// Spec returns the MCP tool specification for generate_user_risk_assessment
func Spec() mcp.Tool {
	return mcp.NewTool("generate_user_risk_assessment",
		mcp.WithDescription(`Generates a natural-language risk assessment for a user based on their fraud incident history.

Returns the assessment text plus per-risk-level incident counts and the total amount across all incidents (summed without currency conversion).`),
		mcp.WithInputSchema[GenerateUserRiskAssessmentInput](),
		mcp.WithTitleAnnotation("Generate User Risk Assessment"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
