package prevention

import "github.com/mark3labs/mcp-go/mcp"

type GetFraudPreventionTipsInput struct {
	FraudType string `json:"fraud_type" jsonschema:"description=Type of fraud to get prevention guidance for (e.g. phishing, card_fraud)"`
	RiskLevel string `json:"risk_level" jsonschema:"description=Risk level the guidance should address: HIGH, MEDIUM or LOW"`
}

// Spec returns the MCP tool specification for get_fraud_prevention_tips
func Spec() mcp.Tool {
	return mcp.NewTool("get_fraud_prevention_tips",
		mcp.WithDescription(`Generates practical fraud prevention tips for a given fraud type and risk level.`),
		mcp.WithInputSchema[GetFraudPreventionTipsInput](),
		mcp.WithTitleAnnotation("Get Fraud Prevention Tips"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
