package create

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/tools"
)

// CreateFraudRecordInput is shared by the plain and AI-enhanced create tools.
type CreateFraudRecordInput struct {
	UserID         string           `json:"user_id" jsonschema:"description=User ID associated with the fraud"`
	TransactionID  string           `json:"transaction_id" jsonschema:"description=Transaction ID of the fraudulent transaction. Reports with a transaction ID already on file return the existing record's reference ID."`
	Amount         tools.FlexNumber `json:"amount" jsonschema:"description=Amount involved in the fraud. Must be greater than zero."`
	Currency       string           `json:"currency" jsonschema:"description=Currency of the transaction"`
	MerchantName   string           `json:"merchant_name" jsonschema:"description=Name of the merchant"`
	FraudType      string           `json:"fraud_type" jsonschema:"description=Type of fraud (e.g. credit_card_fraud, identity_theft)"`
	Description    string           `json:"description,omitempty" jsonschema:"description=Description of the fraud incident"`
	RiskLevel      string           `json:"risk_level" jsonschema:"description=Risk level: HIGH, MEDIUM, or LOW (case-insensitive)"`
	DetectedAt     string           `json:"detected_at,omitempty" jsonschema:"description=Detection timestamp in ISO-8601 local date-time format (e.g. 2026-01-15T14:30:00). Defaults to the creation time."`
	IPAddress      string           `json:"ip_address,omitempty" jsonschema:"description=IP address the fraudulent activity originated from"`
	Location       string           `json:"location,omitempty" jsonschema:"description=Geographic location"`
	AdditionalInfo string           `json:"additional_info,omitempty" jsonschema:"description=Additional information"`
}

// Spec returns the MCP tool specification for create_fraud_record
func Spec() mcp.Tool {
	return mcp.NewTool("create_fraud_record",
		mcp.WithDescription(`Creates a new fraud record with the provided incident data.

Reports are idempotent per transaction: submitting the same transaction_id twice returns the original record's reference ID without creating a duplicate.

Returns the reference ID of the stored record and its creation timestamp.`),
		mcp.WithInputSchema[CreateFraudRecordInput](),
		mcp.WithTitleAnnotation("Create Fraud Record"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// SpecWithAI returns the MCP tool specification for create_fraud_record_with_ai
func SpecWithAI() mcp.Tool {
	return mcp.NewTool("create_fraud_record_with_ai",
		mcp.WithDescription(`Creates a new fraud record and generates a natural-language acknowledgment describing the incident, its risk level and recommended next steps.

Same idempotency behavior as create_fraud_record. When the language model is unavailable the acknowledgment falls back to a deterministic template built from the record, so the tool always returns usable text.

Returns the reference ID, the full stored record and the generated response.`),
		mcp.WithInputSchema[CreateFraudRecordInput](),
		mcp.WithTitleAnnotation("Create Fraud Record with AI Response"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
