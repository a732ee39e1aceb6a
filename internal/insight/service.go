// Package insight builds prompts from fraud records, calls the external
// narrative generator and substitutes deterministic text when the call
// fails. Generator failures never propagate; every method returns usable
// text.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/frauddesk/fraud-mcp/internal/domain"
)

// Service produces natural-language insight for fraud records.
type Service interface {
	// NarrateRecordCreation returns an acknowledgment for a just-created
	// record. When the generator fails, the result is a deterministic
	// template built from the record alone.
	NarrateRecordCreation(ctx context.Context, referenceID string, rec *domain.FraudRecord) string
	// SummarizePatterns analyzes a set of records. Empty input returns a
	// fixed no-data sentence without calling the generator.
	SummarizePatterns(ctx context.Context, records []*domain.FraudRecord) string
	// AssessUserRisk profiles a user from their incident history.
	AssessUserRisk(ctx context.Context, userID string, records []*domain.FraudRecord) string
	// PreventionTips returns guidance for a fraud type and risk level.
	PreventionTips(ctx context.Context, fraudType, riskLevel string) string
}

const (
	noRecordsText    = "No fraud records available for analysis."
	analysisFailed   = "Unable to analyze fraud patterns at this time. Please try again later."
	assessmentFailed = "Unable to generate risk assessment at this time. Please try again later."
	tipsFailed       = "Unable to generate fraud prevention tips at this time. Please try again later."
)

type service struct {
	generator Generator
}

// NewService builds the insight service around a Generator.
func NewService(generator Generator) Service {
	return &service{generator: generator}
}

const narrationSystemPrompt = `You are a fraud detection expert assistant. Your role is to provide clear, professional,
and helpful responses about fraud incidents. When a fraud record is created, you should:

1. Acknowledge the fraud incident has been recorded
2. Provide the reference ID for tracking
3. Explain the risk level and what it means
4. Suggest next steps or recommendations
5. Be empathetic and professional in tone

Keep responses concise but informative, around 2-3 paragraphs.`

func (s *service) NarrateRecordCreation(ctx context.Context, referenceID string, rec *domain.FraudRecord) string {
	userPrompt := fmt.Sprintf(`A new fraud record has been created with the following details:

Reference ID: %s
User ID: %s
Transaction ID: %s
Amount: %.2f %s
Merchant: %s
Fraud Type: %s
Risk Level: %s
Description: %s
Detection Time: %s

Please provide a natural language response to inform the user about this fraud incident.`,
		referenceID, rec.UserID, rec.TransactionID, rec.Amount, rec.Currency,
		rec.MerchantName, rec.FraudType, rec.RiskLevel, rec.Description,
		rec.DetectedAt.Format(domain.TimeLayout))

	text, err := s.generator.Complete(ctx, narrationSystemPrompt, userPrompt)
	if err != nil {
		slog.Error("narrative generation failed, using fallback", "reference", referenceID, "error", err)
		return fallbackNarration(referenceID, rec)
	}
	return text
}

const patternsSystemPrompt = `You are a fraud analyst expert. Analyze the provided fraud data and provide insights including:

1. Common fraud patterns and trends
2. Risk assessment and distribution
3. Merchant or transaction patterns
4. Recommendations for fraud prevention
5. Any concerning trends or anomalies

Be analytical and provide actionable insights.`

func (s *service) SummarizePatterns(ctx context.Context, records []*domain.FraudRecord) string {
	if len(records) == 0 {
		return noRecordsText
	}

	var b strings.Builder
	b.WriteString("Fraud Records Analysis:\n\n")
	for _, rec := range records {
		fmt.Fprintf(&b, `Record ID: %s
User: %s | Transaction: %s
Amount: %.2f %s | Merchant: %s
Type: %s | Risk: %s
Date: %s
---
`,
			rec.ID, rec.UserID, rec.TransactionID, rec.Amount, rec.Currency,
			rec.MerchantName, rec.FraudType, rec.RiskLevel,
			rec.CreatedAt.Format(domain.TimeLayout))
	}

	text, err := s.generator.Complete(ctx, patternsSystemPrompt, b.String())
	if err != nil {
		slog.Error("pattern analysis generation failed", "records", len(records), "error", err)
		return analysisFailed
	}
	return text
}

const riskSystemPrompt = `You are a risk assessment specialist. Based on the user's fraud history, provide:

1. Overall risk profile assessment
2. Risk factors and concerns
3. Recommendations for account security
4. Monitoring suggestions
5. Preventive measures

Be professional and provide actionable advice.`

func (s *service) AssessUserRisk(ctx context.Context, userID string, records []*domain.FraudRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Risk Assessment for User: %s\n\n", userID)
	fmt.Fprintf(&b, "Total Fraud Incidents: %d\n\n", len(records))

	if len(records) > 0 {
		b.WriteString("Fraud History:\n")
		for _, rec := range records {
			fmt.Fprintf(&b, "- %s: %.2f %s at %s (Risk: %s)\n",
				rec.FraudType, rec.Amount, rec.Currency, rec.MerchantName, rec.RiskLevel)
		}
	}

	text, err := s.generator.Complete(ctx, riskSystemPrompt, b.String())
	if err != nil {
		slog.Error("risk assessment generation failed", "user", userID, "error", err)
		return assessmentFailed
	}
	return text
}

const preventionSystemPrompt = `You are a fraud prevention expert. Provide specific, actionable fraud prevention tips based on:

1. The specific fraud type
2. The risk level
3. Best practices for prevention
4. Warning signs to watch for
5. Immediate actions to take

Make recommendations practical and easy to understand.`

func (s *service) PreventionTips(ctx context.Context, fraudType, riskLevel string) string {
	userPrompt := fmt.Sprintf(`Please provide fraud prevention recommendations for:

Fraud Type: %s
Risk Level: %s

Focus on practical steps the user can take to prevent this type of fraud in the future.`,
		fraudType, riskLevel)

	text, err := s.generator.Complete(ctx, preventionSystemPrompt, userPrompt)
	if err != nil {
		slog.Error("prevention tips generation failed", "fraudType", fraudType, "error", err)
		return tipsFailed
	}
	return text
}

// fallbackNarration is reproducible from the record alone: no randomness, no
// dependence on whatever the failed generator call produced.
func fallbackNarration(referenceID string, rec *domain.FraudRecord) string {
	return fmt.Sprintf(`Fraud Incident Recorded

Your fraud report has been successfully recorded in our system with reference ID: %s

Details:
- Transaction ID: %s
- Amount: %.2f %s
- Merchant: %s
- Risk Level: %s
- Fraud Type: %s

%s

Please keep this reference ID for your records. Our fraud investigation team will review this incident.`,
		referenceID, rec.TransactionID, rec.Amount, rec.Currency,
		rec.MerchantName, rec.RiskLevel, rec.FraudType,
		riskLevelGuidance(rec.RiskLevel))
}

func riskLevelGuidance(level domain.RiskLevel) string {
	switch level {
	case domain.RiskHigh:
		return "This is a high-risk incident that requires immediate attention. Please contact your bank immediately."
	case domain.RiskMedium:
		return "This is a medium-risk incident. Please monitor your accounts closely and consider additional security measures."
	case domain.RiskLow:
		return "This is a low-risk incident. Continue monitoring your accounts and practice good security habits."
	default:
		return "Please monitor your accounts and take appropriate security measures."
	}
}
