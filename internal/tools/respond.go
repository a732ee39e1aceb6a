package tools

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frauddesk/fraud-mcp/internal/domain"
)

// failureEnvelope is the structured error body every tool returns on a
// domain failure. Handlers never return a Go error for these; the envelope
// travels inside an error-flagged text result.
type failureEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSONResult marshals the payload into a text result. The payload must
// already carry its `success` field.
func JSONResult(payload any) *mcp.CallToolResult {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode tool response", "error", err)
		return FailureResult(err.Error(), "Failed to encode response")
	}
	return mcp.NewToolResultText(string(body))
}

// FailureResult builds the {success:false, error, message} envelope as an
// error-flagged text result.
func FailureResult(errText, message string) *mcp.CallToolResult {
	body, err := json.Marshal(failureEnvelope{
		Success: false,
		Error:   errText,
		Message: message,
	})
	if err != nil {
		return mcp.NewToolResultError(errText)
	}
	return mcp.NewToolResultError(string(body))
}

// RecordView is the wire shape of a fraud record in tool responses.
type RecordView struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	TransactionID  string  `json:"transaction_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	MerchantName   string  `json:"merchant_name"`
	FraudType      string  `json:"fraud_type"`
	Description    string  `json:"description,omitempty"`
	RiskLevel      string  `json:"risk_level"`
	CreatedAt      string  `json:"created_at"`
	DetectedAt     string  `json:"detected_at"`
	IPAddress      string  `json:"ip_address,omitempty"`
	Location       string  `json:"location,omitempty"`
	IsVerified     bool    `json:"is_verified"`
	AdditionalInfo string  `json:"additional_info,omitempty"`
}

// NewRecordView converts a record for serialization. Timestamps use the
// second-precision local date-time layout.
func NewRecordView(rec *domain.FraudRecord) RecordView {
	return RecordView{
		ID:             rec.ID,
		UserID:         rec.UserID,
		TransactionID:  rec.TransactionID,
		Amount:         rec.Amount,
		Currency:       rec.Currency,
		MerchantName:   rec.MerchantName,
		FraudType:      rec.FraudType,
		Description:    rec.Description,
		RiskLevel:      string(rec.RiskLevel),
		CreatedAt:      rec.CreatedAt.Format(domain.TimeLayout),
		DetectedAt:     rec.DetectedAt.Format(domain.TimeLayout),
		IPAddress:      rec.IPAddress,
		Location:       rec.Location,
		IsVerified:     rec.IsVerified,
		AdditionalInfo: rec.AdditionalInfo,
	}
}

// NewRecordViews converts a slice preserving order.
func NewRecordViews(records []*domain.FraudRecord) []RecordView {
	views := make([]RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, NewRecordView(rec))
	}
	return views
}

// RecordSummary is the reduced wire shape used in list responses. UserID is
// omitted when the list is already scoped to one user.
type RecordSummary struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id,omitempty"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	MerchantName  string  `json:"merchant_name"`
	FraudType     string  `json:"fraud_type"`
	RiskLevel     string  `json:"risk_level"`
	CreatedAt     string  `json:"created_at"`
	IsVerified    bool    `json:"is_verified"`
}

// NewRecordSummaries converts a slice preserving order.
func NewRecordSummaries(records []*domain.FraudRecord, includeUser bool) []RecordSummary {
	summaries := make([]RecordSummary, 0, len(records))
	for _, rec := range records {
		s := RecordSummary{
			ID:            rec.ID,
			TransactionID: rec.TransactionID,
			Amount:        rec.Amount,
			Currency:      rec.Currency,
			MerchantName:  rec.MerchantName,
			FraudType:     rec.FraudType,
			RiskLevel:     string(rec.RiskLevel),
			CreatedAt:     rec.CreatedAt.Format(domain.TimeLayout),
			IsVerified:    rec.IsVerified,
		}
		if includeUser {
			s.UserID = rec.UserID
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// FormatTimestamp renders response timestamps consistently.
func FormatTimestamp(t time.Time) string {
	return t.Format(domain.TimeLayout)
}
