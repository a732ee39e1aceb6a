// Package domain holds the fraud entities shared by the storage layer and
// the services. Entities carry no behavior beyond construction and
// normalization; business rules live in the fraud service.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field length bounds enforced at validation time.
const (
	MaxDescriptionLength    = 1000
	MaxAdditionalInfoLength = 2000
)

// TimeLayout is the ISO-8601 local date-time format (second precision, no
// offset) used in prompts and tool responses.
const TimeLayout = "2006-01-02T15:04:05"

// RiskLevel classifies incident severity.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// FraudRecord is the durable fraud incident entity. TransactionID is the
// unique business key; ID and CreatedAt are immutable after construction.
type FraudRecord struct {
	ID             string
	UserID         string
	TransactionID  string
	Amount         float64
	Currency       string
	MerchantName   string
	FraudType      string
	Description    string
	RiskLevel      RiskLevel
	CreatedAt      time.Time
	DetectedAt     time.Time
	IPAddress      string
	Location       string
	IsVerified     bool
	AdditionalInfo string
}

// FraudReportRequest is the transient input for record creation. It is never
// persisted; the fraud service validates it and builds a FraudRecord.
type FraudReportRequest struct {
	UserID         string
	TransactionID  string
	Amount         float64
	Currency       string
	MerchantName   string
	FraudType      string
	Description    string
	RiskLevel      string
	DetectedAt     time.Time
	IPAddress      string
	Location       string
	AdditionalInfo string
}

// NewFraudRecord builds a record from a validated request. The ID is
// generated, CreatedAt is the current time and IsVerified starts false.
// DetectedAt falls back to CreatedAt when the request left it unset.
func NewFraudRecord(req *FraudReportRequest, level RiskLevel) *FraudRecord {
	now := time.Now()
	detectedAt := req.DetectedAt
	if detectedAt.IsZero() {
		detectedAt = now
	}

	return &FraudRecord{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		TransactionID:  req.TransactionID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		MerchantName:   req.MerchantName,
		FraudType:      req.FraudType,
		Description:    req.Description,
		RiskLevel:      level,
		CreatedAt:      now,
		DetectedAt:     detectedAt,
		IPAddress:      req.IPAddress,
		Location:       req.Location,
		IsVerified:     false,
		AdditionalInfo: req.AdditionalInfo,
	}
}

// ParseRiskLevel normalizes a caller-supplied risk level to uppercase and
// reports whether it is one of the three known levels.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskHigh:
		return RiskHigh, true
	case RiskMedium:
		return RiskMedium, true
	case RiskLow:
		return RiskLow, true
	default:
		return "", false
	}
}

// Statistics is the derived aggregate snapshot. It is recomputed from the
// store on every request and never persisted.
type Statistics struct {
	TotalRecords      int64
	HighRiskRecords   int64
	MediumRiskRecords int64
	LowRiskRecords    int64
	UnverifiedRecords int64
}

// VerifiedRecords is always derived so the total/unverified invariant holds.
func (s Statistics) VerifiedRecords() int64 {
	return s.TotalRecords - s.UnverifiedRecords
}
