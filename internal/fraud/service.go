// Package fraud implements the record service: validation, idempotent
// creation, reads and aggregate statistics over the record store.
package fraud

//go:generate mockgen -destination=mocks/mock_fraud.go -package=fraud_mocks github.com/frauddesk/fraud-mcp/internal/fraud Service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/frauddesk/fraud-mcp/internal/domain"
	"github.com/frauddesk/fraud-mcp/internal/storage"
)

// RecentWindowDays bounds the "recent records" queries.
const RecentWindowDays = 30

// Service owns the fraud-record business invariants.
type Service interface {
	// CreateRecord validates the request and persists a new record. A
	// request carrying an already-recorded transaction ID is a duplicate
	// delivery: the existing record's ID is returned and nothing is
	// written.
	CreateRecord(ctx context.Context, req *domain.FraudReportRequest) (string, error)
	GetRecord(ctx context.Context, id string) (*domain.FraudRecord, error)
	GetRecordsByUser(ctx context.Context, userID string) ([]*domain.FraudRecord, error)
	GetRecordsByRiskLevel(ctx context.Context, level string) ([]*domain.FraudRecord, error)
	GetRecentRecords(ctx context.Context) ([]*domain.FraudRecord, error)
	GetHighRiskUnverified(ctx context.Context) ([]*domain.FraudRecord, error)
	UpdateVerification(ctx context.Context, id string, verified bool) error
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

type service struct {
	store storage.Store
}

// NewService builds the record service on top of a Store.
func NewService(store storage.Store) Service {
	return &service{store: store}
}

func (s *service) CreateRecord(ctx context.Context, req *domain.FraudReportRequest) (string, error) {
	level, err := validateRequest(req)
	if err != nil {
		return "", err
	}

	slog.Info("creating fraud record", "user", req.UserID, "transaction", req.TransactionID)

	// Dedup-on-create: a transaction that is already recorded is not an
	// error, the caller gets the existing reference.
	if existing, err := s.store.FindByTransactionID(ctx, req.TransactionID); err == nil {
		slog.Warn("fraud record already exists for transaction", "transaction", req.TransactionID)
		return existing.ID, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("lookup transaction %q: %w", req.TransactionID, err)
	}

	rec := domain.NewFraudRecord(req, level)
	if err := s.store.Insert(ctx, rec); err != nil {
		if errors.Is(err, storage.ErrDuplicateTransaction) {
			// Lost a race with a concurrent create; the winner's record is
			// authoritative.
			winner, lookupErr := s.store.FindByTransactionID(ctx, req.TransactionID)
			if lookupErr != nil {
				return "", fmt.Errorf("lookup transaction %q after duplicate insert: %w", req.TransactionID, lookupErr)
			}
			return winner.ID, nil
		}
		return "", fmt.Errorf("insert fraud record: %w", err)
	}

	slog.Info("fraud record created", "id", rec.ID, "risk", rec.RiskLevel)
	return rec.ID, nil
}

func (s *service) GetRecord(ctx context.Context, id string) (*domain.FraudRecord, error) {
	return s.store.FindByID(ctx, id)
}

func (s *service) GetRecordsByUser(ctx context.Context, userID string) ([]*domain.FraudRecord, error) {
	return s.store.FindByUser(ctx, userID)
}

func (s *service) GetRecordsByRiskLevel(ctx context.Context, level string) ([]*domain.FraudRecord, error) {
	parsed, ok := domain.ParseRiskLevel(level)
	if !ok {
		return nil, &ValidationError{Field: "risk_level", Reason: "must be HIGH, MEDIUM, or LOW"}
	}
	return s.store.FindByRiskLevel(ctx, parsed)
}

func (s *service) GetRecentRecords(ctx context.Context) ([]*domain.FraudRecord, error) {
	cutoff := time.Now().AddDate(0, 0, -RecentWindowDays)
	return s.store.FindCreatedSince(ctx, cutoff)
}

func (s *service) GetHighRiskUnverified(ctx context.Context) ([]*domain.FraudRecord, error) {
	return s.store.FindHighRiskUnverified(ctx)
}

func (s *service) UpdateVerification(ctx context.Context, id string, verified bool) error {
	slog.Info("updating verification status", "id", id, "verified", verified)
	return s.store.UpdateVerification(ctx, id, verified)
}

func (s *service) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	high, err := s.store.CountByRiskLevel(ctx, domain.RiskHigh)
	if err != nil {
		return nil, fmt.Errorf("count high-risk records: %w", err)
	}
	medium, err := s.store.CountByRiskLevel(ctx, domain.RiskMedium)
	if err != nil {
		return nil, fmt.Errorf("count medium-risk records: %w", err)
	}
	low, err := s.store.CountByRiskLevel(ctx, domain.RiskLow)
	if err != nil {
		return nil, fmt.Errorf("count low-risk records: %w", err)
	}
	unverified, err := s.store.CountUnverified(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unverified records: %w", err)
	}

	return &domain.Statistics{
		TotalRecords:      total,
		HighRiskRecords:   high,
		MediumRiskRecords: medium,
		LowRiskRecords:    low,
		UnverifiedRecords: unverified,
	}, nil
}

func validateRequest(req *domain.FraudReportRequest) (domain.RiskLevel, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return "", required("user_id")
	}
	if strings.TrimSpace(req.TransactionID) == "" {
		return "", required("transaction_id")
	}
	if req.Amount <= 0 {
		return "", &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if strings.TrimSpace(req.Currency) == "" {
		return "", required("currency")
	}
	if strings.TrimSpace(req.MerchantName) == "" {
		return "", required("merchant_name")
	}
	if strings.TrimSpace(req.FraudType) == "" {
		return "", required("fraud_type")
	}
	if strings.TrimSpace(req.RiskLevel) == "" {
		return "", required("risk_level")
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return "", &ValidationError{Field: "description", Reason: fmt.Sprintf("must be at most %d characters", domain.MaxDescriptionLength)}
	}
	if len(req.AdditionalInfo) > domain.MaxAdditionalInfoLength {
		return "", &ValidationError{Field: "additional_info", Reason: fmt.Sprintf("must be at most %d characters", domain.MaxAdditionalInfoLength)}
	}

	level, ok := domain.ParseRiskLevel(req.RiskLevel)
	if !ok {
		return "", &ValidationError{Field: "risk_level", Reason: "must be HIGH, MEDIUM, or LOW"}
	}
	return level, nil
}
