// Package storage defines the record store contract and its backends.
package storage

//go:generate mockgen -destination=mocks/mock_storage.go -package=storage_mocks github.com/frauddesk/fraud-mcp/internal/storage Store

import (
	"context"
	"errors"
	"time"

	"github.com/frauddesk/fraud-mcp/internal/domain"
)

var (
	// ErrNotFound indicates a targeted lookup or update hit an unknown ID.
	ErrNotFound = errors.New("fraud record not found")

	// ErrDuplicateTransaction is returned by Insert when a record with the
	// same transaction ID already exists. The service treats this as a
	// duplicate delivery, not a failure.
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

// Store is the durable keyed storage for fraud records. Every backend must
// guarantee that at most one record per transaction ID survives concurrent
// inserts; the loser of a race gets ErrDuplicateTransaction.
type Store interface {
	Insert(ctx context.Context, rec *domain.FraudRecord) error
	FindByID(ctx context.Context, id string) (*domain.FraudRecord, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.FraudRecord, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.FraudRecord, error)
	FindByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]*domain.FraudRecord, error)
	// FindCreatedSince returns records created at or after the cutoff,
	// newest first.
	FindCreatedSince(ctx context.Context, since time.Time) ([]*domain.FraudRecord, error)
	// FindHighRiskUnverified returns unverified HIGH-risk records, newest
	// first.
	FindHighRiskUnverified(ctx context.Context) ([]*domain.FraudRecord, error)
	// UpdateVerification flips the verification flag and nothing else.
	UpdateVerification(ctx context.Context, id string, verified bool) error
	Count(ctx context.Context) (int64, error)
	CountByRiskLevel(ctx context.Context, level domain.RiskLevel) (int64, error)
	CountUnverified(ctx context.Context) (int64, error)
	Close(ctx context.Context) error
}
