package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/frauddesk/fraud-mcp/internal/domain"
)

// MemoryStore is a thread-safe in-memory Store. Records are keyed by
// transaction ID, the unique business key, with secondary indexes for ID and
// user lookups. The duplicate check happens under the write lock, so
// concurrent inserts for the same transaction cannot both succeed.
type MemoryStore struct {
	mu sync.RWMutex

	byTransaction map[string]*domain.FraudRecord
	byID          map[string]string   // record ID -> transaction ID
	byUser        map[string][]string // user ID -> transaction IDs
}

// NewMemoryStore creates an empty, ready-to-use store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byTransaction: make(map[string]*domain.FraudRecord),
		byID:          make(map[string]string),
		byUser:        make(map[string][]string),
	}
}

func (s *MemoryStore) Insert(_ context.Context, rec *domain.FraudRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byTransaction[rec.TransactionID]; exists {
		return ErrDuplicateTransaction
	}

	stored := *rec
	s.byTransaction[rec.TransactionID] = &stored
	s.byID[rec.ID] = rec.TransactionID
	s.byUser[rec.UserID] = append(s.byUser[rec.UserID], rec.TransactionID)
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*domain.FraudRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txID, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyOf(s.byTransaction[txID]), nil
}

func (s *MemoryStore) FindByTransactionID(_ context.Context, transactionID string) (*domain.FraudRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byTransaction[transactionID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyOf(rec), nil
}

func (s *MemoryStore) FindByUser(_ context.Context, userID string) ([]*domain.FraudRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.FraudRecord
	for _, txID := range s.byUser[userID] {
		if rec, ok := s.byTransaction[txID]; ok {
			result = append(result, copyOf(rec))
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (s *MemoryStore) FindByRiskLevel(_ context.Context, level domain.RiskLevel) ([]*domain.FraudRecord, error) {
	return s.filter(func(rec *domain.FraudRecord) bool {
		return rec.RiskLevel == level
	}), nil
}

func (s *MemoryStore) FindCreatedSince(_ context.Context, since time.Time) ([]*domain.FraudRecord, error) {
	return s.filter(func(rec *domain.FraudRecord) bool {
		return !rec.CreatedAt.Before(since)
	}), nil
}

func (s *MemoryStore) FindHighRiskUnverified(_ context.Context) ([]*domain.FraudRecord, error) {
	return s.filter(func(rec *domain.FraudRecord) bool {
		return rec.RiskLevel == domain.RiskHigh && !rec.IsVerified
	}), nil
}

func (s *MemoryStore) UpdateVerification(_ context.Context, id string, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txID, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	s.byTransaction[txID].IsVerified = verified
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.byTransaction)), nil
}

func (s *MemoryStore) CountByRiskLevel(_ context.Context, level domain.RiskLevel) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, rec := range s.byTransaction {
		if rec.RiskLevel == level {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CountUnverified(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, rec := range s.byTransaction {
		if !rec.IsVerified {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}

func (s *MemoryStore) filter(keep func(*domain.FraudRecord) bool) []*domain.FraudRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.FraudRecord
	for _, rec := range s.byTransaction {
		if keep(rec) {
			result = append(result, copyOf(rec))
		}
	}
	sortNewestFirst(result)
	return result
}

func sortNewestFirst(records []*domain.FraudRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

// copyOf shields the stored record from caller mutation.
func copyOf(rec *domain.FraudRecord) *domain.FraudRecord {
	c := *rec
	return &c
}
