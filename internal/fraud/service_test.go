package fraud_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/frauddesk/fraud-mcp/internal/domain"
	"github.com/frauddesk/fraud-mcp/internal/fraud"
	"github.com/frauddesk/fraud-mcp/internal/storage"
	storage_mocks "github.com/frauddesk/fraud-mcp/internal/storage/mocks"
)

func validRequest() *domain.FraudReportRequest {
	return &domain.FraudReportRequest{
		UserID:        "u1",
		TransactionID: "t1",
		Amount:        100.0,
		Currency:      "USD",
		MerchantName:  "Acme",
		FraudType:     "card_fraud",
		Description:   "suspicious charge",
		RiskLevel:     "high",
	}
}

func TestCreateRecordIdempotency(t *testing.T) {
	ctx := context.Background()
	svc := fraud.NewService(storage.NewMemoryStore())

	first, err := svc.CreateRecord(ctx, validRequest())
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second, err := svc.CreateRecord(ctx, validRequest())
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if first != second {
		t.Errorf("expected same id for duplicate transaction, got %s and %s", first, second)
	}

	stats, err := svc.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if stats.TotalRecords != 1 {
		t.Errorf("expected exactly one record after duplicate create, got %d", stats.TotalRecords)
	}
}

func TestCreateRecordValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.FraudReportRequest)
		field  string
	}{
		{"missing user id", func(r *domain.FraudReportRequest) { r.UserID = "" }, "user_id"},
		{"missing transaction id", func(r *domain.FraudReportRequest) { r.TransactionID = "  " }, "transaction_id"},
		{"zero amount", func(r *domain.FraudReportRequest) { r.Amount = 0 }, "amount"},
		{"negative amount", func(r *domain.FraudReportRequest) { r.Amount = -5 }, "amount"},
		{"missing currency", func(r *domain.FraudReportRequest) { r.Currency = "" }, "currency"},
		{"missing merchant", func(r *domain.FraudReportRequest) { r.MerchantName = "" }, "merchant_name"},
		{"missing fraud type", func(r *domain.FraudReportRequest) { r.FraudType = "" }, "fraud_type"},
		{"missing risk level", func(r *domain.FraudReportRequest) { r.RiskLevel = "" }, "risk_level"},
		{"unknown risk level", func(r *domain.FraudReportRequest) { r.RiskLevel = "EXTREME" }, "risk_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			svc := fraud.NewService(store)

			req := validRequest()
			tc.mutate(req)

			_, err := svc.CreateRecord(ctx, req)
			var validationErr *fraud.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, validationErr.Field)
			}

			total, _ := store.Count(ctx)
			if total != 0 {
				t.Errorf("expected no record persisted after validation failure, got %d", total)
			}
		})
	}
}

func TestCreateRecordNormalizesRiskLevel(t *testing.T) {
	ctx := context.Background()
	svc := fraud.NewService(storage.NewMemoryStore())

	req := validRequest()
	req.RiskLevel = "high"

	id, err := svc.CreateRecord(ctx, req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	rec, err := svc.GetRecord(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if rec.RiskLevel != domain.RiskHigh {
		t.Errorf("expected normalized HIGH, got %s", rec.RiskLevel)
	}
	if rec.IsVerified {
		t.Error("new records must start unverified")
	}
	if rec.CreatedAt.After(time.Now()) {
		t.Error("createdAt must not be in the future")
	}
	if rec.DetectedAt.IsZero() {
		t.Error("detectedAt must default to creation time")
	}
}

func TestCreateRecordLostRaceReturnsWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	winner := &domain.FraudRecord{ID: "winner-id", TransactionID: "t1"}

	store := storage_mocks.NewMockStore(ctrl)
	// First lookup misses, the insert collides, the retry sees the winner.
	store.EXPECT().FindByTransactionID(gomock.Any(), "t1").Return(nil, storage.ErrNotFound)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(storage.ErrDuplicateTransaction)
	store.EXPECT().FindByTransactionID(gomock.Any(), "t1").Return(winner, nil)

	svc := fraud.NewService(store)
	id, err := svc.CreateRecord(ctx, validRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id != "winner-id" {
		t.Errorf("expected winner's id, got %s", id)
	}
}

func TestCreateRecordStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := storage_mocks.NewMockStore(ctrl)
	store.EXPECT().FindByTransactionID(gomock.Any(), "t1").Return(nil, storage.ErrNotFound)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	svc := fraud.NewService(store)
	if _, err := svc.CreateRecord(ctx, validRequest()); err == nil {
		t.Fatal("expected storage failure to propagate")
	}
}

func TestUpdateVerification(t *testing.T) {
	ctx := context.Background()
	svc := fraud.NewService(storage.NewMemoryStore())

	id, err := svc.CreateRecord(ctx, validRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.UpdateVerification(ctx, id, true); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	rec, _ := svc.GetRecord(ctx, id)
	if !rec.IsVerified {
		t.Error("expected record to be verified")
	}

	if err := svc.UpdateVerification(ctx, "unknown", true); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestGetStatisticsInvariant(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := fraud.NewService(store)

	requests := []struct {
		tx    string
		level string
	}{
		{"t1", "HIGH"}, {"t2", "high"}, {"t3", "MEDIUM"}, {"t4", "low"},
	}
	var lastID string
	for _, r := range requests {
		req := validRequest()
		req.TransactionID = r.tx
		req.RiskLevel = r.level
		id, err := svc.CreateRecord(ctx, req)
		if err != nil {
			t.Fatalf("create %s failed: %v", r.tx, err)
		}
		lastID = id
	}
	if err := svc.UpdateVerification(ctx, lastID, true); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	stats, err := svc.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}

	if stats.TotalRecords != stats.HighRiskRecords+stats.MediumRiskRecords+stats.LowRiskRecords {
		t.Errorf("risk-level counts do not add up: %+v", stats)
	}
	if stats.VerifiedRecords()+stats.UnverifiedRecords != stats.TotalRecords {
		t.Errorf("verification counts do not add up: %+v", stats)
	}
	if stats.HighRiskRecords != 2 || stats.VerifiedRecords() != 1 {
		t.Errorf("unexpected statistics: %+v", stats)
	}
}

func TestGetRecordsByRiskLevelRejectsUnknownLevel(t *testing.T) {
	svc := fraud.NewService(storage.NewMemoryStore())

	_, err := svc.GetRecordsByRiskLevel(context.Background(), "SEVERE")
	var validationErr *fraud.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
