package insight_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/frauddesk/fraud-mcp/internal/domain"
	"github.com/frauddesk/fraud-mcp/internal/insight"
	insight_mocks "github.com/frauddesk/fraud-mcp/internal/insight/mocks"
)

func sampleRecord(level domain.RiskLevel) *domain.FraudRecord {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &domain.FraudRecord{
		ID:            "rec-1",
		UserID:        "user-42",
		TransactionID: "txn-9001",
		Amount:        249.99,
		Currency:      "USD",
		MerchantName:  "Acme Online",
		FraudType:     "unauthorized_transaction",
		Description:   "Card-not-present purchase the user did not make",
		RiskLevel:     level,
		CreatedAt:     now,
		DetectedAt:    now,
	}
}

func TestNarrateRecordCreationUsesGeneratorText(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := insight_mocks.NewMockGenerator(ctrl)
	generator.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Your incident has been logged.", nil)

	svc := insight.NewService(generator)
	text := svc.NarrateRecordCreation(context.Background(), "ref-123", sampleRecord(domain.RiskHigh))

	assert.Equal(t, "Your incident has been logged.", text)
}

func TestNarrateRecordCreationFallbackIsDeterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := insight_mocks.NewMockGenerator(ctrl)
	generator.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable")).
		Times(2)

	svc := insight.NewService(generator)
	rec := sampleRecord(domain.RiskHigh)

	first := svc.NarrateRecordCreation(context.Background(), "ref-123", rec)
	second := svc.NarrateRecordCreation(context.Background(), "ref-123", rec)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "ref-123")
	assert.Contains(t, first, "txn-9001")
	assert.Contains(t, first, "249.99 USD")
	assert.Contains(t, first, "Acme Online")
	assert.Contains(t, first, "contact your bank immediately")
}

func TestNarrateRecordCreationFallbackGuidance(t *testing.T) {
	tests := []struct {
		level    domain.RiskLevel
		guidance string
	}{
		{domain.RiskHigh, "contact your bank immediately"},
		{domain.RiskMedium, "monitor your accounts closely"},
		{domain.RiskLow, "practice good security habits"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			generator := insight_mocks.NewMockGenerator(ctrl)
			generator.EXPECT().
				Complete(gomock.Any(), gomock.Any(), gomock.Any()).
				Return("", errors.New("timeout"))

			svc := insight.NewService(generator)
			text := svc.NarrateRecordCreation(context.Background(), "ref-1", sampleRecord(tt.level))

			assert.Contains(t, text, tt.guidance)
		})
	}
}

func TestSummarizePatternsEmptySkipsGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := insight_mocks.NewMockGenerator(ctrl)

	svc := insight.NewService(generator)
	text := svc.SummarizePatterns(context.Background(), nil)

	assert.Equal(t, "No fraud records available for analysis.", text)
}

func TestSummarizePatternsFallbackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := insight_mocks.NewMockGenerator(ctrl)
	generator.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	svc := insight.NewService(generator)
	text := svc.SummarizePatterns(context.Background(), []*domain.FraudRecord{sampleRecord(domain.RiskMedium)})

	assert.Equal(t, "Unable to analyze fraud patterns at this time. Please try again later.", text)
}

func TestSummarizePatternsIncludesRecordsInPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := insight_mocks.NewMockGenerator(ctrl)

	var captured string
	generator.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, userPrompt string) (string, error) {
			captured = userPrompt
			return "analysis", nil
		})

	svc := insight.NewService(generator)
	text := svc.SummarizePatterns(context.Background(), []*domain.FraudRecord{sampleRecord(domain.RiskLow)})

	assert.Equal(t, "analysis", text)
	assert.Contains(t, captured, "txn-9001")
	assert.Contains(t, captured, "Acme Online")
}

func TestAssessUserRiskFallbackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := insight_mocks.NewMockGenerator(ctrl)
	generator.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	svc := insight.NewService(generator)
	text := svc.AssessUserRisk(context.Background(), "user-42", nil)

	assert.Equal(t, "Unable to generate risk assessment at this time. Please try again later.", text)
}

func TestPreventionTipsFallbackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := insight_mocks.NewMockGenerator(ctrl)
	generator.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	svc := insight.NewService(generator)
	text := svc.PreventionTips(context.Background(), "phishing", "HIGH")

	assert.Equal(t, "Unable to generate fraud prevention tips at this time. Please try again later.", text)
}
