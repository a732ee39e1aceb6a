package insight

//go:generate mockgen -destination=mocks/mock_insight.go -package=insight_mocks github.com/frauddesk/fraud-mcp/internal/insight Generator,Service

import (
	"context"
	"errors"
)

// Generator is the external text-generation boundary. Implementations send
// one synchronous completion request and may fail; the insight service never
// retries and absorbs every failure into fallback text.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// UnavailableGenerator always fails. It stands in when no chat-completion
// provider is configured, so every insight method degrades to its
// deterministic fallback.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Complete(context.Context, string, string) (string, error) {
	return "", errors.New("no chat-completion provider configured")
}
