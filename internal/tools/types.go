package tools

import (
	"github.com/frauddesk/fraud-mcp/internal/analytics"
	"github.com/frauddesk/fraud-mcp/internal/fraud"
	"github.com/frauddesk/fraud-mcp/internal/insight"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	FraudService     fraud.Service
	InsightService   insight.Service
	AnalyticsService analytics.Service
}
