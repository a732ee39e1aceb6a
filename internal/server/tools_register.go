package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/frauddesk/fraud-mcp/internal/tools"
	"github.com/frauddesk/fraud-mcp/internal/tools/analysis/dashboard"
	"github.com/frauddesk/fraud-mcp/internal/tools/analysis/patterns"
	"github.com/frauddesk/fraud-mcp/internal/tools/analysis/prevention"
	"github.com/frauddesk/fraud-mcp/internal/tools/analysis/risk_assessment"
	"github.com/frauddesk/fraud-mcp/internal/tools/record/create"
	"github.com/frauddesk/fraud-mcp/internal/tools/record/get_record"
	"github.com/frauddesk/fraud-mcp/internal/tools/record/recent"
	"github.com/frauddesk/fraud-mcp/internal/tools/record/statistics"
	"github.com/frauddesk/fraud-mcp/internal/tools/record/user_records"
	"github.com/frauddesk/fraud-mcp/internal/tools/record/verification"
)

// registerTools registers all enabled MCP tools and adds them to the MCP server.
// Tools are filtered according to the server configuration: when read-only mode
// is enabled (e.g. via the FRAUD_READ_ONLY environment variable or the
// Config.ReadOnly flag), any tool that performs state mutation is excluded;
// only tools marked read-only are registered.
func (s *FraudMCPServer) registerTools() error {
	filteredTools := s.getEnabledTools()
	s.MCPServer.AddTools(filteredTools...)
	return nil
}

type toolFilter func(tools []ToolDefinition) []ToolDefinition

type toolCategory int

const (
	recordCategory   toolCategory = 0 // CRUD over fraud records
	analysisCategory toolCategory = 1 // Narrative analysis tools
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
}

func (s *FraudMCPServer) getEnabledTools() []server.ServerTool {
	filters := make([]toolFilter, 0)

	// If read-only mode is enabled, expose only tools annotated as read-only.
	if s.config != nil && s.config.ReadOnly {
		filters = append(filters, filterWriteTools)
	}

	deps := &tools.ToolDependencies{
		FraudService:     s.fraudService,
		InsightService:   s.insightService,
		AnalyticsService: s.anService,
	}
	toolDefs := s.getAllToolsDefs(deps)

	for _, filter := range filters {
		toolDefs = filter(toolDefs)
	}
	enabledTools := make([]server.ServerTool, 0)
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *FraudMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	return []ToolDefinition{
		// Record Category/Section
		{
			category: recordCategory,
			definition: server.ServerTool{
				Tool:    create.Spec(),
				Handler: create.Handler(deps),
			},
			readonly: false,
		},
		{
			category: recordCategory,
			definition: server.ServerTool{
				Tool:    create.SpecWithAI(),
				Handler: create.HandlerWithAI(deps),
			},
			readonly: false,
		},
		{
			category: recordCategory,
			definition: server.ServerTool{
				Tool:    get_record.Spec(),
				Handler: get_record.Handler(deps),
			},
			readonly: true,
		},
		{
			category: recordCategory,
			definition: server.ServerTool{
				Tool:    user_records.Spec(),
				Handler: user_records.Handler(deps),
			},
			readonly: true,
		},
		{
			category: recordCategory,
			definition: server.ServerTool{
				Tool:    statistics.Spec(),
				Handler: statistics.Handler(deps),
			},
			readonly: true,
		},
		{
			category: recordCategory,
			definition: server.ServerTool{
				Tool:    recent.Spec(),
				Handler: recent.Handler(deps),
			},
			readonly: true,
		},
		{
			category: recordCategory,
			definition: server.ServerTool{
				Tool:    verification.Spec(),
				Handler: verification.Handler(deps),
			},
			readonly: false,
		},
		// Analysis Category/Section
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    patterns.Spec(),
				Handler: patterns.Handler(deps),
			},
			readonly: true,
		},
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    risk_assessment.Spec(),
				Handler: risk_assessment.Handler(deps),
			},
			readonly: true,
		},
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    prevention.Spec(),
				Handler: prevention.Handler(deps),
			},
			readonly: true,
		},
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    dashboard.Spec(),
				Handler: dashboard.Handler(deps),
			},
			readonly: true,
		},
	}
}
