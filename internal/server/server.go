// Package server wires the services into an MCP server speaking the stdio
// transport.
package server

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/frauddesk/fraud-mcp/internal/analytics"
	"github.com/frauddesk/fraud-mcp/internal/config"
	"github.com/frauddesk/fraud-mcp/internal/fraud"
	"github.com/frauddesk/fraud-mcp/internal/insight"
)

const (
	serverName    = "fraud-mcp"
	serverVersion = "1.0.0"
)

// FraudMCPServer owns the MCP server instance and the services the tool
// handlers delegate to.
type FraudMCPServer struct {
	config         *config.Config
	MCPServer      *server.MCPServer
	fraudService   fraud.Service
	insightService insight.Service
	anService      analytics.Service
}

// NewFraudMCPServer builds the MCP server and registers the enabled tools.
func NewFraudMCPServer(cfg *config.Config, fraudService fraud.Service, insightService insight.Service, anService analytics.Service) (*FraudMCPServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	s := &FraudMCPServer{
		config:         cfg,
		fraudService:   fraudService,
		insightService: insightService,
		anService:      anService,
	}

	s.MCPServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}

	s.anService.EmitEvent(s.anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:      serverVersion,
		StoreBackend: string(cfg.Store),
		ReadOnly:     cfg.ReadOnly,
	}))

	slog.Info("fraud MCP server initialized",
		"version", serverVersion,
		"store", cfg.Store,
		"readOnly", cfg.ReadOnly)

	return s, nil
}

// Serve runs the server on the stdio transport until the client disconnects.
func (s *FraudMCPServer) Serve() error {
	return server.ServeStdio(s.MCPServer)
}
