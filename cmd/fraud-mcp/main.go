package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/frauddesk/fraud-mcp/internal/analytics"
	"github.com/frauddesk/fraud-mcp/internal/config"
	"github.com/frauddesk/fraud-mcp/internal/fraud"
	"github.com/frauddesk/fraud-mcp/internal/insight"
	"github.com/frauddesk/fraud-mcp/internal/logging"
	"github.com/frauddesk/fraud-mcp/internal/server"
	"github.com/frauddesk/fraud-mcp/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.Logging)

	store, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize record store", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("closing record store failed", "error", err)
		}
	}()

	anService := analytics.NewService(cfg.Analytics.Endpoint, nil)
	if cfg.Analytics.Disabled {
		anService.Disable()
	}

	fraudService := fraud.NewService(store)
	insightService := insight.NewService(buildGenerator(cfg, logger))

	srv, err := server.NewFraudMCPServer(cfg, fraudService, insightService, anService)
	if err != nil {
		logger.Error("failed to initialize MCP server", "error", err)
		os.Exit(1)
	}

	logger.Info("serving MCP over stdio", "store", cfg.Store, "readOnly", cfg.ReadOnly)
	if err := srv.Serve(); err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}

func buildStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Store {
	case config.StoreNeo4j:
		return storage.NewNeo4jStore(ctx, storage.Neo4jOptions{
			URI:      cfg.Neo4j.URI,
			Database: cfg.Neo4j.Database,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
		})
	case config.StoreDynamoDB:
		return storage.NewDynamoStore(ctx, storage.DynamoOptions{
			Region:    cfg.DynamoDB.Region,
			TableName: cfg.DynamoDB.Table,
			Endpoint:  cfg.DynamoDB.Endpoint,
		})
	default:
		return storage.NewMemoryStore(), nil
	}
}

func buildGenerator(cfg *config.Config, logger *slog.Logger) insight.Generator {
	if cfg.LLM.BaseURL == "" || cfg.LLM.Model == "" {
		logger.Warn("no chat-completion provider configured, narrative tools will use fallback text")
		return insight.UnavailableGenerator{}
	}

	client, err := insight.NewChatClient(insight.ChatClientOptions{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		logger.Warn("chat client configuration rejected, narrative tools will use fallback text", "error", err)
		return insight.UnavailableGenerator{}
	}
	return client
}
