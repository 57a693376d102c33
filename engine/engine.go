package engine

import (
	"log/slog"

	"github.com/crewsearch/crewsearch/config"
	"github.com/crewsearch/crewsearch/tool"
)

type (
	Engine struct {
		logger      *slog.Logger
		toolManager tool.Manager
		client      ModelClient
		config      *config.ModelConfig
	}
)

func NewEngine(
	logger *slog.Logger,
	toolManager tool.Manager,
	client ModelClient,
	conf *config.ModelConfig,
) *Engine {
	return &Engine{
		logger:      logger,
		toolManager: toolManager,
		client:      client,
		config:      conf,
	}
}
