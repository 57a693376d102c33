package crewsearch

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/crewsearch/crewsearch/config"
	"github.com/crewsearch/crewsearch/crew"
	"github.com/crewsearch/crewsearch/engine"
	"github.com/crewsearch/crewsearch/entity"
	"github.com/crewsearch/crewsearch/errors"
	"github.com/crewsearch/crewsearch/internal/mylog"
	"github.com/crewsearch/crewsearch/linkup"
	"github.com/crewsearch/crewsearch/tool"
)

// Version is reported to MCP hosts and by the version command.
const Version = "0.1.0"

type (
	// Runtime wires the Linkup client, the model engine, and the crew
	// definition together. All configuration is explicit; two runtimes with
	// different configs can live in the same process.
	Runtime struct {
		logger *slog.Logger

		logConfig    *config.LogConfig
		modelConfig  *config.ModelConfig
		linkupConfig *config.LinkupConfig

		linkupHTTPClient *http.Client
		modelClient      engine.ModelClient
		crewDef          *entity.Crew
	}
	Option func(*Runtime)
)

func NewRuntime(optionFuncs ...Option) (*Runtime, error) {
	r := &Runtime{
		logConfig:    config.NewLogConfig(),
		modelConfig:  config.NewModelConfig(),
		linkupConfig: config.NewLinkupConfig(),
	}
	for _, f := range optionFuncs {
		f(r)
	}

	if r.logger == nil {
		r.logger = mylog.NewLogger(r.logConfig.LogLevel, r.logConfig.LogHandler)
	}
	if r.modelConfig == nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "model config is required")
	}
	if r.linkupConfig == nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "linkup config is required")
	}
	if r.modelClient == nil {
		r.modelClient = engine.NewModelClient(r.modelConfig)
	}
	if r.crewDef != nil {
		if err := r.crewDef.Validate(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Research runs the full pipeline for one query: search, analysis, writing.
// Every call builds a fresh crew; nothing is shared between calls.
func (r *Runtime) Research(ctx context.Context, query string) (*crew.Output, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.Wrapf(errors.ErrInvalidParams, "query is required")
	}

	def := entity.DefaultResearchCrew(query)
	if r.crewDef != nil {
		def = r.crewDef.Interpolated(map[string]string{"query": query})
	}

	toolManager := tool.NewManager(r.logger)
	linkupClient := linkup.NewClient(r.linkupConfig, r.logger, r.linkupHTTPClient)
	if err := toolManager.Register(tool.NewLinkupSearchTool(linkupClient)); err != nil {
		return nil, err
	}

	e := engine.NewEngine(r.logger, toolManager, r.modelClient, r.modelConfig)

	c, err := crew.New(r.logger, def, e, toolManager)
	if err != nil {
		return nil, err
	}

	return c.Kickoff(ctx)
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

func WithLogConfig(conf *config.LogConfig) Option {
	return func(r *Runtime) {
		r.logConfig = conf
	}
}

func WithModelConfig(conf *config.ModelConfig) Option {
	return func(r *Runtime) {
		r.modelConfig = conf
	}
}

func WithLinkupConfig(conf *config.LinkupConfig) Option {
	return func(r *Runtime) {
		r.linkupConfig = conf
	}
}

// WithLinkupHTTPClient overrides the HTTP client used for Linkup calls.
func WithLinkupHTTPClient(client *http.Client) Option {
	return func(r *Runtime) {
		r.linkupHTTPClient = client
	}
}

// WithModelClient substitutes the chat completions backend.
func WithModelClient(client engine.ModelClient) Option {
	return func(r *Runtime) {
		r.modelClient = client
	}
}

// WithCrew overrides the built-in research crew. Task descriptions and pinned
// tool arguments may reference the query as {query}.
func WithCrew(def *entity.Crew) Option {
	return func(r *Runtime) {
		r.crewDef = def
	}
}
