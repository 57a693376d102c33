package crew

import (
	"log/slog"

	"github.com/crewsearch/crewsearch/engine"
	"github.com/crewsearch/crewsearch/entity"
	"github.com/crewsearch/crewsearch/tool"
)

// Crew executes one validated crew definition. Instances are built fresh per
// research call and share nothing with each other.
type Crew struct {
	logger      *slog.Logger
	def         *entity.Crew
	engine      *engine.Engine
	toolManager tool.Manager
}

func New(
	logger *slog.Logger,
	def *entity.Crew,
	e *engine.Engine,
	toolManager tool.Manager,
) (*Crew, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &Crew{
		logger:      logger,
		def:         def,
		engine:      e,
		toolManager: toolManager,
	}, nil
}

// Definition exposes the validated crew for inspection.
func (c *Crew) Definition() *entity.Crew {
	return c.def
}
