package tool

import (
	"log/slog"
	"sync"

	"github.com/crewsearch/crewsearch/errors"
)

type (
	Manager interface {
		Register(tool Tool) error
		GetTool(toolName string) (Tool, error)
		GetTools(toolNames []string) ([]Tool, error)
	}
	manager struct {
		logger *slog.Logger

		mtx   sync.Mutex
		tools map[string]Tool
	}
)

var (
	_ Manager = (*manager)(nil)
)

func NewManager(logger *slog.Logger) Manager {
	return &manager{
		logger: logger,
		tools:  make(map[string]Tool),
	}
}

func (m *manager) Register(tool Tool) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if tool.Name() == "" {
		return errors.Wrapf(errors.ErrInvalidParams, "tool name is required")
	}
	if _, ok := m.tools[tool.Name()]; ok {
		return errors.Wrapf(errors.ErrInvalidParams, "tool %s already registered", tool.Name())
	}

	m.tools[tool.Name()] = tool
	m.logger.Debug("tool registered", "name", tool.Name())
	return nil
}

func (m *manager) GetTool(toolName string) (Tool, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	tool, ok := m.tools[toolName]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "tool %s", toolName)
	}
	return tool, nil
}

func (m *manager) GetTools(toolNames []string) ([]Tool, error) {
	tools := make([]Tool, 0, len(toolNames))
	for _, toolName := range toolNames {
		tool, err := m.GetTool(toolName)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}
