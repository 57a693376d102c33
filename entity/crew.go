package entity

import (
	"os"

	"github.com/crewsearch/crewsearch/errors"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
)

type Process string

const (
	ProcessSequential Process = "sequential"
)

// Crew is the ordered set of agents and tasks executed for one query.
type Crew struct {
	Name    string  `json:"name" yaml:"name"`
	Process Process `json:"process" yaml:"process"`
	Agents  []Agent `json:"agents" yaml:"agents"`
	Tasks   []Task  `json:"tasks" yaml:"tasks"`
}

// LoadCrewFromFile reads a YAML crew definition, letting operators override
// roles and prompts without rebuilding.
func LoadCrewFromFile(filename string) (*Crew, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read crew file: %s", filename)
	}

	var crew Crew
	if err := yaml.Unmarshal(data, &crew); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal crew file: %s", filename)
	}
	if crew.Process == "" {
		crew.Process = ProcessSequential
	}

	if err := crew.Validate(); err != nil {
		return nil, err
	}

	return &crew, nil
}

// Validate checks the crew is a well-formed sequential pipeline: every task
// is bound to a known agent and context names only earlier tasks,
// so the declared order is already topological.
func (c *Crew) Validate() error {
	if len(c.Agents) == 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "crew has no agents")
	}
	if len(c.Tasks) == 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "crew has no tasks")
	}
	if c.Process != ProcessSequential {
		return errors.Wrapf(errors.ErrInvalidConfig, "unsupported process: %q", c.Process)
	}

	agentNames := lo.Map(c.Agents, func(a Agent, _ int) string { return a.Name })
	if len(lo.Uniq(agentNames)) != len(agentNames) {
		return errors.Wrapf(errors.ErrInvalidConfig, "duplicate agent names")
	}

	seen := make(map[string]struct{}, len(c.Tasks))
	for _, task := range c.Tasks {
		if task.Name == "" {
			return errors.Wrapf(errors.ErrInvalidConfig, "task name is required")
		}
		if _, ok := seen[task.Name]; ok {
			return errors.Wrapf(errors.ErrInvalidConfig, "duplicate task name: %s", task.Name)
		}
		if !lo.Contains(agentNames, task.Agent) {
			return errors.Wrapf(errors.ErrInvalidConfig, "task %s references unknown agent: %s", task.Name, task.Agent)
		}
		for _, dep := range task.Context {
			if _, ok := seen[dep]; !ok {
				return errors.Wrapf(errors.ErrInvalidConfig, "task %s depends on %s, which is not an earlier task", task.Name, dep)
			}
		}
		seen[task.Name] = struct{}{}
	}

	return nil
}

// Agent returns the agent a task is bound to.
func (c *Crew) Agent(name string) (*Agent, error) {
	agent, ok := lo.Find(c.Agents, func(a Agent) bool { return a.Name == name })
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "agent %s", name)
	}
	return &agent, nil
}
