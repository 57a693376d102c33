package crew

import (
	"context"

	"github.com/crewsearch/crewsearch/engine"
	"github.com/crewsearch/crewsearch/errors"
	"github.com/google/uuid"
)

type (
	TaskOutput struct {
		Task  string `json:"task"`
		Agent string `json:"agent"`
		Raw   string `json:"raw"`

		ToolCalls []engine.ToolCallRecord `json:"tool_calls,omitempty"`
	}

	Output struct {
		RunID string `json:"run_id"`
		// Raw is the final task's text, the crew's answer.
		Raw         string       `json:"raw"`
		TaskOutputs []TaskOutput `json:"task_outputs"`
		Usage       engine.Usage `json:"usage"`
	}
)

// Kickoff runs every task strictly in declared order. A task starts only
// after all of its context tasks have completed; any failure aborts the run.
func (c *Crew) Kickoff(ctx context.Context) (out *Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = errors.Wrapf(errors.ErrCrewExecution, "panic during crew execution: %v", r)
		}
	}()

	out = &Output{
		RunID: uuid.NewString(),
	}
	taskOutputs := make(map[string]string, len(c.def.Tasks))

	c.logger.Info("crew kickoff", "crew", c.def.Name, "runId", out.RunID, "tasks", len(c.def.Tasks))

	for _, task := range c.def.Tasks {
		agent, err := c.def.Agent(task.Agent)
		if err != nil {
			return nil, wrapTaskErr(err, task.Name)
		}

		toolNames := task.Tools
		if len(toolNames) == 0 {
			toolNames = agent.Tools
		}
		tools, err := c.toolManager.GetTools(toolNames)
		if err != nil {
			return nil, wrapTaskErr(err, task.Name)
		}

		prompt, err := renderTaskPrompt(&task, taskOutputs)
		if err != nil {
			return nil, wrapTaskErr(err, task.Name)
		}
		system, err := renderSystemPrompt(agent)
		if err != nil {
			return nil, wrapTaskErr(err, task.Name)
		}

		c.logger.Info("task start", "task", task.Name, "agent", agent.Role)

		res, err := c.engine.Generate(ctx, &engine.GenerateRequest{
			System:     system,
			Prompt:     prompt,
			Model:      agent.ModelName,
			Tools:      tools,
			ToolChoice: task.ToolChoice,
		})
		if err != nil {
			return nil, wrapTaskErr(err, task.Name)
		}

		c.logger.Info("task done", "task", task.Name, "agent", agent.Role, "tokens", res.Usage.TotalTokens)

		taskOutputs[task.Name] = res.Text
		out.TaskOutputs = append(out.TaskOutputs, TaskOutput{
			Task:      task.Name,
			Agent:     agent.Name,
			Raw:       res.Text,
			ToolCalls: res.ToolCalls,
		})
		out.Raw = res.Text
		out.Usage.InputTokens += res.Usage.InputTokens
		out.Usage.OutputTokens += res.Usage.OutputTokens
		out.Usage.TotalTokens += res.Usage.TotalTokens
	}

	return out, nil
}

// wrapTaskErr keeps search failures recognizable as such; everything else is
// tagged as a crew execution failure.
func wrapTaskErr(err error, taskName string) error {
	if errors.Is(err, errors.ErrSearch) {
		return errors.Wrapf(err, "task %s failed", taskName)
	}
	return errors.Wrapf(errors.ErrCrewExecution, "task %s failed: %v", taskName, err)
}
