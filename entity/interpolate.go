package entity

import "strings"

// Interpolated returns a deep copy of the crew with {placeholder} tokens
// replaced in every prompt-bearing field, so one loaded definition can serve
// many queries without mutation.
func (c *Crew) Interpolated(inputs map[string]string) *Crew {
	replace := func(s string) string {
		for key, value := range inputs {
			s = strings.ReplaceAll(s, "{"+key+"}", value)
		}
		return s
	}

	out := &Crew{
		Name:    c.Name,
		Process: c.Process,
		Agents:  make([]Agent, len(c.Agents)),
		Tasks:   make([]Task, len(c.Tasks)),
	}

	for i, agent := range c.Agents {
		agent.Goal = replace(agent.Goal)
		agent.Backstory = replace(agent.Backstory)
		agent.Tools = append([]string(nil), agent.Tools...)
		out.Agents[i] = agent
	}

	for i, task := range c.Tasks {
		task.Description = replace(task.Description)
		task.ExpectedOutput = replace(task.ExpectedOutput)
		task.Context = append([]string(nil), task.Context...)
		task.Tools = append([]string(nil), task.Tools...)
		if task.ToolChoice != nil {
			choice := ToolChoice{
				Name:      task.ToolChoice.Name,
				Arguments: make(map[string]any, len(task.ToolChoice.Arguments)),
			}
			for k, v := range task.ToolChoice.Arguments {
				if s, ok := v.(string); ok {
					choice.Arguments[k] = replace(s)
				} else {
					choice.Arguments[k] = v
				}
			}
			task.ToolChoice = &choice
		}
		out.Tasks[i] = task
	}

	return out
}
