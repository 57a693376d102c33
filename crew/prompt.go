package crew

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/crewsearch/crewsearch/entity"
	"github.com/crewsearch/crewsearch/errors"
)

var (
	//go:embed data/instructions/system.md.tmpl
	systemInst     string
	systemInstTmpl = template.Must(template.New("system").Parse(systemInst))

	//go:embed data/instructions/task.md.tmpl
	taskInst     string
	taskInstTmpl = template.Must(template.New("task").Parse(taskInst))
)

type contextOutput struct {
	Task string
	Raw  string
}

func renderSystemPrompt(agent *entity.Agent) (string, error) {
	var sb strings.Builder
	if err := systemInstTmpl.Execute(&sb, struct {
		Agent *entity.Agent
	}{Agent: agent}); err != nil {
		return "", errors.Wrapf(err, "failed to render system prompt for agent %s", agent.Name)
	}
	return sb.String(), nil
}

func renderTaskPrompt(task *entity.Task, taskOutputs map[string]string) (string, error) {
	contextOutputs := make([]contextOutput, 0, len(task.Context))
	for _, dep := range task.Context {
		raw, ok := taskOutputs[dep]
		if !ok {
			return "", errors.Wrapf(errors.ErrInvalidConfig, "task %s context %s has no output yet", task.Name, dep)
		}
		contextOutputs = append(contextOutputs, contextOutput{Task: dep, Raw: raw})
	}

	var sb strings.Builder
	if err := taskInstTmpl.Execute(&sb, struct {
		Task           *entity.Task
		ContextOutputs []contextOutput
	}{
		Task:           task,
		ContextOutputs: contextOutputs,
	}); err != nil {
		return "", errors.Wrapf(err, "failed to render prompt for task %s", task.Name)
	}
	return sb.String(), nil
}
