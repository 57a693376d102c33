package entity

// ToolChoice pins a task's first model turn to a specific tool call with
// pre-filled arguments.
type ToolChoice struct {
	Name      string         `json:"name" yaml:"name"`
	Arguments map[string]any `json:"arguments,omitempty" yaml:"arguments"`
}

// Task is one stage of a crew run. Context names upstream tasks whose raw
// outputs are injected into this task's prompt, which makes the execution
// graph explicit and inspectable.
type Task struct {
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	ExpectedOutput string   `json:"expectedOutput" yaml:"expectedOutput"`
	Agent          string   `json:"agent" yaml:"agent"`
	Context        []string `json:"context,omitempty" yaml:"context"`
	Tools          []string `json:"tools,omitempty" yaml:"tools"`

	ToolChoice *ToolChoice `json:"toolChoice,omitempty" yaml:"toolChoice"`
}
