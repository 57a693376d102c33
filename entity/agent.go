package entity

// Agent is a role-bound persona driving one or more tasks. Tools lists the
// names of capabilities the agent may call during its turns.
type Agent struct {
	Name            string   `json:"name" yaml:"name"`
	Role            string   `json:"role" yaml:"role"`
	Goal            string   `json:"goal" yaml:"goal"`
	Backstory       string   `json:"backstory" yaml:"backstory"`
	AllowDelegation bool     `json:"allowDelegation" yaml:"allowDelegation"`
	Tools           []string `json:"tools,omitempty" yaml:"tools"`

	// ModelName overrides the crew-wide model for this agent when set.
	ModelName string `json:"model,omitempty" yaml:"model"`
}
