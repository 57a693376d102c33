package config

// ModelConfig points the engine at an OpenAI-compatible chat completions
// endpoint. Defaults target a local Ollama instance, which accepts any
// non-empty API key.
type ModelConfig struct {
	BaseURL     string  `yaml:"baseUrl"`
	APIKey      string  `yaml:"apiKey"`
	ModelName   string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`

	// MaxTurns bounds the tool-calling loop for a single task.
	MaxTurns int `yaml:"maxTurns"`
}

func NewModelConfig() *ModelConfig {
	return &ModelConfig{
		BaseURL:   "http://localhost:11434/v1",
		APIKey:    "ollama",
		ModelName: "tinyllama:1.1b-chat",
		MaxTurns:  8,
	}
}

func NewModelConfigFromEnv() *ModelConfig {
	c := NewModelConfig()
	c.BaseURL = getEnv("OPENAI_BASE_URL", c.BaseURL)
	c.APIKey = getEnv("OPENAI_API_KEY", c.APIKey)
	c.ModelName = getEnv("MODEL_NAME", c.ModelName)
	return c
}
