package config

import "time"

type LinkupConfig struct {
	APIKey  string        `yaml:"apiKey"`
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

func NewLinkupConfig() *LinkupConfig {
	return &LinkupConfig{
		BaseURL: "https://api.linkup.so/v1",
		Timeout: 90 * time.Second,
	}
}

func NewLinkupConfigFromEnv() *LinkupConfig {
	c := NewLinkupConfig()
	c.APIKey = getEnv("LINKUP_API_KEY", c.APIKey)
	c.BaseURL = getEnv("LINKUP_BASE_URL", c.BaseURL)
	c.Timeout = getEnvDuration("LINKUP_TIMEOUT", c.Timeout)
	return c
}
