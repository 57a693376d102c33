package config

type LogConfig struct {
	LogLevel   string `yaml:"logLevel"`
	LogHandler string `yaml:"logHandler"`
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		LogLevel:   "info",
		LogHandler: "default",
	}
}

func NewLogConfigFromEnv() *LogConfig {
	c := NewLogConfig()
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogHandler = getEnv("LOG_HANDLER", c.LogHandler)
	return c
}
