package config

import "time"

// OpenRouterConfig - параметры внешнего API chat-completion.
type OpenRouterConfig struct {
	BaseURL     string        `yaml:"base_url" env:"STUDYMATE_AI_BASE_URL" env-default:"https://openrouter.ai/api/v1"`
	APIKey      string        `yaml:"api_key" env:"STUDYMATE_AI_API_KEY" env-default:""`
	Model       string        `yaml:"model" env:"STUDYMATE_AI_MODEL" env-default:"deepseek/deepseek-chat-v3.1:free"`
	Temperature float64       `yaml:"temperature" env:"STUDYMATE_AI_TEMPERATURE" env-default:"0.7"`
	MaxTokens   int           `yaml:"max_tokens" env:"STUDYMATE_AI_MAX_TOKENS" env-default:"2000"`
	Timeout     time.Duration `yaml:"timeout" env:"STUDYMATE_AI_TIMEOUT" env-default:"30s"`
	Referer     string        `yaml:"referer" env:"STUDYMATE_AI_REFERER" env-default:"http://localhost:8080"`
	Title       string        `yaml:"title" env:"STUDYMATE_AI_TITLE" env-default:"StudyMate"`
	MaxAttempts int           `yaml:"max_attempts" env:"STUDYMATE_AI_MAX_ATTEMPTS" env-default:"2"`
}

// IsConfigured сообщает, задан ли ключ API.
func (c *OpenRouterConfig) IsConfigured() bool {
	return c.APIKey != ""
}
