package config

import (
	"strings"

	"studymate/pkg/logger"
)

// LoggingConfig - параметры журналирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"STUDYMATE_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"STUDYMATE_LOGGER_MODE" env-default:"production"`
}

// GetEnvironment переводит режим в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if strings.EqualFold(l.Mode, string(logger.Development)) {
		return logger.Development
	}
	return logger.Production
}
