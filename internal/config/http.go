package config

import (
	"net"
	"strconv"
	"time"
)

// HTTPConfig - параметры HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"STUDYMATE_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"STUDYMATE_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"STUDYMATE_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"STUDYMATE_HTTP_WRITE_TIMEOUT" env-default:"60s"`
	BodyLimit    int           `yaml:"body_limit" env:"STUDYMATE_HTTP_BODY_LIMIT" env-default:"10485760"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
