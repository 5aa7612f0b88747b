package config

import (
	"time"

	"studymate/pkg/db/redis"
)

// RedisConfig - параметры Redis, в котором хранятся отозванные токены.
type RedisConfig struct {
	Enabled        bool          `yaml:"enabled" env:"STUDYMATE_REDIS_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"STUDYMATE_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"STUDYMATE_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"STUDYMATE_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"STUDYMATE_REDIS_DB" env-default:"0"`
	PoolSize       int           `yaml:"pool_size" env:"STUDYMATE_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle        int           `yaml:"min_idle" env:"STUDYMATE_REDIS_MIN_IDLE" env-default:"1"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"STUDYMATE_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	Timeout        time.Duration `yaml:"timeout" env:"STUDYMATE_REDIS_TIMEOUT" env-default:"3s"`
	KeyPrefix      string        `yaml:"key_prefix" env:"STUDYMATE_REDIS_KEY_PREFIX" env-default:"studymate:revoked:"`
}

// ClientConfig преобразует настройки в конфигурацию клиента pkg/db/redis.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:           c.Host,
		Port:           c.Port,
		Password:       c.Password,
		DB:             c.DB,
		PoolSize:       c.PoolSize,
		MinIdle:        c.MinIdle,
		ConnectTimeout: c.ConnectTimeout,
		Timeout:        c.Timeout,
	}
}
