package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// PostgresConfig - параметры подключения к базе данных.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"STUDYMATE_POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"STUDYMATE_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"STUDYMATE_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"STUDYMATE_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"STUDYMATE_POSTGRES_DB" env-default:"studymate"`
	SSLMode  string `yaml:"ssl_mode" env:"STUDYMATE_POSTGRES_SSLMODE" env-default:"disable"`
	MinConn  int    `yaml:"min_conn" env:"STUDYMATE_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"STUDYMATE_POSTGRES_MAX_CONN" env-default:"10"`
}

// GetDSN возвращает строку подключения для pgx.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// GetConnectionURL возвращает URL подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     "/" + p.Database,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}
