package config

import "fmt"

// Драйверы хранилища.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// StorageConfig выбирает реализацию репозиториев.
type StorageConfig struct {
	Driver         string `yaml:"driver" env:"STUDYMATE_STORAGE_DRIVER" env-default:"postgres"`
	MigrationsPath string `yaml:"migrations_path" env:"STUDYMATE_MIGRATIONS_PATH" env-default:"migrations/studymate"`
}

// Validate проверяет имя драйвера.
func (s *StorageConfig) Validate() error {
	switch s.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}
}

// IsMemory сообщает, используется ли хранилище в памяти.
func (s *StorageConfig) IsMemory() bool {
	return s.Driver == StorageDriverMemory
}
