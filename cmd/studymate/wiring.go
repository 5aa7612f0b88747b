package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"studymate/internal/assistant/adapters/openrouter"
	assistantapp "studymate/internal/assistant/app"
	authmemory "studymate/internal/auth/adapters/memory"
	authpostgres "studymate/internal/auth/adapters/postgres"
	authredis "studymate/internal/auth/adapters/redis"
	authservices "studymate/internal/auth/adapters/services"
	authapp "studymate/internal/auth/app"
	authrepos "studymate/internal/auth/ports/repositories"
	"studymate/internal/config"
	"studymate/internal/db"
	httpServer "studymate/internal/gateway/app/http"
	"studymate/internal/resilience"
	studymemory "studymate/internal/study/adapters/memory"
	studypostgres "studymate/internal/study/adapters/postgres"
	studyapp "studymate/internal/study/app"
	studyrepos "studymate/internal/study/ports/repositories"
	"studymate/pkg/db/redis"
	"studymate/pkg/logger"
	"studymate/pkg/shutdown"
)

const (
	completionServiceName = "openrouter"

	LogClosingDatabase = "closing database connection"
	LogClosingRedis    = "closing Redis connection"

	ErrOpenDatabase = "failed to open database"
	ErrCreateRedis  = "failed to create Redis client"
)

// storage - выбранные реализации репозиториев и хуки их закрытия.
type storage struct {
	users    authrepos.UserRepository
	revoked  authrepos.RevocationRepository
	subjects studyrepos.SubjectRepository
	notes    studyrepos.NoteRepository
	tasks    studyrepos.TaskRepository
	closers  []shutdown.Hook
}

func newStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	log := logger.Log(ctx)
	store := &storage{}

	if cfg.Storage.IsMemory() {
		repos := studymemory.NewRepositories()
		store.users = authmemory.NewUserRepository()
		store.subjects, store.notes, store.tasks = repos.Subjects, repos.Notes, repos.Tasks
	} else {
		database, err := db.New(ctx, &cfg.Postgres, cfg.Storage.MigrationsPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrOpenDatabase, err)
		}
		repos := studypostgres.NewRepositories(database.Pool())
		store.users = authpostgres.NewUserRepository(database.Pool())
		store.subjects, store.notes, store.tasks = repos.Subjects, repos.Notes, repos.Tasks
		store.closers = append(store.closers, func(ctx context.Context) error {
			log.Info(ctx, LogClosingDatabase)
			database.Close(ctx)
			return nil
		})
	}

	if !cfg.Redis.Enabled {
		store.revoked = authmemory.NewRevocationRepository()
		return store, nil
	}

	client, err := redis.NewClient(ctx, cfg.Redis.ClientConfig())
	if err != nil {
		store.close(ctx)
		return nil, fmt.Errorf("%s: %w", ErrCreateRedis, err)
	}
	store.revoked = authredis.NewRevocationRepository(client, cfg.Redis.KeyPrefix)
	store.closers = append(store.closers, func(ctx context.Context) error {
		log.Info(ctx, LogClosingRedis)
		return client.Close()
	})
	return store, nil
}

func (s *storage) close(ctx context.Context) {
	for _, closer := range s.closers {
		if err := closer(ctx); err != nil {
			logger.Log(ctx).Warn(ctx, "failed to release storage", zap.Error(err))
		}
	}
}

func newDependencies(cfg *config.Config, store *storage) httpServer.Dependencies {
	factory := authservices.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.TokenTTL, cfg.JWT.BCryptCost)

	completion := openrouter.NewClient(cfg.OpenRouter)
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.OpenRouter.MaxAttempts
	retry.AttemptTimeout = cfg.OpenRouter.Timeout
	retry.ShouldRetry = openrouter.ShouldRetry

	breaker := resilience.DefaultCircuitBreakerConfig()
	breaker.IsFailure = openrouter.IsFailure

	res := resilience.NewServiceResilience(completionServiceName, retry, breaker)

	return httpServer.Dependencies{
		Auth:      authapp.NewAuthUseCase(store.users, store.revoked, factory.PasswordService(), factory.TokenService()),
		Users:     authapp.NewUserUseCase(store.users, factory.PasswordService()),
		Resolver:  authapp.NewIdentityResolver(store.users, store.revoked, factory.TokenService()),
		Subjects:  studyapp.NewSubjectUseCase(store.subjects),
		Notes:     studyapp.NewNoteUseCase(store.notes, store.subjects),
		Tasks:     studyapp.NewTaskUseCase(store.tasks, store.subjects),
		Assistant: assistantapp.NewAssistantUseCase(completion, res),
	}
}
