// Package postgres реализует хранилища предметов, заметок и задач в PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"studymate/internal/study/domain/entities"
	pgutil "studymate/pkg/db/postgres"
)

// PgxPoolInterface - подмножество pgxpool.Pool, которое нужно репозиториям.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// Repositories - набор репозиториев поверх одного пула.
type Repositories struct {
	Subjects *SubjectRepository
	Notes    *NoteRepository
	Tasks    *TaskRepository
}

// NewRepositories создает все репозитории учебного домена.
func NewRepositories(pool PgxPoolInterface) *Repositories {
	return &Repositories{
		Subjects: &SubjectRepository{pool: pool},
		Notes:    &NoteRepository{pool: pool},
		Tasks:    &TaskRepository{pool: pool},
	}
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return result, nil
}

// domainError переводит ошибку записи в доменную: отсутствующая строка дает notFound,
// нарушение внешнего ключа на предмет - ErrSubjectNotFound. Для прочих ошибок возвращает nil.
func domainError(err, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	if pgutil.IsForeignKeyViolation(err) {
		return entities.ErrSubjectNotFound
	}
	return nil
}
