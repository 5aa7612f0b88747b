package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/repositories"
)

// SubjectRepository - предметы в памяти.
type SubjectRepository struct {
	*Store[*entities.Subject]
	notes *NoteRepository
	tasks *TaskRepository
}

// Delete удаляет предмет и отвязывает от него заметки и задачи, как ON DELETE SET NULL.
func (r *SubjectRepository) Delete(ctx context.Context, id, ownerID string) error {
	if err := r.Store.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	r.notes.Mutate(func(n *entities.Note) {
		if n.SubjectID != nil && *n.SubjectID == id {
			n.SubjectID = nil
		}
	})
	r.tasks.Mutate(func(t *entities.Task) {
		if t.SubjectID != nil && *t.SubjectID == id {
			t.SubjectID = nil
		}
	})
	return nil
}

// ExistsByName сравнивает имена без учета регистра.
func (r *SubjectRepository) ExistsByName(_ context.Context, ownerID, name, excludeID string) (bool, error) {
	found := r.Filter(ownerID, func(s *entities.Subject) bool {
		return s.ID != excludeID && strings.EqualFold(s.Name, name)
	})
	return len(found) > 0, nil
}

// NoteRepository - заметки в памяти.
type NoteRepository struct {
	*Store[*entities.Note]
}

func (r *NoteRepository) ListBySubject(_ context.Context, ownerID, subjectID string) ([]*entities.Note, error) {
	return r.Filter(ownerID, func(n *entities.Note) bool {
		return n.SubjectID != nil && *n.SubjectID == subjectID
	}), nil
}

func (r *NoteRepository) SearchByTitle(_ context.Context, ownerID, query string) ([]*entities.Note, error) {
	query = strings.ToLower(query)
	return r.Filter(ownerID, func(n *entities.Note) bool {
		return strings.Contains(strings.ToLower(n.Title), query)
	}), nil
}

// TaskRepository - задачи в памяти.
type TaskRepository struct {
	*Store[*entities.Task]
}

func (r *TaskRepository) ListBySubject(_ context.Context, ownerID, subjectID string) ([]*entities.Task, error) {
	return r.Filter(ownerID, func(t *entities.Task) bool {
		return t.SubjectID != nil && *t.SubjectID == subjectID
	}), nil
}

func (r *TaskRepository) ListGeneral(_ context.Context, ownerID string) ([]*entities.Task, error) {
	return r.Filter(ownerID, func(t *entities.Task) bool { return t.SubjectID == nil }), nil
}

func (r *TaskRepository) ListPending(_ context.Context, ownerID string) ([]*entities.Task, error) {
	return r.Filter(ownerID, func(t *entities.Task) bool { return !t.Completed }), nil
}

func (r *TaskRepository) ListDueBefore(_ context.Context, ownerID string, before time.Time) ([]*entities.Task, error) {
	tasks := r.Filter(ownerID, func(t *entities.Task) bool {
		return !t.Completed && t.DueAt != nil && !t.DueAt.After(before)
	})
	slices.SortStableFunc(tasks, func(a, b *entities.Task) int {
		return a.DueAt.Compare(*b.DueAt)
	})
	return tasks, nil
}

// Repositories - связанный набор хранилищ в памяти.
type Repositories struct {
	Subjects *SubjectRepository
	Notes    *NoteRepository
	Tasks    *TaskRepository
}

// NewRepositories создает пустой набор хранилищ.
func NewRepositories() *Repositories {
	notes := &NoteRepository{Store: NewStore[*entities.Note](entities.ErrNoteNotFound)}
	tasks := &TaskRepository{Store: NewStore[*entities.Task](entities.ErrTaskNotFound)}
	subjects := &SubjectRepository{
		Store: NewStore[*entities.Subject](entities.ErrSubjectNotFound),
		notes: notes,
		tasks: tasks,
	}
	return &Repositories{Subjects: subjects, Notes: notes, Tasks: tasks}
}

var (
	_ repositories.SubjectRepository = (*SubjectRepository)(nil)
	_ repositories.NoteRepository    = (*NoteRepository)(nil)
	_ repositories.TaskRepository    = (*TaskRepository)(nil)
)
