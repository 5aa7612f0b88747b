package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/internal/shared"
	"studymate/internal/study/adapters/memory"
	"studymate/internal/study/app"
	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/api"
	"studymate/pkg/logger"
)

const (
	alice = "user-alice"
	bob   = "user-bob"
)

type fixture struct {
	ctx      context.Context
	now      time.Time
	repos    *memory.Repositories
	subjects api.SubjectUseCase
	notes    api.NoteUseCase
	tasks    api.TaskUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		ctx:   logger.NewContext(context.Background(), logger.NewNop()),
		now:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		repos: memory.NewRepositories(),
	}
	seq := 0
	opts := []app.Option{
		app.WithClock(func() time.Time { return f.now }),
		app.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	}
	f.subjects = app.NewSubjectUseCase(f.repos.Subjects, opts...)
	f.notes = app.NewNoteUseCase(f.repos.Notes, f.repos.Subjects, opts...)
	f.tasks = app.NewTaskUseCase(f.repos.Tasks, f.repos.Subjects, opts...)
	return f
}

func (f *fixture) subject(t *testing.T, owner, name string) *entities.Subject {
	t.Helper()
	s, err := f.subjects.Create(f.ctx, api.SubjectInput{Name: name}, owner)
	require.NoError(t, err)
	return s
}

func ptr[T any](v T) *T { return &v }

func TestSubjectUseCase(t *testing.T) {
	t.Run("create applies defaults", func(t *testing.T) {
		f := newFixture(t)

		s, err := f.subjects.Create(f.ctx, api.SubjectInput{Name: "  Math  ", Code: ptr("MAT101")}, alice)

		require.NoError(t, err)
		assert.Equal(t, "Math", s.Name)
		assert.Equal(t, entities.DefaultSubjectColor, s.Color)
		assert.Equal(t, alice, s.OwnerID)
		assert.True(t, s.Active)
		assert.Equal(t, f.now, s.CreatedAt)
	})

	t.Run("duplicate name per owner", func(t *testing.T) {
		f := newFixture(t)
		f.subject(t, alice, "Math")

		_, err := f.subjects.Create(f.ctx, api.SubjectInput{Name: "math"}, alice)
		require.ErrorIs(t, err, shared.ErrDuplicateName)

		_, err = f.subjects.Create(f.ctx, api.SubjectInput{Name: "Math"}, bob)
		require.NoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.subjects.Create(f.ctx, api.SubjectInput{Name: "M"}, alice)
		require.ErrorIs(t, err, shared.ErrValidation)

		_, err = f.subjects.Create(f.ctx, api.SubjectInput{Name: "Math", Color: "blue"}, alice)
		require.ErrorIs(t, err, entities.ErrInvalidColor)
	})

	t.Run("ownership", func(t *testing.T) {
		f := newFixture(t)
		s := f.subject(t, alice, "Math")

		_, err := f.subjects.GetByID(f.ctx, s.ID, bob)
		require.ErrorIs(t, err, shared.ErrForbidden)

		_, err = f.subjects.Update(f.ctx, s.ID, api.SubjectInput{Name: "Hacked"}, bob)
		require.ErrorIs(t, err, shared.ErrForbidden)

		require.ErrorIs(t, f.subjects.Delete(f.ctx, s.ID, bob), shared.ErrForbidden)

		_, err = f.subjects.GetByID(f.ctx, "missing", alice)
		require.ErrorIs(t, err, shared.ErrNotFound)

		got, err := f.subjects.GetByID(f.ctx, s.ID, alice)
		require.NoError(t, err)
		assert.Equal(t, "Math", got.Name)
	})

	t.Run("update keeps identity and rechecks name", func(t *testing.T) {
		f := newFixture(t)
		s := f.subject(t, alice, "Math")
		f.subject(t, alice, "Physics")

		_, err := f.subjects.Update(f.ctx, s.ID, api.SubjectInput{Name: "physics"}, alice)
		require.ErrorIs(t, err, entities.ErrSubjectNameTaken)

		f.now = f.now.Add(time.Hour)
		updated, err := f.subjects.Update(f.ctx, s.ID, api.SubjectInput{Name: "Math", Credits: ptr(4)}, alice)
		require.NoError(t, err)
		assert.Equal(t, s.CreatedAt, updated.CreatedAt)
		assert.Equal(t, alice, updated.OwnerID)
		require.NotNil(t, updated.Credits)
		assert.Equal(t, 4, *updated.Credits)
	})

	t.Run("list in creation order", func(t *testing.T) {
		f := newFixture(t)
		f.subject(t, alice, "Math")
		f.subject(t, bob, "Art")
		f.subject(t, alice, "Physics")

		list, err := f.subjects.ListByOwner(f.ctx, alice)

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Math", list[0].Name)
		assert.Equal(t, "Physics", list[1].Name)
	})
}

func TestNoteUseCase(t *testing.T) {
	t.Run("subject reference", func(t *testing.T) {
		f := newFixture(t)
		mine := f.subject(t, alice, "Math")
		theirs := f.subject(t, bob, "Art")

		n, err := f.notes.Create(f.ctx, api.NoteInput{Title: "Limits", SubjectID: &mine.ID}, alice)
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultNoteColor, n.Color)

		_, err = f.notes.Create(f.ctx, api.NoteInput{Title: "Spy", SubjectID: &theirs.ID}, alice)
		require.ErrorIs(t, err, shared.ErrForeignOwnership)

		_, err = f.notes.Create(f.ctx, api.NoteInput{Title: "Lost", SubjectID: ptr("missing")}, alice)
		require.ErrorIs(t, err, shared.ErrNotFound)

		list, err := f.notes.ListBySubject(f.ctx, mine.ID, alice)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = f.notes.ListBySubject(f.ctx, theirs.ID, alice)
		require.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("update refreshes updated_at", func(t *testing.T) {
		f := newFixture(t)
		n, err := f.notes.Create(f.ctx, api.NoteInput{Title: "Draft"}, alice)
		require.NoError(t, err)

		f.now = f.now.Add(time.Hour)
		updated, err := f.notes.Update(f.ctx, n.ID, api.NoteInput{Title: "Final", Favorite: true}, alice)

		require.NoError(t, err)
		assert.Equal(t, "Final", updated.Title)
		assert.True(t, updated.Favorite)
		assert.Equal(t, n.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(n.UpdatedAt))
	})

	t.Run("search and delete", func(t *testing.T) {
		f := newFixture(t)
		n, err := f.notes.Create(f.ctx, api.NoteInput{Title: "Calculus limits"}, alice)
		require.NoError(t, err)
		_, err = f.notes.Create(f.ctx, api.NoteInput{Title: "Poems"}, alice)
		require.NoError(t, err)

		found, err := f.notes.SearchByTitle(f.ctx, "LIMIT", alice)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, n.ID, found[0].ID)

		all, err := f.notes.SearchByTitle(f.ctx, " ", alice)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		require.ErrorIs(t, f.notes.Delete(f.ctx, n.ID, bob), shared.ErrForbidden)
		require.NoError(t, f.notes.Delete(f.ctx, n.ID, alice))
		_, err = f.notes.GetByID(f.ctx, n.ID, alice)
		require.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("empty title", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.notes.Create(f.ctx, api.NoteInput{Title: "   "}, alice)
		require.ErrorIs(t, err, entities.ErrEmptyNoteTitle)
	})
}

func TestTaskUseCase(t *testing.T) {
	t.Run("defaults and complete", func(t *testing.T) {
		f := newFixture(t)

		task, err := f.tasks.Create(f.ctx, api.TaskInput{Title: "HW1"}, alice)
		require.NoError(t, err)
		assert.Equal(t, entities.PriorityMedium, task.Priority)
		assert.False(t, task.Completed)

		_, err = f.tasks.MarkComplete(f.ctx, task.ID, bob)
		require.ErrorIs(t, err, shared.ErrForbidden)

		done, err := f.tasks.MarkComplete(f.ctx, task.ID, alice)
		require.NoError(t, err)
		assert.True(t, done.Completed)

		again, err := f.tasks.MarkComplete(f.ctx, task.ID, alice)
		require.NoError(t, err)
		assert.True(t, again.Completed)
	})

	t.Run("update keeps completed when omitted", func(t *testing.T) {
		f := newFixture(t)
		task, err := f.tasks.Create(f.ctx, api.TaskInput{Title: "HW1", Completed: ptr(true), Priority: entities.PriorityHigh}, alice)
		require.NoError(t, err)

		updated, err := f.tasks.Update(f.ctx, task.ID, api.TaskInput{Title: "HW1 v2"}, alice)

		require.NoError(t, err)
		assert.True(t, updated.Completed)
		assert.Equal(t, entities.PriorityMedium, updated.Priority)
		assert.Equal(t, task.CreatedAt, updated.CreatedAt)
	})

	t.Run("urgent pending general", func(t *testing.T) {
		f := newFixture(t)
		math := f.subject(t, alice, "Math")
		in2d := f.now.Add(48 * time.Hour)
		in3d := f.now.Add(72 * time.Hour)
		in4d := f.now.Add(96 * time.Hour)
		overdue := f.now.Add(-time.Hour)

		create := func(input api.TaskInput) *entities.Task {
			task, err := f.tasks.Create(f.ctx, input, alice)
			require.NoError(t, err)
			return task
		}
		soon := create(api.TaskInput{Title: "soon", DueAt: &in2d, SubjectID: &math.ID})
		edge := create(api.TaskInput{Title: "edge", DueAt: &in3d})
		create(api.TaskInput{Title: "far", DueAt: &in4d})
		create(api.TaskInput{Title: "no date"})
		create(api.TaskInput{Title: "done", DueAt: &in2d, Completed: ptr(true)})
		late := create(api.TaskInput{Title: "late", DueAt: &overdue})

		urgent, err := f.tasks.ListUrgent(f.ctx, alice)
		require.NoError(t, err)
		ids := make([]string, 0, len(urgent))
		for _, task := range urgent {
			ids = append(ids, task.ID)
		}
		assert.Equal(t, []string{late.ID, soon.ID, edge.ID}, ids)

		pending, err := f.tasks.ListPending(f.ctx, alice)
		require.NoError(t, err)
		assert.Len(t, pending, 5)

		general, err := f.tasks.ListGeneral(f.ctx, alice)
		require.NoError(t, err)
		assert.Len(t, general, 5)

		bySubject, err := f.tasks.ListBySubject(f.ctx, math.ID, alice)
		require.NoError(t, err)
		require.Len(t, bySubject, 1)
		assert.Equal(t, soon.ID, bySubject[0].ID)

		none, err := f.tasks.ListUrgent(f.ctx, bob)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("deleting subject makes tasks general", func(t *testing.T) {
		f := newFixture(t)
		math := f.subject(t, alice, "Math")
		task, err := f.tasks.Create(f.ctx, api.TaskInput{Title: "HW1", SubjectID: &math.ID}, alice)
		require.NoError(t, err)

		require.NoError(t, f.subjects.Delete(f.ctx, math.ID, alice))

		got, err := f.tasks.GetByID(f.ctx, task.ID, alice)
		require.NoError(t, err)
		assert.Nil(t, got.SubjectID)
	})

	t.Run("invalid priority", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.tasks.Create(f.ctx, api.TaskInput{Title: "HW1", Priority: "SOMEDAY"}, alice)
		require.ErrorIs(t, err, entities.ErrInvalidPriority)
	})
}

type failingTasks struct {
	*memory.TaskRepository
}

var errStorage = errors.New("storage unavailable")

func (failingTasks) ListPending(context.Context, string) ([]*entities.Task, error) {
	return nil, errStorage
}

func TestTaskUseCase_StorageErrorsAreWrapped(t *testing.T) {
	repos := memory.NewRepositories()
	uc := app.NewTaskUseCase(failingTasks{repos.Tasks}, repos.Subjects)

	_, err := uc.ListPending(context.Background(), alice)

	require.ErrorIs(t, err, errStorage)
	assert.Equal(t, shared.CodeInternal, shared.Code(err))
	assert.Contains(t, err.Error(), "listing tasks")
}
