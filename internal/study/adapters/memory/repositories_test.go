package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/internal/study/adapters/memory"
	"studymate/internal/study/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestStore_IsolatesCopies(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	note := &entities.Note{ID: "n-1", Title: "Limits", OwnerID: "u-1"}
	_, err := repos.Notes.Create(ctx, note)
	require.NoError(t, err)

	note.Title = "changed"
	stored, err := repos.Notes.FindByID(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, "Limits", stored.Title)

	stored.Title = "changed again"
	again, err := repos.Notes.FindByID(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, "Limits", again.Title)
}

func TestStore_OwnerScopedWrites(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	_, err := repos.Tasks.Create(ctx, &entities.Task{ID: "t-1", Title: "HW1", OwnerID: "u-1"})
	require.NoError(t, err)

	_, err = repos.Tasks.Update(ctx, &entities.Task{ID: "t-1", Title: "stolen", OwnerID: "u-2"})
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	require.ErrorIs(t, repos.Tasks.Delete(ctx, "t-1", "u-2"), entities.ErrTaskNotFound)
	require.NoError(t, repos.Tasks.Delete(ctx, "t-1", "u-1"))

	_, err = repos.Tasks.FindByID(ctx, "t-1")
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestSubjectRepository_DeleteDetachesChildren(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	_, err := repos.Subjects.Create(ctx, &entities.Subject{ID: "s-1", Name: "Math", OwnerID: "u-1"})
	require.NoError(t, err)
	_, err = repos.Notes.Create(ctx, &entities.Note{ID: "n-1", Title: "Limits", OwnerID: "u-1", SubjectID: strPtr("s-1")})
	require.NoError(t, err)
	_, err = repos.Tasks.Create(ctx, &entities.Task{ID: "t-1", Title: "HW1", OwnerID: "u-1", SubjectID: strPtr("s-1")})
	require.NoError(t, err)

	require.NoError(t, repos.Subjects.Delete(ctx, "s-1", "u-1"))

	note, err := repos.Notes.FindByID(ctx, "n-1")
	require.NoError(t, err)
	assert.Nil(t, note.SubjectID)

	general, err := repos.Tasks.ListGeneral(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, general, 1)
	assert.Equal(t, "t-1", general[0].ID)
}

func TestSubjectRepository_ExistsByName(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	_, err := repos.Subjects.Create(ctx, &entities.Subject{ID: "s-1", Name: "Math", OwnerID: "u-1"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		ownerID   string
		subject   string
		excludeID string
		want      bool
	}{
		{"same name other case", "u-1", "MATH", "", true},
		{"excluded self", "u-1", "Math", "s-1", false},
		{"other owner", "u-2", "Math", "", false},
		{"other name", "u-1", "Physics", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := repos.Subjects.ExistsByName(ctx, tt.ownerID, tt.subject, tt.excludeID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestTaskAndNoteQueries(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	soon := now.Add(time.Hour)
	later := now.Add(10 * 24 * time.Hour)

	for _, task := range []*entities.Task{
		{ID: "t-1", Title: "soon", OwnerID: "u-1", DueAt: &soon},
		{ID: "t-2", Title: "later", OwnerID: "u-1", DueAt: &later, SubjectID: strPtr("s-1")},
		{ID: "t-3", Title: "done", OwnerID: "u-1", DueAt: &soon, Completed: true},
		{ID: "t-4", Title: "foreign", OwnerID: "u-2", DueAt: &soon},
	} {
		_, err := repos.Tasks.Create(ctx, task)
		require.NoError(t, err)
	}

	due, err := repos.Tasks.ListDueBefore(ctx, "u-1", now.Add(entities.UrgentWindow))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "t-1", due[0].ID)

	pending, err := repos.Tasks.ListPending(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	bySubject, err := repos.Tasks.ListBySubject(ctx, "u-1", "s-1")
	require.NoError(t, err)
	require.Len(t, bySubject, 1)
	assert.Equal(t, "t-2", bySubject[0].ID)

	_, err = repos.Notes.Create(ctx, &entities.Note{ID: "n-1", Title: "Calculus Limits", OwnerID: "u-1"})
	require.NoError(t, err)
	found, err := repos.Notes.SearchByTitle(ctx, "u-1", "limit")
	require.NoError(t, err)
	assert.Len(t, found, 1)
	found, err = repos.Notes.SearchByTitle(ctx, "u-2", "limit")
	require.NoError(t, err)
	assert.Empty(t, found)
}
