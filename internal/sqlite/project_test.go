package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/dkessler/rolodex/internal/domain/project"
	"github.com/dkessler/rolodex/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewProjectRepository(db)
	proj := &project.Project{
		ID:          "proj1",
		TenantID:    "tenant1",
		Name:        "CRM Sync",
		Description: "People from the calendar feed",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, "tenant1", proj))

	loaded, err := repo.Get(ctx, "tenant1", "proj1")
	require.NoError(t, err)
	require.Equal(t, "CRM Sync", loaded.Name)
	require.Equal(t, "People from the calendar feed", loaded.Description)

	_, err = repo.Get(ctx, "tenant2", "proj1")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestProjectRepository_GetDefault(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewProjectRepository(db)

	_, err := repo.GetDefault(ctx, "tenant1")
	require.Equal(t, repository.ErrNotFound, err)

	older := &project.Project{
		ID:        "proj-older",
		TenantID:  "tenant1",
		Name:      "First",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &project.Project{
		ID:        "proj-newer",
		TenantID:  "tenant1",
		Name:      "Second",
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, "tenant1", newer))
	require.NoError(t, repo.Create(ctx, "tenant1", older))

	def, err := repo.GetDefault(ctx, "tenant1")
	require.NoError(t, err)
	require.Equal(t, "proj-older", def.ID)
}

func TestProjectRepository_ListWithCounts(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewProjectRepository(db)
	now := time.Now()
	require.NoError(t, repo.Create(ctx, "tenant1", &project.Project{ID: "proj1", TenantID: "tenant1", Name: "A", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, "tenant1", &project.Project{ID: "proj2", TenantID: "tenant1", Name: "B", CreatedAt: now.Add(time.Second)}))

	persons := NewPersonRepository(db)
	scope := person.Scope{TenantID: "tenant1", ProjectID: "proj1"}
	require.NoError(t, persons.Create(ctx, scope, &person.Person{ID: "person1", DisplayName: "Jane", CreatedAt: now}))
	require.NoError(t, persons.Create(ctx, scope, &person.Person{ID: "person2", DisplayName: "Joe", CreatedAt: now}))

	summaries, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, "proj1", summaries[0].ID)
	require.Equal(t, 2, summaries[0].PersonCount)
	require.Equal(t, 0, summaries[1].PersonCount)
}
