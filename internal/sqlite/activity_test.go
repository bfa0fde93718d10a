package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/dkessler/rolodex/internal/domain/activity"
	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	scope := insertScope(t, db, "tenant1", "p1")

	persons := NewPersonRepository(db)
	require.NoError(t, persons.Create(ctx, scope, &person.Person{ID: "person1", DisplayName: "Jane", CreatedAt: time.Now()}))

	repo := NewActivityRepository(db)
	personID := "person1"
	entries := []*activity.ActivityEntry{
		{ProjectID: scope.ProjectID, PersonID: &personID, ActivityType: activity.TypePersonCreated, Source: "calendar", Summary: "created Jane"},
		{ProjectID: scope.ProjectID, PersonID: &personID, ActivityType: activity.TypePersonMatched, MatchedBy: "email", Source: "zoom", Summary: "matched Jane"},
		{ProjectID: scope.ProjectID, ActivityType: activity.TypeImportStarted, Source: "csv", Summary: "import started"},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Log(ctx, scope.TenantID, entry))
	}

	all, err := repo.List(ctx, scope.TenantID, activity.ListActivityOptions{ProjectID: scope.ProjectID})
	require.NoError(t, err)
	require.Len(t, all, 3)

	byPerson, err := repo.List(ctx, scope.TenantID, activity.ListActivityOptions{PersonID: &personID})
	require.NoError(t, err)
	require.Len(t, byPerson, 2)

	matched := activity.TypePersonMatched
	byType, err := repo.List(ctx, scope.TenantID, activity.ListActivityOptions{ActivityType: &matched})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	require.Equal(t, "email", byType[0].MatchedBy)

	none, err := repo.List(ctx, "tenant2", activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Empty(t, none)
}
