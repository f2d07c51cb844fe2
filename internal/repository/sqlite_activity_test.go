package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_AppendAndGetByID(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	at := testutil.Date(t, "2025-12-21", 9)
	e := testutil.NewTestActivity("quad-sets", testutil.WithActivityAt(at), testutil.WithPlanDate("2025-12-21"))
	require.NoError(t, repo.Append(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "quad-sets", got.ExerciseID)
	assert.Equal(t, "2025-12-21", got.PlanDate)
	assert.Equal(t, domain.ActivityCompleted, got.Action)
	assert.True(t, at.Equal(got.At))
}

func TestActivityRepo_AppendGeneratesID(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	e := &domain.ActivityEvent{ExerciseID: "x", Action: domain.ActivityReopened, At: time.Now()}

	require.NoError(t, repo.Append(context.Background(), e))
	assert.NotEmpty(t, e.ID)
}

func TestActivityRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_ListRecent(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := testutil.Date(t, "2025-12-22", 8)
	for i, id := range []string{"a", "b", "c"} {
		e := testutil.NewTestActivity(id, testutil.WithActivityAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Append(ctx, e))
	}

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ExerciseID)
	assert.Equal(t, "b", recent[1].ExerciseID)

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestActivityRepo_ListByExerciseAndCounts(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := testutil.Date(t, "2025-12-23", 8)
	require.NoError(t, repo.Append(ctx, testutil.NewTestActivity("a", testutil.WithActivityAt(base))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestActivity("a",
		testutil.WithActivityAt(base.Add(time.Minute)), testutil.WithAction(domain.ActivityReopened))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestActivity("b", testutil.WithActivityAt(base))))

	events, err := repo.ListByExercise(ctx, "a")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActivityCompleted, events[0].Action)
	assert.Equal(t, domain.ActivityReopened, events[1].Action)

	counts, err := repo.CountByAction(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.ActivityCompleted])
	assert.Equal(t, 1, counts[domain.ActivityReopened])
	assert.Equal(t, 0, counts[domain.ActivityReset])
}

func TestActivityRepo_RejectsUnknownAction(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	e := testutil.NewTestActivity("a", testutil.WithAction("skipped"))

	assert.Error(t, repo.Append(context.Background(), e))
}
