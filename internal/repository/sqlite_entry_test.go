package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	entries := repository.NewSQLiteEntryRepo(db)
	ctx := context.Background()

	pid := testutil.CreateTestProject(t, projects, "Alpha")

	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	e := &domain.Entry{
		ProjectID:   pid,
		StartedAt:   start,
		EndedAt:     start.Add(125 * time.Second),
		DurationSec: 125,
		Note:        "wrote docs",
	}
	id, err := entries.Create(ctx, e)
	require.NoError(t, err)

	fetched, err := entries.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pid, fetched.ProjectID)
	assert.True(t, fetched.StartedAt.Equal(start), "start should round-trip")
	assert.True(t, fetched.EndedAt.Equal(start.Add(125*time.Second)), "end should round-trip")
	assert.Equal(t, int64(125), fetched.DurationSec)
	assert.Equal(t, "wrote docs", fetched.Note)
}

func TestEntryRepo_Create_UnknownProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(db)

	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	_, err := entries.Create(context.Background(), &domain.Entry{
		ProjectID:   999,
		StartedAt:   start,
		EndedAt:     start.Add(time.Minute),
		DurationSec: 60,
	})
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestEntryRepo_List_MostRecentFirstWithProjectName(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	entries := repository.NewSQLiteEntryRepo(db)
	ctx := context.Background()

	alpha := testutil.CreateTestProject(t, projects, "Alpha")
	beta := testutil.CreateTestProject(t, projects, "Beta")

	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	testutil.InsertTestEntry(t, entries, alpha, base, 600, "first")
	testutil.InsertTestEntry(t, entries, beta, base.Add(2*time.Hour), 900, "second")
	testutil.InsertTestEntry(t, entries, alpha, base.Add(time.Hour), 300, "middle")

	list, err := entries.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "second", list[0].Entry.Note)
	assert.Equal(t, "Beta", list[0].ProjectName)
	assert.Equal(t, "middle", list[1].Entry.Note)
	assert.Equal(t, "first", list[2].Entry.Note)
	assert.Equal(t, "Alpha", list[2].ProjectName)
}

func TestEntryRepo_SumDurationOn(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	entries := repository.NewSQLiteEntryRepo(db)
	ctx := context.Background()

	pid := testutil.CreateTestProject(t, projects, "Alpha")

	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	testutil.InsertTestEntry(t, entries, pid, day.Add(9*time.Hour), 600, "")
	testutil.InsertTestEntry(t, entries, pid, day.Add(14*time.Hour), 900, "")
	// Previous day, excluded.
	testutil.InsertTestEntry(t, entries, pid, day.Add(-10*time.Hour), 500, "")

	total, err := entries.SumDurationOn(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), total)
}

func TestEntryRepo_SumDurationSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	entries := repository.NewSQLiteEntryRepo(db)
	ctx := context.Background()

	pid := testutil.CreateTestProject(t, projects, "Alpha")

	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	testutil.InsertTestEntry(t, entries, pid, monday.Add(10*time.Hour), 600, "")
	testutil.InsertTestEntry(t, entries, pid, monday.AddDate(0, 0, 2), 900, "")
	// Sunday before the cutoff, excluded.
	testutil.InsertTestEntry(t, entries, pid, monday.Add(-6*time.Hour), 1200, "")

	total, err := entries.SumDurationSince(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), total)
}

func TestEntryRepo_Sums_EmptyStoreReturnZero(t *testing.T) {
	db := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(db)
	ctx := context.Background()

	now := time.Now()
	onTotal, err := entries.SumDurationOn(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), onTotal)

	sinceTotal, err := entries.SumDurationSince(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sinceTotal)
}
