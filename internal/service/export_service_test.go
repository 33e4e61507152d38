package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExport(t *testing.T) (ExportService, repository.ProjectRepo, repository.EntryRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	entries := repository.NewSQLiteEntryRepo(db)
	return NewExportService(entries), projects, entries
}

func TestExport_HeaderOnlyOnEmptyStore(t *testing.T) {
	svc, _, _ := setupExport(t)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Project", "Start", "End", "Duration (sec)", "Note"}, records[0])
}

func TestExport_RoundTripMatchesEntryList(t *testing.T) {
	svc, projects, entries := setupExport(t)
	ctx := context.Background()

	alpha := testutil.CreateTestProject(t, projects, "Alpha")
	beta := testutil.CreateTestProject(t, projects, "Beta")

	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	testutil.InsertTestEntry(t, entries, alpha, base, 600, "morning, with a comma")
	testutil.InsertTestEntry(t, entries, beta, base.Add(3*time.Hour), 125, "wrote docs")

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	list, err := entries.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(list)+1)

	for i, row := range list {
		record := records[i+1]
		assert.Equal(t, row.ProjectName, record[0])
		assert.Equal(t, row.Entry.StartedAt.Format("2006-01-02 15:04:05"), record[1])
		assert.Equal(t, row.Entry.EndedAt.Format("2006-01-02 15:04:05"), record[2])
		assert.Equal(t, strconv.FormatInt(row.Entry.DurationSec, 10), record[3])
		assert.Equal(t, row.Entry.Note, record[4])
	}

	// Most recent start first, same as the entry list.
	assert.Equal(t, "Beta", records[1][0])
	assert.Equal(t, "Alpha", records[2][0])
}

func TestExportFile_WritesAndCounts(t *testing.T) {
	svc, projects, entries := setupExport(t)
	ctx := context.Background()

	pid := testutil.CreateTestProject(t, projects, "Alpha")
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	testutil.InsertTestEntry(t, entries, pid, base, 600, "")

	path := filepath.Join(t.TempDir(), "export.csv")
	n, err := svc.ExportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alpha", records[1][0])
}
