package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

// CreateTestProject inserts a project and returns its id, failing the test on
// error.
func CreateTestProject(t *testing.T, projects repository.ProjectRepo, name string) int64 {
	t.Helper()
	id, err := projects.Create(context.Background(), name)
	if err != nil {
		t.Fatalf("creating test project %q: %v", name, err)
	}
	return id
}

// InsertTestEntry inserts a completed entry starting at start with the given
// duration in seconds, failing the test on error. Returns the entry id.
func InsertTestEntry(t *testing.T, entries repository.EntryRepo, projectID int64, start time.Time, durationSec int64, note string) int64 {
	t.Helper()
	e := &domain.Entry{
		ProjectID:   projectID,
		StartedAt:   start,
		EndedAt:     start.Add(time.Duration(durationSec) * time.Second),
		DurationSec: durationSec,
		Note:        note,
	}
	id, err := entries.Create(context.Background(), e)
	if err != nil {
		t.Fatalf("inserting test entry: %v", err)
	}
	return id
}
