package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-07 is a Wednesday; the ISO week starts Monday 2026-01-05.
var reportNow = time.Date(2026, 1, 7, 12, 0, 0, 0, time.Local)

func setupReport(t *testing.T) (ReportService, repository.ProjectRepo, repository.EntryRepo, *testutil.FakeClock) {
	t.Helper()
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	entries := repository.NewSQLiteEntryRepo(db)
	clk := testutil.NewFakeClock(reportNow)
	return NewReportService(entries, clk), projects, entries, clk
}

func TestTotals_EmptyStore(t *testing.T) {
	svc, _, _, _ := setupReport(t)

	totals, err := svc.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.TodaySeconds)
	assert.Equal(t, int64(0), totals.WeekSeconds)
}

func TestTotals_SameDayEntriesSum(t *testing.T) {
	svc, projects, entries, _ := setupReport(t)

	pid := testutil.CreateTestProject(t, projects, "Alpha")
	testutil.InsertTestEntry(t, entries, pid, reportNow.Add(-3*time.Hour), 600, "")
	testutil.InsertTestEntry(t, entries, pid, reportNow.Add(-1*time.Hour), 900, "")

	totals, err := svc.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1500), totals.TodaySeconds)
	assert.Equal(t, int64(1500), totals.WeekSeconds)
}

func TestTotals_WeekIncludesMondayExcludesYesterweek(t *testing.T) {
	svc, projects, entries, _ := setupReport(t)

	pid := testutil.CreateTestProject(t, projects, "Alpha")

	monday := time.Date(2026, 1, 5, 8, 0, 0, 0, time.Local)
	testutil.InsertTestEntry(t, entries, pid, monday, 600, "this week")

	// Friday Jan 2 is within the last 7 days but belongs to the previous
	// ISO week, so it must not count.
	lastFriday := time.Date(2026, 1, 2, 15, 0, 0, 0, time.Local)
	testutil.InsertTestEntry(t, entries, pid, lastFriday, 900, "last week")

	totals, err := svc.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.TodaySeconds)
	assert.Equal(t, int64(600), totals.WeekSeconds)
}

func TestTotals_RunningSessionDoesNotCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	entries := repository.NewSQLiteEntryRepo(db)
	clk := testutil.NewFakeClock(reportNow)

	reports := NewReportService(entries, clk)
	tracker := NewTrackerService(projects, testutil.NewTestUoW(db), clk)
	ctx := context.Background()

	pid := testutil.CreateTestProject(t, projects, "Alpha")
	_, err := tracker.Start(ctx, pid)
	require.NoError(t, err)
	clk.Advance(30 * time.Minute)

	totals, err := reports.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.TodaySeconds, "unstopped sessions are not durable and never sum")

	// Once stopped, the interval counts.
	_, err = tracker.Stop(ctx, "")
	require.NoError(t, err)

	totals, err = reports.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), totals.TodaySeconds)
}

func TestStartOfISOWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"wednesday",
			time.Date(2026, 1, 7, 12, 30, 0, 0, time.Local),
			time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local),
		},
		{
			"monday maps to itself",
			time.Date(2026, 1, 5, 0, 0, 1, 0, time.Local),
			time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local),
		},
		{
			"sunday belongs to the week before",
			time.Date(2026, 1, 11, 23, 0, 0, 0, time.Local),
			time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startOfISOWeek(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}
