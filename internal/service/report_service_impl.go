package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tempo/internal/clock"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

type reportService struct {
	entries repository.EntryRepo
	clk     clock.Clock
}

func NewReportService(entries repository.EntryRepo, clk clock.Clock) ReportService {
	return &reportService{entries: entries, clk: clk}
}

func (s *reportService) Totals(ctx context.Context) (*domain.Totals, error) {
	now := s.clk.Now()

	today, err := s.entries.SumDurationOn(ctx, now)
	if err != nil {
		return nil, err
	}
	week, err := s.entries.SumDurationSince(ctx, startOfISOWeek(now))
	if err != nil {
		return nil, err
	}

	return &domain.Totals{TodaySeconds: today, WeekSeconds: week}, nil
}

func (s *reportService) Entries(ctx context.Context) ([]repository.EntryWithProject, error) {
	return s.entries.List(ctx)
}

// startOfISOWeek returns Monday 00:00:00 of t's week in t's location.
// An entry from the previous week stays excluded even when it falls within
// the last seven days.
func startOfISOWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the week that started the previous Monday
	}
	y, m, d := t.AddDate(0, 0, -(wd - 1)).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
