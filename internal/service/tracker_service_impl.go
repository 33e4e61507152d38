package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/tempo/internal/clock"
	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/google/uuid"
)

// trackerService holds the one transient session. State is guarded by a
// mutex: the TUI runs its commands on goroutines, so the single-timer
// invariant is enforced rather than assumed.
type trackerService struct {
	mu       sync.Mutex
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	clk      clock.Clock
	observer UseCaseObserver

	active *domain.Session
}

func NewTrackerService(projects repository.ProjectRepo, uow db.UnitOfWork, clk clock.Clock, observers ...UseCaseObserver) TrackerService {
	return &trackerService{
		projects: projects,
		uow:      uow,
		clk:      clk,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *trackerService) Start(ctx context.Context, projectID int64) (*domain.Session, error) {
	startedAt := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, ErrTimerRunning
	}

	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		observe(ctx, s.observer, "timer_start", startedAt, err, map[string]any{"project_id": projectID})
		return nil, err
	}

	// Second precision from the instant of start keeps elapsed, duration,
	// and the stored timestamps mutually consistent.
	sess := &domain.Session{
		ID:          uuid.New().String(),
		ProjectID:   p.ID,
		ProjectName: p.Name,
		StartedAt:   s.clk.Now().Truncate(time.Second),
	}
	s.active = sess

	observe(ctx, s.observer, "timer_start", startedAt, nil, map[string]any{
		"session_id": sess.ID,
		"project_id": p.ID,
	})
	out := *sess
	return &out, nil
}

func (s *trackerService) Stop(ctx context.Context, note string) (*domain.Entry, error) {
	startedAt := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, ErrTimerNotRunning
	}

	end := s.clk.Now().Truncate(time.Second)
	if end.Before(s.active.StartedAt) {
		end = s.active.StartedAt
	}

	entry := &domain.Entry{
		ProjectID:   s.active.ProjectID,
		StartedAt:   s.active.StartedAt,
		EndedAt:     end,
		DurationSec: int64(end.Sub(s.active.StartedAt) / time.Second),
		Note:        note,
	}

	// The session is cleared only after the entry is committed. On failure it
	// stays active and the stop can be retried without losing elapsed time.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		entries := repository.NewSQLiteEntryRepo(tx)
		id, err := entries.Create(ctx, entry)
		if err != nil {
			return err
		}
		entry.ID = id
		return nil
	})
	observe(ctx, s.observer, "timer_stop", startedAt, err, map[string]any{
		"session_id":   s.active.ID,
		"project_id":   s.active.ProjectID,
		"duration_sec": entry.DurationSec,
	})
	if err != nil {
		return nil, err
	}

	s.active = nil
	return entry, nil
}

func (s *trackerService) Elapsed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return 0
	}
	return int64(s.clk.Now().Sub(s.active.StartedAt) / time.Second)
}

func (s *trackerService) Active() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil
	}
	out := *s.active
	return &out
}
