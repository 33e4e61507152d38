package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo over a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo. The DBTX may be a
// *sql.DB or a transaction.
func NewSQLiteEntryRepo(dbtx db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: dbtx}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.Entry) (int64, error) {
	query := `INSERT INTO entries (project_id, start_time, end_time, duration, note)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.ProjectID,
		formatTime(e.StartedAt),
		formatTime(e.EndedAt),
		e.DurationSec,
		e.Note,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("project %d: %w", e.ProjectID, ErrProjectNotFound)
		}
		return 0, fmt.Errorf("inserting entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading entry id: %w", err)
	}
	return id, nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	query := `SELECT id, project_id, start_time, end_time, duration, note
		FROM entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var e domain.Entry
	var startStr, endStr string
	err := row.Scan(&e.ID, &e.ProjectID, &startStr, &endStr, &e.DurationSec, &e.Note)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("entry %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning entry: %w", err)
	}
	if err := populateEntryTimes(&e, startStr, endStr); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *SQLiteEntryRepo) List(ctx context.Context) ([]EntryWithProject, error) {
	query := `SELECT e.id, e.project_id, p.name, e.start_time, e.end_time, e.duration, e.note
		FROM entries e
		JOIN projects p ON e.project_id = p.id
		ORDER BY e.start_time DESC, e.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []EntryWithProject
	for rows.Next() {
		var ep EntryWithProject
		var startStr, endStr string
		err := rows.Scan(
			&ep.Entry.ID, &ep.Entry.ProjectID, &ep.ProjectName,
			&startStr, &endStr, &ep.Entry.DurationSec, &ep.Entry.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}
		if err := populateEntryTimes(&ep.Entry, startStr, endStr); err != nil {
			return nil, err
		}
		entries = append(entries, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) SumDurationOn(ctx context.Context, day time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(duration), 0) FROM entries WHERE date(start_time) = ?`
	var total int64
	if err := r.db.QueryRowContext(ctx, query, day.Format(dateLayout)).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing durations for day: %w", err)
	}
	return total, nil
}

func (r *SQLiteEntryRepo) SumDurationSince(ctx context.Context, from time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(duration), 0) FROM entries WHERE date(start_time) >= ?`
	var total int64
	if err := r.db.QueryRowContext(ctx, query, from.Format(dateLayout)).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing durations since date: %w", err)
	}
	return total, nil
}

// populateEntryTimes parses the stored timestamp strings onto an entry.
func populateEntryTimes(e *domain.Entry, startStr, endStr string) error {
	var err error
	e.StartedAt, err = parseTime(startStr)
	if err != nil {
		return fmt.Errorf("parsing start_time: %w", err)
	}
	e.EndedAt, err = parseTime(endStr)
	if err != nil {
		return fmt.Errorf("parsing end_time: %w", err)
	}
	return nil
}
