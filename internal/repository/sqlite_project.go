package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo. The DBTX may be a
// *sql.DB or a transaction.
func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO projects (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("project %q: %w", name, ErrDuplicateProject)
		}
		return 0, fmt.Errorf("inserting project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading project id: %w", err)
	}
	return id, nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM projects WHERE id = ?`, id)
	return r.scanProject(row, fmt.Sprintf("project %d", id))
}

func (r *SQLiteProjectRepo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM projects WHERE name = ?`, name)
	return r.scanProject(row, fmt.Sprintf("project %q", name))
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) scanProject(row *sql.Row, label string) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", label, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return &p, nil
}
