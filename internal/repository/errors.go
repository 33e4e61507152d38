package repository

import "errors"

// Sentinel errors returned by repositories. Callers match with errors.Is;
// repositories wrap them with entity context via fmt.Errorf("...: %w", ...).
var (
	// ErrNotFound reports a lookup that matched no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateProject reports an insert with a project name that already
	// exists (case-sensitive exact match).
	ErrDuplicateProject = errors.New("project already exists")

	// ErrProjectNotFound reports a reference to a project id that does not
	// exist, either on direct lookup or through the entries foreign key.
	ErrProjectNotFound = errors.New("project not found")
)
