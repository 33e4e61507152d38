package domain

import (
	"fmt"
	"strings"
)

// Project is a named bucket that time entries accrue against.
// The store assigns the ID; within this tool projects are created once and
// never renamed or deleted.
type Project struct {
	ID   int64
	Name string
}

// ValidateProjectName checks that a project name is usable: non-empty after
// trimming surrounding whitespace. Uniqueness is enforced by the store.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	return nil
}
