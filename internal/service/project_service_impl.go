package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, name string) (*domain.Project, error) {
	startedAt := time.Now()
	name = strings.TrimSpace(name)
	if err := domain.ValidateProjectName(name); err != nil {
		return nil, err
	}
	id, err := s.projects.Create(ctx, name)
	observe(ctx, s.observer, "project_create", startedAt, err, map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	return &domain.Project{ID: id, Name: name}, nil
}

func (s *projectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	return s.projects.GetByName(ctx, name)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}
