package mission

import (
	"context"

	domainerrors "skylark-ops/internal/errors"
)

// Store is the slice of the record store this package consumes. Projects are
// read-only: the record store exposes no project write path.
type Store interface {
	ReadProjects(ctx context.Context) ([]Project, error)
}

type Service interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]Project, error) {
	return s.store.ReadProjects(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Project, error) {
	projects, err := s.store.ReadProjects(ctx)
	if err != nil {
		return nil, err
	}
	p := FindByID(projects, id)
	if p == nil {
		return nil, domainerrors.ProjectNotFound(id)
	}
	return p, nil
}
