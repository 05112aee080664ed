package repository

import (
	"context"

	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) (*model.Project, error)
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, p *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id int64) error
}
