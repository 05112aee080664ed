package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mgv-tech/backoffice/internal/adapter/imagestore"
	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/domain/repository"
)

// ProjectUseCase manages the portfolio shown on the public site.
type ProjectUseCase struct {
	projects repository.ProjectRepository
	images   imagestore.Client
	logger   *slog.Logger
}

// NewProjectUseCase constructs ProjectUseCase.
func NewProjectUseCase(projects repository.ProjectRepository, images imagestore.Client, logger *slog.Logger) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, images: images, logger: logger}
}

// Create stores a new portfolio project.
func (u *ProjectUseCase) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("%w: project title is required", domainErrors.ErrInvalidInput)
	}
	return u.projects.Create(ctx, p)
}

// Get returns one project.
func (u *ProjectUseCase) Get(ctx context.Context, id int64) (*model.Project, error) {
	return u.projects.GetByID(ctx, id)
}

// List returns all projects, newest first.
func (u *ProjectUseCase) List(ctx context.Context) ([]model.Project, error) {
	return u.projects.List(ctx)
}

// Update replaces a project's fields and image set.
func (u *ProjectUseCase) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("%w: project title is required", domainErrors.ErrInvalidInput)
	}
	return u.projects.Update(ctx, p)
}

// Delete removes the project and then asks the media store to drop its
// hosted images. Store failures are logged, not surfaced: the project
// is already gone and an orphaned asset is acceptable.
func (u *ProjectUseCase) Delete(ctx context.Context, id int64) error {
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.projects.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range p.Images {
		if img.PublicID == "" {
			continue
		}
		if err := u.images.Destroy(ctx, img.PublicID); err != nil {
			u.logger.Warn("destroy project image failed",
				slog.String("public_id", img.PublicID),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}
