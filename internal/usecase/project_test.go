package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	testhelpers "github.com/mgv-tech/backoffice/internal/test"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

func newProjectFixture() (*usecase.ProjectUseCase, *testhelpers.ProjectRepositoryStub, *testhelpers.ImageStoreStub) {
	projects := &testhelpers.ProjectRepositoryStub{}
	images := &testhelpers.ImageStoreStub{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewProjectUseCase(projects, images, logger)
	return uc, projects, images
}

func TestProjectCreate(t *testing.T) {
	uc, projects, _ := newProjectFixture()

	p, err := uc.Create(context.Background(), &model.Project{
		Title:       "Fiber rollout",
		Description: "City-wide installation",
		Images:      []model.ProjectImage{{URL: "https://cdn/x.jpg", PublicID: "assets/x"}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if p.ID == 0 || len(projects.Projects) != 1 {
		t.Fatalf("project not stored: %+v", p)
	}

	if _, err := uc.Create(context.Background(), &model.Project{Title: "  "}); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
}

func TestProjectUpdate(t *testing.T) {
	uc, _, _ := newProjectFixture()
	ctx := context.Background()
	p, err := uc.Create(ctx, &model.Project{Title: "Fiber rollout"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	p.Title = "Fiber rollout, phase 2"
	updated, err := uc.Update(ctx, p)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Title != "Fiber rollout, phase 2" {
		t.Fatalf("title not updated: %q", updated.Title)
	}

	p.Title = ""
	if _, err := uc.Update(ctx, p); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProjectDeleteDestroysImages(t *testing.T) {
	uc, projects, images := newProjectFixture()
	ctx := context.Background()
	p, err := uc.Create(ctx, &model.Project{
		Title: "Fiber rollout",
		Images: []model.ProjectImage{
			{URL: "https://cdn/a.jpg", PublicID: "assets/a"},
			{URL: "https://cdn/b.jpg", PublicID: "assets/b"},
			{URL: "https://cdn/c.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if err := uc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if len(projects.Projects) != 0 {
		t.Fatalf("project still stored")
	}
	if len(images.Destroyed) != 2 {
		t.Fatalf("expected 2 destroyed assets, got %v", images.Destroyed)
	}
}

func TestProjectDeleteSurvivesImageStoreFailure(t *testing.T) {
	uc, projects, images := newProjectFixture()
	ctx := context.Background()
	p, err := uc.Create(ctx, &model.Project{
		Title:  "Fiber rollout",
		Images: []model.ProjectImage{{URL: "https://cdn/a.jpg", PublicID: "assets/a"}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	images.Err = errors.New("store offline")

	if err := uc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete failed on image store error: %v", err)
	}
	if len(projects.Projects) != 0 {
		t.Fatalf("project still stored")
	}
}

func TestProjectDeleteUnknown(t *testing.T) {
	uc, _, images := newProjectFixture()
	if err := uc.Delete(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(images.Destroyed) != 0 {
		t.Fatalf("assets destroyed for missing project")
	}
}
