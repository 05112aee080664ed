package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/server/http/dto"
)

// ProjectHandler manages portfolio endpoints.
type ProjectHandler struct {
	facade ProjectFacade
}

// NewProjectHandler constructs ProjectHandler.
func NewProjectHandler(facade ProjectFacade) *ProjectHandler {
	return &ProjectHandler{facade: facade}
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	p, err := h.facade.CreateProject(c.Request.Context(), toProject(0, req))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProjectResponse(p))
}

// Get handles GET /api/projects/:id without auth.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	p, err := h.facade.Project(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(p))
}

// List handles GET /api/projects without auth.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.facade.Projects(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PUT /api/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	p, err := h.facade.UpdateProject(c.Request.Context(), toProject(id, req))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteProject(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func toProject(id int64, req dto.ProjectRequest) *model.Project {
	images := make([]model.ProjectImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, model.ProjectImage{URL: img.URL, PublicID: img.PublicID})
	}

	return &model.Project{
		ID:             id,
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		TechnologyUsed: req.TechnologyUsed,
		ClientIndustry: req.ClientIndustry,
		Icon:           req.Icon,
		Link:           req.Link,
		Images:         images,
	}
}

func toProjectResponse(p *model.Project) dto.ProjectResponse {
	images := make([]dto.ProjectImagePayload, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, dto.ProjectImagePayload{URL: img.URL, PublicID: img.PublicID})
	}

	return dto.ProjectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Category:       p.Category,
		Description:    p.Description,
		TechnologyUsed: p.TechnologyUsed,
		ClientIndustry: p.ClientIndustry,
		Icon:           p.Icon,
		Link:           p.Link,
		Images:         images,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
