package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jolin0223/vibefolio/pkg/vibefolio/gallery"
)

// Handler handles project catalog requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new catalog handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	ProjectURL  string   `json:"projectUrl"`
	Tags        []string `json:"tags"`
	PrdURL      string   `json:"prdUrl"`
	Categories  []string `json:"categories"`
	SortOrder   *int     `json:"sortOrder"`
}

// UpdateProjectRequest represents a partial update. Pointer fields
// distinguish "absent" from "present but empty".
type UpdateProjectRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	ProjectURL  string    `json:"projectUrl"`
	Tags        *[]string `json:"tags"`
	PrdURL      *string   `json:"prdUrl"`
	Categories  *[]string `json:"categories"`
	SortOrder   *int      `json:"sortOrder"`
}

// CategoryCount is one entry of the category bar data.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// List returns the full catalog
// @Summary List projects
// @Description Get all projects sorted by sort order ascending
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} map[string]interface{} "Server error"
// @Router /projects [get]
func (h *Handler) List(c *gin.Context) {
	projects, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Create creates a new project
// @Summary Create a project
// @Description Create a new project entry in the catalog
// @Tags projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Project details"
// @Success 200 {object} map[string]interface{} "success and project"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Security BearerAuth
// @Router /projects [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	project, err := h.svc.Create(CreateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ProjectURL:  req.ProjectURL,
		Tags:        req.Tags,
		PrdURL:      req.PrdURL,
		Categories:  req.Categories,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

// Update applies a partial update to a project
// @Summary Update a project
// @Description Update fields of an existing project; empty title/description/imageUrl/projectUrl keep the old value
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body UpdateProjectRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "success and project"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	project, err := h.svc.Update(c.Param("id"), UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ProjectURL:  req.ProjectURL,
		Tags:        req.Tags,
		PrdURL:      req.PrdURL,
		Categories:  req.Categories,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

// Delete removes a project
// @Summary Delete a project
// @Description Delete a project from the catalog
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{} "success"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// IncrementView bumps a project's view counter
// @Summary Track a project view
// @Description Increment the view counter for a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{} "success and views"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/view [post]
func (h *Handler) IncrementView(c *gin.Context) {
	views, err := h.svc.IncrementView(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "views": views})
}

// Categories returns the category bar data for the gallery
// @Summary List categories
// @Description Get every category with its project count, the "all projects" category first
// @Tags projects
// @Produce json
// @Success 200 {array} CategoryCount
// @Router /projects/categories [get]
func (h *Handler) Categories(c *gin.Context) {
	projects, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}

	names := gallery.Categories(projects)
	counts := make([]CategoryCount, len(names))
	for i, name := range names {
		counts[i] = CategoryCount{Name: name, Count: gallery.Count(projects, name)}
	}

	c.JSON(http.StatusOK, counts)
}

func respondError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Project not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}

// RegisterRoutes registers the public catalog routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.List)
	rg.GET("/projects/categories", h.Categories)
	rg.POST("/projects/:id/view", h.IncrementView)
}

// RegisterAdminRoutes registers the mutating routes; the caller is
// expected to guard the group with the admin session gate.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.Create)
	rg.PUT("/projects/:id", h.Update)
	rg.DELETE("/projects/:id", h.Delete)
}
