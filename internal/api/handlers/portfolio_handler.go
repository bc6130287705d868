package handlers

import (
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/gin-gonic/gin"
)

// ============================================
// Public portfolio endpoints
// ============================================

// ListPublished serves the portfolio page: published projects only,
// cached for a few minutes.
func (h *ProjectHandler) ListPublished(c *gin.Context) {
	projects, err := h.projectService.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponses(projects))
}

// GetPublishedBySlug serves a single case study. Draft projects are
// indistinguishable from missing ones.
func (h *ProjectHandler) GetPublishedBySlug(c *gin.Context) {
	project, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if project.PublishStatus != types.PublishPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// ListIDs feeds static page generation on the frontend.
func (h *ProjectHandler) ListIDs(c *gin.Context) {
	ids, err := h.projectService.ListIDs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}
