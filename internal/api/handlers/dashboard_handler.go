package handlers

import (
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Dashboard Handler
// ============================================

type DashboardHandler struct {
	statsService service.StatsService
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDashboardResponse(stats))
}
