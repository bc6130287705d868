package handlers

import (
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Settings Handler
// ============================================

// SettingsHandler serves the settings and hero-content documents. The
// repository types already carry the wire-format tags, so no extra DTO
// layer sits between them and the client.
type SettingsHandler struct {
	settingsService service.SettingsService
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if settings == nil {
		c.JSON(http.StatusOK, repository.SiteSettings{})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update replaces the whole settings document.
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings repository.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settingsService.Update(c.Request.Context(), &settings); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
}

// GetHero is public: the homepage reads from here. A default block is
// served until an admin stores one.
func (h *SettingsHandler) GetHero(c *gin.Context) {
	hero, err := h.settingsService.GetHero(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

func (h *SettingsHandler) UpdateHero(c *gin.Context) {
	var hero repository.HeroContent
	if err := c.ShouldBindJSON(&hero); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settingsService.UpdateHero(c.Request.Context(), &hero); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hero content saved"})
}
