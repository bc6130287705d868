package handlers

import (
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/models"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Catalog Handler (service offerings)
// ============================================

type CatalogHandler struct {
	catalogService service.CatalogService
}

// List is public: the services page reads from here.
func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]models.ServiceResponse, len(services))
	for i, s := range services {
		response[i] = toServiceResponse(s)
	}
	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	svc, err := h.catalogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(svc))
}

func (h *CatalogHandler) GetByID(c *gin.Context) {
	svc, err := h.catalogService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(svc))
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.catalogService.Create(c.Request.Context(), toServiceInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toServiceResponse(svc))
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.catalogService.Update(c.Request.Context(), c.Param("id"), toServiceInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(svc))
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func toServiceInput(req models.ServiceRequest) service.ServiceInput {
	process := make([]repository.ProcessStep, len(req.Process))
	for i, p := range req.Process {
		process[i] = repository.ProcessStep{Title: p.Title, Description: p.Description}
	}
	faq := make([]repository.FAQItem, len(req.FAQ))
	for i, f := range req.FAQ {
		faq[i] = repository.FAQItem{Question: f.Question, Answer: f.Answer}
	}

	return service.ServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
		Process:     process,
		Benefits:    req.Benefits,
		FAQ:         faq,
	}
}
