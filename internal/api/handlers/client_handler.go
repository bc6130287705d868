package handlers

import (
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/models"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Client Handler (admin side)
// ============================================

type ClientHandler struct {
	clientService service.ClientService
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req.Name, req.Email, req.CompanyName, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(client))
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	client, err := h.clientService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]models.ClientResponse, len(clients))
	for i, cl := range clients {
		response[i] = toClientResponse(cl)
	}
	c.JSON(http.StatusOK, response)
}

func (h *ClientHandler) ListIDs(c *gin.Context) {
	ids, err := h.clientService.ListIDs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), c.Param("id"), req.Name, req.Email, req.CompanyName, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clientService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

func (h *ClientHandler) AddNote(c *gin.Context) {
	var req models.AddClientNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Author == "" {
		req.Author = "Admin"
	}

	if err := h.clientService.AddNote(c.Request.Context(), c.Param("id"), req.Content, req.Author); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Note added"})
}
