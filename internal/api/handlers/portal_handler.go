package handlers

import (
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/api/middleware"
	"github.com/arjun-and-preetham/studio-backend/internal/models"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/gin-gonic/gin"
)

// ============================================
// Portal Handler (client side)
// ============================================

// PortalHandler serves the client portal. Every project read goes through
// the ownership check; a project belonging to someone else looks exactly
// like a missing one.
type PortalHandler struct {
	projectService service.ProjectService
	paymentService service.PaymentService
	clientService  service.ClientService
}

// Me returns the client profile bound to the session.
func (h *PortalHandler) Me(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

func (h *PortalHandler) ListProjects(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListForClient(c.Request.Context(), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponses(projects))
}

func (h *PortalHandler) GetProject(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetForClient(c.Request.Context(), c.Param("id"), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *PortalHandler) ListTimeline(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetForClient(c.Request.Context(), c.Param("id"), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.projectService.ListTimeline(c.Request.Context(), project.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]models.TimelineEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = toTimelineEntryResponse(e)
	}
	c.JSON(http.StatusOK, response)
}

func (h *PortalHandler) ListDocuments(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetForClient(c.Request.Context(), c.Param("id"), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	docs, err := h.projectService.ListDocuments(c.Request.Context(), project.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]models.ProjectDocumentResponse, len(docs))
	for i, d := range docs {
		response[i] = toDocumentResponse(d)
	}
	c.JSON(http.StatusOK, response)
}

func (h *PortalHandler) ListMessages(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetForClient(c.Request.Context(), c.Param("id"), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	messages, err := h.projectService.ListMessages(c.Request.Context(), project.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]models.ProjectMessageResponse, len(messages))
	for i, m := range messages {
		response[i] = toMessageResponse(m)
	}
	c.JSON(http.StatusOK, response)
}

func (h *PortalHandler) SendMessage(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.GetForClient(c.Request.Context(), c.Param("id"), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	senderName := req.SenderName
	if senderName == "" {
		senderName = "Client"
	}

	message, err := h.projectService.SendMessage(c.Request.Context(), project.ID,
		types.SenderClient, senderName, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMessageResponse(message))
}

func (h *PortalHandler) ListTeam(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetForClient(c.Request.Context(), c.Param("id"), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	team := make([]models.ProjectTeamRef, len(project.Team))
	for i, t := range project.Team {
		team[i] = models.ProjectTeamRef{Name: t.Name, Role: t.Role}
	}
	c.JSON(http.StatusOK, team)
}

func (h *PortalHandler) ListPayments(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListForClient(c.Request.Context(), principal.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPaymentResponses(payments))
}
