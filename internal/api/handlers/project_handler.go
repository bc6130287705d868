package handlers

import (
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/models"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/gin-gonic/gin"
)

// ============================================
// Project Handler (admin side)
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.CreateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Content:        req.Content,
		Category:       req.Category,
		PublishStatus:  req.PublishStatus,
		Status:         req.Status,
		Progress:       req.Progress,
		ClientID:       req.ClientID,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		CompletionDate: req.CompletionDate,
		Team:           toTeamRefs(req.Team),
	}

	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(project))
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponses(projects))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Content:        req.Content,
		Category:       req.Category,
		PublishStatus:  req.PublishStatus,
		Status:         req.Status,
		Progress:       req.Progress,
		ClientID:       req.ClientID,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		CompletionDate: req.CompletionDate,
		Team:           toTeamRefs(req.Team),
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// UpdateStatus changes the delivery state and records the change on the
// project timeline.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.projectService.UpdateStatus(c.Request.Context(), c.Param("id"),
		req.Status, req.Progress, req.CurrentPhase, req.PhaseDescription)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// ============================================
// Timeline
// ============================================

func (h *ProjectHandler) AddTimelineEntry(c *gin.Context) {
	var req models.AddTimelineEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.projectService.AddTimelineEntry(c.Request.Context(), c.Param("id"),
		req.Title, req.Description, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTimelineEntryResponse(entry))
}

func (h *ProjectHandler) ListTimeline(c *gin.Context) {
	entries, err := h.projectService.ListTimeline(c.Request.Context(), c.Param("id"))
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

// ============================================
// Documents
// ============================================

func (h *ProjectHandler) AddDocument(c *gin.Context) {
	var req models.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.projectService.AddDocument(c.Request.Context(), c.Param("id"), req.Name, req.URL, req.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

func (h *ProjectHandler) ListDocuments(c *gin.Context) {
	docs, err := h.projectService.ListDocuments(c.Request.Context(), c.Param("id"))
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

func (h *ProjectHandler) DeleteDocument(c *gin.Context) {
	err := h.projectService.DeleteDocument(c.Request.Context(), c.Param("id"), c.Param("documentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// ============================================
// Messages (team side)
// ============================================

func (h *ProjectHandler) ListMessages(c *gin.Context) {
	messages, err := h.projectService.ListMessages(c.Request.Context(), c.Param("id"))
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

func (h *ProjectHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	senderName := req.SenderName
	if senderName == "" {
		senderName = "Team"
	}

	message, err := h.projectService.SendMessage(c.Request.Context(), c.Param("id"),
		types.SenderTeam, senderName, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMessageResponse(message))
}

func toTeamRefs(refs []models.ProjectTeamRef) []repository.ProjectTeamRef {
	if refs == nil {
		return nil
	}
	out := make([]repository.ProjectTeamRef, len(refs))
	for i, r := range refs {
		out[i] = repository.ProjectTeamRef{Name: r.Name, Role: r.Role}
	}
	return out
}
