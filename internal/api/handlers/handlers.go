package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/models"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth      *AuthHandler
	Client    *ClientHandler
	Project   *ProjectHandler
	Portal    *PortalHandler
	Catalog   *CatalogHandler
	Inquiry   *InquiryHandler
	Team      *TeamHandler
	Settings  *SettingsHandler
	Dashboard *DashboardHandler
	Payment   *PaymentHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:      &AuthHandler{authService: services.Auth},
		Client:    &ClientHandler{clientService: services.Client},
		Project:   &ProjectHandler{projectService: services.Project},
		Portal:    &PortalHandler{projectService: services.Project, paymentService: services.Payment, clientService: services.Client},
		Catalog:   &CatalogHandler{catalogService: services.Catalog},
		Inquiry:   &InquiryHandler{inquiryService: services.Inquiry},
		Team:      &TeamHandler{teamService: services.Team},
		Settings:  &SettingsHandler{settingsService: services.Settings},
		Dashboard: &DashboardHandler{statsService: services.Stats},
		Payment:   &PaymentHandler{paymentService: services.Payment},
	}
}

// respondError maps service sentinel errors to HTTP statuses. Anything
// unmapped is a 500 and gets logged; the raw error never reaches the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
	case errors.Is(err, service.ErrAccountExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
	case errors.Is(err, service.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
	default:
		log.Printf("❌ [HTTP] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ============================================
// Response Mappers
// ============================================

func toAccountResponse(a *repository.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Audience:  a.Audience,
		IsAdmin:   a.IsAdmin,
		ClientID:  a.ClientID,
		CreatedAt: a.CreatedAt,
	}
}

func toClientResponse(cl *repository.Client) models.ClientResponse {
	notes := make([]models.ClientNoteResponse, len(cl.Notes))
	for i, n := range cl.Notes {
		notes[i] = models.ClientNoteResponse{Content: n.Content, Author: n.Author, Timestamp: n.Timestamp}
	}
	activities := make([]models.ClientActivityResponse, len(cl.Activities))
	for i, a := range cl.Activities {
		activities[i] = models.ClientActivityResponse{Type: a.Type, Description: a.Description, Timestamp: a.Timestamp}
	}

	return models.ClientResponse{
		ID:           cl.ID,
		Name:         cl.Name,
		Email:        cl.Email,
		CompanyName:  cl.CompanyName,
		Phone:        cl.Phone,
		Notes:        notes,
		Activities:   activities,
		ProjectCount: cl.ProjectCount,
		CreatedAt:    cl.CreatedAt,
		UpdatedAt:    cl.UpdatedAt,
	}
}

func toProjectResponse(p *repository.Project) models.ProjectResponse {
	team := make([]models.ProjectTeamRef, len(p.Team))
	for i, t := range p.Team {
		team[i] = models.ProjectTeamRef{Name: t.Name, Role: t.Role}
	}

	return models.ProjectResponse{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Description:      p.Description,
		Content:          p.Content,
		Category:         p.Category,
		PublishStatus:    p.PublishStatus,
		Status:           p.Status,
		Progress:         p.Progress,
		CurrentPhase:     p.CurrentPhase,
		PhaseDescription: p.PhaseDescription,
		ClientID:         p.ClientID,
		StartDate:        p.StartDate,
		DueDate:          p.DueDate,
		CompletionDate:   p.CompletionDate,
		LastActivity:     p.LastActivity,
		Team:             team,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProjectResponses(projects []*repository.Project) []models.ProjectResponse {
	responses := make([]models.ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = toProjectResponse(p)
	}
	return responses
}

func toTimelineEntryResponse(e *repository.TimelineEntry) models.TimelineEntryResponse {
	return models.TimelineEntryResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Title:       e.Title,
		Description: e.Description,
		Type:        e.Type,
		Date:        e.Date,
	}
}

func toMessageResponse(m *repository.ProjectMessage) models.ProjectMessageResponse {
	return models.ProjectMessageResponse{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		Sender:     m.Sender,
		SenderName: m.SenderName,
		Content:    m.Content,
		Timestamp:  m.Timestamp,
	}
}

func toDocumentResponse(d *repository.ProjectDocument) models.ProjectDocumentResponse {
	return models.ProjectDocumentResponse{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		Name:       d.Name,
		URL:        d.URL,
		Size:       d.Size,
		UploadedAt: d.UploadedAt,
	}
}

func toServiceResponse(s *repository.Service) models.ServiceResponse {
	process := make([]models.ProcessStep, len(s.Process))
	for i, p := range s.Process {
		process[i] = models.ProcessStep{Title: p.Title, Description: p.Description}
	}
	faq := make([]models.FAQItem, len(s.FAQ))
	for i, f := range s.FAQ {
		faq[i] = models.FAQItem{Question: f.Question, Answer: f.Answer}
	}

	return models.ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		Icon:        s.Icon,
		Features:    safeStringSlice(s.Features),
		Process:     process,
		Benefits:    safeStringSlice(s.Benefits),
		FAQ:         faq,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toInquiryResponse(i *repository.Inquiry) models.InquiryResponse {
	return models.InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Subject:   i.Subject,
		Message:   i.Message,
		Status:    i.Status,
		Response:  i.Response,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func toTeamMemberResponse(m *repository.TeamMember) models.TeamMemberResponse {
	return models.TeamMemberResponse{
		ID:         m.ID,
		Name:       m.Name,
		Role:       m.Role,
		Department: m.Department,
		Email:      m.Email,
		CreatedAt:  m.CreatedAt,
	}
}

func toPaymentResponse(p *repository.Payment) models.PaymentResponse {
	return models.PaymentResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Reference:   p.Reference,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

func toPaymentResponses(payments []*repository.Payment) []models.PaymentResponse {
	responses := make([]models.PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = toPaymentResponse(p)
	}
	return responses
}

func toDashboardResponse(s *repository.DashboardStats) models.DashboardResponse {
	revenue := make([]models.MonthlyPointResponse, len(s.MonthlyRevenue))
	for i, p := range s.MonthlyRevenue {
		revenue[i] = models.MonthlyPointResponse{Month: p.Month, Value: p.Value}
	}
	projects := make([]models.MonthlyPointResponse, len(s.MonthlyProjects))
	for i, p := range s.MonthlyProjects {
		projects[i] = models.MonthlyPointResponse{Month: p.Month, Value: p.Value}
	}

	return models.DashboardResponse{
		TotalProjects:    s.TotalProjects,
		NewProjects:      s.NewProjects,
		ActiveClients:    s.ActiveClients,
		NewClients:       s.NewClients,
		PendingInquiries: s.PendingInquiries,
		Revenue:          s.Revenue,
		MonthlyRevenue:   revenue,
		MonthlyProjects:  projects,
	}
}

// Helper to ensure nil slices become empty slices
func safeStringSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
