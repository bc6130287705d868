package models

import "time"

// ============================================
// Project DTOs
// ============================================

type ProjectTeamRef struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type CreateProjectRequest struct {
	Title          string           `json:"title" binding:"required,min=2"`
	Description    string           `json:"description"`
	Content        string           `json:"content"`
	Category       string           `json:"category"`
	PublishStatus  string           `json:"publishStatus" binding:"omitempty,oneof=draft published"`
	Status         string           `json:"status" binding:"omitempty,oneof=planning in_progress review completed on_hold"`
	Progress       int              `json:"progress" binding:"gte=0,lte=100"`
	ClientID       *string          `json:"clientId,omitempty"`
	StartDate      *time.Time       `json:"startDate,omitempty"`
	DueDate        *time.Time       `json:"dueDate,omitempty"`
	CompletionDate *time.Time       `json:"completionDate,omitempty"`
	Team           []ProjectTeamRef `json:"team,omitempty"`
}

type UpdateProjectRequest struct {
	Title          *string          `json:"title,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Content        *string          `json:"content,omitempty"`
	Category       *string          `json:"category,omitempty"`
	PublishStatus  *string          `json:"publishStatus,omitempty" binding:"omitempty,oneof=draft published"`
	Status         *string          `json:"status,omitempty" binding:"omitempty,oneof=planning in_progress review completed on_hold"`
	Progress       *int             `json:"progress,omitempty" binding:"omitempty,gte=0,lte=100"`
	ClientID       *string          `json:"clientId,omitempty"`
	StartDate      *time.Time       `json:"startDate,omitempty"`
	DueDate        *time.Time       `json:"dueDate,omitempty"`
	CompletionDate *time.Time       `json:"completionDate,omitempty"`
	Team           []ProjectTeamRef `json:"team,omitempty"`
}

type UpdateProjectStatusRequest struct {
	Status           string `json:"status" binding:"required,oneof=planning in_progress review completed on_hold"`
	Progress         int    `json:"progress" binding:"gte=0,lte=100"`
	CurrentPhase     string `json:"currentPhase"`
	PhaseDescription string `json:"phaseDescription"`
}

type AddTimelineEntryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"omitempty,oneof=milestone update meeting delivery"`
}

type AddDocumentRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
	Size *int64 `json:"size,omitempty"`
}

type SendMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	SenderName string `json:"senderName"`
}

type ProjectResponse struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	Description      string           `json:"description"`
	Content          string           `json:"content"`
	Category         string           `json:"category"`
	PublishStatus    string           `json:"publishStatus"`
	Status           string           `json:"status"`
	Progress         int              `json:"progress"`
	CurrentPhase     *string          `json:"currentPhase,omitempty"`
	PhaseDescription *string          `json:"phaseDescription,omitempty"`
	ClientID         *string          `json:"clientId,omitempty"`
	StartDate        *time.Time       `json:"startDate,omitempty"`
	DueDate          *time.Time       `json:"dueDate,omitempty"`
	CompletionDate   *time.Time       `json:"completionDate,omitempty"`
	LastActivity     *time.Time       `json:"lastActivity,omitempty"`
	Team             []ProjectTeamRef `json:"team"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

type TimelineEntryResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
}

type ProjectMessageResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"projectId"`
	Sender     string    `json:"sender"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

type ProjectDocumentResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"projectId"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Size       *int64    `json:"size,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}
