package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/db"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/jackc/pgx/v5"
)

const portfolioCacheKey = "portfolio:published"

type CreateProjectInput struct {
	Title            string
	Description      string
	Content          string
	Category         string
	PublishStatus    string
	Status           string
	Progress         int
	ClientID         *string
	StartDate        *time.Time
	DueDate          *time.Time
	CompletionDate   *time.Time
	Team             []repository.ProjectTeamRef
}

type UpdateProjectInput struct {
	Title          *string
	Description    *string
	Content        *string
	Category       *string
	PublishStatus  *string
	Status         *string
	Progress       *int
	ClientID       *string
	StartDate      *time.Time
	DueDate        *time.Time
	CompletionDate *time.Time
	Team           []repository.ProjectTeamRef
}

type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*repository.Project, error)
	GetByID(ctx context.Context, id string) (*repository.Project, error)
	GetBySlug(ctx context.Context, slug string) (*repository.Project, error)
	ListAll(ctx context.Context) ([]*repository.Project, error)
	ListPublished(ctx context.Context) ([]*repository.Project, error)
	ListIDs(ctx context.Context) ([]string, error)
	// Update replaces only the supplied fields; the slug is never recomputed.
	Update(ctx context.Context, id string, input UpdateProjectInput) (*repository.Project, error)
	// UpdateStatus changes the delivery state, records a timeline entry in
	// the same transaction, and notifies portal subscribers.
	UpdateStatus(ctx context.Context, id, status string, progress int, currentPhase, phaseDescription string) error
	Delete(ctx context.Context, id string) error

	// Timeline and documents (admin side)
	AddTimelineEntry(ctx context.Context, projectID, title, description, entryType string) (*repository.TimelineEntry, error)
	ListTimeline(ctx context.Context, projectID string) ([]*repository.TimelineEntry, error)
	AddDocument(ctx context.Context, projectID, name, url string, size *int64) (*repository.ProjectDocument, error)
	ListDocuments(ctx context.Context, projectID string) ([]*repository.ProjectDocument, error)
	DeleteDocument(ctx context.Context, projectID, documentID string) error

	// Messaging (both sides)
	ListMessages(ctx context.Context, projectID string) ([]*repository.ProjectMessage, error)
	SendMessage(ctx context.Context, projectID, sender, senderName, content string) (*repository.ProjectMessage, error)

	// Client portal: every read verifies the project belongs to the
	// caller's client binding; a mismatch is indistinguishable from absence.
	ListForClient(ctx context.Context, clientID string) ([]*repository.Project, error)
	GetForClient(ctx context.Context, projectID, clientID string) (*repository.Project, error)
}

type projectService struct {
	projectRepo  repository.ProjectRepository
	timelineRepo repository.TimelineRepository
	messageRepo  repository.MessageRepository
	documentRepo repository.DocumentRepository
	clientRepo   repository.ClientRepository
	broadcaster  Broadcaster
	cache        *db.RedisDB
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	timelineRepo repository.TimelineRepository,
	messageRepo repository.MessageRepository,
	documentRepo repository.DocumentRepository,
	clientRepo repository.ClientRepository,
	broadcaster Broadcaster,
	cache *db.RedisDB,
) ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		timelineRepo: timelineRepo,
		messageRepo:  messageRepo,
		documentRepo: documentRepo,
		clientRepo:   clientRepo,
		broadcaster:  broadcaster,
		cache:        cache,
	}
}

func (s *projectService) Create(ctx context.Context, input CreateProjectInput) (*repository.Project, error) {
	if input.PublishStatus == "" {
		input.PublishStatus = types.PublishDraft
	}
	if input.Status == "" {
		input.Status = types.StatusPlanning
	}
	if !types.IsValidPublishStatus(input.PublishStatus) || !types.IsValidProjectStatus(input.Status) {
		return nil, ErrInvalidStatus
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.FindByID(ctx, *input.ClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify client: %w", err)
		}
		if client == nil {
			return nil, ErrNotFound
		}
	}

	project := &repository.Project{
		Title:          input.Title,
		Slug:           Slugify(input.Title),
		Description:    input.Description,
		Content:        input.Content,
		Category:       input.Category,
		PublishStatus:  input.PublishStatus,
		Status:         input.Status,
		Progress:       input.Progress,
		ClientID:       input.ClientID,
		StartDate:      input.StartDate,
		DueDate:        input.DueDate,
		CompletionDate: input.CompletionDate,
		Team:           input.Team,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.invalidatePortfolio(ctx)
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *projectService) GetBySlug(ctx context.Context, slug string) (*repository.Project, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *projectService) ListAll(ctx context.Context) ([]*repository.Project, error) {
	return s.projectRepo.FindAll(ctx)
}

func (s *projectService) ListPublished(ctx context.Context) ([]*repository.Project, error) {
	if s.cache != nil {
		var cached []*repository.Project
		if err := s.cache.GetCache(ctx, portfolioCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.projectRepo.FindPublished(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, portfolioCacheKey, projects, 5*time.Minute); err != nil {
			log.Printf("[Project] Failed to cache portfolio: %v", err)
		}
	}
	return projects, nil
}

func (s *projectService) ListIDs(ctx context.Context) ([]string, error) {
	return s.projectRepo.ListIDs(ctx)
}

func (s *projectService) Update(ctx context.Context, id string, input UpdateProjectInput) (*repository.Project, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title // slug stays as created
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Content != nil {
		project.Content = *input.Content
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.PublishStatus != nil {
		if !types.IsValidPublishStatus(*input.PublishStatus) {
			return nil, ErrInvalidStatus
		}
		project.PublishStatus = *input.PublishStatus
	}
	if input.Status != nil {
		if !types.IsValidProjectStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		project.Status = *input.Status
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.ClientID != nil {
		project.ClientID = input.ClientID
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.DueDate != nil {
		project.DueDate = input.DueDate
	}
	if input.CompletionDate != nil {
		project.CompletionDate = input.CompletionDate
	}
	if input.Team != nil {
		project.Team = input.Team
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.invalidatePortfolio(ctx)
	return project, nil
}

func (s *projectService) UpdateStatus(ctx context.Context, id, status string, progress int, currentPhase, phaseDescription string) error {
	if !types.IsValidProjectStatus(status) {
		return ErrInvalidStatus
	}
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress out of range: %d", progress)
	}

	change := repository.StatusChange{
		Status:           status,
		Progress:         progress,
		CurrentPhase:     currentPhase,
		PhaseDescription: phaseDescription,
	}
	if err := s.projectRepo.UpdateStatus(ctx, id, change); err != nil {
		if err == pgx.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update project status: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastProjectStatus(id, map[string]interface{}{
			"projectId":        id,
			"status":           status,
			"progress":         progress,
			"currentPhase":     currentPhase,
			"phaseDescription": phaseDescription,
		})
	}
	return nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, project.ID); err != nil {
		return err
	}
	s.invalidatePortfolio(ctx)
	return nil
}

func (s *projectService) AddTimelineEntry(ctx context.Context, projectID, title, description, entryType string) (*repository.TimelineEntry, error) {
	if _, err := s.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	if entryType == "" {
		entryType = types.TimelineUpdate
	}

	entry := &repository.TimelineEntry{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Type:        entryType,
	}
	if err := s.timelineRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append timeline entry: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastTimelineEntry(projectID, map[string]interface{}{
			"projectId":   projectID,
			"title":       entry.Title,
			"description": entry.Description,
			"type":        entry.Type,
			"date":        entry.Date,
		})
	}
	return entry, nil
}

func (s *projectService) ListTimeline(ctx context.Context, projectID string) ([]*repository.TimelineEntry, error) {
	if _, err := s.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.timelineRepo.FindByProject(ctx, projectID)
}

func (s *projectService) AddDocument(ctx context.Context, projectID, name, url string, size *int64) (*repository.ProjectDocument, error) {
	if _, err := s.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	doc := &repository.ProjectDocument{
		ProjectID: projectID,
		Name:      name,
		URL:       url,
		Size:      size,
	}
	if err := s.documentRepo.Add(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to add document: %w", err)
	}
	return doc, nil
}

func (s *projectService) ListDocuments(ctx context.Context, projectID string) ([]*repository.ProjectDocument, error) {
	if _, err := s.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.documentRepo.FindByProject(ctx, projectID)
}

func (s *projectService) DeleteDocument(ctx context.Context, projectID, documentID string) error {
	if _, err := s.GetByID(ctx, projectID); err != nil {
		return err
	}
	return s.documentRepo.Delete(ctx, documentID)
}

func (s *projectService) ListMessages(ctx context.Context, projectID string) ([]*repository.ProjectMessage, error) {
	if _, err := s.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.messageRepo.FindByProject(ctx, projectID)
}

func (s *projectService) SendMessage(ctx context.Context, projectID, sender, senderName, content string) (*repository.ProjectMessage, error) {
	if sender != types.SenderClient && sender != types.SenderTeam {
		return nil, fmt.Errorf("invalid sender kind: %q", sender)
	}
	if _, err := s.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	message := &repository.ProjectMessage{
		ProjectID:  projectID,
		Sender:     sender,
		SenderName: senderName,
		Content:    content,
	}
	if err := s.messageRepo.Append(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastProjectMessage(projectID, map[string]interface{}{
			"projectId":  projectID,
			"sender":     message.Sender,
			"senderName": message.SenderName,
			"content":    message.Content,
			"timestamp":  message.Timestamp,
		})
	}
	return message, nil
}

func (s *projectService) ListForClient(ctx context.Context, clientID string) ([]*repository.Project, error) {
	return s.projectRepo.FindByClientID(ctx, clientID)
}

func (s *projectService) GetForClient(ctx context.Context, projectID, clientID string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.ClientID == nil || *project.ClientID != clientID {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *projectService) invalidatePortfolio(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(ctx, "portfolio:*"); err != nil {
		log.Printf("[Project] Failed to invalidate portfolio cache: %v", err)
	}
}
