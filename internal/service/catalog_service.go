package service

import (
	"context"
	"fmt"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

type ServiceInput struct {
	Title       string
	Description string
	Icon        string
	Features    []string
	Process     []repository.ProcessStep
	Benefits    []string
	FAQ         []repository.FAQItem
}

// CatalogService manages the public service catalog (the studio's offerings,
// not to be confused with this package).
type CatalogService interface {
	Create(ctx context.Context, input ServiceInput) (*repository.Service, error)
	GetByID(ctx context.Context, id string) (*repository.Service, error)
	GetBySlug(ctx context.Context, slug string) (*repository.Service, error)
	List(ctx context.Context) ([]*repository.Service, error)
	// Update replaces the supplied fields. The slug is derived on create
	// only; retitling a service never changes its URL.
	Update(ctx context.Context, id string, input ServiceInput) (*repository.Service, error)
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
}

func NewCatalogService(serviceRepo repository.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo}
}

func (s *catalogService) Create(ctx context.Context, input ServiceInput) (*repository.Service, error) {
	svc := &repository.Service{
		Title:       input.Title,
		Slug:        Slugify(input.Title),
		Description: input.Description,
		Icon:        input.Icon,
		Features:    input.Features,
		Process:     input.Process,
		Benefits:    input.Benefits,
		FAQ:         input.FAQ,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*repository.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *catalogService) GetBySlug(ctx context.Context, slug string) (*repository.Service, error) {
	svc, err := s.serviceRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *catalogService) List(ctx context.Context) ([]*repository.Service, error) {
	return s.serviceRepo.FindAll(ctx)
}

func (s *catalogService) Update(ctx context.Context, id string, input ServiceInput) (*repository.Service, error) {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Title = input.Title // slug intentionally untouched
	svc.Description = input.Description
	svc.Icon = input.Icon
	svc.Features = input.Features
	svc.Process = input.Process
	svc.Benefits = input.Benefits
	svc.FAQ = input.FAQ

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.serviceRepo.Delete(ctx, svc.ID)
}
