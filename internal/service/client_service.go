package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

type ClientService interface {
	Create(ctx context.Context, name, email string, companyName, phone *string) (*repository.Client, error)
	GetByID(ctx context.Context, id string) (*repository.Client, error)
	// List returns all clients newest-first, each with its project count.
	List(ctx context.Context) ([]*repository.Client, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, name, email *string, companyName, phone *string) (*repository.Client, error)
	// Delete removes the client only; its projects are left orphaned.
	Delete(ctx context.Context, id string) error
	AddNote(ctx context.Context, clientID, content, author string) error
}

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, name, email string, companyName, phone *string) (*repository.Client, error) {
	client := &repository.Client{
		Name:        name,
		Email:       email,
		CompanyName: companyName,
		Phone:       phone,
		Activities: []repository.ClientActivity{{
			Type:        "client_created",
			Description: "Client profile created",
			Timestamp:   time.Now(),
		}},
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id string) (*repository.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrNotFound
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context) ([]*repository.Client, error) {
	return s.clientRepo.FindAll(ctx)
}

func (s *clientService) ListIDs(ctx context.Context) ([]string, error) {
	return s.clientRepo.ListIDs(ctx)
}

func (s *clientService) Update(ctx context.Context, id string, name, email *string, companyName, phone *string) (*repository.Client, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		client.Name = *name
	}
	if email != nil {
		client.Email = *email
	}
	if companyName != nil {
		client.CompanyName = companyName
	}
	if phone != nil {
		client.Phone = phone
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, client.ID)
}

func (s *clientService) AddNote(ctx context.Context, clientID, content, author string) error {
	note := repository.ClientNote{
		Content:   content,
		Author:    author,
		Timestamp: time.Now(),
	}
	err := s.clientRepo.AppendNote(ctx, clientID, note)
	if err == pgx.ErrNoRows {
		return ErrNotFound
	}
	return err
}
