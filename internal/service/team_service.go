package service

import (
	"context"
	"fmt"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

type TeamService interface {
	Create(ctx context.Context, name, role, department, email string) (*repository.TeamMember, error)
	GetByID(ctx context.Context, id string) (*repository.TeamMember, error)
	List(ctx context.Context) ([]*repository.TeamMember, error)
	Update(ctx context.Context, id string, name, role, department, email string) (*repository.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

type teamService struct {
	teamRepo repository.TeamRepository
}

func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) Create(ctx context.Context, name, role, department, email string) (*repository.TeamMember, error) {
	member := &repository.TeamMember{
		Name:       name,
		Role:       role,
		Department: department,
		Email:      email,
	}
	if err := s.teamRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return member, nil
}

func (s *teamService) GetByID(ctx context.Context, id string) (*repository.TeamMember, error) {
	member, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotFound
	}
	return member, nil
}

func (s *teamService) List(ctx context.Context) ([]*repository.TeamMember, error) {
	return s.teamRepo.FindAll(ctx)
}

func (s *teamService) Update(ctx context.Context, id string, name, role, department, email string) (*repository.TeamMember, error) {
	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Name = name
	member.Role = role
	member.Department = department
	member.Email = email

	if err := s.teamRepo.Update(ctx, member); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return member, nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	member, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.teamRepo.Delete(ctx, member.ID)
}
