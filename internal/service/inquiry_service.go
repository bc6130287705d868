package service

import (
	"context"
	"fmt"
	"log"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/jackc/pgx/v5"
)

type InquiryService interface {
	// Submit stores a contact-form inquiry and, when configured, alerts
	// the studio contact address by email.
	Submit(ctx context.Context, name, email, subject, message string) (*repository.Inquiry, error)
	GetByID(ctx context.Context, id string) (*repository.Inquiry, error)
	List(ctx context.Context) ([]*repository.Inquiry, error)
	// MarkResponded stores the response text and emails it to the inquirer.
	MarkResponded(ctx context.Context, id, response string) (*repository.Inquiry, error)
	// MarkPending reverses a responded inquiry back to pending and clears
	// the stored response.
	MarkPending(ctx context.Context, id string) (*repository.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	settings    SettingsService
	mailer      InquiryMailer
}

func NewInquiryService(inquiryRepo repository.InquiryRepository, settings SettingsService, mailer InquiryMailer) InquiryService {
	return &inquiryService{inquiryRepo: inquiryRepo, settings: settings, mailer: mailer}
}

func (s *inquiryService) Submit(ctx context.Context, name, email, subject, message string) (*repository.Inquiry, error) {
	inquiry := &repository.Inquiry{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to store inquiry: %w", err)
	}

	s.notifyNewInquiry(ctx, inquiry)
	return inquiry, nil
}

func (s *inquiryService) GetByID(ctx context.Context, id string) (*repository.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, ErrNotFound
	}
	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context) ([]*repository.Inquiry, error) {
	return s.inquiryRepo.FindAll(ctx)
}

func (s *inquiryService) MarkResponded(ctx context.Context, id, response string) (*repository.Inquiry, error) {
	inquiry, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, types.InquiryResponded, &response); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendInquiryResponse(inquiry.Email, inquiry.Name, inquiry.Subject, response); err != nil {
			log.Printf("[Inquiry] Failed to email response to %s: %v", inquiry.Email, err)
		}
	}

	inquiry.Status = types.InquiryResponded
	inquiry.Response = &response
	return inquiry, nil
}

func (s *inquiryService) MarkPending(ctx context.Context, id string) (*repository.Inquiry, error) {
	inquiry, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, types.InquiryPending, nil); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	inquiry.Status = types.InquiryPending
	inquiry.Response = nil
	return inquiry, nil
}

func (s *inquiryService) Delete(ctx context.Context, id string) error {
	inquiry, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.inquiryRepo.Delete(ctx, inquiry.ID)
}

// notifyNewInquiry is best-effort: a failed alert never fails the submission.
func (s *inquiryService) notifyNewInquiry(ctx context.Context, inquiry *repository.Inquiry) {
	if s.mailer == nil || s.settings == nil {
		return
	}

	settings, err := s.settings.Get(ctx)
	if err != nil || settings == nil {
		return
	}
	if !settings.Notifications.EmailNotifications || !settings.Notifications.NewInquiries {
		return
	}
	if settings.General.ContactEmail == "" {
		return
	}

	if err := s.mailer.SendNewInquiryAlert(
		settings.General.ContactEmail, inquiry.Name, inquiry.Subject, inquiry.Message,
	); err != nil {
		log.Printf("[Inquiry] Failed to send new-inquiry alert: %v", err)
	}
}
