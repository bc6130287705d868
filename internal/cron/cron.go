package cron

import (
	"context"
	"fmt"
	"log"

	"github.com/arjun-and-preetham/studio-backend/internal/email"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/robfig/cron/v3"
)

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron        *cron.Cron
	services    *service.Services
	inquiryRepo repository.InquiryRepository
	mailer      *email.Service
}

// NewScheduler creates a new scheduler
func NewScheduler(services *service.Services, inquiryRepo repository.InquiryRepository, mailer *email.Service) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		services:    services,
		inquiryRepo: inquiryRepo,
		mailer:      mailer,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Refresh the dashboard aggregation every hour so the first admin
	// request never pays for it
	s.cron.AddFunc("0 * * * *", func() {
		log.Println("[Cron] Warming dashboard stats cache...")
		s.warmDashboardStats()
	})

	// Every weekday at 9 AM - remind the studio of unanswered inquiries
	s.cron.AddFunc("0 9 * * 1-5", func() {
		log.Println("[Cron] Running pending inquiry check...")
		s.checkPendingInquiries()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

func (s *Scheduler) warmDashboardStats() {
	ctx := context.Background()

	if err := s.services.Stats.Warmup(ctx); err != nil {
		log.Printf("[Cron] Error warming dashboard stats: %v", err)
		return
	}
	log.Println("[Cron] Dashboard stats cache refreshed")
}

// checkPendingInquiries emails the studio contact address when inquiries
// have been sitting unanswered
func (s *Scheduler) checkPendingInquiries() {
	ctx := context.Background()

	if s.mailer == nil {
		return
	}

	count, err := s.inquiryRepo.CountByStatus(ctx, types.InquiryPending)
	if err != nil {
		log.Printf("[Cron] Error counting pending inquiries: %v", err)
		return
	}
	if count == 0 {
		return
	}

	settings, err := s.services.Settings.Get(ctx)
	if err != nil || settings == nil {
		log.Println("[Cron] No settings available for pending inquiry reminder")
		return
	}
	if !settings.Notifications.EmailNotifications || settings.General.ContactEmail == "" {
		return
	}

	err = s.mailer.Send(&email.Email{
		To:      []string{settings.General.ContactEmail},
		Subject: "Pending inquiries need attention",
		Body:    formatPendingReminder(count),
	})
	if err != nil {
		log.Printf("[Cron] Error sending pending inquiry reminder: %v", err)
		return
	}
	log.Printf("[Cron] Sent pending inquiry reminder (%d pending)", count)
}

func formatPendingReminder(count int) string {
	if count == 1 {
		return "There is 1 inquiry waiting for a response in the admin panel."
	}
	return fmt.Sprintf("There are %d inquiries waiting for a response in the admin panel.", count)
}
