// internal/seed/seed.go
package seed

import (
	"context"
	"log"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/config"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin bootstraps the first admin account. The set-admin endpoint
// requires an admin caller, so the first one has to come from here.
func SeedAdmin(cfg *config.Config, repos *repository.Repositories) {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		log.Println("[Seed] No seed admin configured, skipping")
		return
	}

	ctx := context.Background()

	existing, err := repos.AccountRepo.FindByEmail(ctx, cfg.SeedAdminEmail)
	if err != nil {
		log.Printf("[Seed] Failed to look up seed admin: %v", err)
		return
	}
	if existing != nil {
		if !existing.IsAdmin {
			if err := repos.AccountRepo.SetAdmin(ctx, existing.ID, true); err != nil {
				log.Printf("[Seed] Failed to grant admin claim: %v", err)
				return
			}
			log.Printf("[Seed] Granted admin claim to existing account %s", cfg.SeedAdminEmail)
		}
		return
	}

	password, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[Seed] Failed to hash seed admin password: %v", err)
		return
	}

	admin := &repository.Account{
		Email:        cfg.SeedAdminEmail,
		PasswordHash: string(password),
		Name:         "Studio Admin",
		Audience:     types.AudienceStaff,
		IsAdmin:      true,
	}
	if err := repos.AccountRepo.Create(ctx, admin); err != nil {
		log.Printf("[Seed] Failed to create seed admin: %v", err)
		return
	}
	if err := repos.AccountRepo.SetAdmin(ctx, admin.ID, true); err != nil {
		log.Printf("[Seed] Failed to set admin claim: %v", err)
		return
	}
	log.Printf("✅ [Seed] Created admin account %s", cfg.SeedAdminEmail)
}

// SeedData creates development fixtures: a demo client with a project in
// flight, a service catalog entry, and the hero content block.
func SeedData(repos *repository.Repositories) {
	ctx := context.Background()

	clients, err := repos.ClientRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[Seed] Failed to check existing data: %v", err)
		return
	}
	if len(clients) > 0 {
		log.Println("[Seed] Data already exists, skipping...")
		return
	}

	log.Println("[Seed] 🌱 Creating development data...")

	// ============================================
	// DEMO CLIENT
	// ============================================
	company := "Acme Outdoors"
	phone := "+1 555 0199"
	client := &repository.Client{
		Name:        "Dana Whitfield",
		Email:       "dana@acmeoutdoors.example",
		CompanyName: &company,
		Phone:       &phone,
		Activities: []repository.ClientActivity{{
			Type:        "client_created",
			Description: "Client profile created",
			Timestamp:   time.Now(),
		}},
	}
	if err := repos.ClientRepo.Create(ctx, client); err != nil {
		log.Printf("[Seed] Failed to create demo client: %v", err)
		return
	}

	// ============================================
	// DEMO PROJECT (in progress, published to the portfolio)
	// ============================================
	phase := "Design"
	phaseDesc := "High-fidelity mockups under review"
	start := time.Now().AddDate(0, -1, 0)
	due := time.Now().AddDate(0, 1, 0)
	project := &repository.Project{
		Title:            "Acme Outdoors Storefront",
		Slug:             "acme-outdoors-storefront",
		Description:      "E-commerce storefront with a custom product configurator.",
		Content:          "Full case study content goes here.",
		Category:         "E-Commerce",
		PublishStatus:    types.PublishPublished,
		Status:           types.StatusInProgress,
		Progress:         45,
		CurrentPhase:     &phase,
		PhaseDescription: &phaseDesc,
		ClientID:         &client.ID,
		StartDate:        &start,
		DueDate:          &due,
		Team: []repository.ProjectTeamRef{
			{Name: "Arjun", Role: "Lead Developer"},
			{Name: "Preetham", Role: "Designer"},
		},
	}
	if err := repos.ProjectRepo.Create(ctx, project); err != nil {
		log.Printf("[Seed] Failed to create demo project: %v", err)
		return
	}

	repos.TimelineRepo.Append(ctx, &repository.TimelineEntry{
		ProjectID:   project.ID,
		Title:       "Kickoff",
		Description: "Project kicked off with discovery workshop",
		Type:        types.TimelineMilestone,
	})

	// ============================================
	// SERVICE CATALOG
	// ============================================
	repos.ServiceRepo.Create(ctx, &repository.Service{
		Title:       "Web Development",
		Slug:        "web-development",
		Description: "Custom web applications built with modern tooling.",
		Icon:        "code",
		Features:    []string{"Responsive design", "API integrations", "Performance tuning"},
		Process: []repository.ProcessStep{
			{Title: "Discovery", Description: "We learn your business and goals."},
			{Title: "Build", Description: "Iterative development with weekly demos."},
			{Title: "Launch", Description: "Deployment, monitoring, and handover."},
		},
		Benefits: []string{"Faster time to market", "A site you can grow with"},
		FAQ: []repository.FAQItem{
			{Question: "How long does a typical project take?", Answer: "Most projects ship in 6 to 12 weeks."},
		},
	})

	// ============================================
	// HERO CONTENT
	// ============================================
	repos.SettingsRepo.PutHero(ctx, &repository.HeroContent{
		Title:               "Building the Future of the Web",
		Subtitle:            "We create immersive, cutting-edge web experiences that blend creativity, technology, and business strategy.",
		PrimaryButtonText:   "Start Your Project",
		PrimaryButtonLink:   "/contact",
		SecondaryButtonText: "View Our Work",
		SecondaryButtonLink: "/portfolio",
	})

	log.Println("✅ [Seed] Development data created")
}
