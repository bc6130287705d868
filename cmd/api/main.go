// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/api/handlers"
	"github.com/arjun-and-preetham/studio-backend/internal/api/middleware"
	"github.com/arjun-and-preetham/studio-backend/internal/config"
	"github.com/arjun-and-preetham/studio-backend/internal/cron"
	"github.com/arjun-and-preetham/studio-backend/internal/db"
	"github.com/arjun-and-preetham/studio-backend/internal/email"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/seed"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/arjun-and-preetham/studio-backend/internal/socket"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	log.Println("🔄 Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// ============================================
	// Initialize PostgreSQL (pgxpool + sqlx lane for stats)
	// ============================================
	pgDB, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to create pgx pool: %v", err)
	}
	defer pgDB.Close()

	statsDB, err := sqlx.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to open stats DB: %v", err)
	}
	defer statsDB.Close()

	if err := statsDB.Ping(); err != nil {
		log.Fatalf("❌ Failed to ping stats DB: %v", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(pgDB.Pool, statsDB)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (continuing without cache)", err)
			redisDB = nil
		} else {
			defer redisDB.Close()
			log.Println("⚡ Redis cache enabled")
		}
	}

	// ============================================
	// Initialize Email Service (optional)
	// ============================================
	var emailSvc *email.Service
	if cfg.SMTPHost != "" {
		emailSvc = email.NewService(&email.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			FromName: cfg.SMTPFromName,
			UseTLS:   cfg.SMTPUseTLS,
		})
		log.Println("📧 Email service initialized")
	} else {
		log.Println("⚠️  Email not configured (SMTP_HOST not set)")
	}

	// ============================================
	// Initialize WebSocket Hub
	// ============================================
	hub := socket.NewHub()
	go hub.Run()
	broadcaster := socket.NewBroadcaster(hub)
	log.Println("🔌 WebSocket hub initialized")

	// ============================================
	// Seed admin + development data
	// ============================================
	seed.SeedAdmin(cfg, repos)
	if cfg.Environment != "production" {
		log.Println("🌱 Seeding development data...")
		seed.SeedData(repos)
	}

	// ============================================
	// Initialize All Services
	// ============================================
	deps := &service.ServiceDeps{
		Config:      cfg,
		Repos:       repos,
		Cache:       redisDB,
		Broadcaster: broadcaster,
	}
	if emailSvc != nil {
		deps.Mailer = emailSvc
	}
	services := service.NewServices(deps)
	log.Println("✨ All services initialized")

	// WebSocket handler: JWT from query param, portal room joins gated by
	// the project ownership check
	wsHandler := socket.NewHandler(hub, cfg.JWTSecret, func(projectID, clientID string) bool {
		_, err := services.Project.GetForClient(context.Background(), projectID, clientID)
		return err == nil
	})

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	cronScheduler := cron.NewScheduler(services, repos.InquiryRepo, emailSvc)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"timestamp":  time.Now(),
			"database":   "connected",
			"cache":      getCacheStatus(redisDB),
			"websocket":  "active",
			"ws_clients": hub.GetConnectedClientsCount(),
			"email":      getEmailStatus(emailSvc),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Public routes (no auth required)
		// ============================================
		auth := api.Group("/auth")
		{
			auth.POST("/staff/login", h.Auth.StaffLogin)
			auth.POST("/client/login", h.Auth.ClientLogin)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		// Marketing site reads
		api.GET("/portfolio", h.Project.ListPublished)
		api.GET("/portfolio-ids", h.Project.ListIDs)
		api.GET("/portfolio/:slug", h.Project.GetPublishedBySlug)
		api.GET("/services", h.Catalog.List)
		api.GET("/services/:slug", h.Catalog.GetBySlug)
		api.GET("/content/hero", h.Settings.GetHero)

		// Contact form + payment page
		api.POST("/inquiries", h.Inquiry.Submit)
		api.POST("/payments", h.Payment.Record)

		// WebSocket route
		api.GET("/ws", wsHandler.HandleWebSocket)

		// ============================================
		// Authenticated routes
		// ============================================
		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(services.Auth))
		{
			authed.GET("/auth/me", h.Auth.Me)

			// ============================================
			// Admin panel (staff with admin claim)
			// ============================================
			admin := authed.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/set-admin", h.Auth.SetAdmin)
				admin.GET("/dashboard", h.Dashboard.Stats)

				admin.GET("/client-ids", h.Client.ListIDs)
				clients := admin.Group("/clients")
				{
					clients.GET("", h.Client.List)
					clients.POST("", h.Client.Create)
					clients.GET("/:id", h.Client.GetByID)
					clients.PUT("/:id", h.Client.Update)
					clients.DELETE("/:id", h.Client.Delete)
					clients.POST("/:id/notes", h.Client.AddNote)
				}

				projects := admin.Group("/projects")
				{
					projects.GET("", h.Project.List)
					projects.POST("", h.Project.Create)
					projects.GET("/:id", h.Project.GetByID)
					projects.PUT("/:id", h.Project.Update)
					projects.PATCH("/:id/status", h.Project.UpdateStatus)
					projects.DELETE("/:id", h.Project.Delete)

					projects.GET("/:id/timeline", h.Project.ListTimeline)
					projects.POST("/:id/timeline", h.Project.AddTimelineEntry)

					projects.GET("/:id/documents", h.Project.ListDocuments)
					projects.POST("/:id/documents", h.Project.AddDocument)
					projects.DELETE("/:id/documents/:documentId", h.Project.DeleteDocument)

					projects.GET("/:id/messages", h.Project.ListMessages)
					projects.POST("/:id/messages", h.Project.SendMessage)
				}

				catalog := admin.Group("/services")
				{
					catalog.GET("", h.Catalog.List)
					catalog.POST("", h.Catalog.Create)
					catalog.GET("/:id", h.Catalog.GetByID)
					catalog.PUT("/:id", h.Catalog.Update)
					catalog.DELETE("/:id", h.Catalog.Delete)
				}

				inquiries := admin.Group("/inquiries")
				{
					inquiries.GET("", h.Inquiry.List)
					inquiries.GET("/:id", h.Inquiry.GetByID)
					inquiries.POST("/:id/respond", h.Inquiry.Respond)
					inquiries.POST("/:id/reopen", h.Inquiry.Reopen)
					inquiries.DELETE("/:id", h.Inquiry.Delete)
				}

				team := admin.Group("/team")
				{
					team.GET("", h.Team.List)
					team.POST("", h.Team.Create)
					team.GET("/:id", h.Team.GetByID)
					team.PUT("/:id", h.Team.Update)
					team.DELETE("/:id", h.Team.Delete)
				}

				admin.GET("/settings", h.Settings.Get)
				admin.PUT("/settings", h.Settings.Update)
				admin.PUT("/content/hero", h.Settings.UpdateHero)

				admin.GET("/payments", h.Payment.List)
			}

			// ============================================
			// Client portal
			// ============================================
			portal := authed.Group("/portal")
			portal.Use(middleware.RequireClient())
			{
				portal.GET("/me", h.Portal.Me)
				portal.GET("/projects", h.Portal.ListProjects)
				portal.GET("/projects/:id", h.Portal.GetProject)
				portal.GET("/projects/:id/timeline", h.Portal.ListTimeline)
				portal.GET("/projects/:id/team", h.Portal.ListTeam)
				portal.GET("/projects/:id/documents", h.Portal.ListDocuments)
				portal.GET("/projects/:id/messages", h.Portal.ListMessages)
				portal.POST("/projects/:id/messages", h.Portal.SendMessage)
				portal.GET("/payments", h.Portal.ListPayments)
			}
		}
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getCacheStatus(redisDB *db.RedisDB) string {
	if redisDB != nil {
		return "connected"
	}
	return "disabled"
}

func getEmailStatus(emailSvc *email.Service) string {
	if emailSvc != nil {
		return "configured"
	}
	return "disabled"
}
