package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pubdesk/internal/config"
	"pubdesk/internal/database"
	"pubdesk/internal/domain"
	"pubdesk/internal/middleware"
	"pubdesk/internal/modules/admin"
	"pubdesk/internal/modules/auth"
	"pubdesk/internal/modules/catalog"
	"pubdesk/internal/modules/certificate"
	"pubdesk/internal/modules/notification"
	"pubdesk/internal/modules/paper"
	"pubdesk/internal/modules/payment"
	jwtsvc "pubdesk/internal/pkg/jwt"
	"pubdesk/internal/repository"
	"pubdesk/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Profile{},
		&domain.Paper{},
		&domain.Payment{},
		&domain.Certificate{},
		&domain.AuditLog{},
		&domain.Conference{},
		&domain.Standard{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	paperRepo := repository.NewPaperRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	certRepo := repository.NewCertificateRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	files := storage.NewService(cfg.UploadsDir, cfg.PublicBaseURL, cfg.FileSigningKey, cfg.SignedURLTTL)
	hub := notification.NewHub()
	defer hub.Close()

	ownership := middleware.NewOwnershipChecker(paperRepo, paymentRepo)

	authService := auth.NewService(userRepo, profileRepo, j)
	authHandler := auth.NewHandler(authService)

	paperService := paper.NewService(paperRepo, files)
	paperHandler := paper.NewHandler(paperService, ownership.CheckPaperOwnership())

	paymentService := payment.NewService(paymentRepo, paperRepo, files)
	paymentHandler := payment.NewHandler(paymentService, ownership.CheckPaperOwnership(), ownership.CheckPaymentOwnership())

	certService := certificate.NewService(certRepo, paperRepo, files, hub, cfg.PublicBaseURL)
	certHandler := certificate.NewHandler(certService)

	adminService := admin.NewService(paperRepo, paymentRepo, certRepo, userRepo, auditRepo, hub, cfg.PlagiarismMaxScore)
	adminHandler := admin.NewHandler(adminService)

	catalogService := catalog.NewService(catalogRepo, paperRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	notificationHandler := notification.NewHandler(hub, j)
	fileHandler := storage.NewHandler(files)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		certHandler.RegisterPublicRoutes(v1)
		notificationHandler.RegisterRoutes(v1)
		fileHandler.RegisterRoutes(v1)

		// protected (author endpoints)
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			paperHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
			certHandler.RegisterProtectedRoutes(protected)
		}

		// admin (editorial desk)
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterAdminRoutes(adminGroup)
			certHandler.RegisterAdminRoutes(adminGroup)
			catalogHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	addr := ":" + getEnv("PORT", "8080")
	log.Printf("listening addr=%s env=%s", addr, cfg.AppEnv)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
