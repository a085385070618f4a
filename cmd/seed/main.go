package main

import (
	"fmt"
	"log"
	"time"

	"pubdesk/internal/config"
	"pubdesk/internal/database"
	"pubdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
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
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM admin_audit_logs")
	db.Exec("DELETE FROM certificates")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM papers")
	db.Exec("DELETE FROM standards")
	db.Exec("DELETE FROM conferences")
	db.Exec("DELETE FROM profiles")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		ID:           uuid.NewString(),
		Email:        "admin@pubdesk.in",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@pubdesk.in / admin123")

	authorNames := []string{"Priya Raman", "Arjun Mehta", "Kavya Nair"}
	authorEmails := []string{"priya@univ.edu", "arjun@univ.edu", "kavya@univ.edu"}
	authors := make([]domain.User, 0, len(authorEmails))
	for i, email := range authorEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("author123"), bcrypt.DefaultCost)
		u := domain.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleAuthor,
		}
		db.Create(&u)
		db.Create(&domain.Profile{
			ID:          uuid.NewString(),
			UserID:      u.ID,
			FullName:    authorNames[i],
			Institution: "National Institute of Technology",
			Phone:       fmt.Sprintf("+91 98765 432%02d", i+10),
		})
		authors = append(authors, u)
	}

	// ================== PAPERS ==================
	log.Println("Creating papers...")

	now := time.Now()
	mkPaper := func(author domain.User, title string, d domain.PaperDomain, status domain.PaperStatus) domain.Paper {
		p := domain.Paper{
			ID:              uuid.NewString(),
			AuthorID:        author.ID,
			Title:           title,
			Abstract:        "Seeded abstract describing the contribution, method and evaluation of this work.",
			Keywords:        domain.StringList{"seeded", "demo"},
			Domain:          d,
			PublicationType: domain.TypeResearchPaper,
			Status:          status,
			Authors: domain.AuthorList{
				{Name: authorNames[0], Email: author.Email, Institution: "National Institute of Technology"},
			},
			SubmittedAt: now.AddDate(0, 0, -14),
			Version:     1,
		}
		db.Create(&p)
		return p
	}

	mkPaper(authors[0], "Adaptive Beamforming for mmWave Links", domain.DomainECE, domain.PaperSubmitted)
	mkPaper(authors[1], "Graph Partitioning for Distributed Training", domain.DomainCSE, domain.PaperUnderReview)
	revising := mkPaper(authors[2], "Seismic Retrofitting of Masonry Structures", domain.DomainCivil, domain.PaperRevisionRequested)
	approved := mkPaper(authors[0], "Container Scheduling Under Bursty Load", domain.DomainIT, domain.PaperApproved)
	published := mkPaper(authors[1], "Thermal Modeling of Electric Drivetrains", domain.DomainMechanical, domain.PaperApproved)

	deadline := now.AddDate(0, 0, 14)
	db.Model(&domain.Paper{}).Where("id = ?", revising.ID).Updates(map[string]any{
		"admin_notes":       "Expand the evaluation section and clarify the baseline setup.",
		"revision_deadline": deadline,
	})

	score := 8.5
	reviewed := now.AddDate(0, 0, -7)
	db.Model(&domain.Paper{}).Where("id IN ?", []string{approved.ID, published.ID}).Updates(map[string]any{
		"plagiarism_score": score,
		"reviewed_at":      reviewed,
		"approved_at":      reviewed,
	})

	// ================== PAYMENT + CERTIFICATE ==================
	log.Println("Creating verified payment and certificate...")

	paid := now.AddDate(0, 0, -5)
	verified := now.AddDate(0, 0, -4)
	payment := domain.Payment{
		ID:          uuid.NewString(),
		PaperID:     published.ID,
		AuthorID:    published.AuthorID,
		BaseAmount:  domain.BasePublicationFee,
		TotalAmount: domain.BasePublicationFee,
		Status:      domain.PaymentVerified,
		PaidAt:      &paid,
		VerifiedAt:  &verified,
		Version:     2,
	}
	db.Create(&payment)

	number := fmt.Sprintf("IRPCERT-%d-000001", now.Year())
	issued := now.AddDate(0, 0, -3)
	db.Create(&domain.Certificate{
		ID:                uuid.NewString(),
		PaperID:           published.ID,
		CertificateNumber: number,
		QRCodeData:        fmt.Sprintf("%s/verify/%s", cfg.PublicBaseURL, number),
		IsValid:           true,
		IssuedAt:          issued,
	})
	db.Model(&domain.Paper{}).Where("id = ?", published.ID).Updates(map[string]any{
		"status":       domain.PaperPublished,
		"published_at": issued,
		"version":      2,
	})

	// ================== CATALOG ==================
	log.Println("Creating conferences and standards...")

	db.Create(&domain.Conference{
		ID:                 uuid.NewString(),
		Title:              "International Conference on Research Publications",
		Description:        "Annual venue for accepted authors across all tracks.",
		Venue:              "Bengaluru",
		Domains:            domain.StringList{"ECE", "CSE", "IT"},
		StartDate:          now.AddDate(0, 3, 0),
		EndDate:            now.AddDate(0, 3, 2),
		SubmissionDeadline: now.AddDate(0, 2, 0),
		RegistrationFee:    3500,
		IsActive:           true,
	})

	standards := []domain.Standard{
		{ID: uuid.NewString(), Title: "Manuscript Formatting Guide", Category: "formatting", IsActive: true},
		{ID: uuid.NewString(), Title: "Reference and Citation Style", Category: "formatting", IsActive: true},
		{ID: uuid.NewString(), Title: "Plagiarism Policy", Category: "review", IsActive: true},
	}
	for i := range standards {
		db.Create(&standards[i])
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@pubdesk.in / admin123")
	log.Println("Authors: priya@univ.edu, arjun@univ.edu, kavya@univ.edu / author123")
}
