package main

import (
	"context"
	"log"
	"time"

	"pubdesk/internal/config"
	"pubdesk/internal/database"
	"pubdesk/internal/repository"

	"github.com/joho/godotenv"
)

// Prunes admin audit logs past the configured retention window. Meant
// to run from cron.
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

	cutoff := time.Now().AddDate(0, 0, -cfg.AuditRetentionDays)
	removed, err := repository.NewAuditRepository(db).DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Fatal("audit cleanup failed:", err)
	}

	log.Printf("audit cleanup done removed=%d cutoff=%s retention_days=%d", removed, cutoff.Format(time.RFC3339), cfg.AuditRetentionDays)
}
