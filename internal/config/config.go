package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTTTL            = "24h"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultFileSigningKey    = "change-me-file-signing-key"
	defaultSignedURLTTL      = "1h"
	defaultPublicBaseURL     = "http://localhost:8080"
	defaultUploadsDir        = "./uploads"
	defaultPlagiarismMax     = "40"
	defaultAuditRetentionDay = "365"
)

type RuntimeConfig struct {
	AppEnv             string
	DatabaseURL        string
	JWTSecret          string
	JWTTTL             time.Duration
	FileSigningKey     string
	SignedURLTTL       time.Duration
	PublicBaseURL      string
	UploadsDir         string
	PlagiarismMaxScore float64
	AuditRetentionDays int
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", "pubdesk.db"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.FileSigningKey = strings.TrimSpace(getEnv("FILE_SIGNING_KEY", defaultFileSigningKey))
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("PUBLIC_BASE_URL", defaultPublicBaseURL)), "/")
	cfg.UploadsDir = strings.TrimSpace(getEnv("UPLOADS_DIR", defaultUploadsDir))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.SignedURLTTL, err = parseDurationEnv("SIGNED_URL_TTL", defaultSignedURLTTL)
	if err != nil {
		return nil, err
	}

	cfg.PlagiarismMaxScore, err = parseFloatEnv("PLAGIARISM_MAX_SCORE", defaultPlagiarismMax)
	if err != nil {
		return nil, err
	}
	cfg.AuditRetentionDays, err = parseIntEnv("AUDIT_RETENTION_DAYS", defaultAuditRetentionDay)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s base_url=%s plagiarism_max=%.1f", cfg.AppEnv, cfg.PublicBaseURL, cfg.PlagiarismMaxScore)

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.SignedURLTTL <= 0 {
		return fmt.Errorf("SIGNED_URL_TTL must be > 0")
	}
	if cfg.PlagiarismMaxScore < 0 || cfg.PlagiarismMaxScore > 100 {
		return fmt.Errorf("PLAGIARISM_MAX_SCORE must be within [0,100]")
	}
	if cfg.AuditRetentionDays <= 0 {
		return fmt.Errorf("AUDIT_RETENTION_DAYS must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.FileSigningKey, defaultFileSigningKey) {
			return fmt.Errorf("in prod/release FILE_SIGNING_KEY must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseFloatEnv(name, fallback string) (float64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
