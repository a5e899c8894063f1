package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shreyas8905/simplyCRM/internal/config"
	"github.com/Shreyas8905/simplyCRM/internal/logger"
	"github.com/Shreyas8905/simplyCRM/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bootstrapAttempts = 5

// EnsureAdmin creates the reserved admin account if it does not exist yet.
// It is safe to call on every startup; the store is retried with a linear
// backoff in case it is not reachable yet.
func EnsureAdmin(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	var lastErr error
	for attempt := 1; attempt <= bootstrapAttempts; attempt++ {
		lastErr = ensureAdminOnce(db, cfg, log)
		if lastErr == nil {
			return nil
		}
		log.Warn("admin bootstrap failed, retrying",
			"attempt", attempt,
			"error", lastErr,
		)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return fmt.Errorf("admin bootstrap gave up after %d attempts: %w", bootstrapAttempts, lastErr)
}

func ensureAdminOnce(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info("admin user already exists", "email", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Name:         cfg.AdminName,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("admin user created", "email", email)
	return nil
}
