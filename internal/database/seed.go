package database

import (
	"context"
	"fmt"

	"complaint-tracker/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin creates the bootstrap admin account unless an admin with the
// same email already exists. An existing account is never modified.
func EnsureAdmin(ctx context.Context, db *gorm.DB, email, name, password string, cost int, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Admin{}).
		Where("email_id = ?", email).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check admin %s: %w", email, err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.Admin{
		Name:     name,
		EmailID:  email,
		Password: string(hash),
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin %s: %w", email, err)
	}

	log.Info("created bootstrap admin", zap.String("email_id", email))
	return nil
}
