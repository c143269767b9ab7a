package service

import (
	"context"
	"fmt"

	"complaint-tracker/internal/models"

	"gorm.io/gorm"
)

// DirectoryService answers the read-only lookups used to populate forms.
type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

func (s *DirectoryService) WorkersByRole(ctx context.Context, role string) ([]models.Worker, error) {
	workers := make([]models.Worker, 0)
	if err := s.db.WithContext(ctx).
		Where("role = ?", role).
		Order("name ASC").
		Find(&workers).Error; err != nil {
		return nil, fmt.Errorf("list workers for %q: %w", role, err)
	}
	return workers, nil
}

// Categories returns the distinct incharge roles in ascending order.
func (s *DirectoryService) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	if err := s.db.WithContext(ctx).
		Model(&models.Incharge{}).
		Distinct().
		Order("role ASC").
		Pluck("role", &categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *DirectoryService) Admins(ctx context.Context) ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	if err := s.db.WithContext(ctx).Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (s *DirectoryService) FacultyCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Faculty{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count faculty: %w", err)
	}
	return count, nil
}
