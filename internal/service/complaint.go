// Package service holds the operations behind the HTTP API. Every method
// takes a context and runs against the injected *gorm.DB.
package service

import (
	"context"
	"errors"
	"fmt"

	"complaint-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewComplaint is what a faculty member submits.
type NewComplaint struct {
	Category    string
	Type        string
	Classroom   string
	Description string
	FacultyID   string
}

type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeIncharge
	ScopeWorker
	ScopeFaculty
)

var scopeColumns = map[ScopeKind]string{
	ScopeIncharge: "assigned_incharge",
	ScopeWorker:   "worker",
	ScopeFaculty:  "faculty_id",
}

// ListOptions selects the complaints returned by List. Key is compared
// against the scope's column; an empty Status or "total" lists every status.
type ListOptions struct {
	Scope  ScopeKind
	Key    string
	Status string
}

func (o ListOptions) filtersStatus() bool {
	return o.Status != "" && o.Status != models.StatusFilterAll
}

type ComplaintService struct {
	db *gorm.DB
}

func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{db: db}
}

// Create routes the complaint to the incharge of its category and stores it
// as Pending. Lookup and insert share one transaction.
func (s *ComplaintService) Create(ctx context.Context, in NewComplaint) (*models.Complaint, error) {
	var created models.Complaint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var incharge models.Incharge
		err := tx.Select("name").Where("role = ?", in.Category).Take(&incharge).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoIncharge
		}
		if err != nil {
			return fmt.Errorf("find incharge for %q: %w", in.Category, err)
		}

		created = models.Complaint{
			Category:         in.Category,
			Type:             in.Type,
			Classroom:        in.Classroom,
			Status:           models.StatusPending,
			Description:      in.Description,
			FacultyID:        in.FacultyID,
			AssignedIncharge: incharge.Name,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("insert complaint: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns matching complaints, newest first. No match is an empty
// slice, not an error.
func (s *ComplaintService) List(ctx context.Context, opts ListOptions) ([]models.Complaint, error) {
	q := s.db.WithContext(ctx).Model(&models.Complaint{})

	if column, ok := scopeColumns[opts.Scope]; ok {
		q = q.Where(clause.Eq{Column: clause.Column{Name: column}, Value: opts.Key})
	}
	if opts.filtersStatus() {
		q = q.Where("status = ?", opts.Status)
	}

	complaints := make([]models.Complaint, 0)
	if err := q.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// AssignWorker sets the worker and moves the complaint to In Progress,
// whatever its current status.
func (s *ComplaintService) AssignWorker(ctx context.Context, id uint, worker string) (*models.Complaint, error) {
	return s.update(ctx, id, map[string]interface{}{
		"worker": worker,
		"status": models.StatusInProgress,
	})
}

func (s *ComplaintService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Complaint, error) {
	return s.update(ctx, id, map[string]interface{}{
		"status": status,
	})
}

func (s *ComplaintService) update(ctx context.Context, id uint, values map[string]interface{}) (*models.Complaint, error) {
	var complaint models.Complaint
	res := s.db.WithContext(ctx).
		Model(&complaint).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, fmt.Errorf("update complaint %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrComplaintNotFound
	}
	return &complaint, nil
}
