package handlers

import (
	"context"

	"complaint-tracker/internal/models"
	"complaint-tracker/internal/service"

	"go.uber.org/zap"
)

type ComplaintManager interface {
	Create(ctx context.Context, in service.NewComplaint) (*models.Complaint, error)
	List(ctx context.Context, opts service.ListOptions) ([]models.Complaint, error)
	AssignWorker(ctx context.Context, id uint, worker string) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Complaint, error)
}

type AccountManager interface {
	Login(ctx context.Context, role models.UserRole, loginID, password string) (models.Account, error)
	ChangePassword(ctx context.Context, role models.UserRole, key, newPassword string) (string, error)
}

type Directory interface {
	WorkersByRole(ctx context.Context, role string) ([]models.Worker, error)
	Categories(ctx context.Context) ([]string, error)
	Admins(ctx context.Context) ([]models.Admin, error)
	FacultyCount(ctx context.Context) (int64, error)
}

// Pinger reports whether the database is reachable.
type Pinger func(ctx context.Context) error

type Handler struct {
	complaints ComplaintManager
	accounts   AccountManager
	directory  Directory
	ping       Pinger
	log        *zap.Logger
}

func New(complaints ComplaintManager, accounts AccountManager, directory Directory, ping Pinger, log *zap.Logger) *Handler {
	return &Handler{
		complaints: complaints,
		accounts:   accounts,
		directory:  directory,
		ping:       ping,
		log:        log,
	}
}
