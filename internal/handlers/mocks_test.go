package handlers_test

import (
	"context"

	"complaint-tracker/internal/models"
	"complaint-tracker/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockComplaints struct {
	mock.Mock
}

func (m *MockComplaints) Create(ctx context.Context, in service.NewComplaint) (*models.Complaint, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaints) List(ctx context.Context, opts service.ListOptions) ([]models.Complaint, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockComplaints) AssignWorker(ctx context.Context, id uint, worker string) (*models.Complaint, error) {
	args := m.Called(ctx, id, worker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaints) UpdateStatus(ctx context.Context, id uint, status string) (*models.Complaint, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) Login(ctx context.Context, role models.UserRole, loginID, password string) (models.Account, error) {
	args := m.Called(ctx, role, loginID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *MockAccounts) ChangePassword(ctx context.Context, role models.UserRole, key, newPassword string) (string, error) {
	args := m.Called(ctx, role, key, newPassword)
	return args.String(0), args.Error(1)
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) WorkersByRole(ctx context.Context, role string) ([]models.Worker, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Worker), args.Error(1)
}

func (m *MockDirectory) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDirectory) Admins(ctx context.Context) ([]models.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Admin), args.Error(1)
}

func (m *MockDirectory) FacultyCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
