package service

import "errors"

var (
	ErrNoIncharge         = errors.New("no incharge found for this category")
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("password must be between 1 and 72 bytes")
	ErrUnknownRole        = errors.New("invalid user type")
)
