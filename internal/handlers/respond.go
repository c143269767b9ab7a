package handlers

import (
	"errors"
	"net/http"

	"complaint-tracker/internal/middleware"
	"complaint-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInternal           = "Internal server error"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidRequest     = "Invalid request body"
)

// ErrorResponse is the body of every non-login error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors to statuses. Anything unrecognised is
// logged in full and reported as a generic 500.
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidCredentials})
	case errors.Is(err, service.ErrNoIncharge):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No incharge found for this category"})
	case errors.Is(err, service.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user type"})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid password: " + err.Error()})
	case errors.Is(err, service.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Complaint not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	default:
		h.log.Error(op+" failed",
			zap.Error(err),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
