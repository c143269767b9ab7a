package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAdmins dumps the admin table without credentials.
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.directory.Admins(c.Request.Context())
	if err != nil {
		h.respondError(c, "list admins", err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *Handler) FacultyCount(c *gin.Context) {
	count, err := h.directory.FacultyCount(c.Request.Context())
	if err != nil {
		h.respondError(c, "count faculty", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faculty_count": count})
}

// WorkersByRole lists the workers an incharge can assign, by name.
func (h *Handler) WorkersByRole(c *gin.Context) {
	workers, err := h.directory.WorkersByRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		h.respondError(c, "list workers", err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.directory.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
