package handlers

import (
	"net/http"
	"strconv"

	"complaint-tracker/internal/models"
	"complaint-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type createComplaintRequest struct {
	Category    string `json:"category"`
	Type        string `json:"type"`
	Classroom   string `json:"classroom"`
	Description string `json:"description"`
	FacultyID   string `json:"faculty_id"`
}

type complaintResponse struct {
	Message   string            `json:"message"`
	Complaint *models.Complaint `json:"complaint"`
}

// CreateComplaint registers a complaint and routes it to the incharge of its
// category.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidRequest)
		return
	}

	complaint, err := h.complaints.Create(c.Request.Context(), service.NewComplaint{
		Category:    req.Category,
		Type:        req.Type,
		Classroom:   req.Classroom,
		Description: req.Description,
		FacultyID:   req.FacultyID,
	})
	if err != nil {
		h.respondError(c, "create complaint", err)
		return
	}

	c.JSON(http.StatusCreated, complaintResponse{
		Message:   "Complaint registered successfully",
		Complaint: complaint,
	})
}

// LISTINGS

func (h *Handler) ListAllComplaints(c *gin.Context) {
	h.listComplaints(c, service.ListOptions{Scope: service.ScopeAll})
}

// ListInchargeComplaints serves GET /complaints?incharge=<name>.
func (h *Handler) ListInchargeComplaints(c *gin.Context) {
	incharge := c.Query("incharge")
	if incharge == "" {
		badRequest(c, "incharge is required")
		return
	}
	h.listComplaints(c, service.ListOptions{Scope: service.ScopeIncharge, Key: incharge})
}

func (h *Handler) ListWorkerComplaints(c *gin.Context) {
	h.listComplaints(c, service.ListOptions{Scope: service.ScopeWorker, Key: c.Param("name")})
}

func (h *Handler) ListFacultyComplaints(c *gin.Context) {
	h.listComplaints(c, service.ListOptions{Scope: service.ScopeFaculty, Key: c.Param("faculty_id")})
}

func (h *Handler) listComplaints(c *gin.Context, opts service.ListOptions) {
	opts.Status = c.Query("status")

	complaints, err := h.complaints.List(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, "list complaints", err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// ASSIGNMENT / STATUS

type assignWorkerRequest struct {
	Worker string `json:"worker" binding:"required"`
}

func (h *Handler) AssignWorker(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	var req assignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "worker is required")
		return
	}

	complaint, err := h.complaints.AssignWorker(c.Request.Context(), id, req.Worker)
	if err != nil {
		h.respondError(c, "assign worker", err)
		return
	}
	c.JSON(http.StatusOK, complaintResponse{
		Message:   "Worker assigned successfully",
		Complaint: complaint,
	})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	complaint, err := h.complaints.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondError(c, "update status", err)
		return
	}
	c.JSON(http.StatusOK, complaintResponse{
		Message:   "Status updated successfully",
		Complaint: complaint,
	})
}

// complaintID parses the :id path parameter, answering 400 when it is not a
// positive integer.
func complaintID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "Invalid complaint id")
		return 0, false
	}
	return uint(id), true
}
