package httpHandler

import (
	"errors"
	"io"
	"net/http"

	"bms-server/middleware"
	"bms-server/usecases"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	complaints *usecases.ComplaintUseCase
}

func NewComplaintHandler(complaints *usecases.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

// List handles GET /api/v1/complaints
func (h *ComplaintHandler) List(c *gin.Context) {
	complaints, err := h.complaints.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list complaints"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints, "count": len(complaints)})
}

type SubmitComplaintRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Submit handles POST /api/v1/complaints. The submitter name is taken from
// the caller's profile at submission time.
func (h *ComplaintHandler) Submit(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	complaint, err := h.complaints.Submit(user.FullName, req.Subject, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "complaint submitted", "data": complaint})
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/v1/complaints/:id/status. An empty status
// resolves the complaint.
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	// A missing body means "resolve it"; only a malformed one is rejected.
	var req UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	complaint, err := h.complaints.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "data": complaint})
}
