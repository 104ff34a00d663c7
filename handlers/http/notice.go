package httpHandler

import (
	"net/http"

	"bms-server/middleware"
	"bms-server/usecases"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	notices *usecases.NoticeUseCase
}

func NewNoticeHandler(notices *usecases.NoticeUseCase) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

// List handles GET /api/v1/notices
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.notices.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": notices, "count": len(notices)})
}

type PostNoticeRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Post handles POST /api/v1/notices
func (h *NoticeHandler) Post(c *gin.Context) {
	var req PostNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	notice, err := h.notices.Post(req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "notice posted", "data": notice})
}

// Delete handles DELETE /api/v1/notices/:id
func (h *NoticeHandler) Delete(c *gin.Context) {
	if err := h.notices.Delete(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notice deleted"})
}

// ListPrivate handles GET /api/v1/private-notices, returning only the
// caller's own notices.
func (h *NoticeHandler) ListPrivate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	notices, err := h.notices.ListFor(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list private notices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": notices, "count": len(notices)})
}

type SendPrivateNoticeRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SendPrivate handles POST /api/v1/private-notices
func (h *NoticeHandler) SendPrivate(c *gin.Context) {
	var req SendPrivateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	notice, err := h.notices.SendTo(req.UserID, req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "private notice sent", "data": notice})
}
