package httpHandler

import (
	"net/http"

	"bms-server/middleware"
	"bms-server/services"
	"bms-server/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accounts *usecases.AccountUseCase
	tokens   *services.TokenService
}

func NewAuthHandler(accounts *usecases.AccountUseCase, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user, err := h.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"user_id":   user.ID,
		"full_name": user.FullName,
		"role":      user.Role,
	})
}

// Me handles GET /api/v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	profile, err := h.accounts.GetProfile(user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            profile.User.ID,
		"full_name":     profile.User.FullName,
		"email":         profile.User.Email,
		"phone":         profile.User.Phone,
		"nid":           profile.User.NID,
		"members_count": profile.User.MembersCount,
		"flat_no":       profile.FlatNo,
		"role":          profile.User.Role,
	})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword handles POST /api/v1/me/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.accounts.ChangePassword(user.ID, req.OldPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
