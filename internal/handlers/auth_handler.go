package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-admin/internal/metrics"
	"employee-admin/internal/models"
	"employee-admin/internal/service"
)

const sessionCookie = "token"

type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{auth: auth, log: log}
}

// POST /login
// On success the session token is set as an HTTP-only cookie; a second
// userName cookie is readable client-side for display only.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName and password are required"})
		return
	}

	metrics.LoginAttempts.Inc()

	token, cred, err := h.auth.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		metrics.LoginFailures.Inc()
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		case errors.Is(err, models.ErrInvalidCredential):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		default:
			h.log.Error("login failed", zap.String("userName", req.UserName), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	maxAge := int(service.SessionTTL.Seconds())
	c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
	c.SetCookie("userName", cred.UserName, maxAge, "/", "", false, false)

	h.log.Info("login", zap.String("userName", cred.UserName))
	c.JSON(http.StatusOK, models.LoginResponse{
		Message:  "Login successful",
		Success:  true,
		UserName: cred.UserName,
	})
}

// GET /logout
// Clearing an absent cookie is fine, so logout is idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.SetCookie("userName", "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful", "success": true})
}
