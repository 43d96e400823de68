package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/models"
)

const userContextKey = "current_user"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterHandler handles POST /auth/register.
func (h *APIHandler) RegisterHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.App.AuthService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			BadRequest(c, err.Error())
		case errors.Is(err, models.ErrUserExists):
			Conflict(c, "username or email already taken")
		default:
			Internal(c, fmt.Sprintf("registration failed: %v", err))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// LoginHandler handles POST /auth/login and returns the session token.
func (h *APIHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.App.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPassword) {
			Unauthorized(c, "invalid username or password")
			return
		}
		Internal(c, fmt.Sprintf("login failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}

// LogoutHandler handles POST /auth/logout.
func (h *APIHandler) LogoutHandler(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		Unauthorized(c, "missing bearer token")
		return
	}
	if err := h.App.AuthService.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, models.ErrValidation) {
			BadRequest(c, err.Error())
			return
		}
		Internal(c, fmt.Sprintf("logout failed: %v", err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AuthMiddleware resolves the Authorization bearer token to a user and aborts
// with 401 when it cannot.
func (h *APIHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		user, err := h.App.AuthService.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrSessionExpired), errors.Is(err, models.ErrValidation):
				Unauthorized(c, "invalid or expired session")
			default:
				Internal(c, fmt.Sprintf("authentication failed: %v", err))
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

// currentUser returns the authenticated user set by AuthMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
