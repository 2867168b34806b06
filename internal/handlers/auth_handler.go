package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/wavehouse/studio-booking/internal/config"
	"github.com/wavehouse/studio-booking/internal/httperr"
	"github.com/wavehouse/studio-booking/internal/httpresp"
	"github.com/wavehouse/studio-booking/internal/middleware"
)

const tokenTTL = 24 * time.Hour

// AuthHandler logs in the single studio admin configured through
// ADMIN_USERNAME and ADMIN_PASSWORD_HASH.
type AuthHandler struct {
	config config.AdminConfig
}

func NewAuthHandler(cfg config.AdminConfig) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Username and password are required.")
		return
	}

	if h.config.PasswordHash == "" {
		httperr.Respond(c, httperr.ErrUnauthorized("admin_login_disabled"))
		return
	}

	username := strings.TrimSpace(req.Username)
	if username != h.config.Username {
		httperr.Respond(c, httperr.ErrUnauthorized("invalid_credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.config.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Respond(c, httperr.ErrUnauthorized("invalid_credentials"))
		return
	}

	token, expiresAt, err := h.generateToken(username)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token.")
		return
	}

	httpresp.OK(c, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tokenTTL)

	claims := jwt.MapClaims{
		"sub":  username,
		"role": middleware.RoleAdmin,
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, expiresAt, err
}
