package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/service/auth"
)

type AuthHandler struct {
	authService *auth.Service
	logger      *zap.Logger
}

func NewAuthHandler(authService *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.ErrMissingFields.Error()})
		return
	}

	u, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("user registered", zap.String("username", u.Username))
	c.JSON(http.StatusCreated, gin.H{"username": u.Username})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("user logged in", zap.String("username", req.Username))
	c.JSON(http.StatusOK, gin.H{"token": token})
}
