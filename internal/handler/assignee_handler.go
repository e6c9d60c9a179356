package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/service/directory"
)

type AssigneeHandler struct {
	dir    *directory.Service
	logger *zap.Logger
}

func NewAssigneeHandler(dir *directory.Service, logger *zap.Logger) *AssigneeHandler {
	return &AssigneeHandler{dir: dir, logger: logger}
}

// List handles GET /api/assignees
func (h *AssigneeHandler) List(c *gin.Context) {
	names, err := h.dir.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// Add handles POST /api/assignees
func (h *AssigneeHandler) Add(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": directory.ErrNameRequired.Error()})
		return
	}

	if err := h.dir.Add(c.Request.Context(), req.Name, req.Password); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("assignee added", zap.String("name", req.Name))
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

// Remove handles DELETE /api/assignees/:name
func (h *AssigneeHandler) Remove(c *gin.Context) {
	name := c.Param("name")
	if err := h.dir.Remove(c.Request.Context(), name); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("assignee removed", zap.String("name", name))
	c.Status(http.StatusNoContent)
}
