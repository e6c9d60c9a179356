package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/service/task"
)

type TaskHandler struct {
	tasks  *task.Service
	logger *zap.Logger
}

func NewTaskHandler(tasks *task.Service, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, logger: logger}
}

// List handles GET /api/tasks?type=&deleted=
func (h *TaskHandler) List(c *gin.Context) {
	filter := task.ListFilter{
		TaskType: c.Query("type"),
		Deleted:  c.Query("deleted") == "true",
	}

	tasks, err := h.tasks.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Search handles GET /api/tasks/search?q=&type=
func (h *TaskHandler) Search(c *gin.Context) {
	tasks, err := h.tasks.Search(c.Request.Context(), c.Query("q"), c.Query("type"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create handles POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var in task.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": task.ErrFieldsRequired.Error()})
		return
	}

	t, err := h.tasks.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("task created",
		zap.Int64("task_id", t.ID),
		zap.String("task_type", t.TaskType),
	)
	c.JSON(http.StatusCreated, t)
}

// Update handles PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var in task.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": task.ErrFieldsRequired.Error()})
		return
	}

	t, err := h.tasks.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("task updated", zap.Int64("task_id", t.ID))
	c.JSON(http.StatusOK, t)
}

// UpdateAssignee handles PUT /api/tasks/:id/assignee
func (h *TaskHandler) UpdateAssignee(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req struct {
		AssigneeName string  `json:"assigneeName"`
		Completed    bool    `json:"completed"`
		Comment      *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.tasks.SetAssigneeProgress(c.Request.Context(), id, req.AssigneeName, req.Completed, req.Comment)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("assignee progress updated",
		zap.Int64("task_id", t.ID),
		zap.String("assignee", req.AssigneeName),
		zap.Bool("completed", req.Completed),
	)
	c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/tasks/:id. The task is soft-deleted and the
// flagged record returned in the body.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	t, err := h.tasks.SoftDelete(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("task soft-deleted", zap.Int64("task_id", t.ID))
	c.JSON(http.StatusOK, t)
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": task.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}
