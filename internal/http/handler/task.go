package handler

import (
	"net/http"
	"time"

	"artdesk.app/api/internal/http/dto"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.Create(ctx, CurrentUser(c).ID, clientID, req.ToInput())
	if err != nil {
		respondServiceError(c, err, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *TaskHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "taskID")
	if !ok {
		return
	}

	task, err := h.taskService.Get(ctx, CurrentUser(c).ID, taskID)
	if err != nil {
		respondServiceError(c, err, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// ListByClient lists a client's tasks, optionally narrowed to a
// deadline window via the from/to query parameters (RFC 3339).
func (h *TaskHandler) ListByClient(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")

	var (
		tasks []model.Task
		err   error
	)
	if fromStr != "" || toStr != "" {
		from, perr := time.Parse(time.RFC3339, fromStr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC 3339 timestamp"})
			return
		}
		to, perr := time.Parse(time.RFC3339, toStr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be an RFC 3339 timestamp"})
			return
		}
		tasks, err = h.taskService.ListByDeadlineWindow(ctx, CurrentUser(c).ID, clientID, from, to)
	} else {
		tasks, err = h.taskService.ListByClient(ctx, CurrentUser(c).ID, clientID)
	}
	if err != nil {
		respondServiceError(c, err, "failed to list tasks")
		return
	}

	resp := dto.ListTasksResponse{Tasks: make([]dto.TaskResponse, len(tasks))}
	for i := range tasks {
		resp.Tasks[i] = *dto.ToTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "taskID")
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.Update(ctx, CurrentUser(c).ID, taskID, req.ToInput())
	if err != nil {
		respondServiceError(c, err, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "taskID")
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskService.UpdateStatus(ctx, CurrentUser(c).ID, taskID, model.TaskStatus(req.Status))
	if err != nil {
		respondServiceError(c, err, "failed to update task status")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "taskID")
	if !ok {
		return
	}

	if err := h.taskService.Delete(ctx, CurrentUser(c).ID, taskID); err != nil {
		respondServiceError(c, err, "failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "taskID")
	if !ok {
		return
	}

	if err := h.taskService.Restore(ctx, CurrentUser(c).ID, taskID); err != nil {
		respondServiceError(c, err, "failed to restore task")
		return
	}

	c.Status(http.StatusNoContent)
}
