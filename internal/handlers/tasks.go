package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewdeck-dev/crewdeck/internal/store"
)

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Assignees   []string `json:"assignees" binding:"required,min=1"`
	Status      string   `json:"status" binding:"required,oneof=pending in-progress completed"`
	Category    string   `json:"category" binding:"required,oneof=problem-recognition solution-development"`
	Progress    *int     `json:"progress" binding:"omitempty,min=0,max=100"`
	DueDate     string   `json:"dueDate" binding:"required"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Assignees   []string `json:"assignees" binding:"omitempty,min=1"`
	Status      *string  `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Category    *string  `json:"category" binding:"omitempty,oneof=problem-recognition solution-development"`
	Progress    *int     `json:"progress" binding:"omitempty,min=0,max=100"`
	DueDate     *string  `json:"dueDate" binding:"omitempty,min=1"`
}

func (h *Handler) ListTasks(ctx *gin.Context) {
	tasks, err := h.store.ListTasks(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to list tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(ctx *gin.Context) {
	var body CreateTaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.store.CreateTask(ctx.Request.Context(), store.InsertTask{
		Title:       body.Title,
		Description: body.Description,
		Assignees:   body.Assignees,
		Status:      body.Status,
		Category:    body.Category,
		Progress:    body.Progress,
		DueDate:     body.DueDate,
	})

	if err != nil {
		log.Printf("Failed to create task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(ctx *gin.Context) {
	var body UpdateTaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.store.UpdateTask(ctx.Request.Context(), ctx.Param("id"), store.TaskPatch{
		Title:       body.Title,
		Description: body.Description,
		Assignees:   body.Assignees,
		Status:      body.Status,
		Category:    body.Category,
		Progress:    body.Progress,
		DueDate:     body.DueDate,
	})

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("Failed to update task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	deleted, err := h.store.DeleteTask(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		log.Printf("Failed to delete task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
