package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/types"
)

type MemberSummary struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Role                   string `json:"role"`
	Avatar                 string `json:"avatar"`
	Color                  string `json:"color"`
	TasksAssigned          int    `json:"tasks_assigned"`
	TasksCompleted         int    `json:"tasks_completed"`
	ProblemStatementStatus string `json:"problem_statement_status"`
}

type TasksSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

type DashboardResponse struct {
	Members      []MemberSummary `json:"members"`
	TasksSummary TasksSummary    `json:"tasks_summary"`
	Uploads      int             `json:"uploads"`
}

// GetDashboard recomputes the per-member statistics from the raw
// collections on every request. Nothing here is cached; the store stays a
// plain record keeper. Members sharing a display name are conflated by
// the per-name aggregation, a documented limitation of name-keyed stats.
func (h *Handler) GetDashboard(ctx *gin.Context) {
	members, err := h.store.ListTeamMembers(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to list team members: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	tasks, err := h.store.ListTasks(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to list tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	uploads, err := h.store.ListUploads(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to list uploads: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	ctx.JSON(http.StatusOK, buildDashboard(members, tasks, uploads))
}

func buildDashboard(members []models.TeamMember, tasks []models.Task, uploads []models.Upload) DashboardResponse {
	response := DashboardResponse{
		Members: make([]MemberSummary, 0, len(members)),
		Uploads: len(uploads),
	}

	for _, member := range members {
		response.Members = append(response.Members, summarizeMember(member, tasks, uploads))
	}

	response.TasksSummary.Total = len(tasks)
	for _, task := range tasks {
		switch task.Status {
		case types.TaskStatusPending:
			response.TasksSummary.Pending++
		case types.TaskStatusInProgress:
			response.TasksSummary.InProgress++
		case types.TaskStatusCompleted:
			response.TasksSummary.Completed++
		}
	}

	return response
}

func summarizeMember(member models.TeamMember, tasks []models.Task, uploads []models.Upload) MemberSummary {
	summary := MemberSummary{
		ID:                     member.ID,
		Name:                   member.Name,
		Role:                   member.Role,
		Avatar:                 member.Avatar,
		Color:                  member.Color,
		ProblemStatementStatus: types.ProblemStatementPending,
	}

	for _, task := range tasks {
		for _, assignee := range task.Assignees {
			if assignee != member.Name {
				continue
			}
			summary.TasksAssigned++
			if task.Status == types.TaskStatusCompleted {
				summary.TasksCompleted++
			}
			break
		}
	}

	for _, upload := range uploads {
		if upload.MemberName == member.Name {
			summary.ProblemStatementStatus = types.ProblemStatementSubmitted
			break
		}
	}

	return summary
}
