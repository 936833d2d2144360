package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewdeck-dev/crewdeck/internal/store"
)

type CreateTeamMemberRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Color  string `json:"color"`
}

// UpdateTeamMemberRequest deliberately exposes only the role. The store
// can patch more, but the public API keeps the other fields immutable.
type UpdateTeamMemberRequest struct {
	Role *string `json:"role"`
}

func (h *Handler) ListTeamMembers(ctx *gin.Context) {
	members, err := h.store.ListTeamMembers(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to list team members: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
		return
	}

	ctx.JSON(http.StatusOK, members)
}

func (h *Handler) GetTeamMember(ctx *gin.Context) {
	member, err := h.store.GetTeamMember(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		log.Printf("Failed to fetch team member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team member"})
		return
	}

	ctx.JSON(http.StatusOK, member)
}

func (h *Handler) CreateTeamMember(ctx *gin.Context) {
	var body CreateTeamMemberRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.store.CreateTeamMember(ctx.Request.Context(), store.InsertTeamMember{
		Name:   body.Name,
		Role:   body.Role,
		Avatar: body.Avatar,
		Color:  body.Color,
	})

	if err != nil {
		log.Printf("Failed to create team member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

func (h *Handler) UpdateTeamMember(ctx *gin.Context) {
	var body UpdateTeamMemberRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.store.UpdateTeamMember(ctx.Request.Context(), ctx.Param("id"), store.TeamMemberPatch{
		Role: body.Role,
	})

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		log.Printf("Failed to update team member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}

	ctx.JSON(http.StatusOK, member)
}
