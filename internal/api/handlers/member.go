package handlers

import (
	"errors"
	"net/http"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for team member operations
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateMember handles POST /members
// @Summary Create a new team member
// @Description Create a technician or manager inside an existing team
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} models.TeamMember "Successfully created member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.CreateMember(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember handles GET /members/:id
// @Summary Get member by ID
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} models.TeamMember "Successfully retrieved member"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.memberService.GetMemberByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers handles GET /members (optional team_id parameter)
// @Summary List team members
// @Description Get all members, optionally filtered by team
// @Tags members
// @Produce json
// @Param team_id query string false "Team ID to filter members"
// @Success 200 {array} models.TeamMember "Successfully retrieved members"
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	c.JSON(http.StatusOK, h.memberService.ListMembers(c.Query("team_id")))
}

// UpdateMember handles PUT /members/:id
// @Summary Update a team member
// @Description Update an existing member; only supplied fields change
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body service.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} models.TeamMember "Successfully updated member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.UpdateMember(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember handles DELETE /members/:id
// @Summary Delete a team member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted member"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
