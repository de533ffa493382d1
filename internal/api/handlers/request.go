package handlers

import (
	"errors"
	"net/http"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/models"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles HTTP requests for maintenance request operations
type RequestHandler struct {
	requestService *service.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *service.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// MoveStageRequest is the payload for a kanban column move
type MoveStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// AssignRequest is the payload for assigning a technician
type AssignRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}

// RecordDurationRequest is the payload for recording time spent
type RecordDurationRequest struct {
	Minutes int `json:"minutes" binding:"required"`
}

// CreateRequest handles POST /requests
// @Summary Create a maintenance request
// @Description Create a corrective or preventive request; team and assignee default from the equipment
// @Tags requests
// @Accept json
// @Produce json
// @Param request body service.CreateRequestRequest true "Request data"
// @Success 201 {object} service.RequestResponse "Successfully created request"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.CreateRequest(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetRequest handles GET /requests/:id
// @Summary Get request by ID
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} service.RequestResponse "Successfully retrieved request"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	request, err := h.requestService.GetRequestByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListRequests handles GET /requests (optional equipment_id parameter)
// @Summary List maintenance requests
// @Description Get all requests in insertion order, optionally filtered by equipment
// @Tags requests
// @Produce json
// @Param equipment_id query string false "Equipment ID to filter requests"
// @Success 200 {array} service.RequestResponse "Successfully retrieved requests"
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	c.JSON(http.StatusOK, h.requestService.ListRequests(c.Query("equipment_id")))
}

// GetBoard handles GET /requests/board
// @Summary Kanban board projection
// @Description Group requests by stage after applying search, type, team, and equipment filters
// @Tags requests
// @Produce json
// @Param q query string false "Free-text search over subject and equipment name"
// @Param type query string false "Request type filter (corrective or preventive)"
// @Param team_id query string false "Team filter"
// @Param equipment query string false "Equipment pre-selection hint"
// @Success 200 {object} service.BoardResponse "Board grouped by stage"
// @Router /requests/board [get]
func (h *RequestHandler) GetBoard(c *gin.Context) {
	filter := service.BoardFilter{
		Search:      c.Query("q"),
		Type:        c.Query("type"),
		TeamID:      c.Query("team_id"),
		EquipmentID: c.Query("equipment"),
	}
	c.JSON(http.StatusOK, h.requestService.Board(filter))
}

// UpdateRequest handles PUT /requests/:id
// @Summary Update a maintenance request
// @Description Partial update; stage changes must go through the stage endpoint
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body service.UpdateRequestRequest true "Fields to update"
// @Success 200 {object} service.RequestResponse "Successfully updated request"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Router /requests/{id} [put]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var req service.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.UpdateRequest(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}

// MoveStage handles PUT /requests/:id/stage
// @Summary Move a request to another kanban column
// @Description Apply the stage transition and its side effects (completion timestamp, scrap notification)
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param stage body MoveStageRequest true "Destination stage"
// @Success 200 {object} service.RequestResponse "Request after the move"
// @Failure 400 {object} map[string]interface{} "Invalid stage"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Router /requests/{id}/stage [put]
func (h *RequestHandler) MoveStage(c *gin.Context) {
	var req MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.MoveStage(c.Param("id"), models.RequestStage(req.Stage))
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}

// Assign handles PUT /requests/:id/assign
// @Summary Assign a technician
// @Description Set the assignee and force the stage to in_progress in one update
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param assignment body AssignRequest true "Member to assign"
// @Success 200 {object} service.RequestResponse "Request after the assignment"
// @Failure 404 {object} map[string]interface{} "Request or member not found"
// @Router /requests/{id}/assign [put]
func (h *RequestHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.Assign(c.Param("id"), req.MemberID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}

// RecordDuration handles PUT /requests/:id/duration
// @Summary Record repair duration
// @Description Record minutes spent on a repaired request; non-positive values are ignored
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param duration body RecordDurationRequest true "Duration in minutes"
// @Success 200 {object} service.RequestResponse "Request after the recording"
// @Failure 400 {object} map[string]interface{} "Request is not repaired"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Router /requests/{id}/duration [put]
func (h *RequestHandler) RecordDuration(c *gin.Context) {
	var req RecordDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.RecordDuration(c.Param("id"), req.Minutes)
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}

// DeleteRequest handles DELETE /requests/:id
// @Summary Delete a maintenance request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted request"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Router /requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.requestService.DeleteRequest(c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request deleted successfully"})
}
