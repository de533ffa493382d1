package handlers

import (
	"errors"
	"net/http"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler handles HTTP requests for equipment operations
type EquipmentHandler struct {
	equipmentService *service.EquipmentService
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(equipmentService *service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
	}
}

// CreateEquipment handles POST /equipment
// @Summary Create a new equipment record
// @Description Register an asset; status starts as operational
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} service.EquipmentResponse "Successfully created equipment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Maintenance team not found"
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eq, err := h.equipmentService.CreateEquipment(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, eq)
}

// GetEquipment handles GET /equipment/:id
// @Summary Get equipment by ID
// @Description Get an asset with its resolved team name and open request count
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} service.EquipmentResponse "Successfully retrieved equipment"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	eq, err := h.equipmentService.GetEquipmentByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, eq)
}

// ListEquipment handles GET /equipment (optional team_id parameter)
// @Summary List equipment
// @Description Get all assets, optionally filtered by maintenance team
// @Tags equipment
// @Produce json
// @Param team_id query string false "Team ID to filter equipment"
// @Success 200 {array} service.EquipmentResponse "Successfully retrieved equipment"
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	c.JSON(http.StatusOK, h.equipmentService.ListEquipment(c.Query("team_id")))
}

// UpdateEquipment handles PUT /equipment/:id
// @Summary Update an equipment record
// @Description Update an existing asset; only supplied fields change
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param equipment body service.UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} service.EquipmentResponse "Successfully updated equipment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	var req service.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eq, err := h.equipmentService.UpdateEquipment(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, eq)
}

// ScrapEquipment handles POST /equipment/:id/scrap
// @Summary Mark equipment as scrapped
// @Description Explicit terminal disposition of an asset; independent of any request's scrap stage
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} service.EquipmentResponse "Successfully scrapped equipment"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Router /equipment/{id}/scrap [post]
func (h *EquipmentHandler) ScrapEquipment(c *gin.Context) {
	eq, err := h.equipmentService.MarkScrapped(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, eq)
}

// DeleteEquipment handles DELETE /equipment/:id
// @Summary Delete an equipment record
// @Description Delete an asset; its requests keep their dangling equipment id
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted equipment"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	if err := h.equipmentService.DeleteEquipment(c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}
