package handlers

import (
	"net/http"

	"gearguard-backend/internal/models"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for dashboard aggregates and metadata
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats handles GET /dashboard/stats
// @Summary Dashboard counters
// @Description Aggregate equipment, request, and member counts for the overview page
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats "Current counters"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Stats())
}

// GetMeta handles GET /meta
// @Summary Form metadata
// @Description Recommended equipment categories and the fixed department list
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Category and department lists"
// @Router /meta [get]
func (h *DashboardHandler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"equipment_categories": models.EquipmentCategories,
		"departments":          models.Departments,
	})
}
