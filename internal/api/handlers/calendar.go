package handlers

import (
	"net/http"
	"time"

	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for the maintenance calendar
type CalendarHandler struct {
	calendarService *service.CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// GetMonth handles GET /calendar
// @Summary Month grid with scheduled preventive requests
// @Description Return the Sunday-aligned day grid for a month, each day carrying its preventive requests
// @Tags calendar
// @Produce json
// @Param month query string false "Reference month as YYYY-MM (defaults to the current month)"
// @Success 200 {object} service.MonthView "Month view"
// @Failure 400 {object} map[string]interface{} "Invalid month"
// @Router /calendar [get]
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	ref := time.Now()
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected YYYY-MM"})
			return
		}
		ref = parsed
	}

	c.JSON(http.StatusOK, h.calendarService.Month(ref))
}
