package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/delivery-insights-go/internal/models"
	"github.com/jengzang/delivery-insights-go/internal/service"
	"github.com/jengzang/delivery-insights-go/pkg/response"
)

// DashboardHandler handles HTTP requests for the report views
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetFilterOptions handles GET /api/v1/filters
func (h *DashboardHandler) GetFilterOptions(c *gin.Context) {
	response.Success(c, h.dashboardService.Options())
}

// GetDatasetReport handles GET /api/v1/dataset/report
func (h *DashboardHandler) GetDatasetReport(c *gin.Context) {
	response.Success(c, h.dashboardService.Report())
}

// GetView handles GET /api/v1/views/:name
func (h *DashboardHandler) GetView(c *gin.Context) {
	var query models.FilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid filter parameters: "+err.Error())
		return
	}
	query.Cities = splitList(query.Cities)
	query.Traffic = splitList(query.Traffic)
	query.Weather = splitList(query.Weather)

	view, err := h.dashboardService.View(c.Param("name"), query)
	switch {
	case errors.Is(err, service.ErrUnknownView):
		response.NotFound(c, err.Error())
		return
	case errors.Is(err, service.ErrInvalidFilter):
		response.BadRequest(c, err.Error())
		return
	case err != nil:
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, view)
}

// splitList accepts both repeated parameters and comma separated values,
// e.g. city=Urban&city=Semi-Urban or city=Urban,Semi-Urban
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
