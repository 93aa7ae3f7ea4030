package controllers

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/AloysioLvy/ReportTracker/backend/internal/services"
)

// DashboardController serves the aggregate figures of the dashboard.
type DashboardController struct {
	svc services.DashboardService
}

// NewDashboardController creates a new instance of DashboardController
func NewDashboardController(svc services.DashboardService) *DashboardController {
	return &DashboardController{svc: svc}
}

func (ctrl *DashboardController) Procedures() map[string]Procedure {
	return map[string]Procedure{
		"getDashboardStats": ctrl.GetDashboardStats,
	}
}

func (ctrl *DashboardController) GetDashboardStats(c echo.Context, _ json.RawMessage) (interface{}, error) {
	return ctrl.svc.GetDashboardStats(c.Request().Context())
}
