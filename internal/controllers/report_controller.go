package controllers

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
	"github.com/AloysioLvy/ReportTracker/backend/internal/services"
)

// ReportController handles the report procedures
type ReportController struct {
	svc services.ReportService
}

// NewReportController creates a new instance of ReportController
func NewReportController(svc services.ReportService) *ReportController {
	return &ReportController{svc: svc}
}

// Procedures registers the report procedures on the RPC endpoint
func (ctrl *ReportController) Procedures() map[string]Procedure {
	return map[string]Procedure{
		"createReport":  ctrl.CreateReport,
		"getReports":    ctrl.GetReports,
		"getReportById": ctrl.GetReportByID,
		"updateReport":  ctrl.UpdateReport,
		"deleteReport":  ctrl.DeleteReport,
	}
}

// CreateReport handles the creation of a new report
func (ctrl *ReportController) CreateReport(c echo.Context, params json.RawMessage) (interface{}, error) {
	var in models.CreateReportInput
	if err := bindParams(c, params, &in); err != nil {
		return nil, err
	}
	return ctrl.svc.CreateReport(c.Request().Context(), &in)
}

// GetReports lists reports; params are optional filters
func (ctrl *ReportController) GetReports(c echo.Context, params json.RawMessage) (interface{}, error) {
	var filter models.GetReportsInput
	if err := bindParams(c, params, &filter); err != nil {
		return nil, err
	}
	return ctrl.svc.GetReports(c.Request().Context(), &filter)
}

// GetReportByID returns the report with its follow-up actions, or null
func (ctrl *ReportController) GetReportByID(c echo.Context, params json.RawMessage) (interface{}, error) {
	var in models.IDInput
	if err := bindParams(c, params, &in); err != nil {
		return nil, err
	}

	report, err := ctrl.svc.GetReportByID(c.Request().Context(), in.ID)
	if err != nil || report == nil {
		return nil, err
	}
	return report, nil
}

// UpdateReport patches a report; null when the id does not exist
func (ctrl *ReportController) UpdateReport(c echo.Context, params json.RawMessage) (interface{}, error) {
	var in models.UpdateReportInput
	if err := bindParams(c, params, &in); err != nil {
		return nil, err
	}

	report, err := ctrl.svc.UpdateReport(c.Request().Context(), &in)
	if err != nil || report == nil {
		return nil, err
	}
	return report, nil
}

// DeleteReport removes a report and, through the store, its actions
func (ctrl *ReportController) DeleteReport(c echo.Context, params json.RawMessage) (interface{}, error) {
	var in models.IDInput
	if err := bindParams(c, params, &in); err != nil {
		return nil, err
	}
	return ctrl.svc.DeleteReport(c.Request().Context(), in.ID)
}
