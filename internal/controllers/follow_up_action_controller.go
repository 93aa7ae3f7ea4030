package controllers

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
	"github.com/AloysioLvy/ReportTracker/backend/internal/services"
)

// FollowUpActionController handles the follow-up action procedures
type FollowUpActionController struct {
	svc services.FollowUpActionService
}

// NewFollowUpActionController creates a new instance of FollowUpActionController
func NewFollowUpActionController(svc services.FollowUpActionService) *FollowUpActionController {
	return &FollowUpActionController{svc: svc}
}

// Procedures registers the follow-up action procedures on the RPC endpoint
func (ctrl *FollowUpActionController) Procedures() map[string]Procedure {
	return map[string]Procedure{
		"createFollowUpAction":         ctrl.CreateFollowUpAction,
		"updateFollowUpAction":         ctrl.UpdateFollowUpAction,
		"getFollowUpActions":           ctrl.GetFollowUpActions,
		"getFollowUpActionsByReportId": ctrl.GetFollowUpActionsByReportID,
		"getPendingFollowUpActions":    ctrl.GetPendingFollowUpActions,
		"deleteFollowUpAction":         ctrl.DeleteFollowUpAction,
	}
}

// CreateFollowUpAction fails with NOT_FOUND when report_id is unknown
func (ctrl *FollowUpActionController) CreateFollowUpAction(c echo.Context, params json.RawMessage) (interface{}, error) {
	var in models.CreateFollowUpActionInput
	if err := bindParams(c, params, &in); err != nil {
		return nil, err
	}
	return ctrl.svc.CreateFollowUpAction(c.Request().Context(), &in)
}

func (ctrl *FollowUpActionController) UpdateFollowUpAction(c echo.Context, params json.RawMessage) (interface{}, error) {
	var in models.UpdateFollowUpActionInput
	if err := bindParams(c, params, &in); err != nil {
		return nil, err
	}

	action, err := ctrl.svc.UpdateFollowUpAction(c.Request().Context(), &in)
	if err != nil || action == nil {
		return nil, err
	}
	return action, nil
}

func (ctrl *FollowUpActionController) GetFollowUpActions(c echo.Context, _ json.RawMessage) (interface{}, error) {
	return ctrl.svc.GetFollowUpActions(c.Request().Context())
}

func (ctrl *FollowUpActionController) GetFollowUpActionsByReportID(c echo.Context, params json.RawMessage) (interface{}, error) {
	var in models.ReportIDInput
	if err := bindParams(c, params, &in); err != nil {
		return nil, err
	}
	return ctrl.svc.GetFollowUpActionsByReportID(c.Request().Context(), in.ReportID)
}

func (ctrl *FollowUpActionController) GetPendingFollowUpActions(c echo.Context, _ json.RawMessage) (interface{}, error) {
	return ctrl.svc.GetPendingFollowUpActions(c.Request().Context())
}

func (ctrl *FollowUpActionController) DeleteFollowUpAction(c echo.Context, params json.RawMessage) (interface{}, error) {
	var in models.IDInput
	if err := bindParams(c, params, &in); err != nil {
		return nil, err
	}
	return ctrl.svc.DeleteFollowUpAction(c.Request().Context(), in.ID)
}
