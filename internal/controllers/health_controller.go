package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is the payload of healthcheck and GET /healthz.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthController answers liveness probes.
type HealthController struct {
	now func() time.Time
}

// NewHealthController creates a new instance of HealthController
func NewHealthController() *HealthController {
	return &HealthController{now: time.Now}
}

// Register mounts GET /healthz on the root router, outside the API group.
func (ctrl *HealthController) Register(e *echo.Echo) {
	e.GET("/healthz", ctrl.GetHealth)
}

func (ctrl *HealthController) Procedures() map[string]Procedure {
	return map[string]Procedure{
		"healthcheck": func(echo.Context, json.RawMessage) (interface{}, error) {
			return ctrl.health(), nil
		},
	}
}

func (ctrl *HealthController) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, ctrl.health())
}

func (ctrl *HealthController) health() Health {
	return Health{
		Status:    "ok",
		Timestamp: ctrl.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}
