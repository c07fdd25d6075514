package monitoring

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/alerts", h.ListAlerts)
}

func (h *Handler) ListAlerts(c echo.Context) error {
	alerts, err := h.svc.GetAlerts(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if alerts == nil {
		alerts = []PatientAlert{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  alerts,
		"total": len(alerts),
	})
}
